package webserver

import "time"

type Config struct {
	Version               string
	SessionTimeout        time.Duration
	MinPasswordLength     int
	LibraryPath           string
	HomeDir               string
	CoverMaxWidth         int
	JwtSecret             []byte
	Hostname              string
	Port                  int
	RequireAuth           bool
	UploadDocumentMaxSize int
	SummariesEndpoint     string
}
