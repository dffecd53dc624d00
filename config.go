package main

import "time"

// Config defines the application settings, read from environment variables
type Config struct {
	// LibPath holds the absolute path to the folder containing the documents
	LibPath string `env:"LIBPATH" env-required:"true"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" env-default:"3000"`
	// Hostname defines the host name of the server, used to compose share links
	Hostname string `env:"HOSTNAME" env-default:"localhost"`
	// BatchSize indicates the number of documents persisted by the indexer in one operation
	BatchSize int `env:"BATCHSIZE" env-default:"100"`
	// CoverMaxWidth sets the maximum horizontal size for documents cover thumbnails in pixels
	CoverMaxWidth int `env:"COVER_MAX_WIDTH" env-default:"300"`
	// SkipIndexing signals whether to do a library indexing on start
	SkipIndexing bool `env:"SKIP_INDEXING" env-default:"false"`
	// SmtpServer points to the address of the send mail server
	SmtpServer string `env:"SMTP_SERVER"`
	// SmtpPort defines the port in which the mail server listens for requests
	SmtpPort int `env:"SMTP_PORT" env-default:"587"`
	SmtpUser string `env:"SMTP_USER"`
	// SmtpPassword holds the password of the user defined in SmtpUser
	SmtpPassword string `env:"SMTP_PASSWORD"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret []byte `env:"JWT_SECRET"`
	// RequireAuth is a switch to enforce authentication for accessing the whole library
	RequireAuth bool `env:"REQUIRE_AUTH" env-default:"false"`
	// MinPasswordLength is the minimum length acceptable for passwords
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	// SessionTimeout specifies the maximum time a user session may last, in hours
	SessionTimeout float64 `env:"SESSION_TIMEOUT" env-default:"24"`
	// UploadDocumentMaxSize is the maximum document size allowed to be uploaded to the library, in megabytes
	UploadDocumentMaxSize int `env:"UPLOAD_DOCUMENT_MAX_SIZE" env-default:"20"`
	// SummariesEndpoint points to the base URL of a service which generates document summaries.
	// Leave it empty to disable summaries generation.
	SummariesEndpoint string `env:"SUMMARIES_ENDPOINT"`
}

func (c Config) sessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeout * float64(time.Hour))
}
