package controller

import "fmt"

// UrlPort returns the ":port" URL fragment for the passed protocol and
// port, empty when the port is the protocol's default one
func UrlPort(protocol string, port int) string {
	if (protocol == "http" && port == 80) || (protocol == "https" && port == 443) {
		return ""
	}
	return fmt.Sprintf(":%d", port)
}
