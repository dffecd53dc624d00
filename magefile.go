// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Installs the application.
func Install() error {
	version, err := version()
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", "-X main.version="+version)
}

// Creates a flipbook executable for the given platform. Possible platforms
// are "linux", "rpi64" and "osxarm".
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	version, err := version()
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-o", "flipbook", "-ldflags", "-X main.version="+version)
}

func version() (string, error) {
	return sh.Output("git", "describe", "--always", "--long", "--dirty")
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "linux":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "amd64",
		}, nil
	case "rpi64":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "arm64",
		}, nil
	case "osxarm":
		return map[string]string{
			"GOOS":   "darwin",
			"GOARCH": "arm64",
		}, nil
	}

	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
