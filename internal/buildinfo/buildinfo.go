// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/divergentflow/internal/buildinfo.Version=1.4.0 \
//	  -X github.com/dmitrijs2005/divergentflow/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/dmitrijs2005/divergentflow/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

const (
	notAvailable = "N/A"
	serviceName  = "divergentflow-cli"
)

var (
	Version = notAvailable
	Commit  = notAvailable
	Date    = notAvailable
)

func valueOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes the build triple to w, one field per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(Commit))
}

// Info returns the client build in the same shape the server reports its own
// version, so both can be rendered side by side.
func Info() models.VersionInfo {
	return models.VersionInfo{
		Version:   valueOrNA(Version),
		Service:   serviceName,
		Timestamp: valueOrNA(Date),
	}
}
