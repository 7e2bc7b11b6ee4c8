package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/divergentflow/internal/buildinfo"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

// Version prints the client build and the deployed server version. A server
// failure is reported inline; the client line is always printed.
func (a *App) Version(ctx context.Context) error {
	fmt.Fprintln(a.out, formatVersion("Client", buildinfo.Info()))

	v, err := a.version.GetVersion(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Server: "+describeError("fetch server version", err))
		return nil
	}

	fmt.Fprintln(a.out, formatVersion("Server", *v))
	return nil
}

func formatVersion(label string, v models.VersionInfo) string {
	line := label + ": "
	if v.Service != "" {
		line += v.Service + " "
	}
	line += v.Version
	if v.Timestamp != "" {
		line += " (" + v.Timestamp + ")"
	}
	return line
}
