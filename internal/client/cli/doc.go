// Package cli provides the interactive Divergent Flow command-line client.
//
// It wires configuration, the local preferences store, the capture API client
// and its services, and an interactive REPL. Typical flow: log in with a
// bearer token, then capture, list, edit and delete notes.
//
// Two presentation modes exist. In typical mode captures are listed as a
// numbered table and "capture" takes a single line. In divergent mode lists
// are compact cards and "capture" accepts many lines at once, one capture per
// line.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
