package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Capture(ctx context.Context) error
	Bulk(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Mode(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Version(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, mode [typical|divergent], theme [light|dark], reset, version, exit"
	helpLoggedIn  = "Available commands: capture, bulk, (l)ist [all|migrated|pending], edit, delete, whoami, " +
		"mode [typical|divergent], theme [light|dark], reset, version, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// The first word of a line is the command, the rest are its arguments.
// A command's error is described to the user with describeError and the loop
// carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("df %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var action string
		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			action, cmdErr = "log in", a.Login(ctx)

		case "logout":
			action, cmdErr = "log out", a.Logout(ctx)

		case "whoami":
			action, cmdErr = "read session", a.WhoAmI(ctx)

		case "capture", "c":
			action, cmdErr = "create capture", a.Capture(ctx)

		case "bulk":
			action, cmdErr = "create captures", a.Bulk(ctx)

		case "list", "l":
			action, cmdErr = "load captures", a.List(ctx, args)

		case "edit":
			action, cmdErr = "update capture", a.Edit(ctx)

		case "delete":
			action, cmdErr = "delete capture", a.Delete(ctx)

		case "mode":
			action, cmdErr = "change mode", a.Mode(ctx, args)

		case "theme":
			action, cmdErr = "change theme", a.Theme(ctx, args)

		case "reset":
			action, cmdErr = "reset preferences", a.Reset(ctx)

		case "version":
			action, cmdErr = "fetch version", a.Version(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(action, cmdErr))
		}

		if err != nil {
			return
		}
	}
}
