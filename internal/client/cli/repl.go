package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/voicearchive/internal/client/capture"
	"github.com/dmitrijs2005/voicearchive/internal/client/client"
	"github.com/dmitrijs2005/voicearchive/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Record(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Threads(ctx context.Context) error
	Stats(ctx context.Context) error
	Sync(ctx context.Context) error
	Bookmark(ctx context.Context, args []string) error
	Bookmarks(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, list, show, stats, threads, exit"
	helpSignedIn  = "Available commands: record, (l)ist [type=|language=|tribe=|thread], show <id>, edit <id>, " +
		"delete <id>, threads, stats, sync, bookmark <id>, bookmarks, profile, delete-account, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, when ctx is done, or on "exit"/"quit".
//
// Command errors are reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("va %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "delete-account":
			err = a.DeleteAccount(ctx)
		case "record":
			err = a.Record(ctx, args)
		case "l", "list":
			err = a.List(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "threads":
			err = a.Threads(ctx)
		case "stats":
			err = a.Stats(ctx)
		case "sync":
			err = a.Sync(ctx)
		case "bookmark":
			err = a.Bookmark(ctx, args)
		case "bookmarks":
			err = a.Bookmarks(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}

// describeError turns known failures into short user-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return "please log in first"
	case errors.Is(err, common.ErrNothingToSync):
		return "nothing to sync"
	case errors.Is(err, common.ErrSyncInProgress):
		return "a sync is already running"
	case errors.Is(err, capture.ErrDeviceUnavailable):
		return "microphone unavailable: " + err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again when online"
	case errors.Is(err, client.ErrUnauthorized):
		return "wrong credentials or expired session"
	case errors.Is(err, common.ErrorNotFound):
		return "no such recording"
	}
	return err.Error()
}

// argOrPrompt returns args[0] or asks for it.
func argOrPrompt(a *App, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
