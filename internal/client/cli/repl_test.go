package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) Register(context.Context) error { return f.call("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.call("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.call("logout", nil)
}
func (f *fakeExec) Profile(context.Context) error       { return f.call("profile", nil) }
func (f *fakeExec) DeleteAccount(context.Context) error { return f.call("delete-account", nil) }
func (f *fakeExec) Record(_ context.Context, args []string) error {
	return f.call("record", args)
}
func (f *fakeExec) List(_ context.Context, args []string) error   { return f.call("list", args) }
func (f *fakeExec) Show(_ context.Context, args []string) error   { return f.call("show", args) }
func (f *fakeExec) Edit(_ context.Context, args []string) error   { return f.call("edit", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.call("delete", args) }
func (f *fakeExec) Threads(context.Context) error                 { return f.call("threads", nil) }
func (f *fakeExec) Stats(context.Context) error                   { return f.call("stats", nil) }
func (f *fakeExec) Sync(context.Context) error                    { return f.call("sync", nil) }
func (f *fakeExec) Bookmark(_ context.Context, args []string) error {
	return f.call("bookmark", args)
}
func (f *fakeExec) Bookmarks(context.Context) error { return f.call("bookmarks", nil) }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	printed := capturePrints(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "status" }, input(
		"help",
		"login",
		"help",
		"record song",
		"l type=word tribe=santal",
		"show 123",
		"edit 123",
		"delete 123",
		"threads",
		"stats",
		"sync",
		"bookmark 123",
		"bookmarks",
		"profile",
		"",
		"foobar",
		"delete-account",
		"logout",
		"exit",
		"register",
	))

	assert.Equal(t, []string{
		"login", "record", "list", "show", "edit", "delete", "threads", "stats",
		"sync", "bookmark", "bookmarks", "profile", "delete-account", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"song"}, exec.args[1])
	assert.Equal(t, []string{"type=word", "tribe=santal"}, exec.args[2])
	assert.Equal(t, []string{"123"}, exec.args[3])

	assert.Contains(t, *printed, helpSignedOut)
	assert.Contains(t, *printed, helpSignedIn)
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "va status> ")
	assert.Equal(t, "Bye!", (*printed)[len(*printed)-1])
}

func TestRunREPL_ReportsErrorsAndKeepsGoing(t *testing.T) {
	printed := capturePrints(t)
	exec := &fakeExec{failWith: fmt.Errorf("sync: %w", common.ErrUnauthenticated)}

	runREPL(context.Background(), exec, func() string { return "" }, input("sync", "stats"))

	assert.Equal(t, []string{"sync", "stats"}, exec.calls)
	assert.Contains(t, *printed, "Error: please log in first")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("stats")))
	require.Equal(t, []string{"stats"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, input("stats"))
	require.Empty(t, exec.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrNothingToSync, "nothing to sync"},
		{fmt.Errorf("x: %w", common.ErrSyncInProgress), "a sync is already running"},
		{fmt.Errorf("get: %w", common.ErrorNotFound), "no such recording"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
