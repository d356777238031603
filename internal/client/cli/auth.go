package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for a display name, email and password and creates the
// account. The new session starts online.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}
	a.setMode(ModeOnline)
	a.refreshBookmarks(ctx)
	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.User.Name)
	return nil
}

// Login tries the server first and falls back to the cached credentials
// when it is unreachable. The connectivity mode follows the session mode.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		return err
	}

	if sess.Mode == models.SessionModeOffline {
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Signed in offline. Sync and bookmarks need an online login.")
		return nil
	}
	a.setMode(ModeOnline)
	a.refreshBookmarks(ctx)
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.User.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Profile shows the signed-in user and lets them change name and photo.
// Empty answers keep the current value.
func (a *App) Profile(ctx context.Context) error {
	sess := a.session()
	if !sess.Active() {
		return common.ErrUnauthenticated
	}
	u := sess.User
	fmt.Fprintf(a.out, "Name: %s\nEmail: %s\nPhoto: %s\n", u.Name, u.Email, u.PhotoURL)

	name, err := getSimpleText(a.reader, fmt.Sprintf("New name (empty keeps %q)", u.Name), a.out)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "New photo URL (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if name == "" && photo == "" {
		return nil
	}
	if name == "" {
		name = u.Name
	}
	if photo == "" {
		photo = u.PhotoURL
	}

	updated, err := a.auth.UpdateProfile(ctx, name, photo)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s\n", updated.Name)
	return nil
}

// DeleteAccount removes the remote profile and the local session after an
// explicit confirmation. Local recordings stay on disk.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrUnauthenticated
	}
	ok, err := Confirm(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.auth.DeleteAccount(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
