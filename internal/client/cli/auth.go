package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/divergentflow/internal/common"
)

// Login prompts for an email and a hidden bearer token and starts a session.
// The email may be left empty when the token carries an email claim.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email (empty to use the token's email)", a.out)
	if err != nil {
		return err
	}

	token, err := getToken(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(token)

	sess, err := a.session.Login(ctx, email, token)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "logged in", "email", sess.Email, "user_id", sess.UserID)
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.Email)
	return nil
}

// Logout forgets the session and the cached user id.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the session. The name line is skipped when the profile
// lookup fails.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	userID := sess.UserID
	if id, ok := a.users.CachedUserID(); ok {
		userID = id
	}

	expires := "never"
	if !sess.ExpiresAt.IsZero() {
		expires = sess.ExpiresAt.Local().Format(time.RFC1123)
	}

	fmt.Fprintf(a.out, "Email:   %s\n", sess.Email)
	if u, err := a.users.GetUserByEmail(ctx, sess.Email, sess.Token); err != nil {
		a.log.Warn(ctx, "failed to load user profile", "email", sess.Email, "error", err)
	} else if name := u.DisplayName(); name != "" {
		fmt.Fprintf(a.out, "Name:    %s\n", name)
	}
	fmt.Fprintf(a.out, "User ID: %s\nExpires: %s\n", userID, expires)
	return nil
}
