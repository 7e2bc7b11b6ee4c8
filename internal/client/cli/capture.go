package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
)

// Capture records one thought. In divergent mode it behaves like Bulk.
func (a *App) Capture(ctx context.Context) error {
	if a.neuroMode == models.NeuroModeDivergent {
		return a.Bulk(ctx)
	}

	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	text, err := getSimpleText(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}

	c, err := a.captures.Create(ctx, sess.UserID, text, sess.Token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Captured %s\n", c.ID)
	return nil
}

// Bulk creates one capture per non-empty line and reports each failed line.
func (a *App) Bulk(ctx context.Context) error {
	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Dump your thoughts, one per line", a.out)
	if err != nil {
		return err
	}

	res, err := a.captures.CreateBatch(ctx, sess.UserID, text, sess.Token)
	if err != nil {
		return err
	}

	for _, it := range res.Failed() {
		fmt.Fprintf(a.out, "  line %d %q: %s\n", it.Index+1, it.Text, describeError("create capture", it.Err))
	}

	switch res.Outcome() {
	case models.BatchAllFailed:
		fmt.Fprintln(a.out, "No captures were created")
	case models.BatchPartial:
		fmt.Fprintf(a.out, "Successfully captured %d item(s), %d failed\n", len(res.Succeeded()), len(res.Failed()))
	default:
		fmt.Fprintf(a.out, "Successfully captured %d item(s)\n", len(res.Succeeded()))
	}
	return nil
}

// parseListFilter maps the list argument to the migrated query filter.
// No argument means pending captures only.
func parseListFilter(args []string) (*bool, error) {
	if len(args) == 0 {
		return client.Bool(false), nil
	}
	switch strings.ToLower(args[0]) {
	case "pending":
		return client.Bool(false), nil
	case "migrated":
		return client.Bool(true), nil
	case "all":
		return nil, nil
	default:
		return nil, client.Precondition("Usage: list [all|migrated|pending]")
	}
}

// List renders captures for the session. It asks by user id when one is
// cached and by email otherwise.
func (a *App) List(ctx context.Context, args []string) error {
	migrated, err := parseListFilter(args)
	if err != nil {
		return err
	}

	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	var list []models.Capture
	if id, ok := a.users.CachedUserID(); ok {
		list, err = a.captures.ListByUser(ctx, id, sess.Token, migrated)
	} else {
		list, err = a.captures.ListByEmail(ctx, sess.Email, sess.Token, migrated)
	}
	if err != nil {
		return err
	}

	renderCaptures(a.out, list, a.neuroMode, a.now())
	return nil
}

// Edit replaces the text of an existing capture.
func (a *App) Edit(ctx context.Context) error {
	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter capture id", a.out)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Enter new text", a.out)
	if err != nil {
		return err
	}

	c, err := a.captures.Update(ctx, id, sess.UserID, text, sess.Token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", c.ID)
	return nil
}

// Delete removes a capture after confirmation.
func (a *App) Delete(ctx context.Context) error {
	sess, err := a.session.Current()
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter capture id", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		return client.Precondition("capture id is required")
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete capture %s? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if ans := strings.ToLower(answer); ans != "y" && ans != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.captures.Delete(ctx, id, sess.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}
