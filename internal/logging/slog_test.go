package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T, level slog.Level) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "request sent", "path", "/v1/capture")
	log.Info(ctx, "logged in", "email", "a@b.co")
	log.Warn(ctx, "could not load preferences", "error", "locked")
	log.Error(ctx, "invalid response", "field", "[0].id")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=\"request sent\"", "path=/v1/capture",
		"level=INFO", "email=a@b.co",
		"level=WARN", "error=locked",
		"level=ERROR", "field=[0].id",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelInfo)

	log.With("request_id", "r-1").Info(context.Background(), "done", "status", 201)

	out := buf.String()
	assert.Contains(t, out, "request_id=r-1")
	assert.Contains(t, out, "status=201")
}

func TestSlogLogger_BelowLevelIsDropped(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelWarn)

	log.Debug(context.Background(), "noise")
	log.Info(context.Background(), "noise")

	assert.Empty(t, buf.String())
}

func TestSlogLogger_RedactsTokens(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelInfo)
	ctx := context.Background()

	log.Info(ctx, "login", "email", "a@b.co", "token", "tok123")
	log.With("Authorization", "Bearer tok123").Info(ctx, "request")

	out := buf.String()
	assert.NotContains(t, out, "tok123")
	assert.Contains(t, out, "token=[REDACTED]")
	assert.Contains(t, out, "Authorization=[REDACTED]")
	assert.Contains(t, out, "email=a@b.co")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error(context.Background(), "dropped")
	log.With("k", "v").Info(context.Background(), "dropped")
}
