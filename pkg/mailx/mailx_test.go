package mailx

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := string(compose("noreply@bloggr.dev", "a@b.io", "Confirm", "hi", now))

	require.True(t, strings.HasPrefix(msg, "From: noreply@bloggr.dev\r\n"))
	require.Contains(t, msg, "To: a@b.io\r\n")
	require.Contains(t, msg, "Subject: Confirm\r\n")
	require.Contains(t, msg, "Date: Fri, 01 Mar 2024 12:00:00 +0000\r\n")
	require.True(t, strings.HasSuffix(msg, "\r\n\r\nhi"))
}

func TestNewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{})
	require.Error(t, err)

	_, err = NewSMTPSender(SMTPConfig{Host: "smtp.local"})
	require.Error(t, err, "needs a from address")

	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.local", Username: "bot@bloggr.dev"})
	require.NoError(t, err)
	require.Equal(t, 587, s.cfg.Port)
	require.Equal(t, "bot@bloggr.dev", s.cfg.From)
}

func TestSMTPSenderHonoursContext(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "192.0.2.1", Port: 25, From: "x@y.io"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Send(ctx, "a@b.io", "s", "b"), context.Canceled)
}

func TestMemorySender(t *testing.T) {
	s := NewMemorySender()
	ctx := context.Background()

	require.NoError(t, s.Send(ctx, "a@b.io", "one", "1"))
	require.NoError(t, s.Send(ctx, "c@d.io", "two", "2"))
	require.NoError(t, s.Send(ctx, "a@b.io", "three", "3"))

	require.Len(t, s.Sent(), 3)
	last, ok := s.Last("a@b.io")
	require.True(t, ok)
	require.Equal(t, "three", last.Subject)

	_, ok = s.Last("nobody@b.io")
	require.False(t, ok)

	s.Err = errors.New("boom")
	require.Error(t, s.Send(ctx, "a@b.io", "four", "4"))
	require.Len(t, s.Sent(), 4)
}

func TestLogSender(t *testing.T) {
	require.NoError(t, LogSender{}.Send(context.Background(), "a@b.io", "s", "b"))
}
