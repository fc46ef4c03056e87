package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	err     error
	records []slog.Record
}

func (s *stubHandler) Enabled(context.Context, slog.Level) bool { return true }

func (s *stubHandler) Handle(_ context.Context, r slog.Record) error {
	s.records = append(s.records, r)
	return s.err
}

func (s *stubHandler) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *stubHandler) WithGroup(string) slog.Handler      { return s }

func TestMultiHandlerDeliversPastFailingSink(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("flush failed")
	failing := &stubHandler{err: sinkErr}
	healthy := &stubHandler{}

	h := NewMultiHandler(failing, healthy)
	record := slog.NewRecord(time.Now(), slog.LevelError, "db down", 0)

	err := h.Handle(context.Background(), record)
	require.ErrorIs(t, err, sinkErr)
	assert.Len(t, failing.records, 1)
	assert.Len(t, healthy.records, 1, "later sinks still receive the record")
}

func TestMultiHandlerCollectsAllSinkErrors(t *testing.T) {
	t.Parallel()

	errA := errors.New("sink a")
	errB := errors.New("sink b")

	h := NewMultiHandler(&stubHandler{err: errA}, &stubHandler{}, &stubHandler{err: errB})

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
}

func TestMultiHandlerHealthySinksReturnNil(t *testing.T) {
	t.Parallel()

	h := NewMultiHandler(&stubHandler{}, &stubHandler{})
	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
	assert.NoError(t, err)
}
