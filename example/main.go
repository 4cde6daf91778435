package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/mgnsk/cdlist"
)

var logLevel = new(slog.LevelVar)

// configureLogging sets up the default logger with the level from CDLIST_LOG_LEVEL.
func configureLogging() {
	logLevel.Set(slog.LevelInfo)

	switch os.Getenv("CDLIST_LOG_LEVEL") {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	configureLogging()

	l := cdlist.New[int](
		cdlist.WithCapacity(8),
		cdlist.WithInvariantChecks(true),
	)

	l.PushFront(1)
	l.PushBack(2)
	l.PushFront(3)
	slog.Info("pushed", "list", l.String(), "len", l.Len())

	if front, ok := l.PeekFront(); ok {
		slog.Debug("peek", "front", front.Value())
	}

	if err := l.InsertAt(1, 4); err != nil {
		slog.Error("insert failed", "error", err)
		os.Exit(1)
	}
	slog.Info("inserted", "index", 1, "list", l.String())

	if err := l.InsertAt(l.Len()+1, 5); errors.Is(err, cdlist.ErrIndexOutOfRange) {
		slog.Warn("insert rejected", "error", err)
	}

	if v, ok := l.RemoveAt(2); ok {
		slog.Info("removed", "index", 2, "value", v, "list", l.String())
	}

	for !l.IsEmpty() {
		v, _ := l.PopBack()
		slog.Debug("popped", "value", v, "len", l.Len())
	}

	slog.Info("done", "empty", l.IsEmpty())
}
