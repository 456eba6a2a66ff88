package gears

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	var h nopHandler
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nopHandler should not be enabled at any level")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle returned %v", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs should return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return a nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if _, ok := Logger().Handler().(nopHandler); !ok {
		t.Fatal("default logger should discard output")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	f := NewFiller(newTestRand(1))
	if _, err := f.Fill(NewRectFromSize(120, 80), 10, 20, 2.5, 6); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"gear placed", "gear retired", "fill complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q", want)
		}
	}

	SetLogger(nil)
	if _, ok := Logger().Handler().(nopHandler); !ok {
		t.Error("SetLogger(nil) should restore the discarding logger")
	}
}

func TestFillerLogger(t *testing.T) {
	var pkg, own bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkg, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	f := NewFiller(newTestRand(1))
	f.Logger = slog.New(slog.NewTextHandler(&own, nil))
	if _, err := f.Fill(NewRectFromSize(120, 80), 10, 20, 2.5, 6); err != nil {
		t.Fatal(err)
	}
	if pkg.Len() != 0 {
		t.Errorf("package logger received output: %s", pkg.String())
	}
	if !strings.Contains(own.String(), "fill complete") {
		t.Error("filler logger is missing the completion record")
	}
}
