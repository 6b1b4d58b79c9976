package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "svc" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{{Key: "existing", Value: slog.StringValue("x")}}, "", "")
	if len(attrs) != 1 || attrs[0].Key != "existing" {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	ctx := context.Background()
	Info(ctx, nil, "ignored")
	Warn(ctx, nil, "ignored")
	Error(ctx, nil, "ignored", errors.New("boom"))
}

func TestErrorHelperAppendsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(context.Background(), logger, "fetch failed", errors.New("boom"), FieldSource, "remote")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "source=remote") {
		t.Fatalf("expected error and source fields, got %q", out)
	}
}

func TestHelpersPreferContextLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewTextHandler(&base, nil))
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))

	Warn(ctx, baseLogger, "scoped warning")
	if base.Len() != 0 || !strings.Contains(scoped.String(), "scoped warning") {
		t.Fatalf("expected scoped logger to receive warning, base=%q scoped=%q", base.String(), scoped.String())
	}
}
