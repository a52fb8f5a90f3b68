package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func useInspector(t *testing.T, st ImageStatus, err error) {
	t.Helper()
	orig := inspectImage
	inspectImage = func(context.Context, string) (ImageStatus, error) { return st, err }
	t.Cleanup(func() { inspectImage = orig })
}

func TestImageInfo(t *testing.T) {
	t.Run("pulled", func(t *testing.T) {
		useInspector(t, ImageStatus{
			Pulled:  true,
			ID:      "sha256:0123456789abcdef0123456789abcdef",
			Created: "2026-01-02T03:04:05Z",
		}, nil)
		got := ImageInfo(testImage)
		if got != "0123456789ab (created 2026-01-02T03:04:05Z)" {
			t.Errorf("ImageInfo = %q", got)
		}
	})

	t.Run("not pulled", func(t *testing.T) {
		useInspector(t, ImageStatus{}, nil)
		if got := ImageInfo(testImage); !strings.HasPrefix(got, "not pulled") {
			t.Errorf("ImageInfo = %q", got)
		}
	})

	t.Run("daemon error", func(t *testing.T) {
		useInspector(t, ImageStatus{}, errors.New("cannot connect"))
		if got := ImageInfo(testImage); got != "daemon unavailable" {
			t.Errorf("ImageInfo = %q", got)
		}
	})
}

func TestVersion(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.4.0"
	if got := Version(); got != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", got)
	}

	version = "dev"
	if got := Version(); got == "" {
		t.Error("Version is empty")
	}
}
