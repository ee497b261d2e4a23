package services_test

import (
	"errors"
	"strings"
	"testing"

	"blademedia/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("permission denied")
	err := services.Wrap(services.ErrTransient, "organize", "move file", "Failed to move video", base)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	for _, want := range []string{"organize", "move file", "Failed to move video", "permission denied"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("message %q missing %q", err.Error(), want)
		}
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := services.Wrap(nil, "organize", "", "something broke", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected default ErrTransient, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := services.Wrap(services.ErrNotFound, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}
