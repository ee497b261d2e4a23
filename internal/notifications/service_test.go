package notifications_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blademedia/internal/notifications"
	"blademedia/internal/testsupport"
)

type capturedPayload struct {
	Embeds []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Color       int    `json:"color"`
		Timestamp   string `json:"timestamp"`
		Footer      struct {
			Text string `json:"text"`
		} `json:"footer"`
	} `json:"embeds"`
}

func captureServer(t *testing.T, status int) (*httptest.Server, *[]capturedPayload) {
	t.Helper()
	var payloads []capturedPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var payload capturedPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("decode body: %v", err)
		}
		payloads = append(payloads, payload)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, &payloads
}

func TestNotifyRunCompletedEmbed(t *testing.T) {
	server, payloads := captureServer(t, http.StatusNoContent)
	svc := notifications.NewWebhookService(server.URL, 5*time.Second)

	report := notifications.RunReport{
		MoviesOrganized: 3,
		MoviesSkipped:   1,
		TVOrganized:     2,
		Duration:        90 * time.Second,
	}
	if err := svc.NotifyRunCompleted(context.Background(), report); err != nil {
		t.Fatalf("NotifyRunCompleted: %v", err)
	}

	if len(*payloads) != 1 || len((*payloads)[0].Embeds) != 1 {
		t.Fatalf("expected one embed, got %+v", *payloads)
	}
	got := (*payloads)[0].Embeds[0]
	if !strings.Contains(got.Title, "Media Organized") {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Color != 0x00ff00 {
		t.Fatalf("color = %#x, want success green", got.Color)
	}
	for _, want := range []string{"**Movies**: 3 organized, 1 skipped", "**TV**: 2 organized, 0 skipped", "**Runtime**"} {
		if !strings.Contains(got.Description, want) {
			t.Fatalf("description %q missing %q", got.Description, want)
		}
	}
	if got.Footer.Text == "" {
		t.Fatal("expected footer text")
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("timestamp %q not RFC3339: %v", got.Timestamp, err)
	}
}

func TestNotifyRunCompletedWithErrorsUsesErrorColor(t *testing.T) {
	server, payloads := captureServer(t, http.StatusOK)
	svc := notifications.NewWebhookService(server.URL, 5*time.Second)

	report := notifications.RunReport{MoviesOrganized: 1, ErrorCount: 2}
	if err := svc.NotifyRunCompleted(context.Background(), report); err != nil {
		t.Fatalf("NotifyRunCompleted: %v", err)
	}
	got := (*payloads)[0].Embeds[0]
	if got.Color != 0xff0000 {
		t.Fatalf("color = %#x, want error red", got.Color)
	}
	if !strings.Contains(got.Description, "**Errors**: 2") {
		t.Fatalf("description = %q", got.Description)
	}
}

func TestNotifyNoChangesUsesWarningColor(t *testing.T) {
	server, payloads := captureServer(t, http.StatusOK)
	svc := notifications.NewWebhookService(server.URL, 5*time.Second)

	if err := svc.NotifyNoChanges(context.Background()); err != nil {
		t.Fatalf("NotifyNoChanges: %v", err)
	}
	got := (*payloads)[0].Embeds[0]
	if got.Color != 0xff9900 {
		t.Fatalf("color = %#x, want warning orange", got.Color)
	}
	if got.Description != "No new media to organize" {
		t.Fatalf("description = %q", got.Description)
	}
}

func TestSendReportsHTTPFailure(t *testing.T) {
	server, _ := captureServer(t, http.StatusBadRequest)
	svc := notifications.NewWebhookService(server.URL, 5*time.Second)

	err := svc.TestNotification(context.Background())
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestNotifyError(t *testing.T) {
	server, payloads := captureServer(t, http.StatusOK)
	svc := notifications.NewWebhookService(server.URL, 5*time.Second)

	if err := svc.NotifyError(context.Background(), errors.New("disk full"), "tv pass"); err != nil {
		t.Fatalf("NotifyError: %v", err)
	}
	got := (*payloads)[0].Embeds[0]
	if !strings.Contains(got.Description, "tv pass") || !strings.Contains(got.Description, "disk full") {
		t.Fatalf("description = %q", got.Description)
	}
}

func TestNewServiceNoopWithoutWebhook(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc := notifications.NewService(cfg)
	if err := svc.NotifyNoChanges(context.Background()); err != nil {
		t.Fatalf("noop service should never fail: %v", err)
	}
}
