package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blademedia/internal/config"
)

const (
	userAgent  = "BladeMedia-Organizer/2.1"
	footerText = "BladeMedia Organizer v2.1"
)

// Severity selects the embed color of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

var severityColors = map[Severity]int{
	SeveritySuccess: 0x00ff00,
	SeverityWarning: 0xff9900,
	SeverityError:   0xff0000,
}

// RunReport carries the counters a completed run reports.
type RunReport struct {
	MoviesOrganized int
	MoviesSkipped   int
	TVOrganized     int
	TVSkipped       int
	ErrorCount      int
	Duration        time.Duration
	DryRun          bool
}

// Service defines the notification surface exposed to the organizer.
type Service interface {
	NotifyRunCompleted(ctx context.Context, report RunReport) error
	NotifyNoChanges(ctx context.Context) error
	NotifyError(ctx context.Context, err error, contextLabel string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by a Discord webhook when
// configured. When no webhook is configured, a noop implementation is
// returned.
func NewService(cfg *config.Config) Service {
	endpoint := strings.TrimSpace(cfg.Notifications.DiscordWebhook)
	if endpoint == "" {
		return noopService{}
	}
	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewWebhookService(endpoint, timeout)
}

// NewWebhookService builds a Discord notifier against an explicit endpoint.
func NewWebhookService(endpoint string, timeout time.Duration) Service {
	return &discordService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type discordService struct {
	endpoint string
	client   *http.Client
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Color       int         `json:"color"`
	Timestamp   string      `json:"timestamp"`
	Footer      embedFooter `json:"footer"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

func (d *discordService) NotifyRunCompleted(ctx context.Context, report RunReport) error {
	total := report.MoviesOrganized + report.TVOrganized
	title := "Media Organized"
	severity := SeveritySuccess
	if report.ErrorCount > 0 {
		title = "Media Organized (with errors)"
		severity = SeverityError
	}
	if report.DryRun {
		title += " (dry run)"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "**Movies**: %d organized, %d skipped\n", report.MoviesOrganized, report.MoviesSkipped)
	fmt.Fprintf(&body, "**TV**: %d organized, %d skipped\n", report.TVOrganized, report.TVSkipped)
	if report.ErrorCount > 0 {
		fmt.Fprintf(&body, "**Errors**: %d\n", report.ErrorCount)
	}
	fmt.Fprintf(&body, "**Total**: %d files\n", total)
	fmt.Fprintf(&body, "**Runtime**: %s", report.Duration.Round(time.Millisecond))

	return d.send(ctx, severity, title, body.String())
}

func (d *discordService) NotifyNoChanges(ctx context.Context) error {
	return d.send(ctx, SeverityWarning, "No Changes", "No new media to organize")
}

func (d *discordService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	var body strings.Builder
	body.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		body.WriteString(" with ")
		body.WriteString(contextLabel)
	}
	body.WriteString(": ")
	if err != nil {
		body.WriteString(strings.TrimSpace(err.Error()))
	} else {
		body.WriteString("unknown")
	}
	return d.send(ctx, SeverityError, "Organizer Error", body.String())
}

func (d *discordService) TestNotification(ctx context.Context) error {
	return d.send(ctx, SeveritySuccess, "Test", "Notification system test")
}

func (d *discordService) send(ctx context.Context, severity Severity, title, message string) error {
	color, ok := severityColors[severity]
	if !ok {
		color = severityColors[SeveritySuccess]
	}
	payload := webhookPayload{
		Embeds: []embed{{
			Title:       "🎬 " + title,
			Description: message,
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Footer:      embedFooter{Text: footerText},
		}},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyRunCompleted(context.Context, RunReport) error { return nil }
func (noopService) NotifyNoChanges(context.Context) error               { return nil }
func (noopService) NotifyError(context.Context, error, string) error    { return nil }
func (noopService) TestNotification(context.Context) error              { return nil }
