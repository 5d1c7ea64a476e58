// Package translate wraps the public Google Translate web endpoint.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ekisa-team/voxlingo/internal/language"
)

const (
	// DefaultBaseURL is the translate web endpoint root.
	DefaultBaseURL = "https://translate.googleapis.com"

	// DefaultTimeout bounds a single translate call.
	DefaultTimeout = 10 * time.Second
)

// Error definitions for the translate package.
var (
	ErrEmptyText        = errors.New("text is empty")
	ErrEmptyTranslation = errors.New("provider returned no translation")
)

// Options configures the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Result is a completed translation. SourceLanguage is the detected
// language when the request asked for language.Auto.
type Result struct {
	OriginalText   string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
}

// BatchItem is one entry of a TranslateBatch call.
type BatchItem struct {
	Result *Result
	Err    error
}

// Client calls the translate endpoint.
type Client struct {
	http *resty.Client
}

// New creates a new Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

// Translate translates text from source to target. source may be
// language.Auto, in which case the detected language is reported.
func (c *Client) Translate(ctx context.Context, text, target, source string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if source == "" {
		source = language.Auto
	}

	translated, detected, err := c.call(ctx, text, target, source)
	if err != nil {
		return nil, err
	}
	if translated == "" {
		return nil, ErrEmptyTranslation
	}

	if source == language.Auto {
		if detected == "" {
			slog.Warn("Failed to detect source language, assuming fallback", "fallback", language.Fallback)
		}
		source = language.Normalize(detected)
	}

	return &Result{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: target,
	}, nil
}

// DetectLanguage returns the two-letter language of text, or
// language.Fallback when detection fails.
func (c *Client) DetectLanguage(ctx context.Context, text string) string {
	_, detected, err := c.call(ctx, text, language.Fallback, language.Auto)
	if err != nil {
		slog.Error("Language detection failed", "error", err)
		return language.Fallback
	}
	return language.Normalize(detected)
}

// TranslateBatch translates each text independently. A failed item does
// not stop the batch.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, target, source string) []BatchItem {
	out := make([]BatchItem, len(texts))
	for i, text := range texts {
		res, err := c.Translate(ctx, text, target, source)
		out[i] = BatchItem{Result: res, Err: err}
	}
	return out
}

// call performs the request and returns the joined translation and the
// detected source language tag.
func (c *Client) call(ctx context.Context, text, target, source string) (string, string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     source,
			"tl":     target,
			"dt":     "t",
			"ie":     "UTF-8",
			"oe":     "UTF-8",
		}).
		SetQueryParam("q", text).
		Get("/translate_a/single")
	if err != nil {
		return "", "", fmt.Errorf("translate: request failed: %w", err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("translate: provider returned %s", resp.Status())
	}

	return parse(resp.Body())
}

// parse reads the nested array payload:
// [[["Hola","Hello",...],...], null, "en", ...].
func parse(body []byte) (string, string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("translate: invalid response: %w", err)
	}
	if len(payload) == 0 {
		return "", "", fmt.Errorf("translate: invalid response: empty payload")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", "", fmt.Errorf("translate: invalid segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}

	var detected string
	if len(payload) > 2 {
		_ = json.Unmarshal(payload[2], &detected)
	}

	return sb.String(), detected, nil
}
