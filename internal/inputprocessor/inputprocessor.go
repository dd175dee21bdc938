// Package inputprocessor resolves a CLI argument into resume text: a
// readable file path, a fetchable http(s) URL, or failing both, the raw
// string itself.
package inputprocessor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"resumatic/internal/util"

	log "github.com/sirupsen/logrus"
)

// Result holds the resolved resume text and where it came from.
type Result struct {
	Body       string
	SourceType string // "file", "url" or "raw"
}

// Processor resolves input strings into resume text.
type Processor interface {
	Process(ctx context.Context, input string) (Result, error)
}

// New returns the default processor implementation.
func New() Processor {
	return &defaultProcessor{client: http.DefaultClient}
}

type defaultProcessor struct {
	client *http.Client
}

func (p *defaultProcessor) Process(ctx context.Context, input string) (Result, error) {
	// Any stat failure (not found, name too long for a path, ...) just
	// means the input is not a file.
	if fi, err := os.Stat(input); err == nil && !fi.IsDir() {
		data, readErr := os.ReadFile(input)
		if readErr != nil {
			return Result{}, fmt.Errorf("read resume file %q: %w", input, readErr)
		}
		body, cleanErr := util.CleanResumeContent(data, input)
		if cleanErr != nil {
			return Result{}, cleanErr
		}
		return Result{Body: body, SourceType: "file"}, nil
	}

	if parsed, urlErr := url.Parse(input); urlErr == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return p.fetch(ctx, input)
	}

	log.Debugf("input is neither a file nor a URL, treating as raw resume text")
	return Result{Body: input, SourceType: "raw"}, nil
}

func (p *defaultProcessor) fetch(ctx context.Context, rawURL string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request for %q: %w", rawURL, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetch %q: status %d", rawURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response from %q: %w", rawURL, err)
	}
	body, err := util.CleanResumeContent(data, rawURL)
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body, SourceType: "url"}, nil
}

var _ Processor = (*defaultProcessor)(nil)
