package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxManualBytes bounds how much of one manual is read.
const maxManualBytes = 64 << 20

// Fetcher downloads manuals.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// Fetch downloads url and returns the body and its content type.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch %s: HTTP %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManualBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", url, err)
	}
	return body, strings.ToLower(resp.Header.Get("Content-Type")), nil
}

// ManualText fetches url and converts it to text, as PDF when the URL or the
// content type says so and as HTML otherwise.
func (f *Fetcher) ManualText(ctx context.Context, url string, maxPDFPages int) (string, error) {
	body, contentType, err := f.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if isPDF(url) || strings.Contains(contentType, "pdf") {
		return PDFToText(body, maxPDFPages)
	}
	return HTMLToText(body)
}

func isPDF(url string) bool {
	return strings.HasSuffix(strings.ToLower(url), ".pdf")
}
