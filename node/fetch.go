package node

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes a Metadata points at.
type Fetcher interface {
	Fetch(ctx context.Context, md Metadata) ([]byte, error)
}

// HTTPFetcher reads node blobs out of an HTTP blob store using range
// requests, so a single pack file can hold many nodes.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, md Metadata) ([]byte, error) {
	if md.Length <= 0 {
		return nil, fmt.Errorf("metadata has non-positive length %d", md.Length)
	}
	target := fmt.Sprintf("%s/%s/%s", f.baseURL, url.PathEscape(md.Bucket), md.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build node request: %w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", md.Offset, md.Offset+md.Length-1))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch node %s: %w", md.Identity(), err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent, http.StatusOK:
	case http.StatusNotFound, http.StatusRequestedRangeNotSatisfiable:
		return nil, fmt.Errorf("fetch node %s: %w", md.Identity(), ErrNotFound)
	default:
		return nil, fmt.Errorf("fetch node %s: unexpected status %s", md.Identity(), resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, md.Length+1))
	if err != nil {
		return nil, fmt.Errorf("read node %s: %w", md.Identity(), err)
	}

	// A server ignoring Range answers 200 with the whole pack file. Pack
	// files are large, so refuse instead of buffering.
	if resp.StatusCode == http.StatusOK && int64(len(raw)) > md.Length {
		return nil, fmt.Errorf("fetch node %s: server ignored range request", md.Identity())
	}
	if int64(len(raw)) != md.Length {
		return nil, fmt.Errorf("fetch node %s: got %d bytes, want %d", md.Identity(), len(raw), md.Length)
	}
	return raw, nil
}
