package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"doctor-directory/internal/delivery/dto"
)

// maxFeedBytes bounds how much of the feed body is read.
const maxFeedBytes = 16 << 20

// DoctorFeedClient reads the upstream doctor feed, a JSON array of records.
type DoctorFeedClient struct {
	url        string
	httpClient *http.Client
}

func NewDoctorFeedClient(url string, timeout time.Duration) *DoctorFeedClient {
	return &DoctorFeedClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRecords downloads and decodes the feed. Any non-2xx status is an error.
func (c *DoctorFeedClient) FetchRecords(ctx context.Context) ([]dto.DoctorRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	var records []dto.DoctorRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return records, nil
}
