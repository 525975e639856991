package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"rudresh.dev/internal/models"
)

// errStatsRejected is reported when the stats API answers without status "success"
var errStatsRejected = errors.New("stats API did not report success")

type leetCodeResponse struct {
	Status string `json:"status"`
	models.CodingStats
}

// ResolveStats turns one LeetCode stats outcome into a snapshot, or nil when
// there is no usable data. Values are passed through as reported.
func ResolveStats(o Outcome) *models.CodingStats {
	stats, _ := resolveStats(o)
	return stats
}

func resolveStats(o Outcome) (*models.CodingStats, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	if !o.OK() {
		return nil, fmt.Errorf("unexpected status %d", o.StatusCode)
	}
	var resp leetCodeResponse
	if err := json.Unmarshal(o.Body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse stats: %w", err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: %q", errStatsRejected, resp.Status)
	}
	stats := resp.CodingStats
	return &stats, nil
}
