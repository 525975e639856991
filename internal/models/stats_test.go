package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankingLabel(t *testing.T) {
	tests := []struct {
		stats *CodingStats
		want  string
	}{
		{nil, "N/A"},
		{&CodingStats{}, "N/A"},
		{&CodingStats{Ranking: 7}, "#7"},
		{&CodingStats{Ranking: 50000}, "#50,000"},
		{&CodingStats{Ranking: 1234567}, "#1,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.stats.RankingLabel())
	}
}

func TestBreakdown(t *testing.T) {
	var none *CodingStats
	assert.Nil(t, none.Breakdown())

	s := &CodingStats{EasySolved: 80, MediumSolved: 30, HardSolved: 10}
	assert.Equal(t, []DifficultySlice{
		{Name: "Easy", Value: 80, Color: "#00b8a3"},
		{Name: "Medium", Value: 30, Color: "#ffc01e"},
		{Name: "Hard", Value: 10, Color: "#ff375f"},
	}, s.Breakdown())
}
