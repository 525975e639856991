package models

// CodingStats is a snapshot of the LeetCode statistics API response.
// Ranking is 0 when unknown.
type CodingStats struct {
	TotalSolved        int `json:"totalSolved"`
	EasySolved         int `json:"easySolved"`
	MediumSolved       int `json:"mediumSolved"`
	HardSolved         int `json:"hardSolved"`
	Ranking            int `json:"ranking"`
	ContributionPoints int `json:"contributionPoints"`
	Reputation         int `json:"reputation"`
}

// DifficultySlice is one segment of the solved-problems chart
type DifficultySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Breakdown returns the easy/medium/hard chart segments
func (s *CodingStats) Breakdown() []DifficultySlice {
	if s == nil {
		return nil
	}
	return []DifficultySlice{
		{Name: "Easy", Value: s.EasySolved, Color: "#00b8a3"},
		{Name: "Medium", Value: s.MediumSolved, Color: "#ffc01e"},
		{Name: "Hard", Value: s.HardSolved, Color: "#ff375f"},
	}
}

// RankingLabel formats the global ranking, or "N/A" when unknown
func (s *CodingStats) RankingLabel() string {
	if s == nil || s.Ranking <= 0 {
		return "N/A"
	}
	return "#" + groupThousands(s.Ranking)
}

func groupThousands(n int) string {
	digits := []byte{}
	for i := 0; n > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, ',')
		}
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
