package services

import (
	"sort"
	"strings"

	"hirelens/resume-screener/internal/models"
)

// ApplyFilter derives the display view from a ResultSet: location keeps a
// result only when the filter text is a case-insensitive substring of the
// analysis location (an empty filter matches everything), while the score
// threshold always applies. The view is sorted by score descending; the sort
// is stable so equal scores keep their upload order. The input slice is
// never mutated.
func ApplyFilter(results []models.ScreeningResult, criteria models.FilterCriteria) []models.ScreeningResult {
	location := strings.ToLower(strings.TrimSpace(criteria.Location))

	filtered := make([]models.ScreeningResult, 0, len(results))
	for _, result := range results {
		if location != "" && !strings.Contains(strings.ToLower(result.Analysis.Location), location) {
			continue
		}
		if result.Analysis.Score < criteria.MinScore {
			continue
		}
		filtered = append(filtered, result)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Analysis.Score > filtered[j].Analysis.Score
	})

	return filtered
}
