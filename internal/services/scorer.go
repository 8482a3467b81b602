package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"hirelens/resume-screener/internal/models"
)

// ScorerService matches one resume against the job description and returns
// the parsed analysis. All-or-nothing: a malformed or incomplete response is
// a failure, never a partial record.
type ScorerService interface {
	Score(ctx context.Context, jobDescription, resumeText string) (*models.CandidateAnalysis, error)
}

type scorerService struct {
	gemini GeminiService
}

func NewScorerService(gemini GeminiService) ScorerService {
	return &scorerService{gemini: gemini}
}

// candidatePayload is the wire shape of the structured scoring response. The
// score arrives as a JSON number; the schema asks for an integer but the
// service is not trusted to honor that.
type candidatePayload struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Location         string   `json:"location"`
	Score            *float64 `json:"score"`
	Justification    string   `json:"justification"`
	MatchingKeywords []string `json:"matching_keywords"`
}

func (s *scorerService) Score(ctx context.Context, jobDescription, resumeText string) (*models.CandidateAnalysis, error) {
	raw, err := s.gemini.ScoreResume(ctx, jobDescription, resumeText)
	if err != nil {
		return nil, err
	}

	var payload candidatePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}

	if payload.Score == nil {
		return nil, fmt.Errorf("analysis response missing required field: score")
	}
	if strings.TrimSpace(payload.Justification) == "" {
		return nil, fmt.Errorf("analysis response missing required field: justification")
	}
	if len(payload.MatchingKeywords) == 0 {
		return nil, fmt.Errorf("analysis response missing required field: matching_keywords")
	}

	return &models.CandidateAnalysis{
		Name:             orNotFound(payload.Name),
		Email:            orNotFound(payload.Email),
		Phone:            orNotFound(payload.Phone),
		Location:         orNotFound(payload.Location),
		Score:            clampScore(*payload.Score),
		Justification:    strings.TrimSpace(payload.Justification),
		MatchingKeywords: payload.MatchingKeywords,
	}, nil
}

func orNotFound(value string) string {
	if strings.TrimSpace(value) == "" {
		return models.NotFound
	}
	return value
}

// clampScore rounds to the nearest integer and clamps into [0, 100] rather
// than rejecting out-of-range values the model occasionally produces.
func clampScore(raw float64) int {
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
