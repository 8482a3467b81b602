package models

// NotFound is the sentinel the scoring model returns for contact fields it
// could not locate in the resume.
const NotFound = "Not Found"

// UploadedFile carries one resume exactly as the operator submitted it. The
// raw bytes live only for the duration of the evaluation run.
type UploadedFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

type CandidateAnalysis struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Location         string   `json:"location"`
	Score            int      `json:"score"`
	Justification    string   `json:"justification"`
	MatchingKeywords []string `json:"matching_keywords"`
}

// ScreeningResult is one successfully scored resume. Files that fail
// extraction or scoring never become a ScreeningResult.
type ScreeningResult struct {
	Filename string            `json:"filename"`
	Analysis CandidateAnalysis `json:"analysis"`
}

// FilterCriteria comes from the current view controls. Location is a
// case-insensitive substring match and only applies when non-empty; the score
// threshold always applies.
type FilterCriteria struct {
	Location string
	MinScore int
}

// DefaultMinScore is the score threshold the view starts with.
const DefaultMinScore = 70
