package models

type EvaluateResponse struct {
	Message string    `json:"message"`
	Run     RunReport `json:"run"`
}

// ResultsResponse carries the filtered, score-sorted view. Message is set
// only for the two empty states: "no results yet" when nothing has been
// evaluated, "no matches" when the filter excludes everything.
type ResultsResponse struct {
	Count   int               `json:"count"`
	Message string            `json:"message,omitempty"`
	Results []ScreeningResult `json:"results"`
}
