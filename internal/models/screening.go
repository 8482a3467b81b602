package models

import "github.com/google/uuid"

type FileStatus string

const (
	FileProcessed FileStatus = "processed"
	FileSkipped   FileStatus = "skipped"
)

type FileStage string

const (
	StageExtraction FileStage = "extraction"
	StageScoring    FileStage = "scoring"
)

// FileReport records what happened to a single uploaded file during an
// evaluation run, so a failed file is surfaced with its filename instead of
// silently disappearing.
type FileReport struct {
	Filename string     `json:"filename"`
	Status   FileStatus `json:"status"`
	Stage    FileStage  `json:"stage,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// RunReport summarizes one evaluation run over the whole batch.
type RunReport struct {
	ID        uuid.UUID    `json:"id"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Reports   []FileReport `json:"reports"`
}
