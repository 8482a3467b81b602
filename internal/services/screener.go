package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"hirelens/resume-screener/internal/models"
	"hirelens/resume-screener/internal/repositories"
)

// ScreenerService runs one evaluation over a batch of resumes. Files are
// processed strictly in upload order, one at a time; a file that fails
// extraction or scoring is reported and skipped without aborting the batch.
type ScreenerService interface {
	Evaluate(ctx context.Context, jobDescription string, files []models.UploadedFile) (*models.RunReport, error)
}

type screenerService struct {
	extractor ExtractorService
	scorer    ScorerService
	results   repositories.ResultRepository
}

func NewScreenerService(
	extractor ExtractorService,
	scorer ScorerService,
	results repositories.ResultRepository,
) ScreenerService {
	return &screenerService{
		extractor: extractor,
		scorer:    scorer,
		results:   results,
	}
}

// Evaluate implements ScreenerService. On success the stored ResultSet is
// replaced wholesale with this run's results; a rejected request leaves the
// previous ResultSet untouched.
func (s *screenerService) Evaluate(ctx context.Context, jobDescription string, files []models.UploadedFile) (*models.RunReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &models.ValidationError{Message: "job description is required"}
	}
	if len(files) == 0 {
		return nil, &models.ValidationError{Message: "at least one resume file is required"}
	}

	run := &models.RunReport{
		ID:      uuid.New(),
		Total:   len(files),
		Reports: make([]models.FileReport, 0, len(files)),
	}

	log.Printf("🔄 Evaluating %d resume(s), run %s\n", len(files), run.ID)

	screened := make([]models.ScreeningResult, 0, len(files))

	for _, file := range files {
		log.Printf("📄 Processing: %s\n", file.Name)

		text, err := s.extractor.Extract(ctx, file)
		if err != nil {
			log.Printf("⚠️  Could not extract text from %s: %v\n", file.Name, err)
			run.Reports = append(run.Reports, models.FileReport{
				Filename: file.Name,
				Status:   models.FileSkipped,
				Stage:    models.StageExtraction,
				Error:    err.Error(),
			})
			continue
		}

		analysis, err := s.scorer.Score(ctx, jobDescription, text)
		if err != nil {
			scoreErr := &models.ScoringError{Filename: file.Name, Cause: err}
			log.Printf("❌ %v\n", scoreErr)
			run.Reports = append(run.Reports, models.FileReport{
				Filename: file.Name,
				Status:   models.FileSkipped,
				Stage:    models.StageScoring,
				Error:    scoreErr.Error(),
			})
			continue
		}

		log.Printf("✅ Successfully evaluated: %s\n", file.Name)
		screened = append(screened, models.ScreeningResult{
			Filename: file.Name,
			Analysis: *analysis,
		})
		run.Reports = append(run.Reports, models.FileReport{
			Filename: file.Name,
			Status:   models.FileProcessed,
		})
	}

	run.Succeeded = len(screened)
	s.results.Replace(screened)

	log.Printf("✅ Run %s completed: %d/%d resume(s) evaluated\n", run.ID, run.Succeeded, run.Total)
	return run, nil
}
