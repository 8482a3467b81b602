package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hirelens/resume-screener/internal/models"
	"hirelens/resume-screener/internal/repositories"
	"hirelens/resume-screener/internal/services"
)

type ScreeningHandler struct {
	screener    services.ScreenerService
	exporter    services.ExporterService
	results     repositories.ResultRepository
	maxFileSize int64
}

func NewScreeningHandler(
	screener services.ScreenerService,
	exporter services.ExporterService,
	results repositories.ResultRepository,
	maxFileSize int64,
) *ScreeningHandler {
	return &ScreeningHandler{
		screener:    screener,
		exporter:    exporter,
		results:     results,
		maxFileSize: maxFileSize,
	}
}

// HandleEvaluate handles POST /screenings: a multipart form with the job
// description and the resume batch. The batch is processed synchronously and
// the response carries the per-file run report.
func (h *ScreeningHandler) HandleEvaluate(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var jobDescription string
	if values := form.Value["job_description"]; len(values) > 0 {
		jobDescription = values[0]
	}

	fileHeaders := form.File["resumes"]
	files := make([]models.UploadedFile, 0, len(fileHeaders))

	for _, header := range fileHeaders {
		if header.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is too large. Max size: %d bytes", header.Filename, h.maxFileSize),
			})
		}

		src, err := header.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to open uploaded file %s", header.Filename),
			})
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read uploaded file %s", header.Filename),
			})
		}

		files = append(files, models.UploadedFile{
			Name:     header.Filename,
			MIMEType: header.Header.Get(fiber.HeaderContentType),
			Data:     data,
		})
	}

	run, err := h.screener.Evaluate(c.UserContext(), jobDescription, files)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "evaluation failed",
		})
	}

	return c.JSON(models.EvaluateResponse{
		Message: fmt.Sprintf("Evaluated %d of %d resume(s)", run.Succeeded, run.Total),
		Run:     *run,
	})
}

// HandleResults handles GET /screenings/results with the current filter
// controls as query parameters.
func (h *ScreeningHandler) HandleResults(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stored := h.results.Snapshot()
	view := services.ApplyFilter(stored, criteria)

	response := models.ResultsResponse{
		Count:   len(view),
		Results: view,
	}

	// Two distinct empty states: nothing evaluated yet vs filter excluded all.
	if len(view) == 0 {
		if len(stored) == 0 {
			response.Message = "no results yet"
		} else {
			response.Message = "no matches"
		}
	}

	return c.JSON(response)
}

// HandleExport handles GET /screenings/export: the filtered, sorted view at
// this moment, serialized to a spreadsheet download.
func (h *ScreeningHandler) HandleExport(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view := services.ApplyFilter(h.results.Snapshot(), criteria)

	data, err := h.exporter.Export(view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate export",
		})
	}

	c.Set(fiber.HeaderContentType, services.ExportMIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, services.ExportFilename))
	return c.Send(data)
}

func parseCriteria(c *fiber.Ctx) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Location: strings.TrimSpace(c.Query("location")),
		MinScore: models.DefaultMinScore,
	}

	if raw := c.Query("min_score"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("min_score must be an integer")
		}
		if minScore < 0 || minScore > 100 {
			return models.FilterCriteria{}, fmt.Errorf("min_score must be between 0 and 100")
		}
		criteria.MinScore = minScore
	}

	return criteria, nil
}
