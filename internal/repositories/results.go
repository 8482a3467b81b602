package repositories

import (
	"sync"

	"hirelens/resume-screener/internal/models"
)

// ResultRepository owns the ResultSet of the latest evaluation run. The set
// is replaced wholesale when a run completes and is read-only in between, so
// the lock only guards the swap against concurrent HTTP readers.
type ResultRepository interface {
	Replace(results []models.ScreeningResult)
	Snapshot() []models.ScreeningResult
	Size() int
}

type resultRepository struct {
	mu      sync.RWMutex
	results []models.ScreeningResult
}

func NewResultRepository() ResultRepository {
	return &resultRepository{}
}

// Replace installs the outcome of an evaluation run, in upload order. The
// slice is copied so the caller cannot mutate stored state afterwards.
func (r *resultRepository) Replace(results []models.ScreeningResult) {
	copied := make([]models.ScreeningResult, len(results))
	copy(copied, results)

	r.mu.Lock()
	r.results = copied
	r.mu.Unlock()
}

// Snapshot returns a copy of the current ResultSet in insertion order.
func (r *resultRepository) Snapshot() []models.ScreeningResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]models.ScreeningResult, len(r.results))
	copy(copied, r.results)
	return copied
}

func (r *resultRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}
