package extractor

import (
	"time"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type RestaurantBatchEvent struct {
	Timestamp time.Time                   `json:"timestamp"`
	RunID     string                      `json:"run_id"`
	Category  models.Category             `json:"category"`
	Generated int                         `json:"generated"`
	Result    models.ReconciliationResult `json:"result"`
}

type ProductBatchEvent struct {
	Timestamp time.Time                   `json:"timestamp"`
	RunID     string                      `json:"run_id"`
	Generated int                         `json:"generated"`
	Result    models.ReconciliationResult `json:"result"`
}

type ExtractionRunEvent struct {
	Timestamp time.Time `json:"timestamp"`
	*Result
}
