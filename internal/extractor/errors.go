package extractor

import "fmt"

// BatchError is a failure outside the per-record scope that aborted a run.
// The run result still carries the totals accumulated before it happened.
type BatchError struct {
	Stage    string
	Category string
	Err      error
}

func (e *BatchError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("extraction failed at %s (%s): %v", e.Stage, e.Category, e.Err)
	}
	return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

const (
	StageGenerateRestaurants = "generate restaurants"
	StageSaveRestaurants     = "save restaurants"
	StageGenerateProducts    = "generate products"
	StageSaveProducts        = "save products"
)
