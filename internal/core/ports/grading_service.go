package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// MaxBatchSize is the hard cap on images per batch classification call.
const MaxBatchSize = 10

// BatchItem is one image submitted in a batch request.
type BatchItem struct {
	Filename string
	Data     []byte
}

// BatchItemResult reports the outcome for one batch item. Exactly one of
// Verdict and Error is set; a failed item never aborts the rest of the batch.
type BatchItemResult struct {
	Filename string          `json:"filename"`
	Verdict  *domain.Verdict `json:"verdict,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// GradingService turns raw model output into typed quality verdicts.
type GradingService interface {
	Classify(ctx context.Context, filename string, data []byte) (*domain.Verdict, error)
	ClassifyBatch(ctx context.Context, items []BatchItem) ([]BatchItemResult, error)
	Classes() ([]string, error)
	ModelInfo() (*ModelInfo, error)
}
