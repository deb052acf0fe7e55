package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gradefresh/quality-api/internal/api/metrics"
	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

// VerdictCache abstracts the verdict store (Redis). Get returns (nil, nil) on a
// miss. Cache failures are never fatal to a classification request.
type VerdictCache interface {
	Get(ctx context.Context, key string) (*domain.Verdict, error)
	Set(ctx context.Context, key string, verdict *domain.Verdict) error
}

// GradingService maps raw model output onto typed quality verdicts.
type GradingService struct {
	model ports.Classifier
	cache VerdictCache
	log   zerolog.Logger
}

// NewGradingService returns a GradingService. cache may be nil, in which case
// every request hits the model.
func NewGradingService(model ports.Classifier, cache VerdictCache, log zerolog.Logger) *GradingService {
	return &GradingService{model: model, cache: cache, log: log}
}

// Classify runs one image through the model and grades the result.
func (s *GradingService) Classify(ctx context.Context, filename string, data []byte) (*domain.Verdict, error) {
	if !s.model.Ready() {
		return nil, domain.ErrModelNotReady
	}
	if !isImage(data) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAnImage, filename)
	}

	key := imageKey(data)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("verdict cache lookup failed, classifying anyway")
		} else if cached != nil {
			metrics.VerdictCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.VerdictCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	probs, err := s.model.Predict(ctx, data)
	if err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("model_error").Inc()
		return nil, fmt.Errorf("classify %s: %w", filename, err)
	}
	if len(probs) == 0 {
		metrics.PredictionErrorsTotal.WithLabelValues("empty_output").Inc()
		return nil, fmt.Errorf("classify %s: model returned empty output", filename)
	}

	verdict := s.grade(probs)
	metrics.PredictionDuration.WithLabelValues(string(verdict.Status)).Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.WithLabelValues(string(verdict.Status)).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, verdict); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache verdict")
		}
	}

	s.log.Info().
		Str("label", verdict.Label).
		Float64("confidence", verdict.Confidence).
		Str("status", string(verdict.Status)).
		Msg("image classified")

	return verdict, nil
}

// ClassifyBatch classifies up to ports.MaxBatchSize images. A failing item is
// reported in its result slot without aborting the rest of the batch; an
// unready model fails the whole request, same as the single-image path.
func (s *GradingService) ClassifyBatch(ctx context.Context, items []ports.BatchItem) ([]ports.BatchItemResult, error) {
	if !s.model.Ready() {
		return nil, domain.ErrModelNotReady
	}
	if len(items) > ports.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d files, max %d", domain.ErrBatchTooLarge, len(items), ports.MaxBatchSize)
	}

	results := make([]ports.BatchItemResult, len(items))
	for i, item := range items {
		results[i].Filename = item.Filename
		verdict, err := s.Classify(ctx, item.Filename, item.Data)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		results[i].Verdict = verdict
	}
	return results, nil
}

// Classes returns the model's class labels.
func (s *GradingService) Classes() ([]string, error) {
	if !s.model.Ready() {
		return nil, domain.ErrModelNotReady
	}
	return s.model.Labels(), nil
}

// ModelInfo returns the model metadata fetched at warm-up.
func (s *GradingService) ModelInfo() (*ports.ModelInfo, error) {
	if !s.model.Ready() {
		return nil, domain.ErrModelNotReady
	}
	info := s.model.Info()
	return &info, nil
}

// grade converts a probability vector into a verdict: argmax for the predicted
// class, label lookup with a Class_<index> fallback for unmapped indices, and
// substring-priority grading of the label.
func (s *GradingService) grade(probs []float64) *domain.Verdict {
	labels := s.model.Labels()

	top := 0
	for i, p := range probs {
		if p > probs[top] {
			top = i
		}
	}

	label := syntheticLabel(top)
	if top < len(labels) && labels[top] != "" {
		label = labels[top]
	} else {
		s.log.Warn().Int("class_index", top).Msg("predicted class has no label mapping")
	}

	status, description, exportable := domain.GradeLabel(label)

	probabilities := make(map[string]float64, len(probs))
	for i, p := range probs {
		name := syntheticLabel(i)
		if i < len(labels) && labels[i] != "" {
			name = labels[i]
		}
		probabilities[name] = p
	}

	return &domain.Verdict{
		Label:          label,
		Confidence:     probs[top],
		Status:         status,
		Description:    description,
		ExportSuitable: exportable,
		Probabilities:  probabilities,
	}
}

func syntheticLabel(index int) string {
	return fmt.Sprintf("Class_%d", index)
}

// isImage sniffs the payload's content type. Only image/* payloads are accepted.
func isImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	ct := http.DetectContentType(data)
	return len(ct) > 6 && ct[:6] == "image/"
}

func imageKey(data []byte) string {
	sum := sha256.Sum256(data)
	return "verdict:" + hex.EncodeToString(sum[:])
}
