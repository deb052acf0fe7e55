package ports

import "context"

// ModelInfo describes the external classification model, as reported by the
// model server during warm-up.
type ModelInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	InputWidth  int      `json:"input_width"`
	InputHeight int      `json:"input_height"`
	Classes     []string `json:"classes"`
}

// Classifier wraps the external pre-trained model. The handle is constructed
// once at startup; Ready reports whether warm-up has completed. Predict returns
// the raw per-class probability vector for one image.
type Classifier interface {
	Ready() bool
	Labels() []string
	Info() ModelInfo
	Predict(ctx context.Context, image []byte) ([]float64, error)
}
