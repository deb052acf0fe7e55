package domain

import "strings"

// QualityStatus is the closed set of quality tags derived from a class label.
type QualityStatus string

const (
	StatusExcellent QualityStatus = "excellent"
	StatusGood      QualityStatus = "good"
	StatusPoor      QualityStatus = "poor"
	StatusUnknown   QualityStatus = "unknown"
)

// Verdict is the structured result of classifying a single image.
// It is derived per request and never persisted by the core.
type Verdict struct {
	Label          string             `json:"label"`
	Confidence     float64            `json:"confidence"`
	Status         QualityStatus      `json:"status"`
	Description    string             `json:"description"`
	ExportSuitable bool               `json:"export_suitable"`
	Probabilities  map[string]float64 `json:"probabilities"`
}

// GradeLabel maps a predicted class label to a quality status, description and
// export flag. Matching is case-insensitive substring, first rule wins:
// "fresh" is deliberately checked before "ripe" so labels like "Fresh_Ripe_Mango"
// grade as excellent.
func GradeLabel(label string) (QualityStatus, string, bool) {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "fresh"):
		return StatusExcellent, "Produce is fresh and meets export quality standards.", true
	case strings.Contains(l, "rotten"):
		return StatusPoor, "Produce shows signs of rot and is not suitable for export.", false
	case strings.Contains(l, "ripe"):
		return StatusGood, "Produce is ripe and suitable for export or local sale.", true
	default:
		return StatusUnknown, "Quality could not be determined from the predicted class.", false
	}
}
