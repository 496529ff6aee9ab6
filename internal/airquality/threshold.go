package airquality

import "fmt"

// ThresholdResult is what an alerting component compares against.
type ThresholdResult struct {
	Exceeded  bool   `json:"exceeded"`
	Index     int    `json:"index"`
	Threshold int    `json:"threshold"`
	Level     string `json:"level"`
	Source    Source `json:"source"`
}

// EvaluateThreshold reports whether the reading's index is above threshold.
func EvaluateThreshold(r Reading, threshold int) (ThresholdResult, error) {
	if threshold < MinIndex || threshold > MaxIndex {
		return ThresholdResult{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
	}
	return ThresholdResult{
		Exceeded:  r.Index > threshold,
		Index:     r.Index,
		Threshold: threshold,
		Level:     LevelFor(r.Index).Name,
		Source:    r.Source,
	}, nil
}
