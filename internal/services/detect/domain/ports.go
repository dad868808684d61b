package domain

import "context"

// DetectorPort runs language detection over a single text
type DetectorPort interface {
	Detect(ctx context.Context, in DetectInput) (Detection, error)
}
