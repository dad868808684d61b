package textkit

// Bucket is a coarse register level derived from a 0-100 nuance score
type Bucket string

// buckets from most casual to most formal, 20 points each
const (
	BucketVeryCasual Bucket = "very_casual"
	BucketCasual     Bucket = "casual"
	BucketNeutral    Bucket = "neutral"
	BucketFormal     Bucket = "formal"
	BucketVeryFormal Bucket = "very_formal"
)

// NuanceBucket maps a nuance score onto its register bucket.
// Scores outside 0-100 clamp to the nearest bucket
func NuanceBucket(score float64) Bucket {
	switch {
	case score < 20:
		return BucketVeryCasual
	case score < 40:
		return BucketCasual
	case score < 60:
		return BucketNeutral
	case score < 80:
		return BucketFormal
	default:
		return BucketVeryFormal
	}
}

// Key returns the locale catalog key for the bucket's display label
func (b Bucket) Key() string { return "nuance." + string(b) }
