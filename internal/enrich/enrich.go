// Package enrich defines the contract for the external review-analysis step.
// The analysis itself (sentiment, issue extraction) runs elsewhere; this
// module only carries its fixed-shape result downstream.
package enrich

import "context"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Annotation is the opaque enrichment attached to one review.
type Annotation struct {
	Sentiment              string `json:"sentiment"`
	IssueDelivery          bool   `json:"issue_delivery"`
	IssueDeliveryReason    string `json:"issue_delivery_reason"`
	IssueFoodQuality       bool   `json:"issue_food_quality"`
	IssueFoodQualityReason string `json:"issue_food_quality_reason"`
	IssuePricing           bool   `json:"issue_pricing"`
	IssuePricingReason     string `json:"issue_pricing_reason"`
	IssuePortionSize       bool   `json:"issue_portion_size"`
	IssuePortionSizeReason string `json:"issue_portion_size_reason"`
}

// Valid mirrors the downstream drop-row constraint: an annotation with an
// unknown sentiment is discarded, never passed on.
func (a Annotation) Valid() bool {
	switch a.Sentiment {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Analyzer is the pluggable capability reviewText -> annotation.
type Analyzer interface {
	Analyze(ctx context.Context, reviewText string) (Annotation, error)
}

// Filter drops invalid annotations from a per-review map, returning a new map.
func Filter(annotations map[string]Annotation) map[string]Annotation {
	if annotations == nil {
		return nil
	}
	kept := make(map[string]Annotation, len(annotations))
	for reviewID, a := range annotations {
		if a.Valid() {
			kept[reviewID] = a
		}
	}
	return kept
}
