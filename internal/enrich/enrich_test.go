package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotationValid(t *testing.T) {
	assert.True(t, Annotation{Sentiment: SentimentPositive}.Valid())
	assert.True(t, Annotation{Sentiment: SentimentNeutral}.Valid())
	assert.True(t, Annotation{Sentiment: SentimentNegative}.Valid())
	assert.False(t, Annotation{Sentiment: "ecstatic"}.Valid())
	assert.False(t, Annotation{}.Valid())
}

func TestFilter_DropsInvalidRows(t *testing.T) {
	annotations := map[string]Annotation{
		"REV-000001": {Sentiment: SentimentPositive},
		"REV-000002": {Sentiment: "unknown"},
		"REV-000003": {Sentiment: SentimentNegative, IssueDelivery: true, IssueDeliveryReason: "2 hour delay"},
	}

	kept := Filter(annotations)
	assert.Len(t, kept, 2)
	assert.Contains(t, kept, "REV-000001")
	assert.Contains(t, kept, "REV-000003")
	assert.NotContains(t, kept, "REV-000002")

	assert.Nil(t, Filter(nil))
}
