package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsValid(t *testing.T) {
	valid := []RequestStatus{
		RequestStatusPending, RequestStatusReviewing, RequestStatusQuoted,
		RequestStatusAccepted, RequestStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "статус %s должен быть известен", s)
	}

	assert.False(t, RequestStatus("archived").IsValid())
	assert.False(t, RequestStatus("").IsValid())
}

func TestQuoteStatusIsValid(t *testing.T) {
	valid := []QuoteStatus{
		QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted,
		QuoteStatusExpired, QuoteStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "статус %s должен быть известен", s)
	}

	assert.False(t, QuoteStatus("draft").IsValid())
	assert.False(t, QuoteStatus("").IsValid())
}
