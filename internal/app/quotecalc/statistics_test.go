package quotecalc

import (
	"testing"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	rfqs := []ds.RFQ{
		{Status: ds.RequestStatusPending},
		{Status: ds.RequestStatusPending},
		{Status: ds.RequestStatusQuoted},
		{Status: ds.RequestStatusRejected},
	}
	clusters := []ds.ClusterRequest{
		{Status: ds.RequestStatusPending},
		{Status: ds.RequestStatusQuoted},
	}
	quotes := []ds.Quote{
		{Status: ds.QuoteStatusSent, Total: 1000},
		{Status: ds.QuoteStatusAccepted, Total: 2750},
		{Status: ds.QuoteStatusAccepted, Total: 1250},
		{Status: ds.QuoteStatusRejected, Total: 9999},
	}

	stats := ComputeStatistics(rfqs, clusters, quotes)

	assert.Equal(t, 4, stats.TotalRFQs)
	assert.Equal(t, 2, stats.PendingRFQs)
	assert.Equal(t, 1, stats.QuotedRFQs)
	assert.Equal(t, 2, stats.TotalClusters)
	assert.Equal(t, 1, stats.PendingClusters)
	assert.Equal(t, 1, stats.QuotedClusters)
	assert.Equal(t, 4, stats.TotalQuotes)
	assert.Equal(t, 1, stats.SentQuotes)
	assert.Equal(t, 2, stats.AcceptedQuotes)
	// выручка только по принятым
	assert.Equal(t, 4000.0, stats.TotalRevenue)
	assert.Equal(t, 50.0, stats.ConversionRate)
}

func TestComputeStatisticsNoQuotes(t *testing.T) {
	stats := ComputeStatistics(nil, nil, nil)

	assert.Equal(t, 0.0, stats.ConversionRate)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}
