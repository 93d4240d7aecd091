package quotecalc

import "backend/internal/app/ds"

// Статистика для вкладки Statistics админ-панели
type Statistics struct {
	TotalRFQs       int     `json:"total_rfqs"`
	PendingRFQs     int     `json:"pending_rfqs"`
	QuotedRFQs      int     `json:"quoted_rfqs"`
	TotalClusters   int     `json:"total_clusters"`
	PendingClusters int     `json:"pending_clusters"`
	QuotedClusters  int     `json:"quoted_clusters"`
	TotalQuotes     int     `json:"total_quotes"`
	SentQuotes      int     `json:"sent_quotes"`
	AcceptedQuotes  int     `json:"accepted_quotes"`
	TotalRevenue    float64 `json:"total_revenue"`
	ConversionRate  float64 `json:"conversion_rate"`
}

// ComputeStatistics - чистая агрегация по загруженным спискам.
// Выручка считается только по принятым предложениям, конверсия равна нулю
// при отсутствии предложений (без деления на ноль).
func ComputeStatistics(rfqs []ds.RFQ, clusters []ds.ClusterRequest, quotes []ds.Quote) Statistics {
	stats := Statistics{
		TotalRFQs:     len(rfqs),
		TotalClusters: len(clusters),
		TotalQuotes:   len(quotes),
	}

	for _, r := range rfqs {
		switch r.Status {
		case ds.RequestStatusPending:
			stats.PendingRFQs++
		case ds.RequestStatusQuoted:
			stats.QuotedRFQs++
		}
	}

	for _, c := range clusters {
		switch c.Status {
		case ds.RequestStatusPending:
			stats.PendingClusters++
		case ds.RequestStatusQuoted:
			stats.QuotedClusters++
		}
	}

	for _, q := range quotes {
		switch q.Status {
		case ds.QuoteStatusSent:
			stats.SentQuotes++
		case ds.QuoteStatusAccepted:
			stats.AcceptedQuotes++
			stats.TotalRevenue += q.Total
		}
	}

	if stats.TotalQuotes > 0 {
		stats.ConversionRate = float64(stats.AcceptedQuotes) / float64(stats.TotalQuotes) * 100
	}

	return stats
}
