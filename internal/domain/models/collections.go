package models

// MongoDB collection names. These are the contract shared by the seeding
// pipeline and the read-side API.
const (
	CollectionPrices              = "prices"
	CollectionIndicators          = "indicators"
	CollectionMarketData          = "market_data"
	CollectionLiquidityMetrics    = "liquidity_metrics"
	CollectionMarketAnalysis      = "market_analysis"
	CollectionPredictions         = "predictions"
	CollectionTechnicalSignals    = "technical_signals"
	CollectionVolatilityAnalysis  = "volatility_analysis"
	CollectionStrategyPerformance = "strategy_performance"
	CollectionRiskMetrics         = "risk_metrics"
	CollectionExecutionQuality    = "execution_quality"
	CollectionAgents              = "agents"
	CollectionAgentPerformance    = "agent_performance_metrics"
	CollectionSupportRequests     = "support_requests"
	CollectionSupportResponses    = "support_responses"
	CollectionSlaMetrics          = "sla_metrics"
	CollectionUserAttachments     = "user_attachments"
	CollectionTradingAlerts       = "trading_alerts"
	CollectionMarketDataSnapshots = "market_data_snapshots"
	CollectionTriggerConditions   = "trigger_conditions"
)

// Collections lists every seeded collection in report order.
var Collections = []string{
	CollectionPrices,
	CollectionIndicators,
	CollectionMarketData,
	CollectionLiquidityMetrics,
	CollectionMarketAnalysis,
	CollectionPredictions,
	CollectionTechnicalSignals,
	CollectionVolatilityAnalysis,
	CollectionStrategyPerformance,
	CollectionRiskMetrics,
	CollectionExecutionQuality,
	CollectionAgents,
	CollectionAgentPerformance,
	CollectionSupportRequests,
	CollectionSupportResponses,
	CollectionSlaMetrics,
	CollectionUserAttachments,
	CollectionTradingAlerts,
	CollectionMarketDataSnapshots,
	CollectionTriggerConditions,
}

// IsCollection reports whether name is one of the seeded collections.
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// Rooted is implemented by aggregate roots whose generated string identifier
// is rewritten into a native ObjectID before insertion.
type Rooted interface {
	DocumentID() string
}
