package generator

import (
	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

// StrategyPerformance returns count daily records, each tagged with 1-3
// distinct market conditions.
func (g *Generator) StrategyPerformance(count int) []models.StrategyPerformance {
	return random.Times(count, func() models.StrategyPerformance {
		return models.StrategyPerformance{
			ID:               g.rnd.ID(random.DefaultIDLength),
			StrategyID:       g.rnd.ID(random.DefaultIDLength),
			Date:             g.sinceEpoch(),
			DailyPnL:         g.num(-10000, 10000),
			TradesCount:      g.whole(1, 100),
			WinRate:          g.rnd.Real(0, 1, 4),
			AvgTradeDuration: g.num(30, 3600),
			MaxDrawdown:      g.rnd.Real(0, 0.5, 4),
			SharpeRatio:      g.rnd.Real(-3, 5, 4),
			Volatility:       g.rnd.Real(0, 0.5, 4),
			MarketConditions: random.PickMany(g.rnd, models.MarketConditions, g.rnd.IntRange(1, 3)),
		}
	})
}

// RiskMetrics returns count risk readings.
func (g *Generator) RiskMetrics(count int) []models.RiskMetrics {
	return random.Times(count, func() models.RiskMetrics {
		return models.RiskMetrics{
			VaR95:             g.rnd.Real(0, 0.2, 4),
			ExpectedShortfall: g.rnd.Real(0, 0.3, 4),
			Beta:              g.rnd.Real(-2, 2, 4),
		}
	})
}

// ExecutionQuality returns count execution quality readings.
func (g *Generator) ExecutionQuality(count int) []models.ExecutionQuality {
	return random.Times(count, func() models.ExecutionQuality {
		return models.ExecutionQuality{
			AvgSlippage:      g.rnd.Real(0, 10, 4),
			AvgExecutionTime: g.num(10, 1000),
			FillRate:         g.rnd.Real(0.5, 1, 4),
		}
	})
}
