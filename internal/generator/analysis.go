package generator

import (
	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

// LiquidityMetrics returns count liquidity readings.
func (g *Generator) LiquidityMetrics(count int) []models.LiquidityMetric {
	return random.Times(count, func() models.LiquidityMetric {
		return models.LiquidityMetric{
			BidAskSpread:  g.rnd.Real(0.01, 1, 4),
			MarketDepth:   g.num(1000, 100000),
			TradingVolume: g.num(10000, 1000000),
		}
	})
}

// Predictions returns count forecasts.
func (g *Generator) Predictions(count int) []models.Prediction {
	return random.Times(count, func() models.Prediction {
		return models.Prediction{
			PriceDirection:  random.PickOne(g.rnd, models.Directions),
			ConfidenceLevel: g.rnd.Real(0, 1, 4),
			TimeHorizon:     random.PickOne(g.rnd, models.TimeHorizons),
		}
	})
}

// TechnicalSignals returns count signals with 1-3 support levels in [50, 150]
// and 1-3 resistance levels in [150, 250].
func (g *Generator) TechnicalSignals(count int) []models.TechnicalSignal {
	return random.Times(count, func() models.TechnicalSignal {
		support := random.Times(g.rnd.IntRange(1, 3), func() float64 { return g.num(50, 150) })
		resistance := random.Times(g.rnd.IntRange(1, 3), func() float64 { return g.num(150, 250) })

		return models.TechnicalSignal{
			TrendDirection:   random.PickOne(g.rnd, models.Directions),
			Momentum:         random.PickOne(g.rnd, models.Momentums),
			SupportLevels:    support,
			ResistanceLevels: resistance,
		}
	})
}

// VolatilityAnalyses returns count volatility readings.
func (g *Generator) VolatilityAnalyses(count int) []models.VolatilityAnalysis {
	return random.Times(count, func() models.VolatilityAnalysis {
		return models.VolatilityAnalysis{
			CurrentVolatility:    g.rnd.Real(0, 100, 4),
			VolatilityPercentile: g.rnd.Real(0, 1, 4),
			VolatilityRegime:     random.PickOne(g.rnd, models.VolatilityRegimes),
		}
	})
}

// MarketAnalyses returns count analysis roots with 1-3 technical signals,
// 1-5 predictions and one volatility and liquidity reading each.
func (g *Generator) MarketAnalyses(count int) []models.MarketAnalysis {
	return random.Times(count, func() models.MarketAnalysis {
		signals := g.rnd.IntRange(1, 3)
		predictions := g.rnd.IntRange(1, 5)

		return models.MarketAnalysis{
			ID:                 g.rnd.ID(random.DefaultIDLength),
			Instrument:         random.PickOne(g.rnd, models.Instruments),
			AnalysisDate:       g.sinceEpoch(),
			Timeframe:          random.PickOne(g.rnd, models.Timeframes),
			TechnicalSignals:   g.TechnicalSignals(signals),
			VolatilityAnalysis: single(g.VolatilityAnalyses),
			LiquidityMetrics:   single(g.LiquidityMetrics),
			Predictions:        g.Predictions(predictions),
		}
	})
}
