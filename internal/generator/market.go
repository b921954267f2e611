package generator

import (
	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

// Prices returns count price samples with every field in [50, 200].
func (g *Generator) Prices(count int) []models.Price {
	return random.Times(count, func() models.Price {
		return models.Price{
			Open:  g.num(50, 200),
			High:  g.num(50, 200),
			Low:   g.num(50, 200),
			Close: g.num(50, 200),
			Bid:   g.num(50, 200),
			Ask:   g.num(50, 200),
		}
	})
}

// Indicators returns count indicator readings; ATR carries four decimals.
func (g *Generator) Indicators(count int) []models.Indicator {
	return random.Times(count, func() models.Indicator {
		return models.Indicator{
			SMA20:          g.num(100, 200),
			EMA12:          g.num(100, 200),
			EMA26:          g.num(100, 200),
			RSI:            g.num(0, 100),
			MACD:           g.num(-10, 10),
			BollingerUpper: g.num(150, 250),
			BollingerLower: g.num(50, 150),
			ATR:            g.rnd.Real(0, 10, 4),
		}
	})
}

func (g *Generator) marketCondition() models.MarketCondition {
	return models.MarketCondition{
		VolatilityRegime: random.PickOne(g.rnd, models.VolatilityRegimes),
		TrendDirection:   random.PickOne(g.rnd, models.TrendDirections),
		LiquidityLevel:   random.PickOne(g.rnd, models.LiquidityLevels),
	}
}

// MarketData returns count market data roots, each embedding 1-5 prices and
// 1-3 indicator readings.
func (g *Generator) MarketData(count int) []models.MarketData {
	return random.Times(count, func() models.MarketData {
		prices := g.rnd.IntRange(1, 5)
		indicators := g.rnd.IntRange(1, 3)

		return models.MarketData{
			ID:              g.rnd.ID(random.DefaultIDLength),
			Instrument:      random.PickOne(g.rnd, models.Instruments),
			Timestamp:       g.sinceEpoch(),
			Source:          random.PickOne(g.rnd, models.Sources),
			Volume:          g.num(1000, 10000000),
			Spread:          g.rnd.Real(0.01, 2, 4),
			TickCount:       g.whole(100, 10000),
			Prices:          g.Prices(prices),
			Indicators:      g.Indicators(indicators),
			MarketCondition: g.marketCondition(),
		}
	})
}
