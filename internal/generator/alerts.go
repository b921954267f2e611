package generator

import (
	"time"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

// MarketDataSnapshots returns count snapshots.
func (g *Generator) MarketDataSnapshots(count int) []models.MarketDataSnapshot {
	return random.Times(count, func() models.MarketDataSnapshot {
		return models.MarketDataSnapshot{
			Price:  g.num(50, 200),
			Volume: g.num(1000, 1000000),
			Indicators: models.SnapshotIndicators{
				MovingAverage: g.num(50, 200),
				RSI:           g.num(0, 100),
				MACD:          g.num(-10, 10),
			},
		}
	})
}

// TriggerConditions returns count trigger conditions.
func (g *Generator) TriggerConditions(count int) []models.TriggerCondition {
	return random.Times(count, func() models.TriggerCondition {
		return models.TriggerCondition{
			RSIThreshold: g.num(30, 70),
			PriceChange:  g.num(-10, 10),
			VolumeSpike:  g.num(1.5, 5),
		}
	})
}

// TradingAlerts returns count alerts. With probability 0.8 an alert is sent
// within ten minutes of being generated; otherwise sent_at stays nil.
func (g *Generator) TradingAlerts(count int) []models.TradingAlert {
	window := int(models.AlertDeliveryWindow / time.Minute)

	return random.Times(count, func() models.TradingAlert {
		generatedAt := g.sinceEpoch()

		var sentAt *time.Time
		if g.rnd.Chance(sentProbability) {
			at := generatedAt.Add(time.Duration(g.rnd.IntN(window)) * time.Minute)
			sentAt = &at
		}

		triggers := g.rnd.IntRange(1, 3)

		return models.TradingAlert{
			ID:                 g.rnd.ID(random.DefaultIDLength),
			UserID:             g.userID(),
			StrategyID:         g.rnd.ID(random.DefaultIDLength),
			Instrument:         random.PickOne(g.rnd, models.Instruments),
			AlertType:          random.PickOne(g.rnd, models.AlertTypes),
			Message:            random.PickOne(g.rnd, models.AlertMessages),
			ConfidenceScore:    g.whole(50, 100),
			GeneratedAt:        generatedAt,
			SentAt:             sentAt,
			IsRead:             g.rnd.Chance(readProbability),
			MarketDataSnapshot: single(g.MarketDataSnapshots),
			TriggerConditions:  g.TriggerConditions(triggers),
		}
	})
}
