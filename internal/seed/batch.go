package seed

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/generator"
)

// batch is the generated content of one collection.
type batch struct {
	collection string
	docs       []any
	normalize  func() ([]any, error)
}

// persisted carries an aggregate root with its identifier rewritten into a
// native ObjectID. The root's own ID field is excluded from encoding.
type persisted[T any] struct {
	ID       primitive.ObjectID `bson:"_id"`
	Document T                  `bson:",inline"`
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// plain builds a batch whose documents are stored as generated and receive
// store-assigned identifiers.
func plain[T any](collection string, items []T) batch {
	docs := toAny(items)
	return batch{
		collection: collection,
		docs:       docs,
		normalize:  func() ([]any, error) { return docs, nil },
	}
}

// rooted builds a batch whose 24-hex identifiers become ObjectIDs on normalize.
func rooted[T models.Rooted](collection string, items []T) batch {
	return batch{
		collection: collection,
		docs:       toAny(items),
		normalize: func() ([]any, error) {
			out := make([]any, len(items))
			for i, it := range items {
				oid, err := primitive.ObjectIDFromHex(it.DocumentID())
				if err != nil {
					return nil, fmt.Errorf("document %d: id %q: %w", i, it.DocumentID(), err)
				}
				out[i] = persisted[T]{ID: oid, Document: it}
			}
			return out, nil
		},
	}
}

// generateBatches produces count documents for every collection, in the
// order of models.Collections.
func generateBatches(g *generator.Generator, count int) []batch {
	return []batch{
		plain(models.CollectionPrices, g.Prices(count)),
		plain(models.CollectionIndicators, g.Indicators(count)),
		rooted(models.CollectionMarketData, g.MarketData(count)),
		plain(models.CollectionLiquidityMetrics, g.LiquidityMetrics(count)),
		rooted(models.CollectionMarketAnalysis, g.MarketAnalyses(count)),
		plain(models.CollectionPredictions, g.Predictions(count)),
		plain(models.CollectionTechnicalSignals, g.TechnicalSignals(count)),
		plain(models.CollectionVolatilityAnalysis, g.VolatilityAnalyses(count)),
		rooted(models.CollectionStrategyPerformance, g.StrategyPerformance(count)),
		plain(models.CollectionRiskMetrics, g.RiskMetrics(count)),
		plain(models.CollectionExecutionQuality, g.ExecutionQuality(count)),
		rooted(models.CollectionAgents, g.Agents(count)),
		plain(models.CollectionAgentPerformance, g.PerformanceMetrics(count)),
		rooted(models.CollectionSupportRequests, g.SupportRequests(count)),
		plain(models.CollectionSupportResponses, g.Responses(count)),
		plain(models.CollectionSlaMetrics, g.SlaMetrics(count)),
		plain(models.CollectionUserAttachments, g.UserAttachments(count)),
		rooted(models.CollectionTradingAlerts, g.TradingAlerts(count)),
		plain(models.CollectionMarketDataSnapshots, g.MarketDataSnapshots(count)),
		plain(models.CollectionTriggerConditions, g.TriggerConditions(count)),
	}
}
