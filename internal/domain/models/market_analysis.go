package models

import "time"

// LiquidityMetric captures spread, depth and volume for one analysis.
type LiquidityMetric struct {
	BidAskSpread  float64 `bson:"bid_ask_spread" json:"bid_ask_spread" validate:"gte=0.01,lte=1,decimals=4"`
	MarketDepth   float64 `bson:"market_depth" json:"market_depth" validate:"gte=1000,lte=100000,decimals=2"`
	TradingVolume float64 `bson:"trading_volume" json:"trading_volume" validate:"gte=10000,lte=1000000,decimals=2"`
}

// TechnicalSignal carries a trend reading plus 1 to 3 support and resistance levels.
type TechnicalSignal struct {
	TrendDirection   string    `bson:"trend_direction" json:"trend_direction" validate:"catalog=directions"`
	Momentum         string    `bson:"momentum" json:"momentum" validate:"catalog=momentums"`
	SupportLevels    []float64 `bson:"support_levels" json:"support_levels" validate:"min=1,max=3,dive,gte=50,lte=150,decimals=2"`
	ResistanceLevels []float64 `bson:"resistance_levels" json:"resistance_levels" validate:"min=1,max=3,dive,gte=150,lte=250,decimals=2"`
}

// VolatilityAnalysis is the single volatility reading embedded in an analysis.
type VolatilityAnalysis struct {
	CurrentVolatility    float64 `bson:"current_volatility" json:"current_volatility" validate:"gte=0,lte=100,decimals=4"`
	VolatilityPercentile float64 `bson:"volatility_percentile" json:"volatility_percentile" validate:"gte=0,lte=1,decimals=4"`
	VolatilityRegime     string  `bson:"volatility_regime" json:"volatility_regime" validate:"catalog=volatility_regimes"`
}

// Prediction is a directional forecast with its confidence and horizon.
type Prediction struct {
	PriceDirection  string  `bson:"price_direction" json:"price_direction" validate:"catalog=directions"`
	ConfidenceLevel float64 `bson:"confidence_level" json:"confidence_level" validate:"gte=0,lte=1,decimals=4"`
	TimeHorizon     string  `bson:"time_horizon" json:"time_horizon" validate:"catalog=time_horizons"`
}

// MarketAnalysis is the aggregate root of the market_analysis collection. It
// embeds 1 to 3 technical signals, 1 to 5 predictions and one volatility and
// liquidity reading each.
type MarketAnalysis struct {
	ID                 string             `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	Instrument         string             `bson:"instrument" json:"instrument" validate:"catalog=instruments"`
	AnalysisDate       time.Time          `bson:"analysis_date" json:"analysis_date" validate:"required"`
	Timeframe          string             `bson:"timeframe" json:"timeframe" validate:"catalog=timeframes"`
	TechnicalSignals   []TechnicalSignal  `bson:"technical_signals" json:"technical_signals" validate:"min=1,max=3,dive"`
	VolatilityAnalysis VolatilityAnalysis `bson:"volatility_analysis" json:"volatility_analysis"`
	LiquidityMetrics   LiquidityMetric    `bson:"liquidity_metrics" json:"liquidity_metrics"`
	Predictions        []Prediction       `bson:"predictions" json:"predictions" validate:"min=1,max=5,dive"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (m MarketAnalysis) DocumentID() string { return m.ID }
