package models

import "time"

// Price is one OHLC + bid/ask sample. Every field lies in [50, 200].
type Price struct {
	Open  float64 `bson:"open" json:"open" validate:"gte=50,lte=200,decimals=2"`
	High  float64 `bson:"high" json:"high" validate:"gte=50,lte=200,decimals=2"`
	Low   float64 `bson:"low" json:"low" validate:"gte=50,lte=200,decimals=2"`
	Close float64 `bson:"close" json:"close" validate:"gte=50,lte=200,decimals=2"`
	Bid   float64 `bson:"bid" json:"bid" validate:"gte=50,lte=200,decimals=2"`
	Ask   float64 `bson:"ask" json:"ask" validate:"gte=50,lte=200,decimals=2"`
}

// Indicator holds a set of technical indicator readings.
type Indicator struct {
	SMA20          float64 `bson:"sma_20" json:"sma_20" validate:"gte=100,lte=200,decimals=2"`
	EMA12          float64 `bson:"ema_12" json:"ema_12" validate:"gte=100,lte=200,decimals=2"`
	EMA26          float64 `bson:"ema_26" json:"ema_26" validate:"gte=100,lte=200,decimals=2"`
	RSI            float64 `bson:"rsi" json:"rsi" validate:"gte=0,lte=100,decimals=2"`
	MACD           float64 `bson:"macd" json:"macd" validate:"gte=-10,lte=10,decimals=2"`
	BollingerUpper float64 `bson:"bollinger_upper" json:"bollinger_upper" validate:"gte=150,lte=250,decimals=2"`
	BollingerLower float64 `bson:"bollinger_lower" json:"bollinger_lower" validate:"gte=50,lte=150,decimals=2"`
	ATR            float64 `bson:"atr" json:"atr" validate:"gte=0,lte=10,decimals=4"`
}

// MarketCondition classifies the regime a market data sample was taken in.
type MarketCondition struct {
	VolatilityRegime string `bson:"volatility_regime" json:"volatility_regime" validate:"catalog=volatility_regimes"`
	TrendDirection   string `bson:"trend_direction" json:"trend_direction" validate:"catalog=trend_directions"`
	LiquidityLevel   string `bson:"liquidity_level" json:"liquidity_level" validate:"catalog=liquidity_levels"`
}

// MarketData is the aggregate root of the market_data collection.
//
// Fields:
//   - ID: generator-produced 24-hex identifier, persisted as an ObjectID.
//   - Prices: 1 to 5 embedded price samples.
//   - Indicators: 1 to 3 embedded indicator readings.
//   - MarketCondition: a single embedded regime classification.
type MarketData struct {
	ID              string          `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	Instrument      string          `bson:"instrument" json:"instrument" validate:"catalog=instruments"`
	Timestamp       time.Time       `bson:"timestamp" json:"timestamp" validate:"required"`
	Source          string          `bson:"source" json:"source" validate:"catalog=sources"`
	Volume          float64         `bson:"volume" json:"volume" validate:"gte=1000,lte=10000000,decimals=2"`
	Spread          float64         `bson:"spread" json:"spread" validate:"gte=0.01,lte=2,decimals=4"`
	TickCount       int             `bson:"tick_count" json:"tick_count" validate:"gte=100,lte=10000"`
	Prices          []Price         `bson:"prices" json:"prices" validate:"min=1,max=5,dive"`
	Indicators      []Indicator     `bson:"indicators" json:"indicators" validate:"min=1,max=3,dive"`
	MarketCondition MarketCondition `bson:"market_condition" json:"market_condition"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (m MarketData) DocumentID() string { return m.ID }
