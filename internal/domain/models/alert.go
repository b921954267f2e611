package models

import "time"

// SnapshotIndicators are the indicator readings captured with an alert.
type SnapshotIndicators struct {
	MovingAverage float64 `bson:"moving_average" json:"moving_average" validate:"gte=50,lte=200,decimals=2"`
	RSI           float64 `bson:"rsi" json:"rsi" validate:"gte=0,lte=100,decimals=2"`
	MACD          float64 `bson:"macd" json:"macd" validate:"gte=-10,lte=10,decimals=2"`
}

// MarketDataSnapshot records price, volume and indicators at alert time.
type MarketDataSnapshot struct {
	Price      float64            `bson:"price" json:"price" validate:"gte=50,lte=200,decimals=2"`
	Volume     float64            `bson:"volume" json:"volume" validate:"gte=1000,lte=1000000,decimals=2"`
	Indicators SnapshotIndicators `bson:"indicators" json:"indicators"`
}

// TriggerCondition is one threshold set that fires an alert.
type TriggerCondition struct {
	RSIThreshold float64 `bson:"rsi_threshold" json:"rsi_threshold" validate:"gte=30,lte=70,decimals=2"`
	PriceChange  float64 `bson:"price_change" json:"price_change" validate:"gte=-10,lte=10,decimals=2"`
	VolumeSpike  float64 `bson:"volume_spike" json:"volume_spike" validate:"gte=1.5,lte=5,decimals=2"`
}

// TradingAlert is a strategy signal delivered to a user.
//
// SentAt is nil for alerts that were never delivered and is persisted as null.
// When set it falls within AlertDeliveryWindow after GeneratedAt.
type TradingAlert struct {
	ID                 string             `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	UserID             string             `bson:"user_id" json:"user_id" validate:"pattern=user_id"`
	StrategyID         string             `bson:"strategy_id" json:"strategy_id" validate:"len=24,hexadecimal"`
	Instrument         string             `bson:"instrument" json:"instrument" validate:"catalog=instruments"`
	AlertType          string             `bson:"alert_type" json:"alert_type" validate:"catalog=alert_types"`
	Message            string             `bson:"message" json:"message" validate:"catalog=alert_messages"`
	ConfidenceScore    int                `bson:"confidence_score" json:"confidence_score" validate:"gte=50,lte=100"`
	GeneratedAt        time.Time          `bson:"generated_at" json:"generated_at" validate:"required"`
	SentAt             *time.Time         `bson:"sent_at" json:"sent_at"`
	IsRead             bool               `bson:"is_read" json:"is_read"`
	MarketDataSnapshot MarketDataSnapshot `bson:"market_data_snapshot" json:"market_data_snapshot"`
	TriggerConditions  []TriggerCondition `bson:"trigger_conditions" json:"trigger_conditions" validate:"min=1,max=3,dive"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (t TradingAlert) DocumentID() string { return t.ID }

// AlertDeliveryWindow bounds how long after generation an alert may be sent.
const AlertDeliveryWindow = 10 * time.Minute
