package models

import "time"

// StrategyPerformance is a daily performance record for one strategy.
type StrategyPerformance struct {
	ID               string    `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	StrategyID       string    `bson:"strategy_id" json:"strategy_id" validate:"len=24,hexadecimal"`
	Date             time.Time `bson:"date" json:"date" validate:"required"`
	DailyPnL         float64   `bson:"daily_pnl" json:"daily_pnl" validate:"gte=-10000,lte=10000,decimals=2"`
	TradesCount      int       `bson:"trades_count" json:"trades_count" validate:"gte=1,lte=100"`
	WinRate          float64   `bson:"win_rate" json:"win_rate" validate:"gte=0,lte=1,decimals=4"`
	AvgTradeDuration float64   `bson:"avg_trade_duration" json:"avg_trade_duration" validate:"gte=30,lte=3600,decimals=2"`
	MaxDrawdown      float64   `bson:"max_drawdown" json:"max_drawdown" validate:"gte=0,lte=0.5,decimals=4"`
	SharpeRatio      float64   `bson:"sharpe_ratio" json:"sharpe_ratio" validate:"gte=-3,lte=5,decimals=4"`
	Volatility       float64   `bson:"volatility" json:"volatility" validate:"gte=0,lte=0.5,decimals=4"`
	MarketConditions []string  `bson:"market_conditions" json:"market_conditions" validate:"min=1,max=3,unique,dive,catalog=market_conditions"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (s StrategyPerformance) DocumentID() string { return s.ID }

// RiskMetrics holds value at risk, expected shortfall and beta.
type RiskMetrics struct {
	VaR95             float64 `bson:"var_95" json:"var_95" validate:"gte=0,lte=0.2,decimals=4"`
	ExpectedShortfall float64 `bson:"expected_shortfall" json:"expected_shortfall" validate:"gte=0,lte=0.3,decimals=4"`
	Beta              float64 `bson:"beta" json:"beta" validate:"gte=-2,lte=2,decimals=4"`
}

// ExecutionQuality measures slippage, latency in milliseconds and fill rate.
type ExecutionQuality struct {
	AvgSlippage      float64 `bson:"avg_slippage" json:"avg_slippage" validate:"gte=0,lte=10,decimals=4"`
	AvgExecutionTime float64 `bson:"avg_execution_time" json:"avg_execution_time" validate:"gte=10,lte=1000,decimals=2"`
	FillRate         float64 `bson:"fill_rate" json:"fill_rate" validate:"gte=0.5,lte=1,decimals=4"`
}
