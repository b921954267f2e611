package models

// Closed value sets sampled by the generators and enforced by the
// `catalog=<name>` validation tag.
var (
	Instruments = []string{
		"EUR/USD", "USD/JPY", "GBP/USD", "AUD/USD", "USD/CAD",
		"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA",
		"BTC/USD", "ETH/USD", "SOL/USD", "ADA/USD",
	}
	Timeframes       = []string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w"}
	Sources          = []string{"NYSE", "NASDAQ", "LSE", "BINANCE", "COINBASE", "INTERNAL_MODEL", "BLOOMBERG"}
	Categories       = []string{"TECHNICAL", "FUNDAMENTAL", "NEWS", "SENTIMENT", "MARKET_STRUCTURE"}
	Priorities       = []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}
	Statuses         = []string{"OPEN", "IN_PROGRESS", "RESOLVED", "CLOSED", "PENDING"}
	RequestTypes     = []string{"QUESTION", "PROBLEM", "REQUEST", "COMPLAINT", "FEEDBACK"}
	Departments      = []string{"SUPPORT", "TRADING", "ANALYTICS", "DEVELOPMENT", "OPERATIONS"}
	MarketConditions = []string{"BULLISH", "BEARISH", "SIDEWAYS", "VOLATILE", "TRENDING", "RANGING"}

	VolatilityRegimes = []string{"low", "medium", "high"}
	TrendDirections   = []string{"uptrend", "downtrend", "sideways"}
	LiquidityLevels   = []string{"high", "medium", "low"}
	Directions        = []string{"up", "down", "neutral"}
	Momentums         = []string{"strong", "weak", "neutral"}
	TimeHorizons      = []string{"short-term", "medium-term", "long-term"}
	AgentStatuses     = []string{"active", "inactive", "training"}
	ResponseTypes     = []string{"text", "image", "file"}
	AlertTypes        = []string{"price", "volume", "technical", "pattern", "news"}

	FirstNames = []string{"Alex", "Jamie", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Quinn", "Sam", "Cameron"}
	LastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Rodriguez", "Wilson"}

	ResponseMessages = []string{
		"Thanks for contacting us. We are reviewing your case and will get back to you shortly.",
		"We have identified the problem and are working on a fix.",
		"The issue has been resolved. Please try again and let us know if it persists.",
		"To resolve this we need you to verify your account by following the steps we emailed you.",
		"Your request has been escalated to our specialised technical support team.",
		"The requested feature is on our roadmap and will ship in the coming months.",
		"We have added the funds to your account. You can confirm by signing in.",
		"Please restart the application and clear its cache to resolve this issue.",
		"Internal note: the user requires additional verification before we proceed.",
		"I have updated your account with the required permissions. You should now have access.",
	}

	AlertMessages = []string{
		"Price above resistance threshold",
		"Unusually high volume detected",
		"Bullish trend signal confirmed",
		"RSI in oversold zone",
		"Doji candle pattern detected",
		"Moving average crossover detected",
		"RSI-price divergence identified",
		"Trend channel breakout",
		"Key support level reached",
		"Volatility increasing significantly",
	}
)

// Ticket pairs a support request subject with its matching description.
type Ticket struct {
	Subject     string
	Description string
}

// Tickets are sampled as whole rows so subject and description stay coherent.
var Tickets = []Ticket{
	{"Platform problem", "I am having trouble accessing the platform. An error appears right after signing in."},
	{"Order execution error", "When I try to place a buy order the system shows an execution error."},
	{"Commission inquiry", "I would like detailed information about the commissions applied to my recent trades."},
	{"Connection problem", "I keep getting intermittent connection drops during market hours."},
	{"Information request", "I need information on how to configure price alerts for specific instruments."},
	{"Deposit problem", "A deposit I made two days ago is still not reflected in my account."},
	{"Withdrawal inquiry", "I would like to know the estimated processing time for my withdrawal request."},
	{"Chart rendering bug", "Candlestick charts do not load correctly for some currency pairs."},
	{"Feature request", "I would like to suggest a new feature: custom alerts based on indicators."},
	{"Authentication problem", "I cannot sign in to my account even though my credentials are correct."},
}

// AttachmentKind pairs a file name with its content type.
type AttachmentKind struct {
	Filename    string
	ContentType string
}

// AttachmentKinds is the closed set of files a user may attach.
var AttachmentKinds = []AttachmentKind{
	{"screenshot.png", "image/png"},
	{"error_log.txt", "text/plain"},
	{"account_statement.pdf", "application/pdf"},
	{"trade_history.csv", "text/csv"},
	{"platform_settings.json", "application/json"},
}

// Catalogs maps the names used in `catalog=` validation tags to their sets.
var Catalogs = map[string][]string{
	"instruments":        Instruments,
	"timeframes":         Timeframes,
	"sources":            Sources,
	"categories":         Categories,
	"priorities":         Priorities,
	"statuses":           Statuses,
	"request_types":      RequestTypes,
	"departments":        Departments,
	"market_conditions":  MarketConditions,
	"volatility_regimes": VolatilityRegimes,
	"trend_directions":   TrendDirections,
	"liquidity_levels":   LiquidityLevels,
	"directions":         Directions,
	"momentums":          Momentums,
	"time_horizons":      TimeHorizons,
	"agent_statuses":     AgentStatuses,
	"response_types":     ResponseTypes,
	"alert_types":        AlertTypes,
	"response_messages":  ResponseMessages,
	"alert_messages":     AlertMessages,
	"first_names":        FirstNames,
	"last_names":         LastNames,
}
