package reference

// Default valuation parameters, used whenever a caller leaves a knob unset
// and no estimate can be derived from the data.
const (
	DefaultDiscountRate        = 0.09
	DefaultMarginOfSafety      = 0.25
	DefaultDeclineRate         = 0.05
	DefaultStage1Years         = 10
	DefaultStage2Years         = 10
	DefaultGrowthRate          = 0.05
	DefaultTerminalGrowthRate  = 0.02
	DefaultAverageMarketReturn = 0.09
)
