package reference

// World Bank indicator codes for the macro context.
const (
	IndicatorRealGDPGrowth     = "NY.GDP.MKTP.KD.ZG" // GDP growth (annual %)
	IndicatorInflationCPI      = "FP.CPI.TOTL.ZG"    // Inflation, consumer prices (annual %)
	IndicatorLendingRate       = "FR.INR.LEND"       // Lending interest rate (%)
	IndicatorFXPerUSD          = "PA.NUS.FCRF"       // Official exchange rate (LCU per USD)
	IndicatorCurrentAccountGDP = "BN.CAB.XOKA.GD.ZS" // Current account balance (% of GDP)
	IndicatorGovDebtGDP        = "GC.DOD.TOTL.GD.ZS" // Central government debt, total (% of GDP)
	IndicatorFiscalBalanceGDP  = "GC.NLD.TOTL.GD.ZS" // Net lending(+)/borrowing(-), % of GDP
)

// WorldBankIndex maps the macro indicator aliases onto their codes.
var WorldBankIndex = map[string]string{
	"real_gdp_growth":     IndicatorRealGDPGrowth,
	"inflation_cpi":       IndicatorInflationCPI,
	"lending_rate":        IndicatorLendingRate,
	"fx_lcu_per_usd":      IndicatorFXPerUSD,
	"current_account_gdp": IndicatorCurrentAccountGDP,
	"gov_debt_gdp":        IndicatorGovDebtGDP,
	"fiscal_balance_gdp":  IndicatorFiscalBalanceGDP,
}
