package stock

import (
	"math"

	"equity_insight/pkg/core/series"
)

// computeBeneishM builds the eight-factor Beneish M-Score series. Each factor
// compares a reporting period against the prior one, so the oldest point has
// no basis and is forced missing.
func (s *Stock) computeBeneishM() series.Series {
	const name = "beneish_m"
	if s.TotalAssets.IsEmpty() {
		return series.Empty(name)
	}

	preReceivables := series.Shift(s.AccountsReceivable, -1)
	preRevenue := series.Shift(s.TotalRevenue, -1)
	dsri := series.Div("dsri",
		series.Div("dsr", s.AccountsReceivable, s.TotalRevenue),
		series.Div("pre_dsr", preReceivables, preRevenue),
	)

	grossMargin := series.Div("gross_margin", s.GrossProfit, s.TotalRevenue)
	gmi := series.Div("gmi", series.Shift(grossMargin, -1), grossMargin)

	hardAssets := series.Sub("hard_assets",
		series.Add("ca_plus_ppe", s.CurrentAssets, s.NetPPE),
		s.OtherProperties,
	)
	assetQuality := series.Linear("asset_quality", 1,
		series.Term{Coef: -1, S: series.Div("hard_asset_share", hardAssets, s.TotalAssets)},
	)
	aqi := series.Div("aqi", assetQuality, series.Shift(assetQuality, -1))

	sgi := series.Div("sgi", s.TotalRevenue, preRevenue)

	depreciableBase := series.Sub("depreciable_base",
		series.Add("dep_plus_ppe", s.Depreciation, s.NetPPE),
		s.OtherProperties,
	)
	depreciationRate := series.Div("depreciation_rate", s.Depreciation, depreciableBase)
	depi := series.Div("depi", depreciationRate, series.Shift(depreciationRate, -1))

	sgai := series.Div("sgai",
		series.Div("sga_share", s.SGA, s.TotalRevenue),
		series.Div("pre_sga_share", series.Shift(s.SGA, -1), preRevenue),
	)

	leverage := series.Div("leverage",
		series.Add("cl_plus_long_debt", s.CurrentLiabilities, s.LongDebt),
		s.TotalAssets,
	)
	lvgi := series.Div("lvgi", leverage, series.Shift(leverage, -1))

	tata := series.Div("tata",
		series.Sub("accruals", s.NetIncome, s.OperatingCashflow),
		s.TotalAssets,
	)

	m := series.Linear(name, -4.84,
		series.Term{Coef: 0.920, S: dsri},
		series.Term{Coef: 0.528, S: gmi},
		series.Term{Coef: 0.404, S: aqi},
		series.Term{Coef: 0.892, S: sgi},
		series.Term{Coef: 0.115, S: depi},
		series.Term{Coef: -0.172, S: sgai},
		series.Term{Coef: 4.679, S: tata},
		series.Term{Coef: -0.327, S: lvgi},
	)

	if m.IsEmpty() {
		return m
	}
	vals := m.Values()
	vals[len(vals)-1] = math.NaN()
	return series.New(name, m.Keys(), vals)
}

// computeAltmanZ builds the classic five-factor Altman Z-Score series.
func (s *Stock) computeAltmanZ() series.Series {
	const name = "altman_z"
	if s.TotalAssets.IsEmpty() {
		return series.Empty(name)
	}
	return series.Linear(name, 0,
		series.Term{Coef: 1.2, S: series.Div("x1", s.WorkingCapital, s.TotalAssets)},
		series.Term{Coef: 1.4, S: series.Div("x2", s.RetainedEarnings, s.TotalAssets)},
		series.Term{Coef: 3.3, S: series.Div("x3", s.EBIT, s.TotalAssets)},
		series.Term{Coef: 0.6, S: series.Div("x4", s.MarketCap, s.TotalLiabilities)},
		series.Term{Coef: 1.0, S: series.Div("x5", s.TotalRevenue, s.TotalAssets)},
	)
}
