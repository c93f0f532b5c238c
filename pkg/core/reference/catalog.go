package reference

// Criterion documents one rule-based check: what it looks at, how it is
// computed and what passing means. The evaluator attaches these records to
// its results so downstream report generation can explain each verdict.
type Criterion struct {
	FancyName   string
	Description string
	Input       string
	Method      string
	Criteria    string
}

// CriterionCategories fixes the evaluation category order.
var CriterionCategories = []string{"past", "present", "future", "health", "dividend", "macroeconomics"}

// CriterionOrder fixes the signal order within each category.
var CriterionOrder = map[string][]string{
	"past":           {"free_cashflow", "cash_and_equivalents", "earning_per_share", "book_value_per_share", "net_profit_margin", "return_on_equity"},
	"present":        {"enterprise_profits", "price_to_book", "peg_ratio", "return_on_equity", "price_earning", "net_profit_margin"},
	"future":         {"free_cashflow", "cash_and_equivalents", "earning_per_share", "book_value_per_share", "net_profit_margin", "return_on_equity"},
	"health":         {"current_ratio", "debt_to_equity", "beneish_m", "altman_z", "net_insider_purchases", "debt_coverage"},
	"dividend":       {"dividend", "dividend_yield", "dividend_streak", "dividend_volatile", "dividend_trend", "dividend_payout_ratio"},
	"macroeconomics": {"momentum", "inflation_stability", "real_interest_rate", "fx_trend", "external_balance", "fiscal_sustainability"},
}

// Criteria is the catalog of all 36 checks, keyed by category then signal.
var Criteria = map[string]map[string]Criterion{
	"past": {
		"free_cashflow": {
			FancyName:   "Free Cash Flow Stable & Increasing",
			Description: "Stable and increasing free cash flow strengthens a company's ability to self-fund operations and strategic initiatives. It reduces reliance on external financing, improving resilience across market cycles. A clear uptrend also supports dividend capacity, buybacks, or deleveraging without compromising growth. Investors view persistent growth in free cash flow as evidence of disciplined capital allocation and durable economics. Sustained improvement typically correlates with higher valuation certainty and lower downside risk.",
			Input:       "Annual free cashflow series",
			Method:      "Mann-Kendall trend test on the free cash flow series.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
		"cash_and_equivalents": {
			FancyName:   "Cash and Cash Equivalents Stable & Increasing",
			Description: "Rising cash and equivalents indicate building liquidity and strategic flexibility. A healthy cash buffer allows the firm to withstand shocks, negotiate from strength, and pursue value-accretive opportunities. Consistent accumulation suggests prudent working capital discipline and measured reinvestment. It can also lower financing costs by improving perceived credit quality. A clear upward trend is a supportive backdrop for future capital deployment.",
			Input:       "Annual cash and cash equivalents series",
			Method:      "Mann-Kendall trend test on the cash and cash equivalents series.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
		"earning_per_share": {
			FancyName:   "EPS Stable & Increasing",
			Description: "A persistent rise in earnings per share signals improving profitability per unit of ownership. It often reflects growth in revenues, margin expansion, and thoughtful capital allocation. Compounding EPS tends to compress perceived risk and can justify higher multiples. Stable trajectories are preferred over volatile spikes, as they are easier to underwrite. Sustained increases typically align with stronger competitive positioning and execution.",
			Input:       "Annual EPS (earning per share) series",
			Method:      "Mann-Kendall trend test on EPS.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
		"book_value_per_share": {
			FancyName:   "BVPS Stable & Increasing",
			Description: "Growing book value per share indicates net assets accruing to shareholders over time. It captures the compounding effect of retained earnings and prudent balance-sheet management. A steady climb suggests that intrinsic value is accumulating even when market prices fluctuate. This measure is particularly useful for capital-intensive or asset-heavy businesses. Persistent BVPS growth supports long-term return potential and downside protection.",
			Input:       "Annual BVPS (book value per share) series",
			Method:      "Mann-Kendall trend test on BVPS.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
		"net_profit_margin": {
			FancyName:   "Net Profit Margin Stable & Increasing",
			Description: "Improving net profit margins demonstrate operating leverage and cost discipline. Margin expansion often reflects pricing power, mix shift, or structural efficiency gains. Durable margin increases enhance cash generation and reinvestment capacity. They also buffer volatility during demand slowdowns. Consistent upward movement reinforces quality of earnings and business resilience.",
			Input:       "Annual net profit margin series",
			Method:      "Mann-Kendall trend test on net profit margin.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
		"return_on_equity": {
			FancyName:   "Return on Equity Stable & Increasing",
			Description: "Rising ROE indicates increasingly efficient conversion of equity into profits. It often captures better utilization of assets, stronger margins, or improved capital structure. Persistent improvement compounds shareholder value and can justify premium valuations. Stability is important, as erratic ROE can reflect transient accounting or leverage effects. A clean, positive trend supports the thesis of a strengthening franchise.",
			Input:       "Annual return on equity series",
			Method:      "Mann-Kendall trend test on ROE.",
			Criteria:    "Positive Kendall's tau > 0 and p-value < 0.10.",
		},
	},

	"present": {
		"enterprise_profits": {
			FancyName:   "Enterprise Profit Threshold",
			Description: "Enterprise profit gauges operating earning power relative to the full asset base employed. A sufficiently high level suggests that the firm clears its opportunity cost with a robust margin of safety. Passing the threshold today indicates competitive strength rather than cyclical luck. This constraint also filters out businesses that rely on leverage or accounting quirks to appear profitable. Meeting a demanding bar now sets a high-quality baseline for forward returns.",
			Input:       "EBIT and total assets",
			Method:      "Deterministic threshold rule.",
			Criteria:    "enterprise_profit must be positive and >= 0.18.",
		},
		"price_to_book": {
			FancyName:   "Price-to-Book Discipline",
			Description: "A bounded price-to-book multiple enforces valuation discipline against balance-sheet value. It reduces downside from sentiment swings and exuberant expectations. Reasonable PB levels are especially relevant in asset-heavy or financial businesses. Capping the multiple helps keep expectations aligned with tangible compounding. This rule is a practical guardrail when earnings are temporarily noisy.",
			Input:       "The current PB ratio",
			Method:      "Deterministic threshold rule.",
			Criteria:    "0 < PB <= 3.",
		},
		"peg_ratio": {
			FancyName:   "PEG Reasonableness",
			Description: "The PEG ratio relates valuation to expected earnings growth, helping to avoid paying too much for momentum. A ceiling encourages investors to require growth at a fair price rather than any price. It is a coarse tool, but practical for quickly screening. Keeping PEG in check reduces reliance on flawless execution to earn acceptable returns. This constraint complements other quality and profitability gates.",
			Input:       "Trailing PEG ratio",
			Method:      "Deterministic threshold rule.",
			Criteria:    "0 < PEG <= 1.",
		},
		"return_on_equity": {
			FancyName:   "Minimum Return on Equity",
			Description: "A minimum ROE ensures the business generates attractive profits relative to shareholder capital. High ROE firms can reinvest internally at compelling rates or return capital efficiently. This threshold also screens out low-quality franchises masquerading behind leverage. Sustained ROE above the bar is a hallmark of durable advantages or superior execution. It aligns today's profitability with the compounding you expect tomorrow.",
			Input:       "The latest Return on equity (ROE) return on equity",
			Method:      "Deterministic threshold rule.",
			Criteria:    "ROE >= 0.15.",
		},
		"price_earning": {
			FancyName:   "PE Versus Industry",
			Description: "Comparing PE to the industry keeps valuation anchored to peers facing similar economics. It helps avoid overpaying during hot cycles or thematic manias. Staying below the sector bar leaves room for multiple expansion if execution proves out. It also mitigates the risk of regime shifts that compress high multiples. The rule balances absolute prudence with relative realism.",
			Input:       "The latest Price-to-Earnings (PE) and the sector average PE for the stock's sector",
			Method:      "Deterministic threshold rule.",
			Criteria:    "0 < PE < sector average PE.",
		},
		"net_profit_margin": {
			FancyName:   "Net Margin Versus Industry",
			Description: "A margin above industry norms implies stronger pricing power, mix, or efficiency. It hints at differentiation that competitors find hard to copy. Superior margins translate into more self-funded growth and better shock absorption. It also reduces the dependence on leverage or aggressive accounting to hit targets. Exceeding the peer bar today supports confidence in forward economics.",
			Input:       "The latest Net profit margin (NPM) and the industry average net margin for the stock's industry",
			Method:      "Deterministic threshold rule.",
			Criteria:    "NPM > industry average net margin.",
		},
	},

	"future": {
		"free_cashflow": {
			FancyName:   "Free Cash Flow Momentum",
			Description: "A latest growth rate above the historical average indicates improving momentum. It suggests that recent execution or market dynamics are turning more favorable. Positive momentum increases the likelihood that near-term forecasts will be met or exceeded. This supports higher confidence in capital deployment and valuation. It is a pragmatic check that recent data are trending in the right direction.",
			Input:       "YoY growth of free cash flow over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
		"cash_and_equivalents": {
			FancyName:   "Cash and Equivalents Momentum",
			Description: "An accelerating growth rate in cash builds optionality for investment and defense. It often reflects operational discipline and prudent capital planning. Momentum here can foreshadow buybacks, acquisitions, or deleveraging. It also cushions volatility in working capital and macro shocks. Stronger recent growth versus average is a constructive signal.",
			Input:       "YoY growth of cash and cash equivalents over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
		"earning_per_share": {
			FancyName:   "EPS Momentum",
			Description: "EPS growth running above its average hints at improving profitability dynamics. This may stem from mix, pricing, or scale benefits coming through more strongly. Momentum increases the chance of positive revisions and sentiment follow-through. It can also validate the sustainability of earlier efficiency gains. Surpassing the historical average is a practical forward-tilted confirmation.",
			Input:       "YoY growth of EPS over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
		"book_value_per_share": {
			FancyName:   "BVPS Momentum",
			Description: "When BVPS growth exceeds its average, retained value accumulation is accelerating. This indicates stronger earnings retention or fewer charges eroding equity. Faster compounding improves long-term intrinsic value trajectories. It also supports more self-financed reinvestment. Momentum above average is an encouraging forward signal.",
			Input:       "YoY growth of BVPS over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
		"net_profit_margin": {
			FancyName:   "Margin Momentum",
			Description: "Recent margin gains above average imply durable operational improvements are taking hold. This could reflect better mix, productivity, or pricing discipline. Elevated momentum improves cash conversion and cushions cyclical episodes. It supports more confident reinvestment and competitive responses. Exceeding the historical mean underscores strengthening unit economics.",
			Input:       "YoY growth of net profit margin over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
		"return_on_equity": {
			FancyName:   "ROE Momentum",
			Description: "An ROE growth rate that outpaces its average suggests improving capital efficiency. It points to better asset turns, margins, or optimization of the capital stack. Persistent momentum reduces reliance on external capital for growth. It also enhances the durability of compounding when reinvested. Beating the average signals forward improvement rather than mere mean reversion.",
			Input:       "YoY growth of ROE over ~5 years",
			Method:      "Compare latest YoY growth to the mean of YoY growth history.",
			Criteria:    "Latest YoY growth > mean YoY growth.",
		},
	},

	"health": {
		"current_ratio": {
			FancyName:   "Short-Term Liquidity Buffer",
			Description: "A strong current ratio indicates the ability to cover near-term obligations comfortably. It reduces refinancing risk and supply-chain fragility. Healthy liquidity also creates room to act on tactical opportunities. It typically correlates with more stable operations through cycles. Maintaining a robust buffer is a hallmark of prudent financial management.",
			Input:       "Current assets and current liabilities",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Current ratio >= 1.5.",
		},
		"debt_to_equity": {
			FancyName:   "Leverage Prudence",
			Description: "Moderate leverage limits downside in cyclical or shock scenarios. Lower debt loads preserve strategic flexibility and reduce interest burden. A conservative capital structure also cushions covenant pressure. It improves survivability during liquidity squeezes. Keeping D/E in check aligns with durable compounding.",
			Input:       "Total liabilities and total equity",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Debt-to-equity <= 0.5.",
		},
		"beneish_m": {
			FancyName:   "Earnings Quality Screen (Beneish M-Score)",
			Description: "The Beneish M-Score flags patterns consistent with aggressive accounting. A sufficiently low score reduces the probability of manipulation risk. This serves as a protective filter before deeper diligence. Passing the bar does not prove innocence but lowers suspicion. It complements other quality and consistency checks.",
			Input:       "Computed Beneish M-Score series",
			Method:      "Deterministic threshold rule.",
			Criteria:    "M-Score <= -2.22.",
		},
		"altman_z": {
			FancyName:   "Financial Distress Risk (Altman Z-Score)",
			Description: "The Altman Z-Score summarizes balance-sheet and profitability signals into a distress probability proxy. Higher scores generally imply lower bankruptcy risk. Clearing the threshold provides a baseline of solvency comfort. It helps compare firms across sectors and cycles with a consistent yardstick. This safeguard pairs well with liquidity and leverage checks.",
			Input:       "Computed Altman Z-Score series.",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Z-Score >= 1.80.",
		},
		"net_insider_purchases": {
			FancyName:   "Insider Trading Balance",
			Description: "Net insider buying can signal management's confidence in intrinsic value. Selling is not always negative, but persistent net selling can be a caution. Observing the balance over time contextualizes valuation and outlook. This indicator complements fundamental metrics with behavioral evidence. A neutral-to-positive tilt supports alignment with shareholders.",
			Input:       "Net insider purchases metric over a recent window",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Net insider purchases >= -0.10 (i.e., not materially negative).",
		},
		"debt_coverage": {
			FancyName:   "Operating Cash Flow to Debt Coverage",
			Description: "Strong operating cash flow relative to debt indicates manageable balance-sheet pressure. It implies the firm can service obligations from core operations. This reduces dependence on capital markets during stress. Higher coverage also supports optionality for growth. A clear cushion lowers financial risk and improves durability.",
			Input:       "Operating cash flow and total liabilities (latest point comparison)",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Operating cash flow > 20% of total liabilities.",
		},
	},

	"dividend": {
		"dividend": {
			FancyName:   "Dividend Presence Over Recent Years",
			Description: "A consistent dividend record signals a shareholder-friendly capital policy. It indicates confidence in recurring cash generation. Even modest, steady payments can discipline capital allocation. The presence or absence of dividends should be judged alongside reinvestment opportunities. The goal is sustainability rather than cosmetic yield.",
			Input:       "Dividend per share history over ~5 years",
			Method:      "All-zero check across a 5 years' window.",
			Criteria:    "All five most recent annual DPS values are non-zero.",
		},
		"dividend_yield": {
			FancyName:   "Minimum Dividend Yield",
			Description: "A baseline yield ensures a tangible cash return while you wait for compounding. It can cushion drawdowns and smooth total returns. Yield should be supported by underlying free cash flow rather than financial engineering. Excessive yield may signal risk, so a modest floor is prudent. The aim is adequate payout without starving growth.",
			Input:       "Latest dividend yield derived from price and DPS",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Dividend yield > 1.5%.",
		},
		"dividend_streak": {
			FancyName:   "Dividend Continuity",
			Description: "A clean dividend streak reflects discipline and visibility into cash flows. Breaks or cuts can indicate stress or shifting priorities. However, pauses may be rational if reinvestment is superior. Context matters, but sustained continuity generally deserves credit. Monitoring the streak helps balance income and growth objectives.",
			Input:       "Full dividend per share history",
			Method:      "Presence of any zeros across the history window.",
			Criteria:    "No zero-payment years within the evaluated window.",
		},
		"dividend_volatile": {
			FancyName:   "Dividend Volatility Check",
			Description: "Large dividend drops can undermine income reliability and signal deeper issues. Stability supports investor confidence and valuation resilience. Occasional adjustments are acceptable if tied to disciplined capital allocation. The focus is avoiding repeated or severe cuts inconsistent with fundamentals. A low incidence of large declines is preferred.",
			Input:       "Year-over-year DPS changes over ~10 years",
			Method:      "Detect any YoY DPS drop >= 10%.",
			Criteria:    "No YoY DPS decline of 10% or more in the lookback.",
		},
		"dividend_trend": {
			FancyName:   "Dividend Stable & Increasing",
			Description: "A positive long-term trend in dividends per share indicates a company's growing and repeatable cash distribution capacity. It often reflects expanding free cash flow, disciplined capital allocation, and healthy competitive positioning. A statistically meaningful uptrend helps distinguish durable improvement from noise or one-off policy changes. This confidence supports a steadier income profile and can bolster valuation resilience. Clear upward momentum in the dividend record is therefore an encouraging sign for long-term shareholders.",
			Input:       "Dividend per share time series",
			Method:      "Mann-Kendall trend test on dividends per share (tau and p-value reported together).",
			Criteria:    "Positive Kendall's tau and p-value < 0.10.",
		},
		"dividend_payout_ratio": {
			FancyName:   "Payout Sustainability",
			Description: "A moderate payout ratio balances income today with reinvestment for tomorrow. It reduces the risk of forced cuts during soft patches. Sustainable payouts are typically backed by recurring free cash flow, not leverage. A sensible ceiling leaves room for growth capex and buybacks. The aim is endurance rather than maximum distribution.",
			Input:       "Dividend per share and earnings per share",
			Method:      "Deterministic threshold rule.",
			Criteria:    "0% < payout ratio < 60%.",
		},
	},

	"macroeconomics": {
		"momentum": {
			FancyName:   "Real GDP Growth Momentum",
			Description: "Macroeconomic tailwinds improve demand visibility and pricing conditions. A country growing faster than its long-term trend or the world average is supportive for corporate fundamentals. Positive momentum reduces the likelihood of broad-based revenue shocks. It also raises the base rate for investment and employment. Favorable growth regimes compound business quality advantages.",
			Input:       "Country real GDP growth (3-yr average vs 10-yr average or world average) and last-year print",
			Method:      "Deterministic comparative rule.",
			Criteria:    "3-yr avg >= world avg (or country 10-yr avg) AND last year >= 0.",
		},
		"inflation_stability": {
			FancyName:   "Inflation Level and Stability",
			Description: "Benign inflation preserves real purchasing power and planning certainty. Excess volatility distorts pricing, margins, and working capital. A contained level with low variability supports steady multiples. It also reduces policy shock risk that can hit growth assets disproportionately. Stability enables quality businesses to compound quietly.",
			Input:       "CPI inflation level and 5-yr standard deviation",
			Method:      "Deterministic thresholds on level and variability.",
			Criteria:    "Latest CPI <= 5% AND 5-yr std-dev <= 3 percentage points.",
		},
		"real_interest_rate": {
			FancyName:   "Real Rate Sanity Range",
			Description: "Real rates summarize policy stance and credit conditions after inflation. Extremely negative real rates can mask fragility, while very high rates can choke growth. A middle range supports balanced incentives for saving and investment. It helps avoid boom-bust dynamics harmful to equity cash flows. Staying within a sane band reduces macro downside skew.",
			Input:       "Latest lending rate minus CPI inflation",
			Method:      "Deterministic band rule.",
			Criteria:    "-2% < real rate < 6%.",
		},
		"fx_trend": {
			FancyName:   "FX Trend versus Base Currency",
			Description: "Persistent currency depreciation erodes foreign returns and may signal structural imbalances. A modest pace is tolerable, especially if offset by strong local returns. Limiting depreciation risk avoids over-reliance on multiple expansion. It also simplifies underwriting of long-dated cash flows. A contained trend keeps macro headwinds manageable.",
			Input:       "3-yr CAGR of local currency vs base currency (or USD)",
			Method:      "Deterministic ceiling on FX depreciation CAGR.",
			Criteria:    "FX depreciation CAGR <= 5% per year.",
		},
		"external_balance": {
			FancyName:   "External Balance Health",
			Description: "A manageable current account deficit reduces vulnerability to external funding shocks. Improvements relative to recent history are particularly constructive. Healthier balances typically translate into more stable policy and FX. They also reflect competitiveness and balanced domestic demand. This backdrop lowers macro tail-risk for corporates.",
			Input:       "Latest current account balance (% GDP) vs 5-yr average",
			Method:      "Deterministic threshold and improvement rule.",
			Criteria:    "Latest >= -3% of GDP AND >= 5-yr average.",
		},
		"fiscal_sustainability": {
			FancyName:   "Public Debt Sustainability",
			Description: "Lower public debt burdens reduce the need for distortionary taxes or austerity. It leaves room for counter-cyclical policy during downturns. Sustainable fiscal metrics support lower risk premia across the economy. They also stabilize investor expectations and capital flows. A prudent fiscal stance is a quiet tailwind for equities.",
			Input:       "Latest central government debt (% GDP)",
			Method:      "Deterministic threshold rule.",
			Criteria:    "Debt <= 80% of GDP.",
		},
	},
}

// ValuationMethod documents one valuation model for report generation.
type ValuationMethod struct {
	FancyName   string
	Description string
	Feasibility string
	Inputs      []string
	Formula     string
}

// ValuationOrder fixes the model ordering in the valuation payload.
var ValuationOrder = []string{
	"price_earning_multiples",
	"discounted_cash_flow_one_stage",
	"discounted_cash_flow_two_stage",
	"discounted_dividend_two_stage",
	"return_on_equity",
	"excess_return",
	"graham_number",
}

// ValuationCatalog documents the seven valuation models.
var ValuationCatalog = map[string]ValuationMethod{
	"price_earning_multiples": {
		FancyName:   "Price-to-Earnings Multiples Method",
		Description: "This method estimates a fair price by applying a representative price-to-earnings multiple to earnings per share. It then scales the value by a conservative growth assumption over a chosen horizon. The result is discounted back to the present using a user-selected discount rate. The approach is intuitive and mirrors how many market participants benchmark similar companies. It is most useful when earnings quality is steady and the chosen multiple is grounded in a relevant peer group or long-run history.",
		Feasibility: "This method works best for companies with relatively stable, repeatable earnings and a clear peer set. It is less reliable when earnings are cyclical, distorted by one-offs, or when the market multiple is undergoing a regime shift. It also struggles for early-stage or highly loss-making firms where earnings are not yet meaningful.",
		Inputs: []string{
			"Earnings Per Share  (3y Median)",
			"Price To Earnings Multiple (Representative or Median)",
			"Conservative Growth Rate",
			"Discount Rate",
			"Stage-1 Years",
		},
		Formula: `P0 = \\dfrac{EPS \\cdot PE \\cdot (1 + g)^{N}}{(1 + r)^{N}}`,
	},
	"discounted_cash_flow_one_stage": {
		FancyName:   "Discounted Cash Flow (One-Stage, Fading Growth)",
		Description: "This model projects free cash flow for a single stage where growth fades each year by a decline factor. Each projected free cash flow is discounted back at the chosen discount rate to reflect time value and risk. A terminal value is approximated using a simple multiple of the last discounted free cash flow. The sum of discounted flows and terminal value yields equity value, which is divided by shares outstanding to get the fair price. The framework is transparent and easy to communicate to non-specialists.",
		Feasibility: "This approach works best when free cash flow is a stable, meaningful proxy for distributable economics and the fade profile is reasonable. It is less effective when cash flows are highly volatile, capital intensity is shifting, or reinvestment needs are poorly understood. The simple terminal multiple should be cross-checked against market evidence to avoid anchoring bias.",
		Inputs: []string{
			"Free Cash Flow (3y Median)",
			"Conservative Growth Rate",
			"Annual Decline Rate",
			"Discount Rate",
			"Stage-1 Years",
			"Shares Outstanding",
			"Terminal Multiple",
		},
		Formula: `g_t = g \\cdot (1 - d)^{t-1},\\quad FCF_t = FCF_0 \\prod_{i=1}^{t} (1 + g_i) \\\\ PV = \\sum_{t=1}^{N} \\dfrac{FCF_t}{(1 + r)^{t}},\\quad TV = k \\cdot \\dfrac{FCF_{N}}{(1 + r)^{N}} \\\\ P0 = \\dfrac{PV + TV}{S}`,
	},
	"discounted_cash_flow_two_stage": {
		FancyName:   "Discounted Cash Flow (Two-Stage With Terminal Growth)",
		Description: "This model splits the forecast into an early stage with fading growth and a second stage with stable growth. Free cash flow is projected through both stages and discounted at the selected discount rate. The terminal value is computed using a Gordon-style formula based on the final stage cash flow and a terminal growth rate. Summing the present values across both stages and the terminal value gives equity value, which is then divided by shares outstanding. The structure captures transitions from higher growth toward maturity in a disciplined way.",
		Feasibility: "This approach is well-suited to companies transitioning from elevated growth toward a stable, mature phase. It can mislead if terminal growth exceeds plausible long-run nominal GDP growth or if discount rates and reinvestment needs are inconsistent with the growth path. Reliable cash flow baselines and sensible horizon lengths are key to meaningful results.",
		Inputs: []string{
			"Free Cash Flow  (3y Median)",
			"Conservative Growth Rate",
			"Annual Decline Rate",
			"Terminal Growth Rate",
			"Discount Rate",
			"Stage-1 Years",
			"Terminal Stage Years",
			"Shares Outstanding",
		},
		Formula: `PV1 = \\sum_{t=1}^{N1} \\dfrac{D_t}{(1 + k)^{t}},\\quad PV2 = \\sum_{k=1}^{N2} \\dfrac{D_{N1+k}}{(1 + k)^{N1+k}} \\\\ TV = \\dfrac{D_{N1+N2+1}}{k - g2},\\quad PVTV = \\dfrac{TV}{(1 + k)^{N1+N2}} \\\\ P0 = PV1 + PV2 + PVTV`,
	},
	"discounted_dividend_two_stage": {
		FancyName:   "Discounted Dividend Model (Two-Stage)",
		Description: "This model values equity as the present value of future dividends. It projects dividends through an initial growth stage and a subsequent stable stage. A terminal value is derived using a Gordon-style formula based on the final stage dividend and the cost of equity. The sum of discounted dividends and the discounted terminal value yields a fair price per share. The method focuses directly on cash returned to shareholders and is familiar to income-oriented investors.",
		Feasibility: "This approach works best for firms with a consistent dividend policy and credible growth visibility. It is less suitable for companies that retain most cash for reinvestment, have sporadic payouts, or frequently change their policy. Sensitivity to the relationship between cost of equity and terminal growth is high and should be examined.",
		Inputs: []string{
			"Dividend Per Share  (3y Median)",
			"Conservative Dividend Growth Rate (1y cagr)",
			"Terminal Dividend Growth Rate",
			"Cost Of Equity",
			"Stage-1 Years",
			"Terminal Stage Years",
		},
		Formula: `PV1 = \\sum_{t=1}^{N1} \\dfrac{D_t}{(1 + k)^{t}},\\quad PV2 = \\sum_{k=1}^{N2} \\dfrac{D_{N1+k}}{(1 + k)^{N1+k}} \\\\ TV = \\dfrac{D_{N1+N2+1}}{k - g2},\\quad PVTV = \\dfrac{TV}{(1 + k)^{N1+N2}} \\\\ P0 = PV1 + PV2 + PVTV`,
	},
	"return_on_equity": {
		FancyName:   "Return On Equity Capitalization Method",
		Description: "This method projects book value per share and dividend per share forward using a conservative growth assumption. It then estimates terminal value from final-year net income per share by capitalizing it with an earnings-yield proxy based on the average market return. Interim dividends are discounted back alongside the terminal value to determine fair price. The approach ties valuation to core profitability on the shareholders' equity base. It is intuitive when capital structure and reinvestment dynamics are relatively stable.",
		Feasibility: "This method works best for established firms where ROE is a meaningful, stable indicator of profitability. It can misrepresent value if leverage is changing rapidly or if ROE is inflated by one-time items. Users should ensure the earnings-yield proxy aligns with the firm's true risk and growth profile.",
		Inputs: []string{
			"Return On Equity (3y Median)",
			"Book Value Per Share (3y Median)",
			"Dividend Per Share (3y Median)",
			"Conservative Growth Rate",
			"Discount Rate",
			"Average Market Return",
			"Stage-1 Years",
		},
		Formula: `BVPS_{N} = BVPS_{0}(1 + g)^{N},\\quad DPS_{t} = DPS_{0}(1 + g)^{t} \\\\ PV_{Div} = \\sum_{t=1}^{N} \\dfrac{DPS_{t}}{(1 + r)^{t}},\\quad NI_{N} = BVPS_{N} \\cdot ROE \\\\ TV = \\dfrac{NI_{N}}{m},\\quad PVTV = \\dfrac{TV}{(1 + r)^{N}} \\\\ P0 = PV_{Div} + PVTV`,
	},
	"excess_return": {
		FancyName:   "Residual Income (Excess Return) Model",
		Description: "This model values the firm by capitalizing the difference between its return on equity and its cost of equity, applied to the equity base. The present value of those excess returns is added to the current equity to obtain total equity value. Dividing by shares outstanding gives a fair price per share. The logic emphasizes value creation above the shareholders' required return. It is particularly helpful when dividends and free cash flow do not fully reflect economic profitability.",
		Feasibility: "This model works best when ROE and the cost of equity are consistently estimable and reflect steady business economics. It is less reliable when accounting earnings diverge from economic earnings or when equity base measurements are noisy. Care is needed when growth assumptions approach the cost of equity, as the math becomes sensitive.",
		Inputs: []string{
			"Return On Equity (3y Median)",
			"Cost Of Equity",
			"Conservative Growth Rate",
			"Total Equity (3y Median)",
			"Shares Outstanding",
		},
		Formula: `ER = (ROE - k) \\cdot TE,\\quad P0 = \\dfrac{TE + \\dfrac{ER}{k - g}}{S}`,
	},
	"graham_number": {
		FancyName:   "Graham Number (Earnings And Book Blend)",
		Description: "The Graham Number is a classic heuristic that blends earnings per share and book value per share. It computes the square root of 22.5 times the product of EPS and BVPS. The constant 22.5 implicitly embeds conservative bounds for price-to-book and price-to-earnings multiples. The result is a single, easily communicated threshold often used as a sanity check. It is not a full valuation model but a pragmatic screening anchor.",
		Feasibility: "This metric works best as a quick sense-check for established, profitable businesses with tangible equity. It is far less informative for asset-light, high-growth, or loss-making companies where book value and current earnings are weak proxies for value. It should be complemented with deeper cash-flow-based or competitive-advantage analyses.",
		Inputs: []string{
			"Earnings Per Share (3y Median)",
			"Book Value Per Share (3y Median)",
		},
		Formula: `P0 = \\sqrt{\\,22.5 \\cdot EPS \\cdot BVPS\\,}`,
	},
}
