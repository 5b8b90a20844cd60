// Package ledger derives the financial figures of tracked items.
//
// Everything here is pure: no I/O and no rounding unless Rounded is called.
// Aggregates are summed from unrounded per-item figures.
package ledger

import "github.com/shopspring/decimal"

// Input holds the stored fields a calculation depends on.
// TaxRate is a fraction in [0,1], not a percentage.
type Input struct {
	PurchasePrice float64
	SellPrice     float64
	Quantity      int
	TaxRate       float64
}

// Figures are the derived values of a single item.
type Figures struct {
	TotalCost    float64 `json:"total_cost"`
	TotalRevenue float64 `json:"total_revenue"`
	TaxAmount    float64 `json:"tax_amount"`
	NetProfit    float64 `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// Portfolio is the aggregate over one user's items.
type Portfolio struct {
	Count           int     `json:"total_dinos"`
	TotalInvestment float64 `json:"total_investment"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalTaxes      float64 `json:"total_taxes"`
	TotalProfit     float64 `json:"total_profit"`
	ProfitMargin    float64 `json:"profit_margin"`
}

// Compute returns the unrounded figures for in.
func Compute(in Input) Figures {
	qty := float64(in.Quantity)
	cost := in.PurchasePrice * qty
	revenue := in.SellPrice * qty
	tax := revenue * in.TaxRate
	profit := revenue - tax - cost

	return Figures{
		TotalCost:    cost,
		TotalRevenue: revenue,
		TaxAmount:    tax,
		NetProfit:    profit,
		ProfitMargin: margin(profit, cost),
	}
}

// Rounded returns a copy with every figure rounded to two decimals.
func (f Figures) Rounded() Figures {
	return Figures{
		TotalCost:    Round2(f.TotalCost),
		TotalRevenue: Round2(f.TotalRevenue),
		TaxAmount:    Round2(f.TaxAmount),
		NetProfit:    Round2(f.NetProfit),
		ProfitMargin: Round2(f.ProfitMargin),
	}
}

// Aggregate sums the figures of inputs. An empty slice yields a zero Portfolio.
func Aggregate(inputs []Input) Portfolio {
	var p Portfolio
	for _, in := range inputs {
		f := Compute(in)
		p.TotalInvestment += f.TotalCost
		p.TotalRevenue += f.TotalRevenue
		p.TotalTaxes += f.TaxAmount
		p.TotalProfit += f.NetProfit
	}
	p.Count = len(inputs)
	p.ProfitMargin = margin(p.TotalProfit, p.TotalInvestment)
	return p
}

// Round2 rounds the exact binary value of v to two decimal places, so 1.005
// (held as 1.00499...) rounds down.
func Round2(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, -2).InexactFloat64()
}

// PercentToFraction converts a user-facing percentage (0-100) into a stored rate.
func PercentToFraction(pct float64) float64 {
	return pct / 100
}

// FractionToPercent converts a stored rate into a percentage for display.
func FractionToPercent(rate float64) float64 {
	return rate * 100
}

// margin guards the zero-cost case; a non-positive cost has no meaningful margin.
func margin(profit, cost float64) float64 {
	if cost > 0 {
		return profit / cost * 100
	}
	return 0
}
