package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected Figures
	}{
		{
			name:  "profitable batch",
			input: Input{PurchasePrice: 10, SellPrice: 25, Quantity: 4, TaxRate: 0.10},
			expected: Figures{
				TotalCost:    40,
				TotalRevenue: 100,
				TaxAmount:    10,
				NetProfit:    50,
				ProfitMargin: 125,
			},
		},
		{
			name:  "zero cost guards margin",
			input: Input{PurchasePrice: 0, SellPrice: 5, Quantity: 1, TaxRate: 0},
			expected: Figures{
				TotalCost:    0,
				TotalRevenue: 5,
				TaxAmount:    0,
				NetProfit:    5,
				ProfitMargin: 0,
			},
		},
		{
			name:  "loss",
			input: Input{PurchasePrice: 20, SellPrice: 10, Quantity: 2, TaxRate: 0.5},
			expected: Figures{
				TotalCost:    40,
				TotalRevenue: 20,
				TaxAmount:    10,
				NetProfit:    -30,
				ProfitMargin: -75,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.input)
			assert.InDelta(t, tt.expected.TotalCost, got.TotalCost, 1e-9)
			assert.InDelta(t, tt.expected.TotalRevenue, got.TotalRevenue, 1e-9)
			assert.InDelta(t, tt.expected.TaxAmount, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.expected.NetProfit, got.NetProfit, 1e-9)
			assert.InDelta(t, tt.expected.ProfitMargin, got.ProfitMargin, 1e-9)
		})
	}
}

func TestCompute_CostAndRevenueAreExactProducts(t *testing.T) {
	purchase, sell, qty := 3.3, 7.7, 3
	got := Compute(Input{PurchasePrice: purchase, SellPrice: sell, Quantity: qty, TaxRate: 0.2})
	assert.Equal(t, purchase*float64(qty), got.TotalCost)
	assert.Equal(t, sell*float64(qty), got.TotalRevenue)
}

func TestFigures_Rounded(t *testing.T) {
	f := Compute(Input{PurchasePrice: 1, SellPrice: 3.333, Quantity: 3, TaxRate: 0.07})
	r := f.Rounded()

	assert.Equal(t, 3.0, r.TotalCost)
	assert.Equal(t, 10.0, r.TotalRevenue)
	assert.Equal(t, 0.7, r.TaxAmount)
	assert.Equal(t, 6.3, r.NetProfit)
	assert.Equal(t, 209.97, r.ProfitMargin)
}

func TestRound2_UsesBinaryValue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1.005, want: 1.00},
		{in: 2.675, want: 2.67},
		{in: 1.015, want: 1.01},
		{in: 209.9666, want: 209.97},
		{in: -3.14159, want: -3.14},
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "%v", tt.in)
	}
}

func TestFigures_RoundedFromBinaryValues(t *testing.T) {
	r := Compute(Input{PurchasePrice: 1.005, SellPrice: 2.675, Quantity: 1}).Rounded()
	assert.Equal(t, 1.00, r.TotalCost)
	assert.Equal(t, 2.67, r.TotalRevenue)
}

func TestAggregate(t *testing.T) {
	inputs := []Input{
		{PurchasePrice: 10, SellPrice: 25, Quantity: 4, TaxRate: 0.10},
		{PurchasePrice: 0, SellPrice: 5, Quantity: 1, TaxRate: 0},
	}

	p := Aggregate(inputs)

	assert.Equal(t, 2, p.Count)
	assert.InDelta(t, 40.0, p.TotalInvestment, 1e-9)
	assert.InDelta(t, 105.0, p.TotalRevenue, 1e-9)
	assert.InDelta(t, 10.0, p.TotalTaxes, 1e-9)
	assert.InDelta(t, 55.0, p.TotalProfit, 1e-9)
	assert.InDelta(t, 137.5, p.ProfitMargin, 1e-9)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := Input{PurchasePrice: 1.5, SellPrice: 2, Quantity: 3, TaxRate: 0.1}
	b := Input{PurchasePrice: 4, SellPrice: 9, Quantity: 1, TaxRate: 0.25}

	forward := Aggregate([]Input{a, b})
	backward := Aggregate([]Input{b, a})

	assert.InDelta(t, forward.TotalProfit, backward.TotalProfit, 1e-9)
	assert.InDelta(t, forward.ProfitMargin, backward.ProfitMargin, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, Portfolio{}, Aggregate(nil))
}

func TestPercentConversions(t *testing.T) {
	assert.InDelta(t, 0.1, PercentToFraction(10), 1e-12)
	assert.InDelta(t, 10.0, FractionToPercent(0.1), 1e-12)
}
