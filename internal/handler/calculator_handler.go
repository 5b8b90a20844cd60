package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dinoledger/internal/ledger"
	"dinoledger/internal/service"
)

// CalculatorHandler exposes the standalone profit calculator.
type CalculatorHandler struct {
	itemService service.ItemService
}

// NewCalculatorHandler creates a new calculator handler.
func NewCalculatorHandler(itemService service.ItemService) *CalculatorHandler {
	return &CalculatorHandler{itemService: itemService}
}

// CalculateRequest holds the calculation inputs. Absent fields default to
// zero prices, a quantity of 1 and a 10% tax rate.
type CalculateRequest struct {
	PurchasePrice *float64 `json:"purchase_price"`
	SellPrice     *float64 `json:"sell_price"`
	Quantity      *int     `json:"quantity"`
	TaxRate       *float64 `json:"tax_rate"` // Percentage
}

func (r CalculateRequest) toInput() ledger.Input {
	in := ledger.Input{
		Quantity: 1,
		TaxRate:  ledger.PercentToFraction(service.DefaultTaxRatePercent),
	}
	if r.PurchasePrice != nil {
		in.PurchasePrice = *r.PurchasePrice
	}
	if r.SellPrice != nil {
		in.SellPrice = *r.SellPrice
	}
	if r.Quantity != nil {
		in.Quantity = *r.Quantity
	}
	if r.TaxRate != nil {
		in.TaxRate = ledger.PercentToFraction(*r.TaxRate)
	}
	return in
}

// CalculateProfit godoc
// @Summary Compute figures for a hypothetical purchase
// @Description All figures are rounded to two decimals.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Calculation inputs"
// @Success 200 {object} ledger.Figures
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/calculate_profit [post]
func (h *CalculatorHandler) CalculateProfit(c echo.Context) error {
	if _, err := requireUser(c); err != nil {
		return err
	}

	var req CalculateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	return c.JSON(http.StatusOK, h.itemService.Calculate(req.toInput()))
}
