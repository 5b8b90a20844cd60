package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dinoledger/internal/errors"
	"dinoledger/internal/model"
	"dinoledger/internal/service"
)

// ItemHandler handles the dashboard and item CRUD endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemRequest represents the editable item fields. TaxRate is a percentage.
type ItemRequest struct {
	Name          string   `json:"name" form:"name" validate:"required,max=100"`
	Category      string   `json:"dino_type" form:"dino_type" validate:"required,oneof=Creature Species Token"`
	PurchasePrice *float64 `json:"purchase_price" form:"purchase_price" validate:"required,gte=0"`
	SellPrice     *float64 `json:"sell_price" form:"sell_price" validate:"required,gte=0"`
	Quantity      int      `json:"quantity" form:"quantity" validate:"required,min=1"`
	TaxRate       *float64 `json:"tax_rate" form:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	Notes         string   `json:"notes" form:"notes"`
}

func (r ItemRequest) toInput() service.ItemInput {
	tax := float64(service.DefaultTaxRatePercent)
	if r.TaxRate != nil {
		tax = *r.TaxRate
	}
	return service.ItemInput{
		Name:           r.Name,
		Category:       model.Category(r.Category),
		PurchasePrice:  *r.PurchasePrice,
		SellPrice:      *r.SellPrice,
		Quantity:       r.Quantity,
		TaxRatePercent: tax,
		Notes:          r.Notes,
	}
}

// Dashboard godoc
// @Summary List the current user's items with portfolio totals
// @Tags items
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *ItemHandler) Dashboard(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	dash, err := h.itemService.Dashboard(c.Request().Context(), user.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, dash)
}

// CreateItem godoc
// @Summary Add an item
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item fields"
// @Success 201 {object} service.ItemView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	view, err := h.itemService.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, view)
}

// GetItem godoc
// @Summary Get one of the current user's items
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} service.ItemView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	view, err := h.itemService.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateItem godoc
// @Summary Replace the fields of one of the current user's items
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item fields"
// @Success 200 {object} service.ItemView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	view, err := h.itemService.Update(c.Request().Context(), id, user.ID, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteItem godoc
// @Summary Delete one of the current user's items
// @Tags items
// @Param id path int true "Item ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), id, user.ID); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// itemID parses the :id path parameter. A malformed id reads as not found.
func itemID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, mapError(errors.ErrNotFound)
	}
	return id, nil
}
