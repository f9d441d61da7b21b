package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/server/http/dto"
)

// CartHandler manages the caller's cart line items.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/carts.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.facade.CartItems(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.CartItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toCartItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/carts.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddCartItem(c.Request.Context(), &model.CartItem{
		Email:  CurrentEmail(c),
		MealID: model.MealID(req.MealID),
		Title:  req.Title,
		Price:  req.Price,
		Status: model.CartItemStatusPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toCartItemResponse(item))
}

// Remove handles DELETE /api/carts/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentEmail(c), model.CartItemID(id)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}
