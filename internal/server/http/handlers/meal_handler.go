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

// MealHandler serves the meal catalog.
type MealHandler struct {
	facade CatalogFacade
}

// NewMealHandler constructs MealHandler.
func NewMealHandler(facade CatalogFacade) *MealHandler {
	return &MealHandler{facade: facade}
}

// List handles GET /api/meals.
func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.facade.Meals(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		resp = append(resp, toMealResponse(&meals[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/meals/:id.
func (h *MealHandler) Get(c *gin.Context) {
	id, err := mealIDParam(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	meal, err := h.facade.Meal(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toMealResponse(meal))
}

// Create handles POST /api/meals.
func (h *MealHandler) Create(c *gin.Context) {
	var req dto.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	meal, err := h.facade.CreateMeal(c.Request.Context(), &model.Meal{
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
		Details:  req.Details,
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
	c.JSON(http.StatusCreated, toMealResponse(meal))
}

// Delete handles DELETE /api/meals/:id.
func (h *MealHandler) Delete(c *gin.Context) {
	id, err := mealIDParam(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteMeal(c.Request.Context(), id); err != nil {
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

// Like handles PATCH /api/meals/like/:id.
func (h *MealHandler) Like(c *gin.Context) {
	id, err := mealIDParam(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	likes, err := h.facade.LikeMeal(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Likes: likes})
}

func mealIDParam(c *gin.Context) (model.MealID, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return model.MealID(id), nil
}
