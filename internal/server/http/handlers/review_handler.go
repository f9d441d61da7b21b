package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/server/http/dto"
)

// ReviewHandler serves meal feedback.
type ReviewHandler struct {
	facade CatalogFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade CatalogFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.Reviews(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// ListByMeal handles GET /api/reviews/meal/:id.
func (h *ReviewHandler) ListByMeal(c *gin.Context) {
	id, err := mealIDParam(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reviews, err := h.facade.ReviewsByMeal(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), &model.Review{
		MealID:  model.MealID(req.MealID),
		Email:   CurrentEmail(c),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

func toReviewResponses(reviews []model.Review) []dto.ReviewResponse {
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toReviewResponse(&reviews[i]))
	}
	return resp
}
