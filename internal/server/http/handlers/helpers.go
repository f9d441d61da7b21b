package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/server/http/dto"
	"github.com/dormdine/dormdine/internal/server/http/middleware"
)

// CurrentEmail extracts the authenticated user's email from context.
func CurrentEmail(c *gin.Context) string {
	email, _ := middleware.CurrentEmail(c)
	return email
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               int64(user.ID),
		Email:            user.Email,
		Role:             string(user.Role),
		SubscriptionTier: user.SubscriptionTier,
		CreatedAt:        user.CreatedAt,
	}
}

func toMealResponse(meal *model.Meal) dto.MealResponse {
	return dto.MealResponse{
		ID:        int64(meal.ID),
		Title:     meal.Title,
		Category:  meal.Category,
		Price:     meal.Price,
		Rating:    meal.Rating,
		Likes:     meal.Likes,
		Image:     meal.Image,
		Details:   meal.Details,
		CreatedAt: meal.CreatedAt,
	}
}

func toReviewResponse(review *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        int64(review.ID),
		MealID:    int64(review.MealID),
		Email:     review.Email,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toCartItemResponse(item *model.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:        int64(item.ID),
		Email:     item.Email,
		MealID:    int64(item.MealID),
		Title:     item.Title,
		Price:     item.Price,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}

func toPaymentResponse(payment *model.Payment) dto.PaymentResponse {
	ids := make([]int64, 0, len(payment.CartItemIDs))
	for _, id := range payment.CartItemIDs {
		ids = append(ids, int64(id))
	}
	return dto.PaymentResponse{
		ID:          int64(payment.ID),
		Email:       payment.Email,
		Amount:      payment.Amount,
		CartItemIDs: ids,
		CreatedAt:   payment.CreatedAt,
	}
}
