package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/config"
	"github.com/dormdine/dormdine/internal/server/http/handlers"
	"github.com/dormdine/dormdine/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DormFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	mealHandler := handlers.NewMealHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	membershipHandler := handlers.NewMembershipHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	api := engine.Group("/api")
	api.POST("/jwt", authHandler.IssueToken)
	api.POST("/logout", authHandler.Logout)
	api.POST("/users", userHandler.Register)
	api.GET("/meals", mealHandler.List)
	api.GET("/meals/:id", mealHandler.Get)
	api.GET("/reviews", reviewHandler.List)
	api.GET("/reviews/meal/:id", reviewHandler.ListByMeal)
	api.GET("/memberships", membershipHandler.List)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade, cfg.TokenSource))
	authed.GET("/users/admin/:email", middleware.RequireIdentityMatch("email"), userHandler.IsAdmin)
	authed.PATCH("/users/subscription", userHandler.UpdateSubscription)
	authed.GET("/carts", middleware.RequireQueryIdentityMatch("email"), cartHandler.List)
	authed.POST("/carts", cartHandler.Add)
	authed.DELETE("/carts/:id", cartHandler.Remove)
	authed.POST("/reviews", reviewHandler.Create)
	authed.PATCH("/meals/like/:id", mealHandler.Like)
	authed.POST("/create-payment-intent", paymentHandler.CreateIntent)
	authed.POST("/payments", paymentHandler.Settle)
	authed.GET("/payments", middleware.RequireQueryIdentityMatch("email"), paymentHandler.History)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade, cfg.TokenSource))
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/users", userHandler.List)
	admin.PATCH("/users/admin/:id", userHandler.Promote)
	admin.POST("/meals", mealHandler.Create)
	admin.DELETE("/meals/:id", mealHandler.Delete)

	return engine
}
