package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dormdine/dormdine/internal/adapter/payment"
	"github.com/dormdine/dormdine/internal/app"
	"github.com/dormdine/dormdine/internal/config"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
	"github.com/dormdine/dormdine/internal/storage/postgres"
	"github.com/dormdine/dormdine/internal/test"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:            ":0",
		DatabaseURI:           "postgres://stub",
		PaymentGatewayAddress: "http://localhost",
		JWTSecret:             "secret",
		TokenTTL:              time.Hour,
		TokenSource:           config.TokenSourceBoth,
		ReconcileInterval:     time.Millisecond,
		ReconcileBatchSize:    1,
		ShutdownTimeout:       time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	mealRepo := &test.MealRepositoryStub{}
	reviewRepo := &test.ReviewRepositoryStub{}
	membershipRepo := &test.MembershipRepositoryStub{Memberships: []model.Membership{{ID: 1, Tier: "silver"}}}
	cartRepo := &test.CartRepositoryStub{}
	paymentRepo := &test.PaymentRepositoryStub{}

	var facade *app.DormFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.MealRepository(mealRepo)),
			fx.Replace(repository.ReviewRepository(reviewRepo)),
			fx.Replace(repository.MembershipRepository(membershipRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.PaymentRepository(paymentRepo)),
			fx.Replace(payment.Client(test.PaymentFacadeStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected dorm facade instance")
	}
}
