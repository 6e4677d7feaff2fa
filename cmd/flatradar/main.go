package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"flatradar/config"
	"flatradar/internal/delivery"
	"flatradar/internal/delivery/http"
	"flatradar/internal/delivery/http/router/handler"
	"flatradar/internal/delivery/poller"
	"flatradar/internal/domain/repository"
	"flatradar/internal/domain/service"
	"flatradar/internal/infra/locations"
	logs "flatradar/internal/infra/log"
	"flatradar/internal/infra/notification"
	"flatradar/internal/infra/persistence/postgres"
	"flatradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		locations.NewResolver,
		locations.NewGraph,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewUserRepository,
			postgres.NewAlertRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAlertSender,
		),
	)
}

// newAlertSender creates the FCM alert channel with dependency injection
func newAlertSender(ctx context.Context, cfg *config.Config, userRepo repository.UserRepository, logger *slog.Logger) (service.AlertSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required for alert dispatch")
	}

	sender, err := notification.NewFirebaseAlertSender(ctx, cfg, userRepo, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase alert sender: %w", err)
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScoringService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScoreHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
