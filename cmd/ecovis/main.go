package main

import (
	"context"
	"log/slog"
	"os"

	"ecovis/config"
	"ecovis/internal/delivery"
	"ecovis/internal/delivery/api"
	"ecovis/internal/delivery/api/router/handler"
	"ecovis/internal/domain/repository"
	"ecovis/internal/infra/auth"
	"ecovis/internal/infra/emissions"
	logs "ecovis/internal/infra/log"
	"ecovis/internal/infra/persistence/memory"
	"ecovis/internal/infra/persistence/postgres"
	"ecovis/internal/infra/recognition"
	"ecovis/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
			func(store repository.Store) repository.UserRepository { return store },
			func(store repository.Store) repository.ActivityRepository { return store },
			func(store repository.Store) repository.WasteRecognitionRepository { return store },
			func(store repository.Store) repository.EmissionsRepository { return store },
			func(store repository.Store) repository.ForumRepository { return store },
			func(store repository.Store) repository.ProductRepository { return store },
		),
	)
}

// newStore picks the persistence backend named by storage.driver.
func newStore(params storeParams) (repository.Store, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open postgres store")
		}

		return postgres.NewStore(db), nil
	case config.StorageDriverMemory:
		return memory.New(memory.Params{
			Config: params.Config,
			Logger: params.Logger,
		}), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %q", params.Config.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			recognition.NewRuleClassifier,
			emissions.NewCalculator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewWasteService,
			impl.NewEmissionsService,
			impl.NewForumService,
			impl.NewProductService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPaginator,
			handler.NewUserHandler,
			handler.NewWasteHandler,
			handler.NewEmissionsHandler,
			handler.NewForumHandler,
			handler.NewProductHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches the deliveries once every earlier OnStart hook, such as the database ping and migrations, has succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
