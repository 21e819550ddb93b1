package main

import (
	"context"
	"log/slog"
	"os"

	"stallbook/config"
	"stallbook/internal/delivery"
	"stallbook/internal/delivery/http"
	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/router/handler"
	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/infra/auth"
	logs "stallbook/internal/infra/log"
	"stallbook/internal/infra/persistence/postgres"
	"stallbook/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDefaults,
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTenantRepository,
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewEntryRepository,
			postgres.NewRevenueRepository,
			postgres.NewCatalogRepository,
			postgres.NewDictionaryRepository,
			postgres.NewLocationRepository,
			postgres.NewOrgRepository,
			postgres.NewOperationLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher, honoring a configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccessService,
			impl.NewAuthService,
			impl.NewEntryService,
			impl.NewRevenueService,
			impl.NewReportService,
			impl.NewCatalogService,
			impl.NewAdminService,
			impl.NewTenantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEntryHandler,
			handler.NewRevenueHandler,
			handler.NewReportHandler,
			handler.NewCatalogHandler,
			handler.NewAdminHandler,
			handler.NewTenantHandler,
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
		),
	)
}

type seedParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	RoleRepo repository.RoleRepository
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

// seedDefaults ensures the built-in role definitions exist and creates the
// platform super admin account on first start.
func seedDefaults(ctx context.Context, params seedParams) error {
	for _, role := range entity.DefaultRoles() {
		role := role
		if err := params.RoleRepo.EnsureRole(ctx, &role); err != nil {
			return errors.Wrap(err, "failed to ensure default role")
		}
	}

	if params.Config.SuperAdmin == nil {
		return nil
	}

	_, err := params.UserRepo.FindUserByUsername(ctx, params.Config.SuperAdmin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up super admin")
	}

	hash, err := params.Hasher.Hash(params.Config.SuperAdmin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash super admin password")
	}

	admin := &entity.User{
		Username:     params.Config.SuperAdmin.Username,
		PasswordHash: hash,
		RealName:     params.Config.SuperAdmin.RealName,
		IsActive:     true,
		IsSuperAdmin: true,
	}
	if err := params.UserRepo.CreateUser(ctx, admin, nil); err != nil {
		return errors.Wrap(err, "failed to create super admin")
	}

	params.Logger.Info("Created super admin account",
		slog.String("username", params.Config.SuperAdmin.Username))

	return nil
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
