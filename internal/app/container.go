package app

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/database/migration"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/infrastructure/mail"
	"skill-swap/internal/pkg/aftercommit"
	"skill-swap/internal/repository"
	"skill-swap/migrations"

	"go.uber.org/zap"
)

// Container owns the process-wide resources: the pgx pool, the Redis
// denylist, the mailer and the after-commit worker.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB          database.DB
	Denylist    *cache.TokenDenylist
	Mailer      mail.Sender
	AfterCommit *aftercommit.Async
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Denylist:    cache.NewTokenDenylist(cfg.Redis, logger),
		Mailer:      mail.NewSender(cfg.Mail, logger),
		AfterCommit: aftercommit.NewAsync(cfg.Invite.SideEffectTimeout, logger),
	}, nil
}

// Prepare applies pending migrations and seeders according to the
// DB_RUN_MIGRATIONS and DB_RUN_SEEDERS toggles.
func (c *Container) Prepare(ctx context.Context) error {
	if c.Config.Database.RunMigrations {
		r := migration.Runner{Source: migrations.FS, Logger: c.Logger}
		if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
			return err
		}
	}
	if c.Config.Database.RunSeeders {
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
		if err := r.Run(ctx, c.DB); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) Repositories() Repositories {
	return Repositories{
		Users:         repository.NewPostgresUserRepository(c.DB),
		Invites:       repository.NewPostgresInviteRepository(c.DB),
		Messages:      repository.NewPostgresMessageRepository(c.DB),
		Notifications: repository.NewPostgresNotificationRepository(c.DB),
	}
}

// Close drains in-flight after-commit actions before releasing the pool
// they may still be using.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.AfterCommit != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.AfterCommit.Wait(ctx); err != nil {
			c.Logger.Warn("after-commit actions still running at shutdown", zap.Error(err))
		}
		cancel()
	}
	if c.Denylist != nil {
		errs = append(errs, c.Denylist.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
