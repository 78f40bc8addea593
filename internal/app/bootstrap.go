package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/notification"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/infrastructure/mail"
	"skill-swap/internal/pkg/aftercommit"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/usecase"
	ucauth "skill-swap/internal/usecase/auth"
	ucinvite "skill-swap/internal/usecase/invite"
	ucmatch "skill-swap/internal/usecase/match"
	ucmessage "skill-swap/internal/usecase/message"
	ucnotification "skill-swap/internal/usecase/notification"
	ucuser "skill-swap/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

type Repositories struct {
	Users         user.Repository
	Invites       invite.Repository
	Messages      message.Repository
	Notifications notification.Repository
}

// Deps are the collaborators New wires into use cases and handlers.
type Deps struct {
	Logger       *zap.Logger
	Repositories Repositories
	Revoker      usecase.Revoker
	Mailer       mail.Sender
	AfterCommit  aftercommit.Runner
	Health       handler.Pinger
}

func New(cfg config.Config, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, cfg, deps, logger)

	return &App{Fiber: f}
}

// Bootstrap connects every backing service, prepares the schema and
// returns the HTTP app with a cleanup func releasing those services.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := c.Prepare(ctx); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	app := New(cfg, Deps{
		Logger:       c.Logger,
		Repositories: c.Repositories(),
		Revoker:      c.Denylist,
		Mailer:       c.Mailer,
		AfterCommit:  c.AfterCommit,
		Health:       c.DB,
	})
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, deps Deps, logger *zap.Logger) {
	if app == nil {
		return
	}

	repos := deps.Repositories
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	var denylist middleware.Denylist
	if deps.Revoker != nil {
		denylist = deps.Revoker
	}
	authMw := middleware.NewAuthMiddleware(jwtSvc, denylist, repos.Users)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(repos.Users), repos.Users, jwtSvc, deps.Revoker)
	userUC := ucuser.NewService(repos.Users)
	matchUC := ucmatch.NewService(repos.Users, repos.Invites)
	notificationUC := ucnotification.NewService(repos.Notifications)
	inviteUC := ucinvite.NewService(repos.Invites, repos.Users, notificationUC, deps.Mailer, deps.AfterCommit, logger)
	messageUC := ucmessage.NewService(repos.Messages, repos.Users)

	registry := routes.NewRegistry(handler.NewHealthHandler(deps.Health), v1.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		User:         handler.NewUserHandler(userUC),
		Match:        handler.NewMatchHandler(matchUC),
		Invite:       handler.NewInviteHandler(inviteUC),
		Message:      handler.NewMessageHandler(messageUC, matchUC),
		Notification: handler.NewNotificationHandler(notificationUC),
		Protect:      authMw.Middleware(),
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
