package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/queue"
	mid "github.com/OFFIS-RIT/npdirectory/backend/internal/server/middleware"
	"github.com/OFFIS-RIT/npdirectory/backend/internal/util"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/db/migrations"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// newEcho builds the router without any infrastructure attached.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	RegisterRoutes(e)
	return e
}

func Init() {
	e := newEcho()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbURL := util.GetEnv("DATABASE_URL")
	if util.GetEnvBool("MIGRATE_ON_START", true) {
		if err := migrations.Up(dbURL); err != nil {
			logger.Fatal("Failed to migrate database", "err", err)
		}
	}

	conn, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	que := queue.Init()
	defer que.Close()
	ch, err := que.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	if err := queue.SetupQueues(ch, []string{queue.ReportQueue}); err != nil {
		logger.Fatal("Failed to setup queues", "err", err)
	}

	e.Use(mid.AppContextMiddleware(conn, ch))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
