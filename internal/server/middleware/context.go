package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"
)

type App struct {
	DBConn *pgxpool.Pool
	Queue  *amqp091.Channel
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(db *pgxpool.Pool, queue *amqp091.Channel) echo.MiddlewareFunc {
	app := &App{
		DBConn: db,
		Queue:  queue,
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
