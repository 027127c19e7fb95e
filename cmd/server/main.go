package main

import (
	"github.com/OFFIS-RIT/npdirectory/backend/internal/server"
	"github.com/OFFIS-RIT/npdirectory/backend/internal/util"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		JSON:   util.GetEnvString("LOG_FORMAT", "text") == "json",
		Prefix: "server",
	})
	logger.Init(consoleLogger)

	server.Init()
}
