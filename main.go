package main

import (
	"flag"
	"fmt"
	"wordquest/global"
	"wordquest/initialize"
	"wordquest/server"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file")
	flag.Parse()

	// Optional .env file for DATABASE_URL / SESSION_SECRET overrides.
	_ = godotenv.Load()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	addr := fmt.Sprintf("%s:%d", app.Cfg.Server.Host, app.Cfg.Server.Port)
	global.Logger.Info().Str("addr", addr).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
