package main

import (
	"flag"

	"csvvault/global"
	"csvvault/initialize"
	"csvvault/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	global.Logger.Info().
		Str("host", app.Cfg.Server.Host).
		Int("port", app.Cfg.Server.Port).
		Msg("starting http server")
	if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
