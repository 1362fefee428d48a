package main

import (
	"itemstore/pkg/config"
	"itemstore/pkg/logger"
	"itemstore/server"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		logger.Module("itemstored"),
		config.Module(),
		server.Module(),
	)

	app.Run()
}
