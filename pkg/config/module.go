package config

import "go.uber.org/fx"

// Module provides the loaded configuration wired with fx
func Module() fx.Option {
	return fx.Provide(Load)
}
