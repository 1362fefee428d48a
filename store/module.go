package store

import "go.uber.org/fx"

// Module provides the in-memory store wired with fx
var Module = fx.Options(
	fx.Provide(New),
)
