package cli

import "go.uber.org/fx"

// Module provides the CLI wired with fx
var Module = fx.Options(
	fx.Provide(NewCLI),
)
