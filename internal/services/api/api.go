// Package api provides the HTTP API for the application
package api

import (
	"redpen/internal/platform/config"
	"redpen/internal/platform/logger"
	phttp "redpen/internal/platform/net/http"

	"redpen/internal/modkit"
	"redpen/internal/modkit/httpkit"
	"redpen/internal/modkit/module"
	"redpen/internal/modkit/swaggerkit"

	"redpen/internal/core/corrector"
	"redpen/internal/core/rulepack"

	correctmod "redpen/internal/services/api/correct/module"
	metamod "redpen/internal/services/api/meta/module"
	rulesmod "redpen/internal/services/api/rules/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	// Rules is the compiled correction rulepack shared by the modules
	Rules *rulepack.Pack

	// Remote is the optional remote correction engine
	Remote corrector.Corrector

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Rules: opt.Rules,
	}

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Remote: opt.Remote})),
		correctmod.New(deps, modkit.WithPorts(correctmod.Ports{Remote: opt.Remote})),
		rulesmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
