// @title         Redpen API
// @version       0.1.0
// @description   Korean text correction endpoints with highlighted diffs

package main

import (
	"context"

	"redpen/internal/platform/config"
	"redpen/internal/platform/logger"
	phttp "redpen/internal/platform/net/http"

	"redpen/internal/adapters/corrector/openrouter"
	"redpen/internal/core/corrector"
	"redpen/internal/core/rulepack"
	"redpen/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	orCfg := root.Prefix("SERVICE_OPENROUTER_") // remote corrector lives under SERVICE_OPENROUTER_*

	// bring up logging early
	l := logger.Get()

	// compile the embedded correction rules
	pack, err := rulepack.Load()
	if err != nil {
		l.Panic().Err(err).Msg("rulepack.Load failed")
	}

	// remote engine is optional, enabled by an API key
	var remote corrector.Corrector
	if key := orCfg.MayString("API_KEY", ""); key != "" {
		remote = openrouter.NewClient(openrouter.Options{
			BaseURL: orCfg.MayString("BASE_URL", ""),
			APIKey:  key,
			Model:   orCfg.MayString("MODEL", ""),
			Referer: orCfg.MayString("REFERER", ""),
			Title:   orCfg.MayString("TITLE", "redpen"),
		})
	} else {
		l.Info().Msg("no openrouter key configured, rule engine only")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Rules:          pack,
			Remote:         remote,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
