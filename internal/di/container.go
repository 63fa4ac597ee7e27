// Package di provides dependency injection configuration for the BookTrack
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/booktrackapp/booktrack-server/internal/config"
	"github.com/booktrackapp/booktrack-server/internal/di/providers"
	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/service"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Provider clients
	do.Provide(injector, providers.ProvideSupabaseClient)
	do.Provide(injector, providers.ProvideTextGenerator)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideRecommendationService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services by triggering their lazy construction.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*supabase.Client](injector)
	_ = do.MustInvoke[providers.Generator](injector)
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
