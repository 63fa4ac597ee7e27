package providers

import (
	"github.com/samber/do/v2"

	"github.com/booktrackapp/booktrack-server/internal/config"
	"github.com/booktrackapp/booktrack-server/internal/gemini"
	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/service"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// Generator wraps the optional text generator. The value is nil when no
// Gemini API key is configured; the recommendation service then reports
// the provider as unavailable.
type Generator struct {
	service.TextGenerator
}

// ProvideSupabaseClient provides the identity/store gateway client.
func ProvideSupabaseClient(i do.Injector) (*supabase.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return supabase.New(cfg.Supabase.URL, cfg.Supabase.Key, log.Logger), nil
}

// ProvideTextGenerator provides the Gemini client when configured.
func ProvideTextGenerator(i do.Injector) (Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.AIEnabled() {
		log.Warn("GEMINI_API_KEY not set, recommendations endpoint disabled")
		return Generator{}, nil
	}

	log.Info("Gemini client configured", "model", cfg.Gemini.Model)
	return Generator{TextGenerator: gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, log.Logger)}, nil
}
