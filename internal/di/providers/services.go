package providers

import (
	"github.com/samber/do/v2"

	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/service"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	client := do.MustInvoke[*supabase.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(client, log), nil
}

// ProvideBookService provides the book CRUD/statistics service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	client := do.MustInvoke[*supabase.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(client, log), nil
}

// ProvideRecommendationService provides the recommendation service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	client := do.MustInvoke[*supabase.Client](i)
	gen := do.MustInvoke[Generator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendationService(client, gen.TextGenerator, log), nil
}
