package templatesfx

import (
	"go.uber.org/fx"

	"tripweaver/internal/repositories"
)

var Module = fx.Provide(ProvideTemplateRepository)

func ProvideTemplateRepository() repositories.TemplateRepository {
	return repositories.NewTemplateRepository()
}
