package components

import (
	"slotdesk/internal/infra/readstore"
	"slotdesk/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		repository.NewBookingRepository,
		repository.NewResourceRepository,
		repository.NewUserRepository,
		// Read side
		readstore.NewBookingReadStore,
		readstore.NewResourceReadStore,
		readstore.NewAvailabilityReadStore,
		readstore.NewDashboardReadStore,
	),
)
