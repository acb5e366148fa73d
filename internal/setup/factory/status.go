package factory

import (
	"github.com/budgify/backend/internal/presentation/controllers/status"
)

func MakeRootController() *status.RootController {
	return status.NewRootController()
}

func MakeHealthController() *status.HealthController {
	return status.NewHealthController()
}
