package routes

import (
	"net/http"

	"github.com/budgify/backend/internal/setup/adapters"
	"github.com/budgify/backend/internal/setup/factory"
)

func StatusRoutes(server *http.ServeMux) {
	server.Handle("GET /{$}", adapters.AdaptRoute(factory.MakeRootController()))

	server.Handle("GET /health", adapters.AdaptRoute(factory.MakeHealthController()))
}
