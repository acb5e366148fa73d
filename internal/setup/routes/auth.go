package routes

import (
	"net/http"

	"github.com/budgify/backend/internal/setup/adapters"
	"github.com/budgify/backend/internal/setup/factory"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database, accessToken *utils.AccessTokenUtil) {
	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db, accessToken)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db, accessToken)))
}
