package factory

import (
	"github.com/budgify/backend/internal/infra/db/mongodb/user_repository"
	"github.com/budgify/backend/internal/presentation/controllers/auth"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database, accessToken *utils.AccessTokenUtil) *auth.RegisterController {
	createUserRepository := user_repository.NewCreateUserRepository(db)
	findUserByEmailRepository := user_repository.NewFindUserByEmailRepository(db)
	findUserByUsernameRepository := user_repository.NewFindUserByUsernameRepository(db)
	return auth.NewRegisterController(createUserRepository, findUserByEmailRepository, findUserByUsernameRepository, accessToken)
}

func MakeLoginController(db *mongo.Database, accessToken *utils.AccessTokenUtil) *auth.LoginController {
	findUserByEmailRepository := user_repository.NewFindUserByEmailRepository(db)
	return auth.NewLoginController(findUserByEmailRepository, accessToken)
}
