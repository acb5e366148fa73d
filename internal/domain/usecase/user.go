package usecase

import (
	"github.com/budgify/backend/internal/domain/models"
)

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByEmailRepository interface {
	Find(email string) (*models.User, error)
}

type FindUserByUsernameRepository interface {
	Find(username string) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(userId int64) (*models.User, error)
}
