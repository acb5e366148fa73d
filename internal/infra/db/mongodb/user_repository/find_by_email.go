package user_repository

import (
	"context"
	"errors"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByEmailRepository struct {
	Db *mongo.Database
}

func NewFindUserByEmailRepository(db *mongo.Database) *FindUserByEmailRepository {
	return &FindUserByEmailRepository{
		Db: db,
	}
}

func (r *FindUserByEmailRepository) Find(email string) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
