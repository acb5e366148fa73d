package user_repository

import (
	"context"
	"errors"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByIdRepository struct {
	Db *mongo.Database
}

func NewFindUserByIdRepository(db *mongo.Database) *FindUserByIdRepository {
	return &FindUserByIdRepository{
		Db: db,
	}
}

func (r *FindUserByIdRepository) Find(userId int64) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"_id": userId}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
