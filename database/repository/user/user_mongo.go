package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixora/database"
	"fixora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("users")
	return &MongoUserRepo{coll: coll}
}

func (r *MongoUserRepo) FindByID(id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	projection := bson.M{
		"id":             1,
		"name":           1,
		"phoneNumber":    1,
		"mobileVerified": 1,
		"isActive":       1,
		"isBlocked":      1,
	}
	opts := options.FindOne().SetProjection(projection)

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}
