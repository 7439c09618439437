package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixora/database"
	"fixora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services  *mongo.Collection
	addresses *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoCatalogRepo{
		services:  db.Collection("services"),
		addresses: db.Collection("addresses"),
	}
}

func (r *MongoCatalogRepo) FindActiveServiceByID(id string) (*models.ServiceTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "isActive": true, "isDeleted": false}
	var tmpl models.ServiceTemplate
	if err := r.services.FindOne(ctx, filter).Decode(&tmpl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service template with id %s: %w", id, err)
	}
	return &tmpl, nil
}

func (r *MongoCatalogRepo) FindAddressByID(id string) (*models.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var addr models.Address
	if err := r.addresses.FindOne(ctx, bson.M{"id": id}).Decode(&addr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch address with id %s: %w", id, err)
	}
	return &addr, nil
}
