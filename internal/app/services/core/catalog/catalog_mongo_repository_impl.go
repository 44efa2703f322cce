package catalog

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CatalogMongoRepository struct {
	Drugs            *mongo.Collection
	ServiceItems     *mongo.Collection
	RoomTariffs      *mongo.Collection
	AmbulanceConfigs *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) CatalogRepository {
	database := db.Database(dbName)
	return &CatalogMongoRepository{
		Drugs:            database.Collection(constvars.MongoCollectionDrugs),
		ServiceItems:     database.Collection(constvars.MongoCollectionServiceItems),
		RoomTariffs:      database.Collection(constvars.MongoCollectionRoomTariffs),
		AmbulanceConfigs: database.Collection(constvars.MongoCollectionAmbulanceConfigs),
	}
}

func (r *CatalogMongoRepository) FindDrugByID(ctx context.Context, drugID string) (*models.Drug, error) {
	var drug models.Drug
	err := r.Drugs.FindOne(ctx, bson.M{"_id": drugID, "active": true}).Decode(&drug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &drug, nil
}

func (r *CatalogMongoRepository) FindServiceItemByID(ctx context.Context, itemID string) (*models.ServiceItem, error) {
	var item models.ServiceItem
	err := r.ServiceItems.FindOne(ctx, bson.M{"_id": itemID, "active": true}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *CatalogMongoRepository) FindRoomTariff(ctx context.Context, roomClass, subCategory string) (*models.RoomTariff, error) {
	var tariff models.RoomTariff
	filter := bson.M{
		"roomClass":   roomClass,
		"subCategory": subCategory,
		"active":      true,
	}
	err := r.RoomTariffs.FindOne(ctx, filter).Decode(&tariff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tariff, nil
}

func (r *CatalogMongoRepository) FindAmbulanceConfig(ctx context.Context, vehicleType string) (*models.AmbulanceConfig, error) {
	var config models.AmbulanceConfig
	err := r.AmbulanceConfigs.FindOne(ctx, bson.M{"_id": vehicleType}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &config, nil
}

func (r *CatalogMongoRepository) UpsertAmbulanceConfig(ctx context.Context, config *models.AmbulanceConfig) error {
	filter := bson.M{"_id": config.VehicleType}
	_, err := r.AmbulanceConfigs.ReplaceOne(ctx, filter, config, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// DecrementStock is a conditional single-document update: it only matches
// while enough stock remains, so a plain read-modify-write race cannot push
// the counter below zero.
func (r *CatalogMongoRepository) DecrementStock(ctx context.Context, drugID string, quantity int) error {
	filter := bson.M{"_id": drugID, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.Drugs.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		existing, err := r.FindDrugByID(ctx, drugID)
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrDrugNotFound(nil, drugID)
		}
		return exceptions.ErrInsufficientStock(nil, drugID)
	}
	return nil
}

func (r *CatalogMongoRepository) IncrementStock(ctx context.Context, drugID string, quantity int) error {
	filter := bson.M{"_id": drugID}
	update := bson.M{
		"$inc": bson.M{"stock": quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.Drugs.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDrugNotFound(nil, drugID)
	}
	return nil
}
