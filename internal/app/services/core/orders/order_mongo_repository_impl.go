package orders

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderMongoRepository keeps one collection per order kind. The document id is
// the visit id, so an upsert replaces the previous selection instead of
// accumulating duplicates.
type OrderMongoRepository struct {
	LabOrders       *mongo.Collection
	RadiologyOrders *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Client, dbName string) OrderRepository {
	database := db.Database(dbName)
	return &OrderMongoRepository{
		LabOrders:       database.Collection(constvars.MongoCollectionLabOrders),
		RadiologyOrders: database.Collection(constvars.MongoCollectionRadiologyOrders),
	}
}

func (r *OrderMongoRepository) collection(kind models.OrderKind) *mongo.Collection {
	if kind == models.OrderKindRadiology {
		return r.RadiologyOrders
	}
	return r.LabOrders
}

func (r *OrderMongoRepository) UpsertOrder(ctx context.Context, order *models.Order) error {
	filter := bson.M{"_id": order.VisitID}
	_, err := r.collection(order.Kind).ReplaceOne(ctx, filter, order, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *OrderMongoRepository) FindOrderByVisitID(ctx context.Context, kind models.OrderKind, visitID string) (*models.Order, error) {
	var order models.Order
	err := r.collection(kind).FindOne(ctx, bson.M{"_id": visitID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &order, nil
}

// FindVisitIDsWithOrder answers, for a page of queue rows, which visits already
// carry an order of the given kind.
func (r *OrderMongoRepository) FindVisitIDsWithOrder(ctx context.Context, kind models.OrderKind, visitIDs []string) (map[string]bool, error) {
	found := make(map[string]bool, len(visitIDs))
	if len(visitIDs) == 0 {
		return found, nil
	}

	filter := bson.M{"_id": bson.M{"$in": visitIDs}}
	projection := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection(kind).Find(ctx, filter, projection)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			VisitID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		found[doc.VisitID] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return found, nil
}
