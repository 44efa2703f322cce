package visits

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VisitMongoRepository struct {
	Visits *mongo.Collection
}

func NewVisitMongoRepository(db *mongo.Client, dbName string) VisitRepository {
	return &VisitMongoRepository{
		Visits: db.Database(dbName).Collection(constvars.MongoCollectionVisits),
	}
}

func (r *VisitMongoRepository) CreateVisit(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	if visit.ID == "" {
		visit.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Visits.InsertOne(ctx, visit)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return visit, nil
}

func (r *VisitMongoRepository) FindVisitByID(ctx context.Context, visitID string) (*models.Visit, error) {
	var visit models.Visit
	err := r.Visits.FindOne(ctx, bson.M{"_id": visitID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

// UpdateClinicalLines writes the clinical field group in one document update:
// both line lists, the derived total and the derived dispensation marker. The
// total is always the aggregator's output for the lists written here.
func (r *VisitMongoRepository) UpdateClinicalLines(ctx context.Context, visitID string, services []models.VisitService, prescriptions []models.VisitPrescription, totalBiaya int64, dispensationStatus models.DispensationStatus) error {
	update := bson.M{"$set": bson.M{
		"services":           services,
		"prescriptions":      prescriptions,
		"totalBiaya":         totalBiaya,
		"dispensationStatus": dispensationStatus,
		"updatedAt":          time.Now(),
	}}
	return r.updateOne(ctx, visitID, update)
}

func (r *VisitMongoRepository) UpdateExam(ctx context.Context, visitID string, exam *models.Examination) error {
	update := bson.M{"$set": bson.M{
		"exam":      exam,
		"updatedAt": time.Now(),
	}}
	return r.updateOne(ctx, visitID, update)
}

func (r *VisitMongoRepository) UpdateStatus(ctx context.Context, visitID string, status models.VisitStatus) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	return r.updateOne(ctx, visitID, update)
}

func (r *VisitMongoRepository) UpdatePayment(ctx context.Context, visitID, method, paidBy string, paidAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentPaid,
		"paymentMethod": method,
		"paidBy":        paidBy,
		"paymentTime":   paidAt,
		"updatedAt":     time.Now(),
	}}
	return r.updateOne(ctx, visitID, update)
}

func (r *VisitMongoRepository) UpdateDispensation(ctx context.Context, visitID, dispensedBy string, dispensedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"dispensationStatus": models.DispensationDone,
		"dispensedBy":        dispensedBy,
		"dispensationTime":   dispensedAt,
		"updatedAt":          time.Now(),
	}}
	return r.updateOne(ctx, visitID, update)
}

func (r *VisitMongoRepository) updateOne(ctx context.Context, visitID string, update bson.M) error {
	result, err := r.Visits.UpdateOne(ctx, bson.M{"_id": visitID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrVisitNotFound(nil)
	}
	return nil
}

func (r *VisitMongoRepository) FindCashierQueue(ctx context.Context, page, pageSize int) ([]models.Visit, int, error) {
	filter := bson.M{
		"status":        models.VisitDone,
		"paymentStatus": models.PaymentUnpaid,
	}
	return r.findQueue(ctx, filter, page, pageSize)
}

func (r *VisitMongoRepository) FindPharmacyQueue(ctx context.Context, page, pageSize int) ([]models.Visit, int, error) {
	filter := bson.M{
		"status":             models.VisitDone,
		"dispensationStatus": models.DispensationPending,
	}
	return r.findQueue(ctx, filter, page, pageSize)
}

// FindExamFlagQueue serves the lab and radiology views: finished visits whose
// examination carries the corresponding advisory flag.
func (r *VisitMongoRepository) FindExamFlagQueue(ctx context.Context, flag string, page, pageSize int) ([]models.Visit, int, error) {
	filter := bson.M{
		"status":       models.VisitDone,
		"exam." + flag: true,
	}
	return r.findQueue(ctx, filter, page, pageSize)
}

func (r *VisitMongoRepository) findQueue(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Visit, int, error) {
	total, err := r.Visits.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Visits.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.Visit, 0, pageSize)
	for cursor.Next(ctx) {
		var visit models.Visit
		if err := cursor.Decode(&visit); err != nil {
			return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
		}
		visits = append(visits, visit)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, int(total), nil
}
