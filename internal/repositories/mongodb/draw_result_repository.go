package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DrawResultRepository implements the repositories.DrawResultRepository interface
type DrawResultRepository struct {
	collection *mongo.Collection
}

// NewDrawResultRepository creates a new DrawResultRepository
func NewDrawResultRepository(db *mongo.Database) repositories.DrawResultRepository {
	return &DrawResultRepository{
		collection: db.Collection("draw_results"),
	}
}

// Create creates a new draw result
func (r *DrawResultRepository) Create(ctx context.Context, result *models.DrawResult) error {
	result.CreatedAt = time.Now()
	result.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	result.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CreateMany upserts a batch of draw results, keyed by draw date
func (r *DrawResultRepository) CreateMany(ctx context.Context, results []*models.DrawResult) error {
	if len(results) == 0 {
		return nil
	}
	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(results))
	for _, result := range results {
		result.UpdatedAt = now
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"drawDate": models.DrawDay(result.DrawDate)}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"drawDate":   models.DrawDay(result.DrawDate),
					"whiteBalls": result.WhiteBalls,
					"powerBall":  result.PowerBall,
					"multiplier": result.Multiplier,
					"updatedAt":  now,
				},
				"$setOnInsert": bson.M{"createdAt": now},
			}).
			SetUpsert(true))
	}
	_, err := r.collection.BulkWrite(ctx, writes)
	return err
}

// ReplaceAll upserts the full result set. Existing documents for other dates
// are left in place; the collection is the durable archive, not a cache.
func (r *DrawResultRepository) ReplaceAll(ctx context.Context, results []*models.DrawResult) error {
	return r.CreateMany(ctx, results)
}

// FindByDate finds the draw result for the calendar day of the given date
func (r *DrawResultRepository) FindByDate(ctx context.Context, date time.Time) (*models.DrawResult, error) {
	startOfDay := models.DrawDay(date)
	endOfDay := startOfDay.AddDate(0, 0, 1)
	filter := bson.M{
		"drawDate": bson.M{
			"$gte": startOfDay,
			"$lt":  endOfDay,
		},
	}

	var result models.DrawResult
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrDrawNotFound
		}
		return nil, err
	}
	return &result, nil
}

// FindByDateRange finds draw results within a date range, newest first
func (r *DrawResultRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.DrawResult, error) {
	filter := bson.M{}
	dateFilter := bson.M{}
	if !startDate.IsZero() {
		dateFilter["$gte"] = models.DrawDay(startDate)
	}
	if !endDate.IsZero() {
		dateFilter["$lt"] = models.DrawDay(endDate)
	}
	if len(dateFilter) > 0 {
		filter["drawDate"] = dateFilter
	}

	opts := options.Find().SetSort(bson.M{"drawDate": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*models.DrawResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored draw results
func (r *DrawResultRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
