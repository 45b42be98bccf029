package calllogRepo

import (
	"context"
	"fmt"
	"time"

	"dialhub/database"
	"dialhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCallLogRepo implements CallLogRepository using MongoDB.
type MongoCallLogRepo struct {
	coll *mongo.Collection
}

// NewMongoCallLogRepo creates a new instance of CallLogRepository using MongoDB.
func NewMongoCallLogRepo() CallLogRepository {
	coll := database.MongoClient.Database("dialhub").Collection("call_logs")
	repo := &MongoCallLogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCallLogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert appends one call record.
func (r *MongoCallLogRepo) Insert(log *models.CallLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	log.CreatedAt = time.Now()
	if log.StartedAt.IsZero() {
		log.StartedAt = log.CreatedAt
	}

	if _, err := r.coll.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to insert call log: %w", err)
	}
	return nil
}

// List returns a page of the user's calls, newest first.
func (r *MongoCallLogRepo) List(userID string, page, limit int) ([]models.CallLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "startedAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.CallLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode call logs: %w", err)
	}
	return logs, nil
}

// CountsByDay aggregates per-day totals for the dashboard chart.
func (r *MongoCallLogRepo) CountsByDay(userID string, days int) ([]models.DailyCallCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if days < 1 || days > 90 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId":    userID,
			"startedAt": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$startedAt",
			}},
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.CallStatusCompleted}}, 1, 0},
			}},
			"failed": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.CallStatusFailed}}, 1, 0},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate call counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.DailyCallCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode call counts: %w", err)
	}
	return counts, nil
}
