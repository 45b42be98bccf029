// File: dialhub/database/repository/schedule/schedule_mongo.go
package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database("dialhub").Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces one schedule document per user.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves the user's schedule document. A missing
// document is (nil, nil), not an error.
func (r *MongoScheduleRepo) GetByUserID(userID string) (*models.ScheduleDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.ScheduleDocument
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for user %s: %w", userID, err)
	}
	return &doc, nil
}

// Replace upserts the user's schedule document as a whole. Either the
// full replacement lands or nothing does.
func (r *MongoScheduleRepo) Replace(userID string, weekly models.WeeklySchedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc := models.ScheduleDocument{
		UserID:    userID,
		Schedule:  weekly,
		CreatedAt: now,
		UpdatedAt: now,
	}

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"userId":    doc.UserID,
			"schedule":  doc.Schedule,
			"updatedAt": doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": doc.CreatedAt},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to replace schedule for user %s: %w", userID, err)
	}
	return nil
}
