package contactRepo

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

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	coll := database.MongoClient.Database("dialhub").Collection("contacts")
	repo := &MongoContactRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new contact document.
func (r *MongoContactRepo) Create(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update modifies an existing contact, scoped to its owner.
func (r *MongoContactRepo) Update(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	contact.UpdatedAt = time.Now()
	filter := bson.M{"id": contact.ID, "userId": contact.UserID}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": contact})
	if err != nil {
		return fmt.Errorf("failed to update contact %s: %w", contact.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact %s not found", contact.ID)
	}
	return nil
}

// Delete removes a contact, scoped to its owner.
func (r *MongoContactRepo) Delete(userID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete contact %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact %s not found", id)
	}
	return nil
}

// GetByID fetches one contact, scoped to its owner.
func (r *MongoContactRepo) GetByID(userID, id string) (*models.Contact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contact models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact %s: %w", id, err)
	}
	return &contact, nil
}

// List returns a page of the user's contacts, newest first.
func (r *MongoContactRepo) List(userID string, page, limit int) ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

// ListByStatus returns up to limit contacts in the given pipeline state.
func (r *MongoContactRepo) ListByStatus(userID, status string, limit int) ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if limit < 1 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID, "status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts by status: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
