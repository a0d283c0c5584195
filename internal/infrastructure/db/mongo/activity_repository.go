package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gototop/admin-api/internal/core/domain"
)

const activityCollection = "activity_log"

// ActivityRepository persists the audit trail in the activity_log collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	UserName  string             `bson:"user_name"`
	Action    string             `bson:"action"`
	Details   string             `bson:"details,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, mongoActivity{
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Action:    entry.Action,
		Details:   entry.Details,
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := []domain.ActivityEntry{}
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, domain.ActivityEntry{
			ID:        ma.ID.Hex(),
			UserID:    ma.UserID,
			UserName:  ma.UserName,
			Action:    ma.Action,
			Details:   ma.Details,
			CreatedAt: ma.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}
