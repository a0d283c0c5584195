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
	"github.com/gototop/admin-api/internal/core/ports"
)

const leadCollection = "leads"

// LeadRepository persists leads in the leads collection.
type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(leadCollection)}
}

// EnsureIndexes creates the listing indexes. Called once at startup.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("leads indexes: %w", err)
	}
	return nil
}

type mongoLead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Source       string             `bson:"source"`
	Name         string             `bson:"name"`
	Contact      string             `bson:"contact"`
	Product      string             `bson:"product"`
	Service      string             `bson:"service"`
	Message      string             `bson:"message"`
	Lang         string             `bson:"lang"`
	Status       string             `bson:"status"`
	Notes        string             `bson:"notes"`
	AssignedTo   string             `bson:"assigned_to"`
	AssignedName string             `bson:"assigned_name"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (ml *mongoLead) toDomain() *domain.Lead {
	return &domain.Lead{
		ID:           ml.ID.Hex(),
		Source:       ml.Source,
		Name:         ml.Name,
		Contact:      ml.Contact,
		Product:      ml.Product,
		Service:      ml.Service,
		Message:      ml.Message,
		Lang:         ml.Lang,
		Status:       domain.LeadStatus(ml.Status),
		Notes:        ml.Notes,
		AssignedTo:   ml.AssignedTo,
		AssignedName: ml.AssignedName,
		CreatedAt:    ml.CreatedAt.UTC(),
		UpdatedAt:    ml.UpdatedAt.UTC(),
	}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	doc := mongoLead{
		Source:       lead.Source,
		Name:         lead.Name,
		Contact:      lead.Contact,
		Product:      lead.Product,
		Service:      lead.Service,
		Message:      lead.Message,
		Lang:         lead.Lang,
		Status:       string(lead.Status),
		Notes:        lead.Notes,
		AssignedTo:   lead.AssignedTo,
		AssignedName: lead.AssignedName,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	created := *lead
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	var ml mongoLead
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LeadRepository) List(ctx context.Context, filter ports.LeadFilter) ([]domain.Lead, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := []domain.Lead{}
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, 0, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, *ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	return leads, total, nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, update ports.LeadUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLeadNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.AssignedTo != nil {
		set["assigned_to"] = *update.AssignedTo
	}
	if update.AssignedName != nil {
		set["assigned_name"] = *update.AssignedName
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLeadNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Recent(ctx context.Context, limit int) ([]domain.Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := []domain.Lead{}
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, *ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("recent leads: %w", err)
	}
	return leads, nil
}

// groupCount aggregates document counts grouped by the given field.
func (r *LeadRepository) groupCount(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate leads by %s: %w", field, err)
	}
	defer cur.Close(ctx)

	counts := map[string]int64{}
	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode aggregate row: %w", err)
		}
		counts[row.ID] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("aggregate leads by %s: %w", field, err)
	}
	return counts, nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, "status")
}

func (r *LeadRepository) CountBySource(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, "source")
}

func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("count leads since: %w", err)
	}
	return n, nil
}
