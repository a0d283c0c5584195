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

const (
	contentCollection = "site_content"
	settingCollection = "settings"
)

// ContentRepository persists block-constructor site content, keyed by section.
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{coll: db.Collection(contentCollection)}
}

type mongoContent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SectionKey  string             `bson:"section_key"`
	SectionName string             `bson:"section_name"`
	Content     any                `bson:"content_json"`
	SortOrder   int                `bson:"sort_order"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mc *mongoContent) toDomain() *domain.ContentSection {
	return &domain.ContentSection{
		ID:          mc.ID.Hex(),
		SectionKey:  mc.SectionKey,
		SectionName: mc.SectionName,
		Content:     mc.Content,
		SortOrder:   mc.SortOrder,
		UpdatedAt:   mc.UpdatedAt.UTC(),
	}
}

func (r *ContentRepository) List(ctx context.Context) ([]domain.ContentSection, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer cur.Close(ctx)

	sections := []domain.ContentSection{}
	for cur.Next(ctx) {
		var mc mongoContent
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode content: %w", err)
		}
		sections = append(sections, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return sections, nil
}

func (r *ContentRepository) Get(ctx context.Context, key string) (*domain.ContentSection, error) {
	var mc mongoContent
	if err := r.coll.FindOne(ctx, bson.M{"section_key": key}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ContentRepository) Upsert(ctx context.Context, section *domain.ContentSection) error {
	set := bson.M{
		"content_json": section.Content,
		"updated_at":   section.UpdatedAt,
	}
	if section.SectionName != "" {
		set["section_name"] = section.SectionName
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"section_key": section.SectionKey,
			"sort_order":  section.SortOrder,
		},
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"section_key": section.SectionKey}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, key string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"section_key": key})
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

// SettingRepository persists singleton configuration documents, one per key.
type SettingRepository struct {
	coll *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{coll: db.Collection(settingCollection)}
}

type mongoSetting struct {
	Key       string         `bson:"_id"`
	Value     map[string]any `bson:"value"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var ms mongoSetting
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSettingNotFound
		}
		return nil, fmt.Errorf("find setting: %w", err)
	}
	return &domain.Setting{Key: ms.Key, Value: ms.Value, UpdatedAt: ms.UpdatedAt.UTC()}, nil
}

func (r *SettingRepository) Put(ctx context.Context, setting *domain.Setting) error {
	doc := mongoSetting{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": setting.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put setting: %w", err)
	}
	return nil
}
