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

const (
	calcTabCollection     = "calc_tabs"
	calcServiceCollection = "calc_services"
)

// CalculatorRepository persists calculator tabs and service rows.
type CalculatorRepository struct {
	tabs     *mongo.Collection
	services *mongo.Collection
}

func NewCalculatorRepository(db *mongo.Database) *CalculatorRepository {
	return &CalculatorRepository{
		tabs:     db.Collection(calcTabCollection),
		services: db.Collection(calcServiceCollection),
	}
}

type mongoCalcTab struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TabKey    string             `bson:"tab_key"`
	NameRU    string             `bson:"name_ru"`
	NameAM    string             `bson:"name_am"`
	SortOrder int                `bson:"sort_order"`
	IsActive  bool               `bson:"is_active"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type mongoCalcService struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	TabID      string             `bson:"tab_id"`
	NameRU     string             `bson:"name_ru"`
	NameAM     string             `bson:"name_am"`
	Price      string             `bson:"price"`
	PriceType  string             `bson:"price_type"`
	PriceTiers string             `bson:"price_tiers_json"`
	TierDescRU string             `bson:"tier_desc_ru"`
	TierDescAM string             `bson:"tier_desc_am"`
	SortOrder  int                `bson:"sort_order"`
	IsActive   bool               `bson:"is_active"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *CalculatorRepository) ListTabs(ctx context.Context) ([]domain.CalcTab, error) {
	cur, err := r.tabs.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list calc tabs: %w", err)
	}
	defer cur.Close(ctx)

	tabs := []domain.CalcTab{}
	for cur.Next(ctx) {
		var mt mongoCalcTab
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode calc tab: %w", err)
		}
		tabs = append(tabs, domain.CalcTab{
			ID:        mt.ID.Hex(),
			TabKey:    mt.TabKey,
			NameRU:    mt.NameRU,
			NameAM:    mt.NameAM,
			SortOrder: mt.SortOrder,
			IsActive:  mt.IsActive,
			UpdatedAt: mt.UpdatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list calc tabs: %w", err)
	}
	return tabs, nil
}

func (r *CalculatorRepository) InsertTab(ctx context.Context, tab *domain.CalcTab) (*domain.CalcTab, error) {
	res, err := r.tabs.InsertOne(ctx, mongoCalcTab{
		TabKey:    tab.TabKey,
		NameRU:    tab.NameRU,
		NameAM:    tab.NameAM,
		SortOrder: tab.SortOrder,
		IsActive:  tab.IsActive,
		UpdatedAt: tab.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert calc tab: %w", err)
	}

	created := *tab
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CalculatorRepository) UpdateTab(ctx context.Context, id string, update ports.CalcTabUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCalcTabNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.NameRU != nil {
		set["name_ru"] = *update.NameRU
	}
	if update.NameAM != nil {
		set["name_am"] = *update.NameAM
	}
	if update.SortOrder != nil {
		set["sort_order"] = *update.SortOrder
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	res, err := r.tabs.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update calc tab: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCalcTabNotFound
	}
	return nil
}

func (r *CalculatorRepository) DeleteTab(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCalcTabNotFound
	}

	res, err := r.tabs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete calc tab: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCalcTabNotFound
	}
	// Rows of a removed tab are orphaned otherwise.
	if _, err := r.services.DeleteMany(ctx, bson.M{"tab_id": id}); err != nil {
		return fmt.Errorf("delete tab services: %w", err)
	}
	return nil
}

func (r *CalculatorRepository) ListServices(ctx context.Context) ([]domain.CalcService, error) {
	cur, err := r.services.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list calc services: %w", err)
	}
	defer cur.Close(ctx)

	services := []domain.CalcService{}
	for cur.Next(ctx) {
		var ms mongoCalcService
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode calc service: %w", err)
		}
		services = append(services, domain.CalcService{
			ID:         ms.ID.Hex(),
			TabID:      ms.TabID,
			NameRU:     ms.NameRU,
			NameAM:     ms.NameAM,
			Price:      ms.Price,
			PriceType:  ms.PriceType,
			PriceTiers: ms.PriceTiers,
			TierDescRU: ms.TierDescRU,
			TierDescAM: ms.TierDescAM,
			SortOrder:  ms.SortOrder,
			IsActive:   ms.IsActive,
			UpdatedAt:  ms.UpdatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list calc services: %w", err)
	}
	return services, nil
}

func (r *CalculatorRepository) InsertService(ctx context.Context, svc *domain.CalcService) (*domain.CalcService, error) {
	res, err := r.services.InsertOne(ctx, mongoCalcService{
		TabID:      svc.TabID,
		NameRU:     svc.NameRU,
		NameAM:     svc.NameAM,
		Price:      svc.Price,
		PriceType:  svc.PriceType,
		PriceTiers: svc.PriceTiers,
		TierDescRU: svc.TierDescRU,
		TierDescAM: svc.TierDescAM,
		SortOrder:  svc.SortOrder,
		IsActive:   svc.IsActive,
		UpdatedAt:  svc.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert calc service: %w", err)
	}

	created := *svc
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CalculatorRepository) UpdateService(ctx context.Context, id string, update ports.CalcServiceUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCalcServiceNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.NameRU != nil {
		set["name_ru"] = *update.NameRU
	}
	if update.NameAM != nil {
		set["name_am"] = *update.NameAM
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.PriceType != nil {
		set["price_type"] = *update.PriceType
	}
	if update.PriceTiers != nil {
		set["price_tiers_json"] = *update.PriceTiers
	}
	if update.TierDescRU != nil {
		set["tier_desc_ru"] = *update.TierDescRU
	}
	if update.TierDescAM != nil {
		set["tier_desc_am"] = *update.TierDescAM
	}
	if update.SortOrder != nil {
		set["sort_order"] = *update.SortOrder
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	res, err := r.services.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update calc service: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCalcServiceNotFound
	}
	return nil
}

func (r *CalculatorRepository) DeleteService(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCalcServiceNotFound
	}

	res, err := r.services.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete calc service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCalcServiceNotFound
	}
	return nil
}
