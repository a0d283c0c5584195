package domain

import (
	"errors"
	"time"
)

var ErrContentNotFound = errors.New("content section not found")
var ErrCalcTabNotFound = errors.New("calculator tab not found")
var ErrCalcServiceNotFound = errors.New("calculator service not found")

// ContentSection is a keyed block of site content edited through the block
// constructor. Content holds arbitrary JSON (lists of typed blocks).
type ContentSection struct {
	ID          string    `json:"id"`
	SectionKey  string    `json:"section_key"`
	SectionName string    `json:"section_name"`
	Content     any       `json:"content_json"`
	SortOrder   int       `json:"sort_order"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CalcTab is a pricing category tab of the site calculator.
type CalcTab struct {
	ID        string    `json:"id"`
	TabKey    string    `json:"tab_key"`
	NameRU    string    `json:"name_ru"`
	NameAM    string    `json:"name_am"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalcService is a single priced row of the calculator, belonging to a tab.
// PriceTiers holds the serialized tier table when PriceType is "tiered".
type CalcService struct {
	ID         string    `json:"id"`
	TabID      string    `json:"tab_id"`
	NameRU     string    `json:"name_ru"`
	NameAM     string    `json:"name_am"`
	Price      string    `json:"price"`
	PriceType  string    `json:"price_type"`
	PriceTiers string    `json:"price_tiers_json"`
	TierDescRU string    `json:"tier_desc_ru"`
	TierDescAM string    `json:"tier_desc_am"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}
