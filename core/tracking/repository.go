package tracking

import (
	"context"
	"fmt"
	"strings"

	"price-sync/core/database"
	"price-sync/core/reconcile"

	"gorm.io/gorm"
)

// Record is a row of the tracked_items table.
type Record struct {
	ID            uint   `gorm:"column:id;primaryKey"`
	Symbol        string `gorm:"column:symbol;size:16;not null;uniqueIndex"`
	LookupKey     string `gorm:"column:lookup_key;size:64;not null"`
	CatalogItemID string `gorm:"column:catalog_item_id;size:32;not null"`
	Enabled       bool   `gorm:"column:enabled;not null;default:true"`
}

// TableName overrides the table name used by Record.
func (Record) TableName() string {
	return "tracked_items"
}

var requiredColumns = []string{"symbol", "lookup_key", "catalog_item_id", "enabled"}

// Repository loads tracked items from the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the tracked_items table.
// Startup runs it when database.migrate is set.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate tracked_items: %w", err)
	}
	return nil
}

// Load returns every enabled tracked item ordered by symbol.
// The table layout is checked first so a schema drift fails with a readable error.
func (r *Repository) Load(ctx context.Context) ([]reconcile.TrackedItem, error) {
	if err := database.RequireColumns(r.db.WithContext(ctx), Record{}.TableName(), requiredColumns...); err != nil {
		return nil, err
	}

	var rows []Record
	if err := r.db.WithContext(ctx).Where("enabled = ?", true).Order("symbol").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load tracked items: %w", err)
	}

	items := make([]reconcile.TrackedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, reconcile.TrackedItem{
			Symbol:        strings.ToUpper(strings.TrimSpace(row.Symbol)),
			LookupKey:     strings.TrimSpace(row.LookupKey),
			CatalogItemID: strings.TrimSpace(row.CatalogItemID),
		})
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}
