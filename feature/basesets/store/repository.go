package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists scan inventories and selections.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the store tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&SetRecord{}, &Selection{}); err != nil {
		return fmt.Errorf("failed to migrate base set tables: %w", err)
	}
	return nil
}

// SaveInventory replaces the records of kind with records in one transaction.
func (r *Repository) SaveInventory(ctx context.Context, kind string, records []SetRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ?", kind).Delete(&SetRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].ID = 0
			records[i].Kind = kind
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save %s inventory: %w", kind, err)
	}
	return nil
}

// Inventory returns the stored records of kind in the order they were saved.
func (r *Repository) Inventory(ctx context.Context, kind string) ([]SetRecord, error) {
	var records []SetRecord
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s inventory: %w", kind, err)
	}
	return records, nil
}

// SaveSelection stores name as the selected set of kind.
func (r *Repository) SaveSelection(ctx context.Context, kind, name string) error {
	sel := Selection{Kind: kind, Name: name, UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&sel).Error
	if err != nil {
		return fmt.Errorf("failed to save %s selection: %w", kind, err)
	}
	return nil
}

// LoadSelection returns the stored selection of kind, or "" when none exists.
func (r *Repository) LoadSelection(ctx context.Context, kind string) (string, error) {
	var sel Selection
	err := r.db.WithContext(ctx).Where("kind = ?", kind).First(&sel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load %s selection: %w", kind, err)
	}
	return sel.Name, nil
}
