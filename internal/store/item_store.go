package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func (l *Ledger) CreateItem(item *model.Item) error {
	return l.db.Create(item).Error
}

func (l *Ledger) FindItem(itemID string) (*model.Item, error) {
	var item model.Item
	if err := l.db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, err
	}
	return &item, nil
}

// FindItemWithProject loads the item together with its owning project, the
// chain needed for the ownership check.
func (l *Ledger) FindItemWithProject(itemID string) (*model.Item, error) {
	var item model.Item
	err := l.db.Preload("Project").Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, err
	}
	return &item, nil
}

func (l *Ledger) UpdateItem(itemID string, updates map[string]interface{}) error {
	return l.db.Model(&model.Item{}).Where("item_id = ?", itemID).Updates(updates).Error
}

// NextOrderValue returns 1 + the highest item_order in the project, counting
// items of every status: soft-deleted items keep their order slot.
func (l *Ledger) NextOrderValue(projectID string) (int, error) {
	var maxOrder int
	err := l.db.Model(&model.Item{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(item_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// ItemOrder is one entry of a reorder batch.
type ItemOrder struct {
	ItemID    string `json:"itemId"`
	ItemOrder int    `json:"itemOrder"`
}

// ReorderItems applies the whole batch in one transaction. Every entry must
// hit exactly one item of the project or nothing is changed.
func (l *Ledger) ReorderItems(projectID string, orders []ItemOrder) error {
	tx := l.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, o := range orders {
		res := tx.Model(&model.Item{}).
			Where("item_id = ? AND project_id = ?", o.ItemID, projectID).
			Update("item_order", o.ItemOrder)
		if res.Error != nil {
			tx.Rollback()
			return res.Error
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			return apperr.NotFound("item not found")
		}
	}

	return tx.Commit().Error
}
