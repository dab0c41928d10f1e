package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a single gift inside a project. It never moves between projects.
type Item struct {
	ItemID    string    `json:"item_id" gorm:"column:item_id;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID string `json:"project_id" gorm:"not null;index"`

	ItemTitle string  `json:"item_title" gorm:"not null"`
	ItemURL   string  `json:"item_url" gorm:"not null"`
	ItemImage *string `json:"item_image"` // nil when no image was ever set

	// 목표 금액 (원 단위)
	ItemPrice int64 `json:"item_price" gorm:"not null"`

	ItemStatus ItemStatus `json:"item_status" gorm:"default:'active'"`

	// Manual display order; ties broken by created_at
	ItemOrder int `json:"item_order" gorm:"not null"`

	Project   *Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ProjectID"`
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:ItemID;references:ItemID"`
}

// ItemStatus 선물 상태
type ItemStatus string

const (
	ItemStatusActive    ItemStatus = "active"
	ItemStatusHidden    ItemStatus = "hidden"
	ItemStatusCompleted ItemStatus = "completed"
	ItemStatusDeleted   ItemStatus = "deleted"
)

func (Item) TableName() string {
	return "item"
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ItemID == "" {
		i.ItemID = uuid.NewString()
	}
	return nil
}

// ValidItemStatus reports whether s is one of the enumerated statuses.
func ValidItemStatus(s string) bool {
	switch ItemStatus(s) {
	case ItemStatusActive, ItemStatusHidden, ItemStatusCompleted, ItemStatusDeleted:
		return true
	}
	return false
}
