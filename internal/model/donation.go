package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donation is one pledge against an item. The creation timestamp is immutable;
// the raised amount of an item is always derived from its confirmed donations
// and never stored on the item row.
type Donation struct {
	DonationID string    `json:"donation_id" gorm:"column:donation_id;primaryKey"`
	CreatedAt  time.Time `json:"created_at"`

	ItemID string `json:"item_id" gorm:"not null;index"`

	// 후원자 정보
	DonatorNm      string  `json:"donator_nm" gorm:"not null"`
	DonatorMessage *string `json:"donator_message"` // nil when absent

	DonationAmount int64 `json:"donation_amount" gorm:"not null"`

	// pending donations do not count toward the goal until confirmed
	DonationStatus DonationStatus `json:"donation_status" gorm:"default:'pending'"`

	Item *Item `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ItemID"`
}

// DonationStatus 후원 상태
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusConfirmed DonationStatus = "confirmed"
	DonationStatusDeleted   DonationStatus = "deleted"
)

// ValidDonationStatus reports whether s is one of the enumerated statuses.
func ValidDonationStatus(s string) bool {
	switch DonationStatus(s) {
	case DonationStatusPending, DonationStatusConfirmed, DonationStatusDeleted:
		return true
	}
	return false
}

func (Donation) TableName() string {
	return "donation"
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.DonationID == "" {
		d.DonationID = uuid.NewString()
	}
	return nil
}
