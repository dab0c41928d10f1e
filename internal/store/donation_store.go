package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func (l *Ledger) CreateDonation(donation *model.Donation) error {
	return l.db.Create(donation).Error
}

// FindDonationWithItemAndProject loads donation -> item -> project, the full
// chain needed for the ownership check.
func (l *Ledger) FindDonationWithItemAndProject(donationID string) (*model.Donation, error) {
	var donation model.Donation
	err := l.db.Preload("Item.Project").Where("donation_id = ?", donationID).First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("donation not found")
		}
		return nil, err
	}
	return &donation, nil
}

func (l *Ledger) UpdateDonation(donationID string, updates map[string]interface{}) error {
	return l.db.Model(&model.Donation{}).Where("donation_id = ?", donationID).Updates(updates).Error
}

// ListProjectDonations returns every donation across the project's items,
// any status, newest first. This is the owner's administrative view.
func (l *Ledger) ListProjectDonations(projectID string) ([]model.Donation, error) {
	var donations []model.Donation
	err := l.db.
		Joins("JOIN item ON item.item_id = donation.item_id").
		Where("item.project_id = ?", projectID).
		Order("donation.created_at DESC").
		Preload("Item").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

// ListItemDonations returns the public view: confirmed donations only,
// newest first.
func (l *Ledger) ListItemDonations(itemID string) ([]model.Donation, error) {
	var donations []model.Donation
	err := l.db.
		Where("item_id = ? AND donation_status = ?", itemID, model.DonationStatusConfirmed).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

// SumConfirmedDonations derives an item's raised amount from its confirmed
// donations at read time.
func (l *Ledger) SumConfirmedDonations(itemID string) (int64, error) {
	var total int64
	err := l.db.Model(&model.Donation{}).
		Where("item_id = ? AND donation_status = ?", itemID, model.DonationStatusConfirmed).
		Select("COALESCE(SUM(donation_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumConfirmedByProject returns raised amounts keyed by item id for every
// item of the project that has at least one confirmed donation.
func (l *Ledger) SumConfirmedByProject(projectID string) (map[string]int64, error) {
	var rows []struct {
		ItemID string
		Total  int64
	}
	err := l.db.Model(&model.Donation{}).
		Select("donation.item_id AS item_id, SUM(donation.donation_amount) AS total").
		Joins("JOIN item ON item.item_id = donation.item_id").
		Where("item.project_id = ? AND donation.donation_status = ?", projectID, model.DonationStatusConfirmed).
		Group("donation.item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.ItemID] = row.Total
	}
	return totals, nil
}
