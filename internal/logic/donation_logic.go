package logic

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/store"
)

// DonationLogic 후원 비즈니스 로직
type DonationLogic struct {
	store *store.Ledger
}

func NewDonationLogic(db *gorm.DB) *DonationLogic {
	return &DonationLogic{store: store.New(db)}
}

type CreateDonationInput struct {
	ItemID         string
	DonatorNm      string
	DonatorMessage *string
	DonationAmount int64
}

// CreateDonation records a pledge. No ownership check: anonymous supporters
// may donate. Every donation enters at pending and only counts toward the
// goal once the owner confirms it.
func (l *DonationLogic) CreateDonation(in CreateDonationInput) (*model.Donation, error) {
	if in.ItemID == "" {
		return nil, apperr.Validation("item id is required")
	}
	name := strings.TrimSpace(in.DonatorNm)
	if name == "" {
		return nil, apperr.Validation("donator name is required")
	}
	if in.DonationAmount <= 0 {
		return nil, apperr.Validation("donation amount must be positive")
	}

	item, err := l.store.FindItem(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item.ItemStatus == model.ItemStatusDeleted {
		return nil, apperr.NotFound("item not found")
	}

	donation := &model.Donation{
		ItemID:         in.ItemID,
		DonatorNm:      name,
		DonatorMessage: normalizeOptional(in.DonatorMessage),
		DonationAmount: in.DonationAmount,
		DonationStatus: model.DonationStatusPending,
	}
	if err := l.store.CreateDonation(donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// UpdateDonationStatus moves a donation between pending/confirmed/deleted.
// Owner only.
func (l *DonationLogic) UpdateDonationStatus(actorID, donationID, status string) (*model.Donation, error) {
	donation, err := l.fetchOwnedDonation(actorID, donationID)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return nil, apperr.Validation("donation status is required")
	}
	if !model.ValidDonationStatus(status) {
		return nil, apperr.Validation("invalid donation status")
	}

	if err := l.store.UpdateDonation(donationID, map[string]interface{}{
		"donation_status": status,
	}); err != nil {
		return nil, err
	}

	donation.DonationStatus = model.DonationStatus(status)
	return donation, nil
}

// DeleteDonation 후원 소프트 삭제
func (l *DonationLogic) DeleteDonation(actorID, donationID string) error {
	if _, err := l.fetchOwnedDonation(actorID, donationID); err != nil {
		return err
	}
	return l.store.UpdateDonation(donationID, map[string]interface{}{
		"donation_status": model.DonationStatusDeleted,
	})
}

// ListProjectDonations is the owner dashboard: every donation of the project,
// any status, newest first.
func (l *DonationLogic) ListProjectDonations(actorID, projectID string) ([]model.Donation, error) {
	project, err := l.store.FindProject(projectID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(actorID, project.UserID); err != nil {
		return nil, err
	}

	return l.store.ListProjectDonations(projectID)
}

// ListItemDonations is the public supporter list: confirmed donations only.
func (l *DonationLogic) ListItemDonations(itemID string) ([]model.Donation, error) {
	item, err := l.store.FindItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemStatus == model.ItemStatusDeleted {
		return nil, apperr.NotFound("item not found")
	}

	return l.store.ListItemDonations(itemID)
}

func (l *DonationLogic) fetchOwnedDonation(actorID, donationID string) (*model.Donation, error) {
	donation, err := l.store.FindDonationWithItemAndProject(donationID)
	if err != nil {
		return nil, err
	}
	if donation.Item == nil || donation.Item.Project == nil {
		return nil, apperr.NotFound("project not found")
	}
	if err := AuthorizeOwner(actorID, donation.Item.Project.UserID); err != nil {
		return nil, err
	}
	return donation, nil
}
