package logic

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/store"
)

// ItemLogic 선물 비즈니스 로직
type ItemLogic struct {
	store *store.Ledger
}

func NewItemLogic(db *gorm.DB) *ItemLogic {
	return &ItemLogic{store: store.New(db)}
}

type CreateItemInput struct {
	ProjectID string
	ItemTitle string
	ItemURL   string
	ItemImage *string
	ItemPrice int64
}

// CreateItem inserts a new item at the end of the project's display order.
func (l *ItemLogic) CreateItem(actorID string, in CreateItemInput) (*model.Item, error) {
	if in.ProjectID == "" {
		return nil, apperr.Validation("project id is required")
	}
	title := strings.TrimSpace(in.ItemTitle)
	if title == "" {
		return nil, apperr.Validation("item title is required")
	}
	url := strings.TrimSpace(in.ItemURL)
	if url == "" {
		return nil, apperr.Validation("item url is required")
	}
	if in.ItemPrice <= 0 {
		return nil, apperr.Validation("item price must be positive")
	}

	project, err := l.store.FindProject(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(actorID, project.UserID); err != nil {
		return nil, err
	}

	order, err := l.store.NextOrderValue(in.ProjectID)
	if err != nil {
		return nil, err
	}

	item := &model.Item{
		ProjectID:  in.ProjectID,
		ItemTitle:  title,
		ItemURL:    url,
		ItemImage:  normalizeOptional(in.ItemImage),
		ItemPrice:  in.ItemPrice,
		ItemStatus: model.ItemStatusActive,
		ItemOrder:  order,
	}
	if err := l.store.CreateItem(item); err != nil {
		return nil, err
	}

	return item, nil
}

type UpdateItemInput struct {
	ItemTitle  *string
	ItemURL    *string
	ItemImage  *string
	ItemPrice  *int64
	ItemStatus *string
	ItemOrder  *int
}

// UpdateItem applies only the provided fields. A provided-but-blank image
// clears it to absent; blank title/url are ignored like omitted fields.
func (l *ItemLogic) UpdateItem(actorID, itemID string, in UpdateItemInput) (*model.Item, error) {
	item, err := l.fetchOwnedItem(actorID, itemID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.ItemTitle != nil {
		if title := strings.TrimSpace(*in.ItemTitle); title != "" {
			updates["item_title"] = title
		}
	}
	if in.ItemURL != nil {
		if url := strings.TrimSpace(*in.ItemURL); url != "" {
			updates["item_url"] = url
		}
	}
	if in.ItemImage != nil {
		updates["item_image"] = normalizeOptional(in.ItemImage)
	}
	if in.ItemPrice != nil {
		if *in.ItemPrice <= 0 {
			return nil, apperr.Validation("item price must be positive")
		}
		updates["item_price"] = *in.ItemPrice
	}
	if in.ItemStatus != nil {
		if !model.ValidItemStatus(*in.ItemStatus) {
			return nil, apperr.Validation("invalid item status")
		}
		updates["item_status"] = *in.ItemStatus
	}
	if in.ItemOrder != nil {
		updates["item_order"] = *in.ItemOrder
	}

	if len(updates) == 0 {
		return item, nil
	}

	if err := l.store.UpdateItem(itemID, updates); err != nil {
		return nil, err
	}

	return l.store.FindItem(itemID)
}

// DeleteItem 선물 소프트 삭제
func (l *ItemLogic) DeleteItem(actorID, itemID string) error {
	if _, err := l.fetchOwnedItem(actorID, itemID); err != nil {
		return err
	}
	return l.store.UpdateItem(itemID, map[string]interface{}{
		"item_status": model.ItemStatusDeleted,
	})
}

// ReorderItems replaces the display order of the given items as one atomic
// batch.
func (l *ItemLogic) ReorderItems(actorID, projectID string, orders []store.ItemOrder) error {
	if projectID == "" || len(orders) == 0 {
		return apperr.Validation("invalid request")
	}
	for _, o := range orders {
		if o.ItemID == "" {
			return apperr.Validation("invalid request")
		}
	}

	project, err := l.store.FindProject(projectID)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(actorID, project.UserID); err != nil {
		return err
	}

	return l.store.ReorderItems(projectID, orders)
}

// ItemProgress is the derived funding state of one item.
type ItemProgress struct {
	Raised  int64   `json:"raised"`
	Goal    int64   `json:"goal"`
	Percent float64 `json:"percent"`
}

// GetItemProgress recomputes the raised amount from confirmed donations on
// every call.
func (l *ItemLogic) GetItemProgress(itemID string) (*ItemProgress, error) {
	item, err := l.store.FindItem(itemID)
	if err != nil {
		return nil, err
	}

	raised, err := l.store.SumConfirmedDonations(itemID)
	if err != nil {
		return nil, err
	}

	return &ItemProgress{
		Raised:  raised,
		Goal:    item.ItemPrice,
		Percent: progressPercent(raised, item.ItemPrice),
	}, nil
}

func (l *ItemLogic) fetchOwnedItem(actorID, itemID string) (*model.Item, error) {
	item, err := l.store.FindItemWithProject(itemID)
	if err != nil {
		return nil, err
	}
	if item.Project == nil {
		return nil, apperr.NotFound("project not found")
	}
	if err := AuthorizeOwner(actorID, item.Project.UserID); err != nil {
		return nil, err
	}
	return item, nil
}

// progressPercent clamps to [0, 100]; a zero goal is always 0%.
func progressPercent(raised, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	percent := float64(raised) / float64(goal) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// normalizeOptional trims and maps blank to absent, so "never set" and
// "cleared" both store as NULL.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
