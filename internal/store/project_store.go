package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func (l *Ledger) CreateProject(project *model.Project) error {
	return l.db.Create(project).Error
}

// FindProject fetches a project row regardless of status. Callers decide what
// a deleted status means for them.
func (l *Ledger) FindProject(projectID string) (*model.Project, error) {
	var project model.Project
	if err := l.db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (l *Ledger) UpdateProject(projectID string, updates map[string]interface{}) error {
	return l.db.Model(&model.Project{}).Where("project_id = ?", projectID).Updates(updates).Error
}

// ListItems returns the project's items in display order, limited to the
// given statuses. Order ties are broken by creation time.
func (l *Ledger) ListItems(projectID string, statuses []model.ItemStatus) ([]model.Item, error) {
	var items []model.Item
	err := l.db.Where("project_id = ? AND item_status IN ?", projectID, statuses).
		Order("item_order ASC, created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
