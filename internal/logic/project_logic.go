package logic

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/store"
)

// ProjectLogic 프로젝트 비즈니스 로직
type ProjectLogic struct {
	store *store.Ledger
}

func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{store: store.New(db)}
}

type CreateProjectInput struct {
	ProjectTitle    string
	ProjectSubtitle string
	AccountBank     string
	AccountNumber   string
	AccountHolder   string
}

func (l *ProjectLogic) CreateProject(actorID string, in CreateProjectInput) (*model.Project, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated()
	}
	title := strings.TrimSpace(in.ProjectTitle)
	if title == "" {
		return nil, apperr.Validation("project title is required")
	}

	project := &model.Project{
		UserID:          actorID,
		ProjectTitle:    title,
		ProjectSubtitle: strings.TrimSpace(in.ProjectSubtitle),
		AccountBank:     strings.TrimSpace(in.AccountBank),
		AccountNumber:   strings.TrimSpace(in.AccountNumber),
		AccountHolder:   strings.TrimSpace(in.AccountHolder),
		ProjectStatus:   model.ProjectStatusActive,
	}
	if err := l.store.CreateProject(project); err != nil {
		return nil, err
	}

	return project, nil
}

// ItemWithProgress is an item plus its derived funding state.
type ItemWithProgress struct {
	model.Item
	Raised  int64   `json:"raised"`
	Percent float64 `json:"percent"`
}

// ProjectPage is the public view of a project: visible items with progress.
type ProjectPage struct {
	Project *model.Project     `json:"project"`
	Items   []ItemWithProgress `json:"items"`
}

// GetProjectPage builds the public project page. Hidden and deleted items are
// excluded; raised amounts come from one grouped aggregate query.
func (l *ProjectLogic) GetProjectPage(projectID string) (*ProjectPage, error) {
	project, err := l.store.FindProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.ProjectStatus == model.ProjectStatusDeleted {
		return nil, apperr.NotFound("project not found")
	}

	items, err := l.store.ListItems(projectID, []model.ItemStatus{
		model.ItemStatusActive,
		model.ItemStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	totals, err := l.store.SumConfirmedByProject(projectID)
	if err != nil {
		return nil, err
	}

	page := &ProjectPage{Project: project, Items: make([]ItemWithProgress, 0, len(items))}
	for _, item := range items {
		raised := totals[item.ItemID]
		page.Items = append(page.Items, ItemWithProgress{
			Item:    item,
			Raised:  raised,
			Percent: progressPercent(raised, item.ItemPrice),
		})
	}

	return page, nil
}

type UpdateProjectInput struct {
	ProjectTitle    *string
	ProjectSubtitle *string
	AccountBank     *string
	AccountNumber   *string
	AccountHolder   *string
	ProjectStatus   *string
}

// UpdateProject applies only the provided fields. A deleted project stays
// deleted: there is no restore path.
func (l *ProjectLogic) UpdateProject(actorID, projectID string, in UpdateProjectInput) (*model.Project, error) {
	project, err := l.fetchOwnedProject(actorID, projectID)
	if err != nil {
		return nil, err
	}
	if project.ProjectStatus == model.ProjectStatusDeleted {
		return nil, apperr.NotFound("project not found")
	}

	updates := make(map[string]interface{})
	if in.ProjectTitle != nil {
		if title := strings.TrimSpace(*in.ProjectTitle); title != "" {
			updates["project_title"] = title
		}
	}
	if in.ProjectSubtitle != nil {
		updates["project_subtitle"] = strings.TrimSpace(*in.ProjectSubtitle)
	}
	if in.AccountBank != nil {
		updates["account_bank"] = strings.TrimSpace(*in.AccountBank)
	}
	if in.AccountNumber != nil {
		updates["account_number"] = strings.TrimSpace(*in.AccountNumber)
	}
	if in.AccountHolder != nil {
		updates["account_holder"] = strings.TrimSpace(*in.AccountHolder)
	}
	if in.ProjectStatus != nil {
		status := model.ProjectStatus(*in.ProjectStatus)
		if status != model.ProjectStatusActive && status != model.ProjectStatusHidden {
			return nil, apperr.Validation("invalid project status")
		}
		updates["project_status"] = status
	}

	if len(updates) == 0 {
		return project, nil
	}

	if err := l.store.UpdateProject(projectID, updates); err != nil {
		return nil, err
	}

	return l.store.FindProject(projectID)
}

// DeleteProject 프로젝트 소프트 삭제
func (l *ProjectLogic) DeleteProject(actorID, projectID string) error {
	if _, err := l.fetchOwnedProject(actorID, projectID); err != nil {
		return err
	}
	return l.store.UpdateProject(projectID, map[string]interface{}{
		"project_status": model.ProjectStatusDeleted,
	})
}

func (l *ProjectLogic) fetchOwnedProject(actorID, projectID string) (*model.Project, error) {
	project, err := l.store.FindProject(projectID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(actorID, project.UserID); err != nil {
		return nil, err
	}
	return project, nil
}
