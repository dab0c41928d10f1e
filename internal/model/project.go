package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is one funding page owned by a single user.
type Project struct {
	ProjectID string    `json:"project_id" gorm:"column:project_id;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `json:"user_id" gorm:"not null;index"`

	// 기본 정보
	ProjectTitle    string `json:"project_title" gorm:"not null"`
	ProjectSubtitle string `json:"project_subtitle"`

	// 정산 계좌
	AccountBank   string `json:"account_bank"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`

	// Soft delete via status, rows are never removed
	ProjectStatus ProjectStatus `json:"project_status" gorm:"default:'active'"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// ProjectStatus 프로젝트 상태
type ProjectStatus string

const (
	ProjectStatusActive  ProjectStatus = "active"
	ProjectStatusHidden  ProjectStatus = "hidden"
	ProjectStatusDeleted ProjectStatus = "deleted"
)

func (Project) TableName() string {
	return "project"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ProjectID == "" {
		p.ProjectID = uuid.NewString()
	}
	return nil
}
