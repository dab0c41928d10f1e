package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/logic"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/middleware"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{projectLogic: logic.NewProjectLogic(db)}
}

type createProjectRequest struct {
	ProjectTitle    string `json:"projectTitle"`
	ProjectSubtitle string `json:"projectSubtitle"`
	AccountBank     string `json:"accountBank"`
	AccountNumber   string `json:"accountNumber"`
	AccountHolder   string `json:"accountHolder"`
}

// CreateProject 프로젝트 생성
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	project, err := h.projectLogic.CreateProject(middleware.CurrentUserID(c), logic.CreateProjectInput{
		ProjectTitle:    req.ProjectTitle,
		ProjectSubtitle: req.ProjectSubtitle,
		AccountBank:     req.AccountBank,
		AccountNumber:   req.AccountNumber,
		AccountHolder:   req.AccountHolder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjectPage 프로젝트 공개 페이지 (선물 목록 + 달성률)
func (h *ProjectHandler) GetProjectPage(c *gin.Context) {
	page, err := h.projectLogic.GetProjectPage(c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

type updateProjectRequest struct {
	ProjectTitle    *string `json:"projectTitle"`
	ProjectSubtitle *string `json:"projectSubtitle"`
	AccountBank     *string `json:"accountBank"`
	AccountNumber   *string `json:"accountNumber"`
	AccountHolder   *string `json:"accountHolder"`
	ProjectStatus   *string `json:"projectStatus"`
}

// UpdateProject 프로젝트 수정 (부분 업데이트)
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	project, err := h.projectLogic.UpdateProject(middleware.CurrentUserID(c), c.Param("projectId"), logic.UpdateProjectInput{
		ProjectTitle:    req.ProjectTitle,
		ProjectSubtitle: req.ProjectSubtitle,
		AccountBank:     req.AccountBank,
		AccountNumber:   req.AccountNumber,
		AccountHolder:   req.AccountHolder,
		ProjectStatus:   req.ProjectStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject 프로젝트 삭제 (소프트 삭제)
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectLogic.DeleteProject(middleware.CurrentUserID(c), c.Param("projectId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
