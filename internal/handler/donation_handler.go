package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/logic"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/middleware"
)

type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{donationLogic: logic.NewDonationLogic(db)}
}

type createDonationRequest struct {
	ItemID         string  `json:"itemId"`
	DonatorNm      string  `json:"donatorNm"`
	DonatorMessage *string `json:"donatorMessage"`
	DonationAmount int64   `json:"donationAmount"`
}

// CreateDonation 후원 생성 (비로그인도 가능)
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req createDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	donation, err := h.donationLogic.CreateDonation(logic.CreateDonationInput{
		ItemID:         req.ItemID,
		DonatorNm:      req.DonatorNm,
		DonatorMessage: req.DonatorMessage,
		DonationAmount: req.DonationAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

type updateDonationRequest struct {
	DonationStatus string `json:"donationStatus"`
}

// UpdateDonation 후원 상태 변경 (소유자만)
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	var req updateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	donation, err := h.donationLogic.UpdateDonationStatus(
		middleware.CurrentUserID(c), c.Param("donationId"), req.DonationStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donation)
}

// DeleteDonation 후원 삭제 (소프트 삭제)
func (h *DonationHandler) DeleteDonation(c *gin.Context) {
	if err := h.donationLogic.DeleteDonation(middleware.CurrentUserID(c), c.Param("donationId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "donation deleted"})
}

// ListProjectDonations 프로젝트 전체 후원 목록 (소유자만, 모든 상태)
func (h *DonationHandler) ListProjectDonations(c *gin.Context) {
	donations, err := h.donationLogic.ListProjectDonations(
		middleware.CurrentUserID(c), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}
