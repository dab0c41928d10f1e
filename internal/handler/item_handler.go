package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/logic"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/middleware"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/store"
)

type ItemHandler struct {
	itemLogic     *logic.ItemLogic
	donationLogic *logic.DonationLogic
}

func NewItemHandler(db *gorm.DB) *ItemHandler {
	return &ItemHandler{
		itemLogic:     logic.NewItemLogic(db),
		donationLogic: logic.NewDonationLogic(db),
	}
}

type createItemRequest struct {
	ProjectID string  `json:"projectId"`
	ItemTitle string  `json:"itemTitle"`
	ItemURL   string  `json:"itemUrl"`
	ItemImage *string `json:"itemImage"`
	ItemPrice int64   `json:"itemPrice"`
}

// CreateItem 선물 생성
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	item, err := h.itemLogic.CreateItem(middleware.CurrentUserID(c), logic.CreateItemInput{
		ProjectID: req.ProjectID,
		ItemTitle: req.ItemTitle,
		ItemURL:   req.ItemURL,
		ItemImage: req.ItemImage,
		ItemPrice: req.ItemPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

type updateItemRequest struct {
	ItemTitle  *string `json:"itemTitle"`
	ItemURL    *string `json:"itemUrl"`
	ItemImage  *string `json:"itemImage"`
	ItemPrice  *int64  `json:"itemPrice"`
	ItemStatus *string `json:"itemStatus"`
	ItemOrder  *int    `json:"itemOrder"`
}

// UpdateItem 선물 수정 (부분 업데이트)
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	item, err := h.itemLogic.UpdateItem(middleware.CurrentUserID(c), c.Param("itemId"), logic.UpdateItemInput{
		ItemTitle:  req.ItemTitle,
		ItemURL:    req.ItemURL,
		ItemImage:  req.ItemImage,
		ItemPrice:  req.ItemPrice,
		ItemStatus: req.ItemStatus,
		ItemOrder:  req.ItemOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem 선물 삭제 (소프트 삭제)
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.itemLogic.DeleteItem(middleware.CurrentUserID(c), c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

type reorderItemsRequest struct {
	ProjectID string            `json:"projectId"`
	Items     []store.ItemOrder `json:"items"`
}

// ReorderItems 선물 순서 일괄 변경
func (h *ItemHandler) ReorderItems(c *gin.Context) {
	var req reorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if err := h.itemLogic.ReorderItems(middleware.CurrentUserID(c), req.ProjectID, req.Items); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order updated"})
}

// GetItemProgress 선물 달성률 조회
func (h *ItemHandler) GetItemProgress(c *gin.Context) {
	progress, err := h.itemLogic.GetItemProgress(c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// ListItemDonations 선물별 후원 목록 (공개, confirmed만)
func (h *ItemHandler) ListItemDonations(c *gin.Context) {
	donations, err := h.donationLogic.ListItemDonations(c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}
