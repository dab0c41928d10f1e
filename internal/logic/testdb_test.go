package logic

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/database"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func createProject(t *testing.T, db *gorm.DB, userID string) *model.Project {
	t.Helper()
	project := &model.Project{
		UserID:        userID,
		ProjectTitle:  "birthday list",
		ProjectStatus: model.ProjectStatusActive,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func createItem(t *testing.T, db *gorm.DB, projectID string, price int64, order int) *model.Item {
	t.Helper()
	item := &model.Item{
		ProjectID:  projectID,
		ItemTitle:  "gift",
		ItemURL:    "https://shop.example/gift",
		ItemPrice:  price,
		ItemStatus: model.ItemStatusActive,
		ItemOrder:  order,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func createDonation(t *testing.T, db *gorm.DB, itemID string, amount int64, status model.DonationStatus, createdAt time.Time) *model.Donation {
	t.Helper()
	donation := &model.Donation{
		ItemID:         itemID,
		DonatorNm:      "supporter",
		DonationAmount: amount,
		DonationStatus: status,
		CreatedAt:      createdAt,
	}
	if err := db.Create(donation).Error; err != nil {
		t.Fatalf("create donation: %v", err)
	}
	return donation
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}
