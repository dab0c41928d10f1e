package logic

import (
	"testing"
	"time"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func TestCreateProject(t *testing.T) {
	db := openTestDB(t)
	l := NewProjectLogic(db)

	if _, err := l.CreateProject("", CreateProjectInput{ProjectTitle: "list"}); apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Fatalf("anonymous: got %v, want unauthenticated", err)
	}
	if _, err := l.CreateProject("u1", CreateProjectInput{ProjectTitle: "   "}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("blank title: got %v, want validation error", err)
	}

	project, err := l.CreateProject("u1", CreateProjectInput{
		ProjectTitle:  " my list ",
		AccountBank:   "kakao",
		AccountNumber: "3333-01-1234567",
		AccountHolder: "kim",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.UserID != "u1" {
		t.Fatalf("owner: got %q", project.UserID)
	}
	if project.ProjectTitle != "my list" {
		t.Fatalf("title not trimmed: %q", project.ProjectTitle)
	}
	if project.ProjectStatus != model.ProjectStatusActive {
		t.Fatalf("status: got %s, want active", project.ProjectStatus)
	}
}

func TestGetProjectPage(t *testing.T) {
	db := openTestDB(t)
	l := NewProjectLogic(db)
	project := createProject(t, db, "u1")

	visible := createItem(t, db, project.ProjectID, 10000, 2)
	done := createItem(t, db, project.ProjectID, 5000, 1)
	if err := db.Model(done).Update("item_status", model.ItemStatusCompleted).Error; err != nil {
		t.Fatalf("complete item: %v", err)
	}
	hidden := createItem(t, db, project.ProjectID, 7000, 3)
	if err := db.Model(hidden).Update("item_status", model.ItemStatusHidden).Error; err != nil {
		t.Fatalf("hide item: %v", err)
	}
	gone := createItem(t, db, project.ProjectID, 8000, 4)
	if err := db.Model(gone).Update("item_status", model.ItemStatusDeleted).Error; err != nil {
		t.Fatalf("delete item: %v", err)
	}

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	createDonation(t, db, visible.ItemID, 6000, model.DonationStatusConfirmed, base)
	createDonation(t, db, visible.ItemID, 9000, model.DonationStatusPending, base.Add(time.Minute))

	page, err := l.GetProjectPage(project.ProjectID)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("public page items: got %d, want 2", len(page.Items))
	}
	// item_order ascending
	if page.Items[0].ItemID != done.ItemID || page.Items[1].ItemID != visible.ItemID {
		t.Fatalf("unexpected item order: %s, %s", page.Items[0].ItemID, page.Items[1].ItemID)
	}
	if page.Items[1].Raised != 6000 || page.Items[1].Percent != 60 {
		t.Fatalf("got raised=%d percent=%v, want 6000/60", page.Items[1].Raised, page.Items[1].Percent)
	}
	if page.Items[0].Raised != 0 || page.Items[0].Percent != 0 {
		t.Fatalf("item without donations: got raised=%d percent=%v", page.Items[0].Raised, page.Items[0].Percent)
	}

	if err := db.Model(project).Update("project_status", model.ProjectStatusDeleted).Error; err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if _, err := l.GetProjectPage(project.ProjectID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("deleted project page: got %v, want not found", err)
	}
}

func TestUpdateProject(t *testing.T) {
	db := openTestDB(t)
	l := NewProjectLogic(db)
	project := createProject(t, db, "u1")

	subtitle := "for my 30th"
	if _, err := l.UpdateProject("u2", project.ProjectID, UpdateProjectInput{ProjectSubtitle: &subtitle}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("wrong owner: got %v, want forbidden", err)
	}

	updated, err := l.UpdateProject("u1", project.ProjectID, UpdateProjectInput{ProjectSubtitle: &subtitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ProjectSubtitle != subtitle {
		t.Fatalf("subtitle: got %q", updated.ProjectSubtitle)
	}
	if updated.ProjectTitle != project.ProjectTitle {
		t.Fatal("omitted fields must stay untouched")
	}

	badStatus := "deleted"
	if _, err := l.UpdateProject("u1", project.ProjectID, UpdateProjectInput{ProjectStatus: &badStatus}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("delete via patch: got %v, want validation error", err)
	}

	hiddenStatus := "hidden"
	updated, err = l.UpdateProject("u1", project.ProjectID, UpdateProjectInput{ProjectStatus: &hiddenStatus})
	if err != nil {
		t.Fatalf("hide: %v", err)
	}
	if updated.ProjectStatus != model.ProjectStatusHidden {
		t.Fatalf("status: got %s, want hidden", updated.ProjectStatus)
	}
}

func TestDeleteProjectIsTerminal(t *testing.T) {
	db := openTestDB(t)
	l := NewProjectLogic(db)
	project := createProject(t, db, "u1")

	if err := l.DeleteProject("u1", project.ProjectID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got model.Project
	if err := db.Where("project_id = ?", project.ProjectID).First(&got).Error; err != nil {
		t.Fatalf("row must survive soft delete: %v", err)
	}
	if got.ProjectStatus != model.ProjectStatusDeleted {
		t.Fatalf("status: got %s, want deleted", got.ProjectStatus)
	}

	// No restore path through update
	title := "back again"
	if _, err := l.UpdateProject("u1", project.ProjectID, UpdateProjectInput{ProjectTitle: &title}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("update deleted project: got %v, want not found", err)
	}
}
