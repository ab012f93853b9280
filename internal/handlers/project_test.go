package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/synergysphere-dev/synergysphere/internal/models"
	"github.com/synergysphere-dev/synergysphere/internal/types"
)

func TestCreateProjectRequiresName(t *testing.T) {
	r, testDB := newTestRouter(t)

	for _, body := range []any{map[string]any{}, map[string]any{"name": ""}} {
		rec := performRequest(t, r, "POST", "/api/projects", body)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %v: expected status %d, got %d", body, http.StatusBadRequest, rec.Code)
		}
	}

	if got := countRows(t, testDB, &models.Project{}, ""); got != 0 {
		t.Errorf("projects persisted after rejected creates: got %d, want 0", got)
	}
}

func TestCreateProjectWithCreator(t *testing.T) {
	r, testDB := newTestRouter(t)
	creator := createUser(t, testDB, "Ada", "ada@example.com")

	rec := performRequest(t, r, "POST", "/api/projects", map[string]any{
		"name":       "Apollo",
		"creator_id": creator.ID,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var project types.ProjectResponse
	decodeJSON(t, rec, &project)

	if project.Name != "Apollo" {
		t.Errorf("name: got %q, want %q", project.Name, "Apollo")
	}
	if len(project.Tasks) != 0 {
		t.Errorf("tasks: got %d entries, want 0", len(project.Tasks))
	}
	if len(project.Members) != 1 || project.Members[0].ID != creator.ID {
		t.Fatalf("members: got %v, want just user %d", project.Members, creator.ID)
	}

	// The creator already knows; membership at creation produces no notification.
	if got := countRows(t, testDB, &models.Notification{}, ""); got != 0 {
		t.Errorf("notifications after create-with-creator: got %d, want 0", got)
	}
}

func TestCreateProjectIgnoresUnknownCreator(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := performRequest(t, r, "POST", "/api/projects", map[string]any{
		"name":       "Orphaned",
		"creator_id": 999,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	var project types.ProjectResponse
	decodeJSON(t, rec, &project)

	if len(project.Members) != 0 {
		t.Errorf("members: got %d entries, want 0", len(project.Members))
	}
}

func TestGetProjectNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := performRequest(t, r, "GET", "/api/projects/42", nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestListProjectsOrderedByID(t *testing.T) {
	r, testDB := newTestRouter(t)
	first := createProject(t, testDB, "Zulu")
	second := createProject(t, testDB, "Alpha")

	rec := performRequest(t, r, "GET", "/api/projects", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var projects []types.ProjectResponse
	decodeJSON(t, rec, &projects)

	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != first.ID || projects[1].ID != second.ID {
		t.Errorf("order: got [%d %d], want [%d %d]", projects[0].ID, projects[1].ID, first.ID, second.ID)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	r, testDB := newTestRouter(t)
	user := createUser(t, testDB, "Ada", "ada@example.com")
	project := createProject(t, testDB, "Apollo", user.ID)

	rec := performRequest(t, r, "POST", projectPath(project.ID, "/tasks"), map[string]any{"content": "launch"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("task create: expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	rec = performRequest(t, r, "POST", projectPath(project.ID, "/messages"), map[string]any{
		"content": "ready?",
		"user_id": user.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("message create: expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	rec = performRequest(t, r, "DELETE", projectPath(project.ID, ""), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	if got := countRows(t, testDB, &models.Task{}, "project_id = ?", project.ID); got != 0 {
		t.Errorf("orphaned tasks: got %d, want 0", got)
	}
	if got := countRows(t, testDB, &models.Message{}, "project_id = ?", project.ID); got != 0 {
		t.Errorf("orphaned messages: got %d, want 0", got)
	}
	if got := countRows(t, testDB, &models.ProjectMembership{}, "project_id = ?", project.ID); got != 0 {
		t.Errorf("orphaned memberships: got %d, want 0", got)
	}

	rec = performRequest(t, r, "GET", projectPath(project.ID, ""), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := performRequest(t, r, "DELETE", "/api/projects/42", nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestAddMemberIsIdempotent(t *testing.T) {
	r, testDB := newTestRouter(t)
	user := createUser(t, testDB, "Ada", "ada@example.com")
	project := createProject(t, testDB, "Apollo")

	for i := 0; i < 2; i++ {
		rec := performRequest(t, r, "POST", projectPath(project.ID, "/members"), map[string]any{"user_id": user.ID})

		if rec.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected status %d, got %d", i+1, http.StatusCreated, rec.Code)
		}

		var got types.ProjectResponse
		decodeJSON(t, rec, &got)

		if len(got.Members) != 1 {
			t.Errorf("attempt %d: members size %d, want 1", i+1, len(got.Members))
		}
	}

	if got := countRows(t, testDB, &models.ProjectMembership{}, "project_id = ?", project.ID); got != 1 {
		t.Errorf("membership rows: got %d, want 1", got)
	}
	if got := countRows(t, testDB, &models.Notification{}, "user_id = ?", user.ID); got != 1 {
		t.Errorf("notifications: got %d, want 1", got)
	}
}

func TestAddMemberNotificationContent(t *testing.T) {
	r, testDB := newTestRouter(t)
	user := createUser(t, testDB, "Ada", "ada@example.com")
	project := createProject(t, testDB, "Apollo")

	rec := performRequest(t, r, "POST", projectPath(project.ID, "/members"), map[string]any{"user_id": user.ID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	var notification models.Notification
	if err := testDB.Where("user_id = ?", user.ID).First(&notification).Error; err != nil {
		t.Fatalf("expected a notification for user %d: %v", user.ID, err)
	}

	wantContent := "You have been added to the project 'Apollo'."
	if notification.Content != wantContent {
		t.Errorf("content: got %q, want %q", notification.Content, wantContent)
	}
	wantLink := fmt.Sprintf("#/projects/%d", project.ID)
	if notification.Link != wantLink {
		t.Errorf("link: got %q, want %q", notification.Link, wantLink)
	}
	if notification.IsRead {
		t.Error("new notification should be unread")
	}
}

func TestAddMemberValidation(t *testing.T) {
	r, testDB := newTestRouter(t)
	user := createUser(t, testDB, "Ada", "ada@example.com")
	project := createProject(t, testDB, "Apollo")

	rec := performRequest(t, r, "POST", projectPath(project.ID, "/members"), map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing user_id: expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	rec = performRequest(t, r, "POST", "/api/projects/999/members", map[string]any{"user_id": user.ID})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown project: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	rec = performRequest(t, r, "POST", projectPath(project.ID, "/members"), map[string]any{"user_id": 999})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
