package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/models"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func createTestTask(t *testing.T, repo TaskRepository, ownerID int64, title string, completed bool, createdAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		UserID:    ownerID,
		Title:     title,
		Completed: completed,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

// =============================================================================
// Owner Scoping Tests
// =============================================================================

func TestFindOwnedByID_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	task := createTestTask(t, repo, alice.ID, "Buy milk", false, time.Now())

	got, err := repo.FindOwnedByID(context.Background(), alice.ID, task.ID)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if got.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Buy milk")
	}

	// A different user's lookup is indistinguishable from a missing row.
	_, err = repo.FindOwnedByID(context.Background(), bob.ID, task.ID)
	if !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("cross-user lookup error = %v, want ErrNotFound", err)
	}

	_, err = repo.FindOwnedByID(context.Background(), alice.ID, 99999)
	if !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("missing-id lookup error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	task := createTestTask(t, repo, alice.ID, "Test Task", false, time.Now())

	hijacked := *task
	hijacked.UserID = bob.ID
	hijacked.Title = "Hacked Title"

	err := repo.Update(context.Background(), &hijacked)
	if !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("cross-user update error = %v, want ErrNotFound", err)
	}

	var current models.Task
	if err := db.First(&current, task.ID).Error; err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if current.Title != "Test Task" {
		t.Errorf("Title = %q after rejected update, want %q", current.Title, "Test Task")
	}
}

func TestUpdate_NeverMovesOwnerOrCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")

	created := time.Now().Add(-time.Hour).Truncate(time.Second)
	task := createTestTask(t, repo, alice.ID, "old", false, created)

	task.Title = "new"
	task.Completed = true
	task.UpdatedAt = time.Now()
	if err := repo.Update(context.Background(), task); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var current models.Task
	if err := db.First(&current, task.ID).Error; err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if current.UserID != alice.ID {
		t.Errorf("UserID = %d, want %d", current.UserID, alice.ID)
	}
	if !current.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v changed, want %v", current.CreatedAt, created)
	}
	if current.Title != "new" || !current.Completed {
		t.Errorf("mutable fields not updated: %+v", current)
	}
}

func TestDeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	task := createTestTask(t, repo, alice.ID, "to delete", false, time.Now())

	// Someone else's delete leaves the row alone.
	if err := repo.DeleteOwned(context.Background(), bob.ID, task.ID); !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("cross-user delete error = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteOwned(context.Background(), alice.ID, task.ID); err != nil {
		t.Fatalf("DeleteOwned() error = %v", err)
	}

	// Second delete of the same id reports not found.
	if err := repo.DeleteOwned(context.Background(), alice.ID, task.ID); !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

// =============================================================================
// ListOwned Tests
// =============================================================================

func TestListOwned_ScopedOrderedAndCounted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		createTestTask(t, repo, alice.ID, fmt.Sprintf("alice-%d", i), false, base.Add(time.Duration(i)*time.Minute))
	}
	createTestTask(t, repo, bob.ID, "bob-0", false, base.Add(time.Hour))

	tasks, count, err := repo.ListOwned(context.Background(), alice.ID, nil, 0, 10)
	if err != nil {
		t.Fatalf("ListOwned() error = %v", err)
	}

	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	// Newest created first.
	if tasks[0].Title != "alice-2" || tasks[2].Title != "alice-0" {
		t.Errorf("ordering wrong: %q ... %q", tasks[0].Title, tasks[2].Title)
	}
	for _, task := range tasks {
		if task.UserID != alice.ID {
			t.Errorf("listing leaked task of user %d", task.UserID)
		}
	}
}

func TestListOwned_CompletedFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	createTestTask(t, repo, alice.ID, "Completed Task1", true, base)
	createTestTask(t, repo, alice.ID, "Completed Task2", true, base.Add(time.Minute))
	createTestTask(t, repo, alice.ID, "Incomplete Task", false, base.Add(2*time.Minute))

	completedTrue := true
	tasks, count, err := repo.ListOwned(context.Background(), alice.ID, &completedTrue, 0, 10)
	if err != nil {
		t.Fatalf("ListOwned() error = %v", err)
	}
	if count != 2 || len(tasks) != 2 {
		t.Fatalf("count = %d, len = %d, want 2 and 2", count, len(tasks))
	}
	if tasks[0].Title != "Completed Task2" {
		t.Errorf("tasks[0].Title = %q, want %q", tasks[0].Title, "Completed Task2")
	}

	completedFalse := false
	tasks, count, err = repo.ListOwned(context.Background(), alice.ID, &completedFalse, 0, 10)
	if err != nil {
		t.Fatalf("ListOwned() error = %v", err)
	}
	if count != 1 || len(tasks) != 1 || tasks[0].Title != "Incomplete Task" {
		t.Errorf("incomplete filter returned count=%d tasks=%+v", count, tasks)
	}
}

func TestListOwned_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 7; i++ {
		createTestTask(t, repo, alice.ID, fmt.Sprintf("task-%d", i), false, base.Add(time.Duration(i)*time.Minute))
	}

	// Page 2 with page size 5 returns the two oldest tasks.
	tasks, count, err := repo.ListOwned(context.Background(), alice.ID, nil, 5, 5)
	if err != nil {
		t.Fatalf("ListOwned() error = %v", err)
	}
	if count != 7 {
		t.Errorf("count = %d, want 7", count)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].Title != "task-2" || tasks[1].Title != "task-1" {
		t.Errorf("page 2 = [%q, %q], want [task-2, task-1]", tasks[0].Title, tasks[1].Title)
	}
}
