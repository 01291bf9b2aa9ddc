package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/models"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}

	byName, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("FindByUsername() id = %d, want %d", byName.ID, user.ID)
	}

	byID, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("FindByID() username = %q, want alice", byID.Username)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.FindByUsername(context.Background(), "nobody"); !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("FindByUsername() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(context.Background(), 42); !errors.Is(err, taskerr.ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if exists {
		t.Error("ExistsByUsername() = true for unknown username")
	}

	if err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err = repo.ExistsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if !exists {
		t.Error("ExistsByUsername() = false for existing username")
	}
}
