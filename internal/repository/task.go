package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/models"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

// TaskRepository defines the interface for task data operations. Every
// lookup and mutation carries an explicit owner predicate: a task owned
// by a different user is indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindOwnedByID(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteOwned(ctx context.Context, ownerID, taskID int64) error
	ListOwned(ctx context.Context, ownerID int64, completed *bool, offset, limit int) ([]models.Task, int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository instance.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) FindOwnedByID(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, taskerr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task %d: %w", taskID, err)
	}
	return &task, nil
}

// Update writes the mutable columns of a task. UserID and CreatedAt are
// never part of the column set.
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
			"updated_at":  task.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return taskerr.ErrNotFound
	}
	return nil
}

func (r *taskRepository) DeleteOwned(ctx context.Context, ownerID, taskID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, result.Error)
	}
	if result.RowsAffected == 0 {
		return taskerr.ErrNotFound
	}
	return nil
}

// ListOwned returns a page of the caller's tasks ordered newest-created
// first, plus the total count of rows matching the filter.
func (r *taskRepository) ListOwned(ctx context.Context, ownerID int64, completed *bool, offset, limit int) ([]models.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", ownerID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks for user %d: %w", ownerID, err)
	}

	var tasks []models.Task
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks for user %d: %w", ownerID, err)
	}
	return tasks, count, nil
}
