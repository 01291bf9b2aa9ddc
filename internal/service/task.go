package service

import (
	"context"
	"time"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/models"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/repository"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

// PageSize is the fixed number of tasks per list page.
const PageSize = 5

// TaskPage is the paginated list envelope. Next and Previous hold
// adjacent page numbers, nil at either edge.
type TaskPage struct {
	Count    int64         `json:"count"`
	Next     *int          `json:"next"`
	Previous *int          `json:"previous"`
	Results  []models.Task `json:"results"`
}

// TaskInput carries the caller-writable task fields.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ListOptions narrows and pages a task listing.
type ListOptions struct {
	Completed *bool
	Page      int
}

// TaskService defines owner-scoped task operations. Every method takes
// the authenticated user id explicitly; there is no ambient identity.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, input TaskInput) (*models.Task, error)
	Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, input TaskInput) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
	List(ctx context.Context, ownerID int64, opts ListOptions) (*TaskPage, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// Create stores a new task owned by ownerID. Completed always starts
// false regardless of the input.
func (s *taskService) Create(ctx context.Context, ownerID int64, input TaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, taskerr.NewValidationError("title", "title is required")
	}

	now := s.now()
	task := &models.Task{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	return s.taskRepo.FindOwnedByID(ctx, ownerID, taskID)
}

// Update replaces title, description and completed. Owner and creation
// time never change.
func (s *taskService) Update(ctx context.Context, ownerID, taskID int64, input TaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, taskerr.NewValidationError("title", "title is required")
	}

	task, err := s.taskRepo.FindOwnedByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = input.Completed
	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.taskRepo.DeleteOwned(ctx, ownerID, taskID)
}

// List returns one page of the caller's tasks, newest first. A page
// number beyond the last page is a not-found, matching the behavior of
// page-number pagination elsewhere.
func (s *taskService) List(ctx context.Context, ownerID int64, opts ListOptions) (*TaskPage, error) {
	page := opts.Page
	if page < 1 {
		return nil, taskerr.NewValidationError("page_num", "page number must be a positive integer")
	}

	offset := (page - 1) * PageSize
	tasks, count, err := s.taskRepo.ListOwned(ctx, ownerID, opts.Completed, offset, PageSize)
	if err != nil {
		return nil, err
	}

	if count == 0 && page > 1 {
		return nil, taskerr.ErrNotFound
	}
	if count > 0 {
		lastPage := int((count + PageSize - 1) / PageSize)
		if page > lastPage {
			return nil, taskerr.ErrNotFound
		}
	}

	result := &TaskPage{
		Count:   count,
		Results: tasks,
	}
	if page > 1 {
		prev := page - 1
		result.Previous = &prev
	}
	if int64(offset+len(tasks)) < count {
		next := page + 1
		result.Next = &next
	}
	if result.Results == nil {
		result.Results = []models.Task{}
	}
	return result, nil
}
