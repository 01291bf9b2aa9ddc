package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/middleware"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/service"
)

// TaskHandler handles task HTTP requests. All routes behind it require
// an authenticated caller; the caller's id is threaded into every
// service call.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents the writable task fields. Owner, id and
// timestamps supplied by the client are ignored.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// List godoc
// @Summary List tasks
// @Description List the caller's tasks, newest first, paginated
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param page_num query int false "Page number (default 1)"
// @Param is_completed query bool false "Filter by completion"
// @Success 200 {object} service.TaskPage
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	opts := service.ListOptions{Page: 1}

	if raw := c.Query("page_num"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			RespondError(c, http.StatusBadRequest, "page_num must be a positive integer")
			return
		}
		opts.Page = page
	}

	if raw := c.Query("is_completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "is_completed must be true or false")
			return
		}
		opts.Completed = &completed
	}

	page, err := h.taskService.List(c.Request.Context(), userID, opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Create godoc
// @Summary Create task
// @Description Create a task owned by the caller
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TaskRequest true "Task fields"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]map[string]string
// @Failure 401 {object} map[string]string
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Retrieve godoc
// @Summary Retrieve task
// @Description Fetch one of the caller's tasks by id
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} models.Task
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [get]
func (h *TaskHandler) Retrieve(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update godoc
// @Summary Update task
// @Description Replace title, description and completed on one of the caller's tasks
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param request body TaskRequest true "Task fields"
// @Success 200 {object} models.Task
// @Failure 400 {object} map[string]map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID, taskID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary Delete task
// @Description Delete one of the caller's tasks by id
// @Tags tasks
// @Security BearerAuth
// @Param id path int true "Task id"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// taskIDParam parses the :id path segment. A non-numeric id cannot match
// any task, so it reads as not found.
func taskIDParam(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return taskID, true
}
