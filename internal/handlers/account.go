package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/service"
)

// AccountHandler handles account HTTP requests.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler instance.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountResponse is the public view of a created account. The password
// hash is never part of it.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Create godoc
// @Summary Create account
// @Description Register a new user account
// @Tags account
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration payload"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} map[string]map[string]string
// @Router /account/create [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
