package handler

import (
	"net/http"

	"sealed-auction/services/bidding/helpers"
	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterUserHandler handles POST /users. Registering a known email returns the stored user.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterUserHandler", "register user", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(u), "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{"user_id": u.ID})
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListUsersHandler", "list users", err, nil)
		return
	}

	resp := make([]helpers.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, helpers.ToUserResponse(u))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserHandler", "get user", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(u), "user retrieved successfully")
}
