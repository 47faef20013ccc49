package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/httpresp"
	ucUser "github.com/cocktails-rolodex/cocktails-api/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	list   *ucUser.ListUsers
	get    *ucUser.GetUser
	create *ucUser.CreateUser
	update *ucUser.UpdateUser
	remove *ucUser.DeleteUser
	log    *zap.Logger
}

func NewUserHandler(
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	create *ucUser.CreateUser,
	update *ucUser.UpdateUser,
	remove *ucUser.DeleteUser,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"`
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context(), record.ParseOrder(c.Query("orderBy")))
	if err != nil {
		fail(c, h.log, "list_users", err)
		return
	}

	httpresp.Array(c, users)
}

// ======================================================
// GET
// ======================================================

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "get_user", err)
		return
	}

	httpresp.OK(c, u)
}

// ======================================================
// SIGNUP
// ======================================================

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and a valid email are required.")
		return
	}

	u, err := h.create.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		fail(c, h.log, "create_user", err)
		return
	}

	httpresp.Created(c, u)
}

// ======================================================
// UPDATE
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	u, err := h.update.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		fail(c, h.log, "update_user", err)
		return
	}

	httpresp.OK(c, u)
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	out, err := h.remove.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "delete_user", err)
		return
	}

	httpresp.Message(c, out.Message)
}
