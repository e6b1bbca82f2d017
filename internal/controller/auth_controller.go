package controller

import (
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login godoc
// @Summary Authenticate a staff member
// @Description Exchanges email and password for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	resp, err := c.AuthService.Login(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Register godoc
// @Summary Create a staff account
// @Description Admin-only creation of manager and trainer accounts
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "account"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response
// @Router /api/users [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.Register(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// ListUsers godoc
// @Summary List staff accounts
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.AuthService.ListUsers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ListTrainers godoc
// @Summary List accounts holding the trainer role
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users/trainers [get]
func (c *AuthController) ListTrainers(ctx *gin.Context) {
	trainers, err := c.AuthService.ListTrainers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, trainers)
}

// GetUser godoc
// @Summary Fetch one account
// @Tags auth
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *AuthController) GetUser(ctx *gin.Context) {
	user, err := c.AuthService.GetUser(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateUser godoc
// @Summary Update an account
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param body body service.UserUpdateRequest true "fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/{id} [put]
func (c *AuthController) UpdateUser(ctx *gin.Context) {
	var req service.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.UpdateUser(ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags auth
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *AuthController) DeleteUser(ctx *gin.Context) {
	if err := c.AuthService.DeleteUser(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
