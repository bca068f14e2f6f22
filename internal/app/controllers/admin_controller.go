package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/services"
	"github.com/classforum/classforum/internal/middleware"
)

// AdminController handles the moderation dashboard and user bans
type AdminController struct {
	userService services.UserService
	postService services.PostService
	logger      zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(userService services.UserService, postService services.PostService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		userService: userService,
		postService: postService,
		logger:      logger,
	}
}

// GetDashboard returns all users and the moderation queue. Admin only.
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	users, err := c.userService.ListAll(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	suggested, err := c.postService.ListSuggested(ctx.Request.Context(), actor)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load moderation queue")
		middleware.HandleAPIError(ctx, err)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		userResponses = append(userResponses, dto.ToUserResponse(u))
	}

	ctx.JSON(http.StatusOK, dto.AdminDashboardResponse{
		Users:          userResponses,
		SuggestedPosts: dto.ToPostResponses(suggested),
	})
}

// BanUser bans a user and revokes their sessions. Admin only.
func (c *AdminController) BanUser(ctx *gin.Context) {
	c.moderateUser(ctx, c.userService.BanUser)
}

// UnbanUser lifts a ban. Admin only.
func (c *AdminController) UnbanUser(ctx *gin.Context) {
	c.moderateUser(ctx, c.userService.UnbanUser)
}

func (c *AdminController) moderateUser(
	ctx *gin.Context,
	action func(context.Context, *models.User, int64) error,
) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	targetUserID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := action(ctx.Request.Context(), actor, targetUserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
