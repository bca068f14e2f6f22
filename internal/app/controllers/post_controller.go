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

// PostController handles the news feed and the info board
type PostController struct {
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// GetForum returns the published news feed
func (c *PostController) GetForum(ctx *gin.Context) {
	posts, err := c.postService.ListNews(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list news posts")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PostFeedResponse{Posts: dto.ToPostResponses(posts)})
}

// GetInfo returns the published info board
func (c *PostController) GetInfo(ctx *gin.Context) {
	posts, err := c.postService.ListInfo(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list info posts")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PostFeedResponse{Posts: dto.ToPostResponses(posts)})
}

// AddNews publishes a news post. Admin only.
func (c *PostController) AddNews(ctx *gin.Context) {
	c.createPost(ctx, c.postService.CreateNews)
}

// AddInfo publishes an info post. Admin only.
func (c *PostController) AddInfo(ctx *gin.Context) {
	c.createPost(ctx, c.postService.CreateInfo)
}

// SuggestNews submits an info post for moderation. Open to any user.
func (c *PostController) SuggestNews(ctx *gin.Context) {
	c.createPost(ctx, c.postService.SuggestInfo)
}

func (c *PostController) createPost(
	ctx *gin.Context,
	create func(context.Context, *models.User, *dto.CreatePostRequest) (*models.Post, error),
) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := create(ctx.Request.Context(), actor, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// PublishPost promotes a suggested post. Admin only.
func (c *PostController) PublishPost(ctx *gin.Context) {
	c.moderatePost(ctx, c.postService.Publish)
}

// DeletePost removes a post in any state. Admin only.
func (c *PostController) DeletePost(ctx *gin.Context) {
	c.moderatePost(ctx, c.postService.Delete)
}

func (c *PostController) moderatePost(
	ctx *gin.Context,
	action func(context.Context, *models.User, int64) error,
) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	postID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := action(ctx.Request.Context(), actor, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
