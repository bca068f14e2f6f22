package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/services"
	"github.com/classforum/classforum/internal/middleware"
)

// HomeworkController handles the homework board
type HomeworkController struct {
	homeworkService services.HomeworkService
	logger          zerolog.Logger
}

// NewHomeworkController creates a new HomeworkController
func NewHomeworkController(homeworkService services.HomeworkService, logger zerolog.Logger) *HomeworkController {
	return &HomeworkController{
		homeworkService: homeworkService,
		logger:          logger,
	}
}

// GetHomework returns all homework entries, newest first
func (c *HomeworkController) GetHomework(ctx *gin.Context) {
	homeworks, err := c.homeworkService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list homework")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HomeworkListResponse{Homeworks: dto.ToHomeworkResponses(homeworks)})
}

// AddHomework creates a homework entry. Admin only.
func (c *HomeworkController) AddHomework(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateHomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.homeworkService.Add(ctx.Request.Context(), actor, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
