package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/services"
	"github.com/classforum/classforum/internal/middleware"
)

// ChatController handles the shared group chat
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// GetChat serves two modes on one path. A plain GET returns the full
// transcript. With check_new=1 it becomes a poll: only messages after
// last_id, minus the caller's own, so clients can append incrementally.
func (c *ChatController) GetChat(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if ctx.Query("check_new") == "1" {
		lastID, err := strconv.ParseInt(ctx.DefaultQuery("last_id", "0"), 10, 64)
		if err != nil {
			lastID = 0
		}

		messages, err := c.chatService.PollNew(ctx.Request.Context(), actor, lastID)
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to poll chat messages")
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ChatPollResponse{NewMessages: dto.ToChatMessageResponses(messages)})
		return
	}

	messages, err := c.chatService.History(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load chat history")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{Messages: dto.ToChatMessageResponses(messages)})
}

// SendChat posts a message to the group chat
func (c *ChatController) SendChat(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SendChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.chatService.Send(ctx.Request.Context(), actor, req.Content); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
