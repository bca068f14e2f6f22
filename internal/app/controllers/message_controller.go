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

// MessageController handles direct messaging between users
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// GetMessagesPage returns the users the caller can start a conversation with
func (c *MessageController) GetMessagesPage(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	peers, err := c.messageService.ListPeers(ctx.Request.Context(), actor)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list message peers")
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.PeerResponse, 0, len(peers))
	for _, peer := range peers {
		responses = append(responses, dto.ToPeerResponse(peer))
	}

	ctx.JSON(http.StatusOK, dto.PeerListResponse{Users: responses})
}

// SendMessage delivers a direct message to another user
func (c *MessageController) SendMessage(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.messageService.Send(ctx.Request.Context(), actor, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// GetConversation returns the two-way history with another user and
// marks the caller's unread incoming messages as read
func (c *MessageController) GetConversation(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	otherUserID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.messageService.GetConversation(ctx.Request.Context(), actor, otherUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": dto.ToMessageResponses(messages, actor.ID)})
}
