package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type ChatServiceInterface interface {
	Send(senderID, receiverID, listingID, text string) (model.Message, error)
	Conversation(actorID, listingID string) ([]model.Message, error)
}

type ChatHandler struct {
	service ChatServiceInterface
}

func NewChatHandler(service ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// SendMessageHandler handles POST /messages
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	senderID := c.GetString("profile_id")

	var req helpers.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	m, err := h.service.Send(senderID, req.ReceiverID, req.ListingID, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "SendMessageHandler", err, map[string]any{"listing_id": req.ListingID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, m, "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"message_id": m.ID,
		"listing_id": m.ListingID,
	})
}

// GetConversationHandler handles GET /listings/:listing_id/messages
func (h *ChatHandler) GetConversationHandler(c *gin.Context) {
	actorID := c.GetString("profile_id")
	listingID := c.Param("listing_id")

	msgs, err := h.service.Conversation(actorID, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetConversationHandler", err, map[string]any{"listing_id": listingID})
		return
	}
	if msgs == nil {
		msgs = []model.Message{}
	}

	utils.JSONResponse(c, http.StatusOK, msgs, "messages retrieved successfully")
}
