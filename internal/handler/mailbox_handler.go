package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/client/mail"
	"mkn-console/internal/logger"
	"mkn-console/internal/service"
)

// MailboxHandler proxies shared-mailbox operations to the mail gateway.
type MailboxHandler struct {
	gateway service.MailGateway
}

// NewMailboxHandler creates a new MailboxHandler.
func NewMailboxHandler(gateway service.MailGateway) *MailboxHandler {
	return &MailboxHandler{gateway: gateway}
}

// OutgoingMessageRequest represents the body for send and reply.
type OutgoingMessageRequest struct {
	To      []string `json:"to" binding:"required"`
	CC      []string `json:"cc"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

func (r OutgoingMessageRequest) toOutgoing() mail.OutgoingMessage {
	return mail.OutgoingMessage{
		To:      r.To,
		CC:      r.CC,
		Subject: r.Subject,
		Body:    r.Body,
	}
}

// MoveRequest selects the destination folder.
type MoveRequest struct {
	FolderID string `json:"folder_id" binding:"required"`
}

// ReadRequest toggles the read flag.
type ReadRequest struct {
	Read bool `json:"read"`
}

// ListFolders handles GET /api/v1/mailbox/:account/folders
func (h *MailboxHandler) ListFolders(c *gin.Context) {
	folders, err := h.gateway.ListFolders(c.Request.Context(), c.Param("account"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// ListMessages handles GET /api/v1/mailbox/:account/folders/:folderId/messages
func (h *MailboxHandler) ListMessages(c *gin.Context) {
	messages, err := h.gateway.ListMessages(c.Request.Context(), c.Param("account"), c.Param("folderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetMessage handles GET /api/v1/mailbox/:account/messages/:messageId
func (h *MailboxHandler) GetMessage(c *gin.Context) {
	message, err := h.gateway.GetMessage(c.Request.Context(), c.Param("account"), c.Param("messageId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// DownloadAttachment handles GET /api/v1/mailbox/:account/messages/:messageId/attachments/:attachmentId
func (h *MailboxHandler) DownloadAttachment(c *gin.Context) {
	data, contentType, err := h.gateway.DownloadAttachment(
		c.Request.Context(), c.Param("account"), c.Param("messageId"), c.Param("attachmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// SendMessage handles POST /api/v1/mailbox/:account/messages
func (h *MailboxHandler) SendMessage(c *gin.Context) {
	var req OutgoingMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := c.Param("account")
	id, err := h.gateway.Send(c.Request.Context(), account, req.toOutgoing())
	if err != nil {
		respondError(c, err)
		return
	}
	logger.WithMailbox(account).Info("message sent", "message_id", id)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ReplyMessage handles POST /api/v1/mailbox/:account/messages/:messageId/reply
func (h *MailboxHandler) ReplyMessage(c *gin.Context) {
	var req OutgoingMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.gateway.Reply(c.Request.Context(), c.Param("account"), c.Param("messageId"), req.toOutgoing())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// MoveMessage handles POST /api/v1/mailbox/:account/messages/:messageId/move
func (h *MailboxHandler) MoveMessage(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gateway.Move(c.Request.Context(), c.Param("account"), c.Param("messageId"), req.FolderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkRead handles POST /api/v1/mailbox/:account/messages/:messageId/read
func (h *MailboxHandler) MarkRead(c *gin.Context) {
	var req ReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gateway.MarkRead(c.Request.Context(), c.Param("account"), c.Param("messageId"), req.Read); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMessage handles DELETE /api/v1/mailbox/:account/messages/:messageId
func (h *MailboxHandler) DeleteMessage(c *gin.Context) {
	if err := h.gateway.Delete(c.Request.Context(), c.Param("account"), c.Param("messageId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
