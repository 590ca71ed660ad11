package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/client/mail"
	"mkn-console/internal/domain"
	"mkn-console/internal/mocks"
)

func mailboxRouter(h *MailboxHandler) *gin.Engine {
	router := gin.New()
	account := router.Group("/mailbox/:account")
	account.GET("/folders", h.ListFolders)
	account.GET("/folders/:folderId/messages", h.ListMessages)
	account.GET("/messages/:messageId", h.GetMessage)
	account.GET("/messages/:messageId/attachments/:attachmentId", h.DownloadAttachment)
	account.POST("/messages", h.SendMessage)
	account.POST("/messages/:messageId/move", h.MoveMessage)
	account.DELETE("/messages/:messageId", h.DeleteMessage)
	return router
}

func TestListFolders(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		ListFolders(mock.Anything, "info@mkn.example").
		Return([]mail.Folder{
			{ID: "inbox", Name: "Inbox", UnreadCount: 4, TotalCount: 120},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/mailbox/info@mkn.example/folders", nil)
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Folders []mail.Folder `json:"folders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Folders, 1)
	require.Equal(t, 4, body.Folders[0].UnreadCount)
}

func TestListFolders_GatewayFailureIsBadGateway(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		ListFolders(mock.Anything, "info@mkn.example").
		Return(nil, fmt.Errorf("mail gateway: token expired: %w", domain.ErrRemoteOperation))

	req := httptest.NewRequest(http.MethodGet, "/mailbox/info@mkn.example/folders", nil)
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSendMessage(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		Send(mock.Anything, "info@mkn.example", mail.OutgoingMessage{
			To:      []string{"customer@example.com"},
			Subject: "Quote",
		}).
		Return("msg-99", nil)

	payload := `{"to":["customer@example.com"],"subject":"Quote"}`
	req := httptest.NewRequest(http.MethodPost, "/mailbox/info@mkn.example/messages",
		bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "msg-99")
}

func TestSendMessage_MissingRecipients(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	req := httptest.NewRequest(http.MethodPost, "/mailbox/info@mkn.example/messages",
		bytes.NewBufferString(`{"subject":"no recipients"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadAttachment(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		DownloadAttachment(mock.Anything, "info@mkn.example", "msg-1", "att-1").
		Return([]byte("%PDF-1.4"), "application/pdf", nil)

	req := httptest.NewRequest(http.MethodGet,
		"/mailbox/info@mkn.example/messages/msg-1/attachments/att-1", nil)
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestMoveMessage(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		Move(mock.Anything, "info@mkn.example", "msg-1", "archive").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost,
		"/mailbox/info@mkn.example/messages/msg-1/move",
		bytes.NewBufferString(`{"folder_id":"archive"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteMessage(t *testing.T) {
	gateway := mocks.NewMockMailGateway(t)
	h := NewMailboxHandler(gateway)

	gateway.EXPECT().
		Delete(mock.Anything, "info@mkn.example", "msg-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete,
		"/mailbox/info@mkn.example/messages/msg-1", nil)
	w := httptest.NewRecorder()
	mailboxRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}
