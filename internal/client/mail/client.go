// Package mail consumes the shared-mailbox REST gateway. Every response is a
// {success, error, ...} envelope; success=false maps to domain.ErrRemoteOperation.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
)

// Folder is one mailbox folder as reported by the gateway.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnreadCount int    `json:"unread_count"`
	TotalCount  int    `json:"total_count"`
}

// MessageSummary is one row of a folder listing.
type MessageSummary struct {
	ID             string    `json:"id"`
	From           string    `json:"from"`
	Subject        string    `json:"subject"`
	Preview        string    `json:"preview,omitempty"`
	ReceivedAt     time.Time `json:"received_at"`
	Read           bool      `json:"read"`
	HasAttachments bool      `json:"has_attachments"`
}

// Attachment is attachment metadata on a full message.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Message is a full message detail.
type Message struct {
	MessageSummary
	To          []string     `json:"to"`
	CC          []string     `json:"cc,omitempty"`
	BodyHTML    string       `json:"body_html,omitempty"`
	BodyText    string       `json:"body_text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// OutgoingMessage is the payload for send and reply.
type OutgoingMessage struct {
	To      []string `json:"to"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// Client talks to the mail gateway for one deployment. Account and message ids
// are passed per call; the client holds no per-account state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a mail gateway client with an explicit request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the gateway's uniform response wrapper. Payload fields are
// decoded from the same object.
type envelope struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Folders  []Folder         `json:"folders,omitempty"`
	Messages []MessageSummary `json:"messages,omitempty"`
	Message  *Message         `json:"message,omitempty"`
	ID       string           `json:"id,omitempty"`
}

func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) (env *envelope, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveRemoteCall("mail_gateway", op, err, timer.Elapsed()) }()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode mail request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build mail request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call mail gateway: %w", err)
	}
	defer resp.Body.Close()

	env = &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("decode mail response: %w", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("mail gateway: %s: %w", msg, domain.ErrRemoteOperation)
	}
	return env, nil
}

func accountPath(account string, parts ...string) string {
	p := "/v1/accounts/" + url.PathEscape(account)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// ListFolders lists the account's folders.
func (c *Client) ListFolders(ctx context.Context, account string) ([]Folder, error) {
	env, err := c.do(ctx, "list_folders", http.MethodGet, accountPath(account, "folders"), nil)
	if err != nil {
		return nil, err
	}
	return env.Folders, nil
}

// ListMessages lists message summaries in a folder, newest first.
func (c *Client) ListMessages(ctx context.Context, account, folderID string) ([]MessageSummary, error) {
	env, err := c.do(ctx, "list_messages", http.MethodGet, accountPath(account, "folders", folderID, "messages"), nil)
	if err != nil {
		return nil, err
	}
	return env.Messages, nil
}

// GetMessage fetches one full message.
func (c *Client) GetMessage(ctx context.Context, account, messageID string) (*Message, error) {
	env, err := c.do(ctx, "get_message", http.MethodGet, accountPath(account, "messages", messageID), nil)
	if err != nil {
		return nil, err
	}
	if env.Message == nil {
		return nil, fmt.Errorf("mail gateway: empty message payload: %w", domain.ErrRemoteOperation)
	}
	return env.Message, nil
}

// DownloadAttachment fetches raw attachment bytes. Attachment downloads are the
// one endpoint that returns a byte stream instead of an envelope.
func (c *Client) DownloadAttachment(ctx context.Context, account, messageID, attachmentID string) (data []byte, contentType string, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveRemoteCall("mail_gateway", "download_attachment", err, timer.Elapsed()) }()

	path := accountPath(account, "messages", messageID, "attachments", attachmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build attachment request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("mail gateway: %s: %w", resp.Status, domain.ErrRemoteOperation)
	}
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read attachment: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Send sends a new message from the account.
func (c *Client) Send(ctx context.Context, account string, msg OutgoingMessage) (string, error) {
	env, err := c.do(ctx, "send", http.MethodPost, accountPath(account, "messages"), msg)
	if err != nil {
		return "", err
	}
	return env.ID, nil
}

// Reply replies to an existing message.
func (c *Client) Reply(ctx context.Context, account, messageID string, msg OutgoingMessage) (string, error) {
	env, err := c.do(ctx, "reply", http.MethodPost, accountPath(account, "messages", messageID, "reply"), msg)
	if err != nil {
		return "", err
	}
	return env.ID, nil
}

// Move moves a message to another folder.
func (c *Client) Move(ctx context.Context, account, messageID, folderID string) error {
	_, err := c.do(ctx, "move", http.MethodPost, accountPath(account, "messages", messageID, "move"),
		map[string]string{"folder_id": folderID})
	return err
}

// MarkRead sets the read flag on a message.
func (c *Client) MarkRead(ctx context.Context, account, messageID string, read bool) error {
	_, err := c.do(ctx, "mark_read", http.MethodPost, accountPath(account, "messages", messageID, "read"),
		map[string]bool{"read": read})
	return err
}

// Delete deletes a message.
func (c *Client) Delete(ctx context.Context, account, messageID string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, accountPath(account, "messages", messageID), nil)
	return err
}
