// Package chat proxies visitor messages to an external assistant webhook and
// normalizes whatever shape the webhook answers with into plain reply text.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"fabricpro.io/fabric-web/internal/config"
)

const sendTimeout = 15 * time.Second

// FallbackReply is served whenever the webhook is unreachable or its answer
// cannot be understood.
const FallbackReply = "Sorry, I could not process that right now. Please try again in a moment, or reach us on WhatsApp for immediate help."

// replyFields are the response field names recognized as carrying the reply
// text, checked in order.
var replyFields = []string{"response", "message", "text", "output", "content", "answer", "result"}

// Message is one prior exchange turn, replayed to the webhook as context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the configured chat webhook. A client with no URL degrades
// to the fallback reply instead of failing.
type Client struct {
	url  string
	key  string
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:  strings.TrimSpace(cfg.ChatWebhookURL),
		key:  strings.TrimSpace(cfg.ChatWebhookKey),
		http: &http.Client{Timeout: sendTimeout},
		log:  log,
	}
}

// NewSessionID mints a session identifier for a fresh conversation.
func NewSessionID() string {
	return ulid.Make().String()
}

// Send forwards one visitor message with its conversation history and returns
// the assistant's reply. It never fails; every error path yields FallbackReply.
func (c *Client) Send(ctx context.Context, sessionID, message string, history []Message) string {
	if c.url == "" {
		return FallbackReply
	}
	if history == nil {
		history = []Message{}
	}
	payload := map[string]any{
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sessionId": sessionID,
		"context":   map[string]any{"previousMessages": history},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return FallbackReply
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("chat webhook unreachable", zap.Error(err))
		return FallbackReply
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		c.log.Warn("chat webhook error", zap.Int("status", resp.StatusCode))
		return FallbackReply
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return FallbackReply
	}
	if reply := ExtractReply(raw); reply != "" {
		return reply
	}
	return FallbackReply
}

// ExtractReply pulls reply text out of a webhook response body. JSON objects
// are scanned for the recognized field names; arrays use their first element;
// non-JSON bodies pass through as plain text. An empty result means no reply
// was found.
func ExtractReply(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	return replyFrom(parsed)
}

func replyFrom(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		for _, field := range replyFields {
			if s, ok := val[field].(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
	case []any:
		if len(val) > 0 {
			return replyFrom(val[0])
		}
	}
	return ""
}
