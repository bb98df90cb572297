package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/projectlog/linebot/utils"
)

// Replier 回复投递协作方接口
type Replier interface {
	// Reply 用 replyToken 向发送者回复一条或多条文本消息
	Reply(ctx context.Context, replyToken string, texts ...string) error
}

// Client LINE Messaging API 回复客户端
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

type replyRequest struct {
	ReplyToken string         `json:"replyToken"`
	Messages   []replyMessage `json:"messages"`
}

type replyMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewClient 创建回复客户端
func NewClient(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Reply 调用 LINE 回复接口，非2xx视为错误，不重试
func (c *Client) Reply(ctx context.Context, replyToken string, texts ...string) error {
	messages := make([]replyMessage, 0, len(texts))
	for _, text := range texts {
		messages = append(messages, replyMessage{Type: "text", Text: text})
	}

	body, err := json.Marshal(replyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	if err != nil {
		return fmt.Errorf("line: marshal reply: %w", err)
	}

	endpoint := c.baseURL + "/v2/bot/message/reply"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("line: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("line: http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("line: reply %d: %s", res.StatusCode, string(resBody))
	}

	utils.Logger.Debug().Int("messages", len(messages)).Msg("已回复LINE消息")
	return nil
}
