package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент отправки уведомлений о бронированиях в Telegram-чат магазина
type Client struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Telegram.
// Пустые token/chatID означают выключенные уведомления.
func NewClient(token, chatID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: "https://api.telegram.org",
		token:   token,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled сообщает, сконфигурирован ли клиент для отправки
func (c *Client) Enabled() bool {
	return c.token != "" && c.chatID != ""
}

// sendMessageRequest тело запроса Telegram Bot API sendMessage
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage отправляет текстовое сообщение в чат магазина.
// Ошибка доставки - проблема уведомления, не бронирования: вызывающий код
// логирует её и продолжает работу.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
