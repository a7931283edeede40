package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIURL is the Telegram Bot API prefix; the bot token is appended
// directly to it.
const DefaultAPIURL = "https://api.telegram.org/bot"

const sendTimeout = 5 * time.Second

type Telegram struct {
	APIURL string
	Token  string
	ChatID string
	Client *http.Client
	Logger *zap.Logger
}

func NewTelegram(apiURL, token, chatID string, logger *zap.Logger) *Telegram {
	if token == "" || chatID == "" {
		return nil
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Telegram{
		APIURL: apiURL,
		Token:  token,
		ChatID: chatID,
		Client: &http.Client{Timeout: sendTimeout},
		Logger: logger,
	}
}

// Send posts one message to the configured chat. Exactly one attempt: no
// retry, no backoff, no queueing. Success is strictly HTTP 200.
func (t *Telegram) Send(ctx context.Context, text string) error {
	endpoint := t.APIURL + t.Token + "/sendMessage"

	q := url.Values{}
	q.Set("chat_id", t.ChatID)
	q.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		t.Logger.Error("telegram_send_error", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		t.Logger.Error("telegram_send_rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return fmt.Errorf("telegram: status %d", resp.StatusCode)
	}

	t.Logger.Info("telegram_sent")
	return nil
}
