package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTelegram_OK(t *testing.T) {
	var gotPath, gotChat, gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotChat = r.URL.Query().Get("chat_id")
		gotText = r.URL.Query().Get("text")
		w.WriteHeader(200)
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL+"/bot", "token123", "chat42", zap.NewNop())
	require.NotNil(t, tg)

	err := tg.Send(context.Background(), "Resource is down! URL: https://a.test")
	require.NoError(t, err)

	assert.Equal(t, "/bottoken123/sendMessage", gotPath)
	assert.Equal(t, "chat42", gotChat)
	assert.Equal(t, "Resource is down! URL: https://a.test", gotText)
}

func TestTelegram_Non200IsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, 403)
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL+"/bot", "token123", "chat42", zap.NewNop())
	err := tg.Send(context.Background(), "hello")
	assert.Error(t, err)
}

func TestTelegram_TransportFailureIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL + "/bot"
	ts.Close()

	tg := NewTelegram(base, "token123", "chat42", zap.NewNop())
	err := tg.Send(context.Background(), "hello")
	assert.Error(t, err)
}

func TestNewTelegram_NilWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewTelegram("", "", "chat", zap.NewNop()))
	assert.Nil(t, NewTelegram("", "token", "", zap.NewNop()))
}

func TestMulti_AggregatesErrors(t *testing.T) {
	good := notifierFunc(func(ctx context.Context, text string) error { return nil })
	bad := notifierFunc(func(ctx context.Context, text string) error {
		return assert.AnError
	})

	assert.NoError(t, Multi{good, nil, good}.Send(context.Background(), "x"))
	assert.Error(t, Multi{good, bad}.Send(context.Background(), "x"))
}

type notifierFunc func(ctx context.Context, text string) error

func (f notifierFunc) Send(ctx context.Context, text string) error { return f(ctx, text) }
