package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EscapesUserInput(t *testing.T) {
	html, err := Render(TemplateContactNotification, ContactNotification{
		ContactID: 3,
		Name:      "<script>alert(1)</script>",
		Email:     "x@example.com",
		Message:   "hello",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "message #3")
}

func TestPreview_EveryTemplate(t *testing.T) {
	for _, name := range Templates() {
		t.Run(string(name), func(t *testing.T) {
			html, err := Preview(name)
			require.NoError(t, err)
			assert.NotEmpty(t, html)
		})
	}

	_, err := Preview(Template("missing"))
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestSendContactNotification(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Integration: config.IntegrationConfig{ResendAPIKey: "re_test"}}
	logger := zerolog.Nop()
	client := NewClient(cfg, &logger)

	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.client.BaseURL = base

	err = client.SendContactNotification(context.Background(), "owner@example.com", ContactNotification{
		ContactID: 9,
		Name:      "Jane",
		Email:     "jane@example.com",
		Subject:   "Hello",
		Message:   "Let's talk",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultFrom, got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "jane@example.com", got["reply_to"])
	assert.Equal(t, "New contact message: Hello", got["subject"])
	assert.Contains(t, got["html"], "Let&#39;s talk")
}

func TestSendContactNotification_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Integration: config.IntegrationConfig{ResendAPIKey: "re_test", EmailFrom: "bad"}}
	logger := zerolog.Nop()
	client := NewClient(cfg, &logger)

	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.client.BaseURL = base

	err = client.SendContactNotification(context.Background(), "owner@example.com", ContactNotification{Name: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
