package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	return Config{
		ServiceID:  "service_abc",
		TemplateID: "template_xyz",
		PublicKey:  "pk_123",
		Endpoint:   endpoint,
		RatePerSec: 100,
		Burst:      10,
	}
}

func TestSend_Success(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	resp, err := c.Send(context.Background(), Params{"subject": "hello"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "OK", resp.Text)
	assert.Equal(t, "service_abc", got.ServiceID)
	assert.Equal(t, "template_xyz", got.TemplateID)
	assert.Equal(t, "pk_123", got.UserID)
	assert.Empty(t, got.AccessToken)
	assert.Equal(t, "hello", got.TemplateParams["subject"])
}

func TestSend_MissingConfig(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Config{TemplateID: "t", Endpoint: srv.URL}, srv.Client())
	_, err := c.Send(context.Background(), Params{})

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{EnvServiceID, EnvPublicKey}, missing.Missing)
	assert.Equal(t, "EmailJS configuration missing: EMAILJS_SERVICE_ID, EMAILJS_PUBLIC_KEY", err.Error())
	assert.False(t, called, "relay must not be called without configuration")
}

func TestSend_Rejections(t *testing.T) {
	tests := []struct {
		status   int
		body     string
		kind     Kind
		contains string
	}{
		{http.StatusBadRequest, "The template ID is invalid", KindBadRequest, "Bad Request (400): The template ID is invalid"},
		{http.StatusUnauthorized, "", KindUnauthorized, "Unauthorized (401): Invalid public key or service ID"},
		{http.StatusNotFound, "", KindNotFound, "Not Found (404): Service or template not found"},
		{http.StatusUnprocessableEntity, "", KindUnprocessable, "Unprocessable Entity (422)"},
		{http.StatusInternalServerError, "boom", KindUnknown, "EmailJS Error (500): boom"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(testConfig(srv.URL), srv.Client())
			_, err := c.Send(context.Background(), Params{})

			var relayErr *Error
			require.ErrorAs(t, err, &relayErr)
			assert.Equal(t, tt.status, relayErr.Status)
			assert.Equal(t, tt.kind, relayErr.Kind)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(testConfig(url), nil)
	_, err := c.Send(context.Background(), Params{})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, KindUnknown, relayErr.Kind)
	assert.Zero(t, relayErr.Status)
	assert.Contains(t, err.Error(), "EmailJS Error (Unknown)")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestSend_CancelledContext(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:0"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Params{})
	assert.Error(t, err)
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindBadRequest, ClassifyStatus(400))
	assert.Equal(t, KindUnauthorized, ClassifyStatus(401))
	assert.Equal(t, KindNotFound, ClassifyStatus(404))
	assert.Equal(t, KindUnprocessable, ClassifyStatus(422))
	assert.Equal(t, KindUnknown, ClassifyStatus(403))
	assert.Equal(t, KindUnknown, ClassifyStatus(0))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvServiceID, "s")
	t.Setenv(EnvTemplateID, "")
	t.Setenv(EnvPublicKey, "p")
	t.Setenv(EnvRateLimit, "2.5")

	cfg := ConfigFromEnv()
	assert.Equal(t, "s", cfg.ServiceID)
	assert.Equal(t, 2.5, cfg.RatePerSec)
	assert.Equal(t, []string{EnvTemplateID}, cfg.Missing())
	assert.Equal(t, "Missing", cfg.Present()["templateId"])
	assert.Equal(t, DefaultEndpoint, NewClient(cfg, nil).Config().Endpoint)
}

func TestRedacted(t *testing.T) {
	params := Params{"to_email": "owner@example.com", "subject": "s"}
	r := Redacted(params)
	assert.Equal(t, "[REDACTED]", r["to_email"])
	assert.Equal(t, "owner@example.com", params["to_email"])
}
