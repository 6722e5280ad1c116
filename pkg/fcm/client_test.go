package fcm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"porter-saathi/pkg/fcm"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *fcm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := &http.Client{Transport: &rewriteTransport{
		Transport: http.DefaultTransport,
		Host:      strings.TrimPrefix(srv.URL, "http://"),
	}}
	c, err := fcm.NewClientFromHTTP(context.Background(), httpClient, "porter-test")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestClientSend(t *testing.T) {
	t.Run("sends to topic", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"projects/porter-test/messages/42"}`))
		})

		name, err := c.Send(context.Background(), fcm.Message{
			Topic: "emergency",
			Title: "Emergency",
			Body:  "Rajesh Kumar needs help",
			Data:  map[string]string{"driver_id": "driver123"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "projects/porter-test/messages/42" {
			t.Errorf("unexpected name %q", name)
		}
		if !strings.HasSuffix(gotPath, "/projects/porter-test/messages:send") {
			t.Errorf("unexpected path %q", gotPath)
		}
		msg, _ := gotBody["message"].(map[string]any)
		if msg["topic"] != "emergency" {
			t.Errorf("topic not sent: %v", gotBody)
		}
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := c.Send(context.Background(), fcm.Message{Topic: "emergency"}); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("no request expected")
		})
		if _, err := c.Send(context.Background(), fcm.Message{}); !errors.Is(err, fcm.ErrNoRecipient) {
			t.Errorf("expected ErrNoRecipient, got %v", err)
		}
	})
}

func TestNewClientFromCredentialsJSON(t *testing.T) {
	if _, err := fcm.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "p"); err == nil {
		t.Errorf("expected decoding failure")
	}
}
