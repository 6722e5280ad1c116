package fcm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	fcmapi "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"
)

var ErrNoRecipient = errors.New("fcm message has no topic or token")

// Client wraps the Firebase Cloud Messaging HTTP v1 API.
type Client struct {
	service *fcmapi.Service
	project string
}

// NewClientFromCredentialsFile creates a client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, projectID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, projectID)
}

// NewClientFromCredentialsJSON creates a client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, projectID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, fcmapi.FirebaseMessagingScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := fcmapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}
	return &Client{service: svc, project: projectID}, nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, projectID string) (*Client, error) {
	svc, err := fcmapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}
	return &Client{service: svc, project: projectID}, nil
}

// Send delivers msg and returns the message name assigned by FCM.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if msg.Topic == "" && msg.Token == "" {
		return "", ErrNoRecipient
	}

	req := &fcmapi.SendMessageRequest{
		Message: &fcmapi.Message{
			Topic: msg.Topic,
			Token: msg.Token,
			Data:  msg.Data,
			Notification: &fcmapi.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Android: &fcmapi.AndroidConfig{Priority: "HIGH"},
		},
	}

	sent, err := c.service.Projects.Messages.Send("projects/"+c.project, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send fcm message: %w", err)
	}
	return sent.Name, nil
}
