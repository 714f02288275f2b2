// Package notification delivers push alerts through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"esimhub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// userTopicPrefix namespaces per-user FCM topics. Clients subscribe to their
// own topic after sign-in, so delivery needs no device token bookkeeping.
const userTopicPrefix = "user-"

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToUser pushes a message to the user's topic.
func (s *firebaseService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: userTopicPrefix + userID.String(),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	return nil
}
