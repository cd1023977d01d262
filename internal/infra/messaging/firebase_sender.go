// Package messaging contains the FCM-backed implementation of the push
// provider gateway.
package messaging

import (
	"context"
	"encoding/json"

	"pushgate/config"
	"pushgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// serviceAccount is the minimal credential document the Firebase SDK accepts
// through option.WithCredentialsJSON.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
}

// NewFirebaseSender builds the shared FCM messaging client from the three
// required credential values. Construction happens once at startup; a missing
// credential aborts startup. The returned sender is safe for concurrent use.
func NewFirebaseSender(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "firebase credentials incomplete")
	}

	credentials, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.ProjectID,
		PrivateKey:  cfg.DecodedPrivateKey(),
		ClientEmail: cfg.ClientEmail,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode firebase credentials")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// SendToToken sends a push notification to a single device token.
func (s *firebaseSender) SendToToken(ctx context.Context, msg *service.PushMessage) (string, error) {
	messageID, err := s.client.Send(ctx, buildMessage(msg))
	if err != nil {
		// Returned verbatim: callers surface the provider message in results.
		return "", errors.WithStack(err)
	}

	return messageID, nil
}

// SendToTopic sends a push notification to every subscriber of a topic.
func (s *firebaseSender) SendToTopic(ctx context.Context, msg *service.PushMessage) (string, error) {
	messageID, err := s.client.Send(ctx, buildMessage(msg))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return messageID, nil
}

// SubscribeToTopic subscribes a single device token to a topic.
func (s *firebaseSender) SubscribeToTopic(ctx context.Context, token, topic string) (*service.TopicManagementResult, error) {
	response, err := s.client.SubscribeToTopic(ctx, []string{token}, topic)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toTopicManagementResult(response), nil
}

// UnsubscribeFromTopic removes a single device token from a topic.
func (s *firebaseSender) UnsubscribeFromTopic(ctx context.Context, token, topic string) (*service.TopicManagementResult, error) {
	response, err := s.client.UnsubscribeFromTopic(ctx, []string{token}, topic)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toTopicManagementResult(response), nil
}

// buildMessage maps the provider-agnostic payload onto the FCM message type.
// Exactly one of Token or Topic is set on the input.
func buildMessage(msg *service.PushMessage) *messaging.Message {
	return &messaging.Message{
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: msg.Image,
		},
		Data:  msg.Data,
		Token: msg.Token,
		Topic: msg.Topic,
	}
}

func toTopicManagementResult(response *messaging.TopicManagementResponse) *service.TopicManagementResult {
	result := &service.TopicManagementResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Errors:       make([]string, 0, len(response.Errors)),
	}
	for _, e := range response.Errors {
		result.Errors = append(result.Errors, e.Reason)
	}

	return result
}
