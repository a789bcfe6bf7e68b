package push

import (
	"context"
	"fmt"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/utils"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM accepts at most 500 tokens per multicast call.
const maxBatchSize = 500

type (
	Message struct {
		Title string
		Body  string
		Data  map[string]string
	}

	BatchResult struct {
		SuccessCount int      `json:"success_count"`
		FailureCount int      `json:"failure_count"`
		FailedTokens []string `json:"failed_tokens,omitempty"`
	}

	Gateway interface {
		SendToDevice(ctx context.Context, token string, msg Message) error
		SendToTopic(ctx context.Context, topic string, msg Message) error
		SendBatch(ctx context.Context, tokens []string, msg Message) (BatchResult, error)
	}

	messagingClient interface {
		Send(ctx context.Context, message *messaging.Message) (string, error)
		SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	}

	fcmGateway struct {
		client messagingClient
	}

	logGateway struct{}
)

// NewGateway connects to Firebase Cloud Messaging with the given service
// account file. Without credentials it falls back to a gateway that only logs.
func NewGateway(ctx context.Context, credentialsFile string) (Gateway, error) {
	if credentialsFile == "" {
		utils.Log.Warn("FIREBASE_CREDENTIALS_FILE not set, push notifications will only be logged")
		return &logGateway{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return &fcmGateway{client: client}, nil
}

func notification(msg Message) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

func (g *fcmGateway) SendToDevice(ctx context.Context, token string, msg Message) error {
	_, err := g.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: notification(msg),
		Data:         msg.Data,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return nil
}

func (g *fcmGateway) SendToTopic(ctx context.Context, topic string, msg Message) error {
	_, err := g.client.Send(ctx, &messaging.Message{
		Topic:        topic,
		Notification: notification(msg),
		Data:         msg.Data,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return nil
}

func (g *fcmGateway) SendBatch(ctx context.Context, tokens []string, msg Message) (BatchResult, error) {
	var result BatchResult
	for start := 0; start < len(tokens); start += maxBatchSize {
		end := min(start+maxBatchSize, len(tokens))
		chunk := tokens[start:end]

		res, err := g.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notification(msg),
			Data:         msg.Data,
		})
		if err != nil {
			result.FailureCount += len(chunk)
			result.FailedTokens = append(result.FailedTokens, chunk...)
			return result, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}

		result.SuccessCount += res.SuccessCount
		result.FailureCount += res.FailureCount
		for i, r := range res.Responses {
			if !r.Success {
				result.FailedTokens = append(result.FailedTokens, chunk[i])
			}
		}
	}
	return result, nil
}

func (g *logGateway) SendToDevice(_ context.Context, token string, msg Message) error {
	utils.Log.WithField("token", token).Infof("push (disabled): %s - %s", msg.Title, msg.Body)
	return nil
}

func (g *logGateway) SendToTopic(_ context.Context, topic string, msg Message) error {
	utils.Log.WithField("topic", topic).Infof("push (disabled): %s - %s", msg.Title, msg.Body)
	return nil
}

func (g *logGateway) SendBatch(_ context.Context, tokens []string, msg Message) (BatchResult, error) {
	utils.Log.WithField("tokens", len(tokens)).Infof("push (disabled): %s - %s", msg.Title, msg.Body)
	return BatchResult{SuccessCount: len(tokens)}, nil
}
