package push

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"HomeChef-Backend/domain"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessaging struct {
	sent       []*messaging.Message
	multicasts []*messaging.MulticastMessage
	failToken  string
	sendErr    error
}

func (f *fakeMessaging) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, m)
	return "projects/test/messages/1", nil
}

func (f *fakeMessaging) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicasts = append(f.multicasts, m)
	res := &messaging.BatchResponse{}
	for _, t := range m.Tokens {
		if t == f.failToken {
			res.FailureCount++
			res.Responses = append(res.Responses, &messaging.SendResponse{Success: false, Error: errors.New("unregistered")})
			continue
		}
		res.SuccessCount++
		res.Responses = append(res.Responses, &messaging.SendResponse{Success: true})
	}
	return res, nil
}

func TestSendBatchCountsAndChunks(t *testing.T) {
	client := &fakeMessaging{failToken: "tok-3"}
	gw := &fcmGateway{client: client}

	tokens := make([]string, 0, 502)
	for i := 0; i < 502; i++ {
		tokens = append(tokens, fmt.Sprintf("tok-%d", i))
	}

	res, err := gw.SendBatch(context.Background(), tokens, Message{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Len(t, client.multicasts, 2)
	assert.Equal(t, 501, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	assert.Equal(t, []string{"tok-3"}, res.FailedTokens)
}

func TestSendToTopicAndDevice(t *testing.T) {
	client := &fakeMessaging{}
	gw := &fcmGateway{client: client}

	require.NoError(t, gw.SendToTopic(context.Background(), "news", Message{Title: "hello"}))
	require.NoError(t, gw.SendToDevice(context.Background(), "abc", Message{Title: "hi", Data: map[string]string{"k": "v"}}))

	require.Len(t, client.sent, 2)
	assert.Equal(t, "news", client.sent[0].Topic)
	assert.Equal(t, "abc", client.sent[1].Token)
	assert.Equal(t, "v", client.sent[1].Data["k"])
}

func TestSendToDeviceWrapsUpstreamError(t *testing.T) {
	gw := &fcmGateway{client: &fakeMessaging{sendErr: errors.New("boom")}}

	err := gw.SendToDevice(context.Background(), "abc", Message{})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
