// Package pushtest provides an in-memory push.Gateway for tests.
package pushtest

import (
	"context"
	"sync"

	"HomeChef-Backend/pkg/push"
)

type Sent struct {
	Tokens []string
	Topic  string
	Msg    push.Message
}

type Recorder struct {
	mu   sync.Mutex
	Err  error
	sent []Sent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(s Sent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, s)
	return nil
}

func (r *Recorder) SendToDevice(_ context.Context, token string, msg push.Message) error {
	return r.record(Sent{Tokens: []string{token}, Msg: msg})
}

func (r *Recorder) SendToTopic(_ context.Context, topic string, msg push.Message) error {
	return r.record(Sent{Topic: topic, Msg: msg})
}

func (r *Recorder) SendBatch(_ context.Context, tokens []string, msg push.Message) (push.BatchResult, error) {
	if err := r.record(Sent{Tokens: tokens, Msg: msg}); err != nil {
		return push.BatchResult{FailureCount: len(tokens)}, err
	}
	return push.BatchResult{SuccessCount: len(tokens)}, nil
}

func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}
