package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedClient struct {
	resp  Response
	err   error
	calls int
}

func (s *scriptedClient) Complete(ctx context.Context, req Request) (Response, error) {
	s.calls++
	return s.resp, s.err
}

func TestFallbackClientUsesPrimary(t *testing.T) {
	primary := &scriptedClient{resp: Response{Text: "primary"}}
	fallback := &scriptedClient{resp: Response{Text: "fallback"}}
	client := NewFallbackClient(primary, fallback, nil)

	resp, err := client.Complete(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Text)
	assert.Equal(t, 0, fallback.calls)
}

func TestFallbackClientFallsBack(t *testing.T) {
	primary := &scriptedClient{err: errors.New("down")}
	fallback := &scriptedClient{resp: Response{Text: "fallback"}}
	client := NewFallbackClient(primary, fallback, nil)

	resp, err := client.Complete(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestFallbackClientNoFallbackConfigured(t *testing.T) {
	cause := errors.New("down")
	client := NewFallbackClient(&scriptedClient{err: cause}, nil, nil)

	_, err := client.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, cause)
}

func TestFallbackClientBothFail(t *testing.T) {
	fallbackErr := errors.New("also down")
	client := NewFallbackClient(
		&scriptedClient{err: errors.New("down")},
		&scriptedClient{err: fallbackErr},
		nil,
	)

	_, err := client.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, fallbackErr)
}
