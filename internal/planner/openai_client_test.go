package planner

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatCompleter struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("  ", "gpt-4.1-mini")
	require.Error(t, err)
}

func TestOpenAIClientComplete(t *testing.T) {
	fake := &fakeChatCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Content: "  Day 1 – Arrival  "},
				FinishReason: openai.FinishReasonStop,
			}},
			Usage: openai.Usage{PromptTokens: 40, CompletionTokens: 200},
		},
	}
	client := &OpenAIClient{client: fake, modelID: "gpt-4.1-mini"}

	resp, err := client.Complete(context.Background(), Request{
		System:    systemPrompt,
		Prompt:    "plan it",
		MaxTokens: 1200,
	})
	require.NoError(t, err)

	assert.Equal(t, "Day 1 – Arrival", resp.Text, "response text is trimmed")
	assert.Equal(t, int32(40), resp.InputTokens)
	assert.Equal(t, int32(200), resp.OutputTokens)

	require.Len(t, fake.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.req.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, fake.req.Messages[1].Role)
	assert.Equal(t, "plan it", fake.req.Messages[1].Content)
	assert.Equal(t, 1200, fake.req.MaxTokens)
	assert.Equal(t, "gpt-4.1-mini", fake.req.Model)
}

func TestOpenAIClientCompleteError(t *testing.T) {
	fake := &fakeChatCompleter{err: errors.New("429 rate limited")}
	client := &OpenAIClient{client: fake, modelID: "gpt-4.1-mini"}

	_, err := client.Complete(context.Background(), Request{Prompt: "plan it"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai completion failed")
}

func TestOpenAIClientCompleteNoChoices(t *testing.T) {
	fake := &fakeChatCompleter{}
	client := &OpenAIClient{client: fake, modelID: "gpt-4.1-mini"}

	_, err := client.Complete(context.Background(), Request{Prompt: "plan it"})
	require.Error(t, err)
}
