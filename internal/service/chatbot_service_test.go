package service

import (
	"context"
	"errors"
	"testing"

	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func chatRequest(text string) *dto.ChatRequest {
	return &dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: text}},
	}
}

func TestSendChatAddsSystemPrompt(t *testing.T) {
	provider := &fakeLLM{reply: "Hallo, ik ben Timo."}
	svc := NewChatbotService(provider, &fakeMailer{}, logger.Noop{})

	res, err := svc.SendChat(context.Background(), chatRequest("Wie ben jij?"), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Hallo, ik ben Timo.", res.Reply)
	assert.False(t, res.ActionEmail)

	require.NotEmpty(t, provider.history)
	assert.Equal(t, "system", provider.history[0].Role)
	assert.Contains(t, provider.history[0].Content, "Timo Intelligence")
}

func TestSendChatDetectsEmailAction(t *testing.T) {
	provider := &fakeLLM{reply: "Ik plan graag een demo voor je in. [ACTION_EMAIL]"}
	mail := &fakeMailer{}
	svc := NewChatbotService(provider, mail, logger.Noop{})

	res, err := svc.SendChat(context.Background(), chatRequest("Kan ik een demo krijgen?"), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.ActionEmail)
	assert.Equal(t, "Ik plan graag een demo voor je in.", res.Reply)
	assert.NotContains(t, res.Reply, "[ACTION_EMAIL]")

	require.Len(t, mail.leads, 1, "email action should forward a lead to the inbox")
	assert.Equal(t, "Kan ik een demo krijgen?", mail.leads[0])
}

func TestSendChatNoLeadWithoutAction(t *testing.T) {
	mail := &fakeMailer{}
	svc := NewChatbotService(&fakeLLM{reply: "Hallo!"}, mail, logger.Noop{})

	_, err := svc.SendChat(context.Background(), chatRequest("Hoi"), "10.0.0.1")
	require.NoError(t, err)
	assert.Empty(t, mail.leads)
}

func TestSendChatLeadFailureDoesNotFailChat(t *testing.T) {
	provider := &fakeLLM{reply: "Graag! [ACTION_EMAIL]"}
	mail := &fakeMailer{sendErr: errors.New("smtp down")}
	svc := NewChatbotService(provider, mail, logger.Noop{})

	res, err := svc.SendChat(context.Background(), chatRequest("Stuur een offerte"), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.ActionEmail)
	assert.Equal(t, "Graag!", res.Reply)
}

func TestSendChatEmptyMessages(t *testing.T) {
	svc := NewChatbotService(&fakeLLM{}, &fakeMailer{}, logger.Noop{})
	_, err := svc.SendChat(context.Background(), &dto.ChatRequest{}, "10.0.0.1")
	assert.Error(t, err)
}

func TestSendChatProviderFailure(t *testing.T) {
	svc := NewChatbotService(&fakeLLM{err: errors.New("endpoint gone")}, &fakeMailer{}, logger.Noop{})
	_, err := svc.SendChat(context.Background(), chatRequest("hoi"), "10.0.0.1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "endpoint", "provider detail should not leak to the visitor")
}

func TestSendChatTruncatesHistory(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc := NewChatbotService(provider, &fakeMailer{}, logger.Noop{})

	req := &dto.ChatRequest{}
	for i := 0; i < chatMaxHistory+10; i++ {
		req.Messages = append(req.Messages, dto.ChatMessage{Role: "user", Content: "bericht"})
	}

	_, err := svc.SendChat(context.Background(), req, "10.0.0.1")
	require.NoError(t, err)
	assert.Len(t, provider.history, chatMaxHistory+1, "system prompt plus capped history")
}

func TestSendChatRateLimit(t *testing.T) {
	svc := NewChatbotService(&fakeLLM{reply: "ok"}, &fakeMailer{}, logger.Noop{})

	for i := 0; i < chatRateLimit; i++ {
		_, err := svc.SendChat(context.Background(), chatRequest("hoi"), "10.0.0.9")
		require.NoError(t, err)
	}
	_, err := svc.SendChat(context.Background(), chatRequest("hoi"), "10.0.0.9")
	assert.ErrorIs(t, err, ErrTooManyChats)
}
