package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/cm-assistant/backend/internal/config"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
)

const (
	modeIndividual = "individual"
	modeCombined   = "combined"
)

// Service issues persona-conditioned requests to the hosted chat model.
// It never returns errors from Ask/AskCombined; failures become sentinel replies.
type Service struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	prompts *PromptBuilder
	timeout time.Duration
}

// NewService creates the gateway backed by the configured hosted model.
func NewService(ctx context.Context, cfg config.ModelConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, chatModel, cfg.Timeout)
}

// NewServiceWithModel wires the gateway around an existing chat model.
func NewServiceWithModel(ctx context.Context, chatModel model.ChatModel, timeout time.Duration) (*Service, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is nil")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chain:   runnable,
		prompts: NewPromptBuilder(),
		timeout: timeout,
	}, nil
}

// Ask sends one system instruction and the question as a single request.
func (s *Service) Ask(ctx context.Context, systemInstruction, question string) Reply {
	return s.invoke(ctx, modeIndividual, systemInstruction, question)
}

// AskCombined answers every persona in one request. The reply text is expected
// to follow the section format described to the model by PromptBuilder.
func (s *Service) AskCombined(ctx context.Context, question string, personas []persona.Persona) Reply {
	if len(personas) == 0 {
		return failedReply(modeCombined, ErrNoPersonas)
	}
	return s.invoke(ctx, modeCombined, s.prompts.Combined(personas), question)
}

func (s *Service) invoke(ctx context.Context, mode, system, question string) (reply Reply) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ai] %s call panicked: %v", mode, r)
			reply = failedReply(mode, fmt.Errorf("panic: %v", r))
		}
	}()

	start := time.Now()
	response, err := s.chain.Invoke(ctx, map[string]any{
		"system": system,
		"query":  question,
	})
	if err != nil {
		log.Printf("[ai] %s call failed after %s: %v", mode, time.Since(start).Round(time.Millisecond), err)
		return failedReply(mode, err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		log.Printf("[ai] %s call returned no content", mode)
		return failedReply(mode, ErrEmptyReply)
	}

	log.Printf("[ai] %s call ok, length=%d, took=%s", mode, len(response.Content), time.Since(start).Round(time.Millisecond))
	return Reply{Text: response.Content}
}
