package service

import (
	"context"
	"fmt"
	"strings"

	"spendguard/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService wraps the GigaChat client behind the TextGenerator interface.
// One instance is built at startup and shared by the categorizer and the
// spending evaluator.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a sharp-tongued personal finance coach inside a spending tracker. ` +
		`Users ask you to categorize purchases and to judge whether a purchase fits their budget. ` +
		`When asked to categorize, answer with exactly one lowercase category word and nothing else. ` +
		`When asked about a purchase against a budget and savings goals, either approve it or talk the user out of it in a short, punchy message. ` +
		`Be specific about the numbers you are given and never invent amounts.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.7

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends a single-turn prompt and returns the model's reply.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
