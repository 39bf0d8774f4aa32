package openai

//go:generate go run go.uber.org/mock/mockgen -source=./openai.go -destination=./mocks/openai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/shared/constant"

	"github.com/rs/zerolog/log"
	goOpenAI "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 90 * time.Second
	temperature    = 0.1
)

var (
	ErrNotConfigured = errors.New("openai api key is not configured")
	ErrNoChoices     = errors.New("openai returned no choices")
)

// Vision sends an image together with instructions and returns the model's JSON answer.
type Vision interface {
	ExtractJSON(ctx context.Context, instructions, imageDataURL string) (content string, err error)
}

type visionImpl struct {
	client     *goOpenAI.Client
	limiter    *rate.Limiter
	model      string
	maxRetries int
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Vision {
	openaiCfg := cfg.External.OpenAI

	var client *goOpenAI.Client
	if openaiCfg.APIKey != "" {
		clientCfg := goOpenAI.DefaultConfig(openaiCfg.APIKey)
		if openaiCfg.BaseURL != "" {
			clientCfg.BaseURL = openaiCfg.BaseURL
		}
		client = goOpenAI.NewClientWithConfig(clientCfg)
	} else {
		log.Warn().Msg("OpenAI API key not configured, image extraction is disabled")
	}

	rps := openaiCfg.RequestsPerSecond
	if rps <= 0 {
		rps = 3
	}
	burst := max(1, openaiCfg.Burst)

	return &visionImpl{
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		model:      openaiCfg.Model,
		maxRetries: max(1, openaiCfg.MaxRetries),
		otel:       ot,
	}
}

func (v *visionImpl) ExtractJSON(ctx context.Context, instructions, imageDataURL string) (content string, err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".openai.ExtractJSON")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if v.client == nil {
		return constant.Empty, ErrNotConfigured
	}

	scope.SetAttribute("model", v.model)

	request := goOpenAI.ChatCompletionRequest{
		Model: v.model,
		Messages: []goOpenAI.ChatCompletionMessage{
			{
				Role:    goOpenAI.ChatMessageRoleSystem,
				Content: "You read hotel booking screenshots and answer with JSON only.",
			},
			{
				Role: goOpenAI.ChatMessageRoleUser,
				MultiContent: []goOpenAI.ChatMessagePart{
					{Type: goOpenAI.ChatMessagePartTypeText, Text: instructions},
					{
						Type: goOpenAI.ChatMessagePartTypeImageURL,
						ImageURL: &goOpenAI.ChatMessageImageURL{
							URL:    imageDataURL,
							Detail: goOpenAI.ImageURLDetailHigh,
						},
					},
				},
			},
		},
		ResponseFormat: &goOpenAI.ChatCompletionResponseFormat{
			Type: goOpenAI.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
	}

	var resp goOpenAI.ChatCompletionResponse
	for attempt := 1; attempt <= v.maxRetries; attempt++ {
		if err = v.limiter.Wait(ctx); err != nil {
			return constant.Empty, fmt.Errorf("rate limiter: %w", err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err = v.client.CreateChatCompletion(attemptCtx, request)
		cancel()

		if err == nil && len(resp.Choices) > 0 {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("openai extraction attempt failed")

		if attempt < v.maxRetries {
			backoff := time.Duration(attempt*2)*time.Second + time.Duration(rand.IntN(1000))*time.Millisecond
			select {
			case <-ctx.Done():
				return constant.Empty, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	if err != nil {
		log.Error().Err(err).Int("attempts", v.maxRetries).Msg("openai extraction failed")

		return constant.Empty, fmt.Errorf("openai request failed after %d attempts: %w", v.maxRetries, err)
	}

	if len(resp.Choices) == 0 {
		return constant.Empty, ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
