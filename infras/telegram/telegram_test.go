package telegram_test

import (
	"context"
	"testing"

	"hotelinv/config"
	"hotelinv/infras/otel/mocks"
	"hotelinv/infras/telegram"

	"github.com/stretchr/testify/assert"
)

func TestDisabledWithoutToken(t *testing.T) {
	tg := telegram.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, tg.Enabled())
	assert.ErrorIs(t, tg.SendMessage(context.Background(), 0, "hello"), telegram.ErrNotConfigured)
	assert.ErrorIs(t, tg.Listen(context.Background(), nil), telegram.ErrNotConfigured)
}
