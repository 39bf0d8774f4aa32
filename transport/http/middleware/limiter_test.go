package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelinv/config"
	otelMocks "hotelinv/infras/otel/mocks"
	cacheMocks "hotelinv/shared/cache/mocks"
	"hotelinv/shared/constant"
	"hotelinv/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enabled       bool
		count         int64
		cacheErr      error
		header        map[string]string
		wantKey       string
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			wantCode: http.StatusNoContent,
		},
		{
			name:          "under the limit",
			enabled:       true,
			count:         1,
			wantKey:       "limiter:192.0.2.1",
			wantCode:      http.StatusNoContent,
			wantRemaining: "2",
		},
		{
			name:          "first forwarded hop is the client",
			enabled:       true,
			count:         3,
			header:        map[string]string{constant.RequestHeaderForwardedFor: "203.0.113.9, 10.0.0.1"},
			wantKey:       "limiter:203.0.113.9",
			wantCode:      http.StatusNoContent,
			wantRemaining: "0",
		},
		{
			name:          "over the limit",
			enabled:       true,
			count:         4,
			wantKey:       "limiter:192.0.2.1",
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:     "cache down lets traffic through",
			enabled:  true,
			cacheErr: errors.New("connection refused"),
			wantKey:  "limiter:192.0.2.1",
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			cache := cacheMocks.NewMockRedisCache(ctrl)
			if tt.wantKey != "" {
				cache.EXPECT().Incr(gomock.Any(), tt.wantKey, time.Minute).Return(tt.count, tt.cacheErr)
			}

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.RemoteAddr = "192.0.2.1:51234"
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
