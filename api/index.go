package handler

import (
	"net/http"
	"sync"

	"hotelinv/config"
	"hotelinv/di"
	"hotelinv/shared/logger"
	transport "hotelinv/transport/http"
)

var (
	service *transport.HTTP
	boot    sync.Once
)

// Handler is the serverless entrypoint. The container is built on the first
// invocation and reused while the instance stays warm, so sessions survive
// between requests to the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	boot.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)
		logger.WithProcess("serverless")

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	service.ServeHTTP(w, r)
}
