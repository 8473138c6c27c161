package services_test

import (
	"github.com/volunteerhub/volunteerhub-web/config"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			JWTSecret: "test-secret",
			JWTIssuer: "volunteerhub-web",
			TTLHours:  24,
		},
	}
}
