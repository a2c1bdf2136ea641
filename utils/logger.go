// utils/logger.go
package utils

import (
	"strings"

	"go.uber.org/zap"
)

// InitLogger builds the global zap logger. The env can be "production" or
// "development" (default). Stdlib log output is redirected so stray
// log.Printf calls are captured too.
func InitLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(env, "prod") || strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	_ = zap.RedirectStdLog(logger)
	return logger, nil
}
