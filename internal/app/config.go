package app

import (
	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/utils"
)

type Config struct {
	Port string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: utils.GetEnv("PORT", "8080", log),
	}
}
