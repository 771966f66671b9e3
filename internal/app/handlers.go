package app

import (
	"github.com/yungbote/smartnotes-backend/internal/handlers"
	"github.com/yungbote/smartnotes-backend/internal/logger"
)

type Handlers struct {
	Recording *handlers.RecordingHandler
	Smartify  *handlers.SmartifyHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Recording: handlers.NewRecordingHandler(log, serviceset.Recording),
		Smartify:  handlers.NewSmartifyHandler(log, serviceset.Smartify),
	}
}
