package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/smartnotes-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		RecordingHandler: handlerset.Recording,
		SmartifyHandler:  handlerset.Smartify,
	})
}
