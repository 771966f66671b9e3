package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/services"
)

type SmartifyHandler struct {
	log      *logger.Logger
	smartify services.SmartifyService
}

func NewSmartifyHandler(log *logger.Logger, smartify services.SmartifyService) *SmartifyHandler {
	return &SmartifyHandler{
		log:      log.With("handler", "SmartifyHandler"),
		smartify: smartify,
	}
}

// POST /api/recordings/:id/smartify/preview
// Dry run: counts and the items that a commit would persist. An
// already-processed recording answers 200 with zero counts and the
// already_processed flag set.
func (h *SmartifyHandler) Preview(c *gin.Context) {
	recordingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_recording_id", err)
		return
	}
	preview, err := h.smartify.Preview(c.Request.Context(), recordingID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, preview)
}

// POST /api/recordings/:id/smartify/commit
// Persists every non-empty category and marks the recording processed.
// Answers 409 already_processed when the idempotency guard refuses.
func (h *SmartifyHandler) Commit(c *gin.Context) {
	recordingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_recording_id", err)
		return
	}
	result, err := h.smartify.Commit(c.Request.Context(), recordingID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
