package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/services"
)

type RecordingHandler struct {
	log        *logger.Logger
	recordings services.RecordingService
}

func NewRecordingHandler(log *logger.Logger, recordings services.RecordingService) *RecordingHandler {
	return &RecordingHandler{
		log:        log.With("handler", "RecordingHandler"),
		recordings: recordings,
	}
}

type createRecordingRequest struct {
	Title           string `json:"title"`
	Transcript      string `json:"transcript" binding:"required"`
	DurationSeconds int    `json:"duration_seconds"`
}

// POST /api/recordings
// Ingest endpoint for the capture/transcription flow: transcript in,
// recording out.
func (h *RecordingHandler) CreateRecording(c *gin.Context) {
	var req createRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rec, err := h.recordings.Create(c.Request.Context(), req.Title, req.Transcript, req.DurationSeconds)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"recording": rec})
}

// GET /api/recordings/:id
// Recording plus everything extracted from it so far.
func (h *RecordingHandler) GetRecording(c *gin.Context) {
	recordingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_recording_id", err)
		return
	}
	detail, err := h.recordings.GetWithExtractions(c.Request.Context(), recordingID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, detail)
}

type updateTranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// PUT /api/recordings/:id/transcript
// Transcript correction; bumps updated_at, which re-enables extraction.
func (h *RecordingHandler) UpdateTranscript(c *gin.Context) {
	recordingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_recording_id", err)
		return
	}
	var req updateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rec, err := h.recordings.UpdateTranscript(c.Request.Context(), recordingID, req.Transcript)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"recording": rec})
}
