package services

import (
	"github.com/yungbote/smartnotes-backend/internal/types"
)

// canSmartify decides whether a recording may be extracted again.
// Allowed when it has never been smartified, or when the transcript
// changed after the last run. The check is advisory: there is no
// database-level lock behind it, so the orchestrator additionally
// serializes work per recording (see recordingLocks in SmartifyService).
func canSmartify(rec *types.Recording) (bool, string) {
	if rec == nil {
		return false, "recording not found"
	}
	if rec.SmartifiedAt == nil {
		return true, ""
	}
	if rec.UpdatedAt.After(*rec.SmartifiedAt) {
		return true, ""
	}
	return false, "recording already processed"
}
