package app

import (
	"gorm.io/gorm"

	redisclient "github.com/yungbote/smartnotes-backend/internal/clients/redis"
	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/services"
)

type Services struct {
	Recording services.RecordingService
	Smartify  services.SmartifyService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		return Services{}, err
	}

	// The preview cache is optional: without redis, commit just re-runs
	// extraction, which the pipeline tolerates.
	var cache services.PreviewCache
	previewCache, err := redisclient.NewPreviewCache(log)
	if err != nil {
		log.Warn("Preview cache unavailable, commits will re-run extraction", "error", err)
	} else {
		cache = previewCache
	}

	recordingService := services.NewRecordingService(
		db, log,
		reposet.Recording,
		reposet.ActionItem,
		reposet.InvestorUpdate,
		reposet.ProgressLog,
		reposet.ProductIdea,
		reposet.BrainDump,
	)

	smartifyService := services.NewSmartifyService(
		db, log,
		reposet.Recording,
		reposet.ActionItem,
		reposet.InvestorUpdate,
		reposet.ProgressLog,
		reposet.ProductIdea,
		reposet.BrainDump,
		openaiClient,
		cache,
	)

	return Services{
		Recording: recordingService,
		Smartify:  smartifyService,
	}, nil
}
