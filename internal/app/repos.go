package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/repos"
)

type Repos struct {
	Recording      repos.RecordingRepo
	ActionItem     repos.ActionItemRepo
	InvestorUpdate repos.InvestorUpdateRepo
	ProgressLog    repos.ProgressLogRepo
	ProductIdea    repos.ProductIdeaRepo
	BrainDump      repos.BrainDumpRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Recording:      repos.NewRecordingRepo(db, log),
		ActionItem:     repos.NewActionItemRepo(db, log),
		InvestorUpdate: repos.NewInvestorUpdateRepo(db, log),
		ProgressLog:    repos.NewProgressLogRepo(db, log),
		ProductIdea:    repos.NewProductIdeaRepo(db, log),
		BrainDump:      repos.NewBrainDumpRepo(db, log),
	}
}
