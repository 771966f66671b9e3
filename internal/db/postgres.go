package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
	"github.com/yungbote/smartnotes-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "smartnotes", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Recording{},
		&types.ActionItem{},
		&types.InvestorUpdate{},
		&types.ProgressLog{},
		&types.ProductIdea{},
		&types.BrainDumpEntry{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	for _, table := range []string{"action_item", "investor_update", "progress_log", "product_idea", "brain_dump_entry"} {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS "fk_%s_recording_id"`, table, table)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop fk_%s_recording_id: %w", table, err)
		}
		add := fmt.Sprintf(`
			ALTER TABLE %q
			ADD CONSTRAINT "fk_%s_recording_id"
			FOREIGN KEY ("recording_id")
			REFERENCES "recording"("id")
			ON DELETE CASCADE
		`, table, table)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add fk_%s_recording_id: %w", table, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
