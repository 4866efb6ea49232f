package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"hospitality-concierge/internal/session/repository"
	pkgLog "hospitality-concierge/pkg/log"
)

// implRepository stores sessions in a gorm-managed SQLite database.
type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the SQLite session repository and migrates its table.
func New(db *gorm.DB, l pkgLog.Logger) (*implRepository, error) {
	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
