// Package sqlite implements the catalog over a SQLite database via gorm.
package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"hospitality-concierge/internal/catalog"
	pkgLog "hospitality-concierge/pkg/log"
)

type implCatalog struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// Ensure implCatalog implements Catalog interface
var _ catalog.Catalog = (*implCatalog)(nil)

// New creates a SQLite-backed catalog and migrates its tables.
func New(db *gorm.DB, l pkgLog.Logger) (*implCatalog, error) {
	if err := db.AutoMigrate(&restaurantRow{}, &activityRow{}, &propertyRow{}); err != nil {
		return nil, fmt.Errorf("catalog sqlite: migrate failed: %w", err)
	}
	return &implCatalog{db: db, l: l}, nil
}
