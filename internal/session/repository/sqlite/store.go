package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hospitality-concierge/internal/model"
)

// Load returns the stored session for id, creating and persisting a fresh
// one when none exists.
func (r *implRepository) Load(ctx context.Context, id string) (*model.Session, error) {
	var row sessionRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sess := model.NewSession(id)
		if err := r.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("persist fresh session: %w", err)
		}
		return sess, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", id, err)
	}
	return fromRow(row), nil
}

// Save upserts the session row.
func (r *implRepository) Save(ctx context.Context, sess *model.Session) error {
	row := toRow(sess)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save session %q: %w", sess.ID, err)
	}
	return nil
}
