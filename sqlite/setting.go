package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/fwojciec/wordma"
)

// Compile-time interface verification.
var _ wordma.SettingService = (*SettingService)(nil)

// SettingService implements wordma.SettingService using SQLite.
type SettingService struct {
	db *DB
}

// NewSettingService creates a new SettingService.
func NewSettingService(db *DB) *SettingService {
	return &SettingService{db: db}
}

// FindSetting returns the value stored under key.
func (s *SettingService) FindSetting(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", wordma.Errorf(wordma.ENOTFOUND, "setting %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// LastSiteID returns the last opened site ID.
// Missing and non-numeric values both report false without an error.
func (s *SettingService) LastSiteID(ctx context.Context) (int64, bool, error) {
	value, err := s.FindSetting(ctx, wordma.SettingLastSiteID)
	if wordma.ErrorCode(err) == wordma.ENOTFOUND {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

// SetLastSiteID records id as the last opened site.
func (s *SettingService) SetLastSiteID(ctx context.Context, id int64) error {
	return s.SetSetting(ctx, wordma.SettingLastSiteID, strconv.FormatInt(id, 10))
}
