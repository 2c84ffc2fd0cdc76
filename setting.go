package wordma

import "context"

// SettingLastSiteID is the settings key that remembers the last opened site.
const SettingLastSiteID = "last_site_id"

// SettingService represents a key/value store for application settings.
type SettingService interface {
	// FindSetting returns the value stored under key.
	// Returns ENOTFOUND if the key has never been set.
	FindSetting(ctx context.Context, key string) (string, error)

	// SetSetting stores value under key, replacing any previous value.
	SetSetting(ctx context.Context, key, value string) error

	// LastSiteID returns the last opened site ID. The boolean is false when
	// no value has been stored or the stored value is not a site ID.
	LastSiteID(ctx context.Context) (int64, bool, error)

	// SetLastSiteID records id as the last opened site.
	SetLastSiteID(ctx context.Context, id int64) error
}
