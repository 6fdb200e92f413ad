package domain

import "time"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// setting keys shared by repository users
const (
	SettingDismissedAlerts = "dismissed_alerts"
	SettingLastFeedUpdate  = "last_feed_update"
)
