package models

import "time"

// Типы уведомлений
const (
	NotificationIncidentUpdate     = "incident_update"
	NotificationIncidentCreated    = "incident_created"
	NotificationSystemAnnouncement = "system_announcement"
)

// Notification - уведомление пользователя
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Priority  string    `json:"priority"`
}

// NotificationPreferences - настройки уведомлений пользователя
type NotificationPreferences struct {
	EmailNotifications  bool `json:"email_notifications"`
	IncidentUpdates     bool `json:"incident_updates"`
	SystemAnnouncements bool `json:"system_announcements"`
	WeeklyReports       bool `json:"weekly_reports"`
}

// DefaultNotificationPreferences - настройки по умолчанию: всё включено
func DefaultNotificationPreferences() *NotificationPreferences {
	return &NotificationPreferences{
		EmailNotifications:  true,
		IncidentUpdates:     true,
		SystemAnnouncements: true,
		WeeklyReports:       true,
	}
}
