package models

import (
	"time"

	"github.com/paulmach/orb"
)

type CheckFrequency string

const (
	FrequencyRealtime CheckFrequency = "realtime"
	FrequencyHourly   CheckFrequency = "hourly"
	FrequencyDaily    CheckFrequency = "daily"
	FrequencyWeekly   CheckFrequency = "weekly"
)

type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "pending"
	NotificationSent     NotificationStatus = "sent"
	NotificationFailed   NotificationStatus = "failed"
	NotificationReceived NotificationStatus = "received"
	NotificationRead     NotificationStatus = "read"
)

// Alert - пользовательская подписка на инциденты в радиусе от точки
type Alert struct {
	ID                   int64          `json:"id"`
	Name                 string         `json:"name"`
	UserID               int64          `json:"user"`
	CrimeTypeIDs         []int64        `json:"crime_types"`
	Location             orb.Point      `json:"-"`
	Address              string         `json:"address"`
	SearchDistanceMeters int            `json:"search_distance_meters"`
	IsActive             bool           `json:"is_active"`
	NotificationMethod   string         `json:"notification_method"`
	CheckFrequency       CheckFrequency `json:"check_frequency"`
	NotificationContact  string         `json:"notification_contact"`
	LastCheckedAt        *time.Time     `json:"last_checked_at"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// AlertNotification - неизменяемая запись о сработавшей подписке.
// Меняются только Status и StatusMessage.
type AlertNotification struct {
	ID                 int64              `json:"id"`
	AlertID            int64              `json:"alert"`
	CrimeIDs           []int64            `json:"crime_ids"`
	SentAt             time.Time          `json:"sent_at"`
	NotificationMethod string             `json:"notification_method"`
	Status             NotificationStatus `json:"status"`
	StatusMessage      string             `json:"status_message"`
	IdempotencyKey     string             `json:"-"`
	WindowStart        time.Time          `json:"window_start"`
	WindowEnd          time.Time          `json:"window_end"`
}

// CrimeMatch - инцидент, попавший в радиус подписки
type CrimeMatch struct {
	CrimeID        int64     `json:"id"`
	IncidentID     string    `json:"incident_id"`
	CrimeTypeName  string    `json:"type"`
	OccurredAt     time.Time `json:"occurred_at"`
	ReportedAt     time.Time `json:"-"`
	DistanceMeters float64   `json:"distance_meters"`
}

// MatchQuery описывает пространственный поиск инцидентов для подписки.
// Limit <= 0 означает выборку без ограничения.
type MatchQuery struct {
	AlertID         int64
	Center          orb.Point
	RadiusMeters    float64
	CrimeTypeIDs    []int64
	CreatedAfter    *time.Time
	CreatedUntil    *time.Time
	ExcludeNotified bool
	Limit           int
}

// MatchResult - ответ recent_matches
type MatchResult struct {
	AlertID      int64         `json:"alert_id"`
	TotalMatches int           `json:"total_matches"`
	Matches      []*CrimeMatch `json:"matches"`
}

// InWindow ограничивает выборку инцидентами, загруженными в систему в (from, to]
func (q MatchQuery) InWindow(from, to time.Time) MatchQuery {
	q.CreatedAfter = &from
	q.CreatedUntil = &to
	return q
}
