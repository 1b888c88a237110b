package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
)

// NewMatchQuery строит запрос по параметрам подписки
func NewMatchQuery(alert *models.Alert, limit int) models.MatchQuery {
	return models.MatchQuery{
		AlertID:      alert.ID,
		Center:       alert.Location,
		RadiusMeters: float64(alert.SearchDistanceMeters),
		CrimeTypeIDs: alert.CrimeTypeIDs,
		Limit:        limit,
	}
}

// rankMatches отбрасывает строки за пределами радиуса и упорядочивает по расстоянию.
// Сортировка стабильная: при равных расстояниях сохраняется порядок из БД (по id).
// Возвращает обрезанный список и число строк, прошедших проверку.
func rankMatches(matches []*models.CrimeMatch, radius float64, limit int) ([]*models.CrimeMatch, int) {
	kept := make([]*models.CrimeMatch, 0, len(matches))
	for _, m := range matches {
		if m.DistanceMeters <= radius {
			kept = append(kept, m)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DistanceMeters < kept[j].DistanceMeters
	})

	total := len(kept)
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, total
}

// CheckInterval возвращает период проверки подписки для частоты
func CheckInterval(freq models.CheckFrequency, realtime time.Duration) time.Duration {
	switch freq {
	case models.FrequencyRealtime:
		return realtime
	case models.FrequencyHourly:
		return time.Hour
	case models.FrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// IsDue сообщает, пора ли проверять подписку
func IsDue(alert *models.Alert, now time.Time, realtime time.Duration) bool {
	if !alert.IsActive {
		return false
	}
	if alert.LastCheckedAt == nil {
		return true
	}
	return now.Sub(*alert.LastCheckedAt) >= CheckInterval(alert.CheckFrequency, realtime)
}

// IdempotencyKey строит ключ уведомления: id подписки и конец окна, усеченный до периода проверки
func IdempotencyKey(alertID int64, windowEnd time.Time, interval time.Duration) string {
	return strconv.FormatInt(alertID, 10) + ":" + windowEnd.UTC().Truncate(interval).Format(time.RFC3339)
}
