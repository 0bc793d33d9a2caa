package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Окна времени для фильтров и аналитики
var rangeDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// IncidentFilter - спецификация фильтра. Пустая строка или "All" отключает
// фасет. Все активные предикаты объединяются логическим И.
type IncidentFilter struct {
	Search    string
	Status    string
	Severity  string
	Type      string
	DateRange string
	// IncludeReporter включает имя автора в текстовый поиск (админское представление)
	IncludeReporter bool
}

// FilterIncidents применяет фильтр к коллекции. Относительный порядок входа
// сохраняется, пересортировки нет.
func FilterIncidents(incidents []*models.Incident, f IncidentFilter) []*models.Incident {
	filtered := make([]*models.Incident, 0, len(incidents))

	var cutoff string
	if days, ok := rangeDays[f.DateRange]; ok {
		cutoff = time.Now().AddDate(0, 0, -days).Format(dateLayout)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, incident := range incidents {
		if search != "" && !matchesSearch(incident, search, f.IncludeReporter) {
			continue
		}
		if f.Status != "" && f.Status != "All" && incident.Status != f.Status {
			continue
		}
		if f.Severity != "" && f.Severity != "All" && incident.Severity != f.Severity {
			continue
		}
		if f.Type != "" && f.Type != "All" && incident.IncidentType != f.Type {
			continue
		}
		// Нижняя граница включительно: date >= cutoff.
		// ISO-даты корректно сравниваются как строки.
		if cutoff != "" && incident.Date < cutoff {
			continue
		}
		filtered = append(filtered, incident)
	}
	return filtered
}

// matchesSearch - регистронезависимый поиск подстроки по типу, описанию,
// месту, номеру транспорта и (для админа) имени автора. Достаточно
// совпадения в любом поле.
func matchesSearch(incident *models.Incident, search string, includeReporter bool) bool {
	if strings.Contains(strings.ToLower(incident.IncidentType), search) ||
		strings.Contains(strings.ToLower(incident.Description), search) ||
		strings.Contains(strings.ToLower(incident.Location), search) ||
		strings.Contains(strings.ToLower(incident.VehicleNumber), search) {
		return true
	}
	if includeReporter && strings.Contains(strings.ToLower(incident.UserName), search) {
		return true
	}
	return false
}

// DailyCount - точка плотного дневного ряда
type DailyCount struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
	Pending  int    `json:"pending"`
	High     int    `json:"high"`
}

// TypeCount - распределение по типам с процентами
type TypeCount struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SeverityCount - распределение по серьёзности
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// StatusCount - распределение по статусам
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// NameCount - счётчик по транспорту или автору
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsReport - агрегаты по окну времени для дашборда
type AnalyticsReport struct {
	Window                string          `json:"window"`
	TotalIncidents        int             `json:"total_incidents"`
	ResolvedIncidents     int             `json:"resolved_incidents"`
	PendingIncidents      int             `json:"pending_incidents"`
	HighSeverityIncidents int             `json:"high_severity_incidents"`
	Daily                 []DailyCount    `json:"daily"`
	ByType                []TypeCount     `json:"by_type"`
	BySeverity            []SeverityCount `json:"by_severity"`
	ByStatus              []StatusCount   `json:"by_status"`
	TopVehicles           []NameCount     `json:"top_vehicles"`
	TopReporters          []NameCount     `json:"top_reporters"`
	ResolutionRate        float64         `json:"resolution_rate"`
	HighPriorityRate      float64         `json:"high_priority_rate"`
	AvgIncidentsPerDay    float64         `json:"avg_incidents_per_day"`
}

//go:generate mockgen -source=analytics.go -destination=../handler/http/v1/mocks/mock_analytics.go -package=mocks

// AnalyticsService определяет контракт аналитики
type AnalyticsService interface {
	Report(ctx context.Context, window string) (*AnalyticsReport, error)
}

type analyticsService struct {
	store  RecordStore
	logger *logrus.Logger
}

func NewAnalyticsService(store RecordStore, logger *logrus.Logger) AnalyticsService {
	return &analyticsService{
		store:  store,
		logger: logger,
	}
}

// Report пересчитывает агрегаты по всей коллекции на каждый запрос,
// без отдельного time-series хранилища
func (s *analyticsService) Report(ctx context.Context, window string) (*AnalyticsReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Report",
		"window":  window,
	})

	days, ok := rangeDays[window]
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{
			"range": "range must be one of: 7d, 30d, 90d, 1y",
		}}
	}

	incidents, err := s.store.ListAllIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	report := BuildAnalyticsReport(incidents, window, days, time.Now())
	log.WithField("total", report.TotalIncidents).Info("Analytics report built")
	return report, nil
}

// BuildAnalyticsReport считает агрегаты по окну [now-days, now]
func BuildAnalyticsReport(incidents []*models.Incident, window string, days int, now time.Time) *AnalyticsReport {
	start := now.AddDate(0, 0, -days)
	startStr := start.Format(dateLayout)
	endStr := now.Format(dateLayout)

	windowed := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident.Date >= startStr && incident.Date <= endStr {
			windowed = append(windowed, incident)
		}
	}

	report := &AnalyticsReport{
		Window:         window,
		TotalIncidents: len(windowed),
	}

	for _, incident := range windowed {
		if incident.Status == models.StatusResolved {
			report.ResolvedIncidents++
		}
		if incident.Status == models.StatusPending || incident.Status == models.StatusUnderReview {
			report.PendingIncidents++
		}
		if incident.Severity == models.SeverityHigh {
			report.HighSeverityIncidents++
		}
	}

	report.Daily = buildDailySeries(start, now, windowed)
	report.ByType = buildTypeBreakdown(windowed)
	report.BySeverity = buildSeverityBreakdown(windowed)
	report.ByStatus = buildStatusBreakdown(windowed)
	report.TopVehicles = topCounts(windowed, func(i *models.Incident) string { return i.VehicleNumber })
	report.TopReporters = topCounts(windowed, func(i *models.Incident) string { return i.UserName })

	report.ResolutionRate = safePercentage(report.ResolvedIncidents, report.TotalIncidents)
	report.HighPriorityRate = safePercentage(report.HighSeverityIncidents, report.TotalIncidents)
	// Делитель зафиксирован на 30 для любого окна, поведение сохранено
	// из исходного продукта намеренно
	report.AvgIncidentsPerDay = round1(float64(report.TotalIncidents) / 30)

	return report
}

// buildDailySeries строит плотный ряд по дням: нулевые дни присутствуют
func buildDailySeries(start, end time.Time, incidents []*models.Incident) []DailyCount {
	byDay := make(map[string][]*models.Incident)
	for _, incident := range incidents {
		byDay[incident.Date] = append(byDay[incident.Date], incident)
	}

	series := make([]DailyCount, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(dateLayout)
		point := DailyCount{Date: dateStr}
		for _, incident := range byDay[dateStr] {
			point.Total++
			if incident.Status == models.StatusResolved {
				point.Resolved++
			}
			if incident.Status == models.StatusPending || incident.Status == models.StatusUnderReview {
				point.Pending++
			}
			if incident.Severity == models.SeverityHigh {
				point.High++
			}
		}
		series = append(series, point)
	}
	return series
}

// buildTypeBreakdown считает распределение по типам в порядке первого появления
func buildTypeBreakdown(incidents []*models.Incident) []TypeCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, incident := range incidents {
		if _, seen := counts[incident.IncidentType]; !seen {
			order = append(order, incident.IncidentType)
		}
		counts[incident.IncidentType]++
	}

	result := make([]TypeCount, 0, len(order))
	for _, t := range order {
		result = append(result, TypeCount{
			Type:       t,
			Count:      counts[t],
			Percentage: safePercentage(counts[t], len(incidents)),
		})
	}
	return result
}

func buildSeverityBreakdown(incidents []*models.Incident) []SeverityCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, incident := range incidents {
		if _, seen := counts[incident.Severity]; !seen {
			order = append(order, incident.Severity)
		}
		counts[incident.Severity]++
	}

	result := make([]SeverityCount, 0, len(order))
	for _, s := range order {
		result = append(result, SeverityCount{Severity: s, Count: counts[s]})
	}
	return result
}

func buildStatusBreakdown(incidents []*models.Incident) []StatusCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, incident := range incidents {
		if _, seen := counts[incident.Status]; !seen {
			order = append(order, incident.Status)
		}
		counts[incident.Status]++
	}

	result := make([]StatusCount, 0, len(order))
	for _, s := range order {
		result = append(result, StatusCount{Status: s, Count: counts[s]})
	}
	return result
}

// topCounts возвращает топ-5 по количеству, по убыванию; при равенстве
// побеждает встреченный раньше
func topCounts(incidents []*models.Incident, key func(*models.Incident) string) []NameCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, incident := range incidents {
		k := key(incident)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	result := make([]NameCount, 0, len(order))
	for _, name := range order {
		result = append(result, NameCount{Name: name, Count: counts[name]})
	}
	// Стабильная сортировка сохраняет порядок первого появления при равных счётчиках
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > 5 {
		result = result[:5]
	}
	return result
}

// safePercentage возвращает 0 при пустой выборке, а не NaN
func safePercentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
