package dto

import "time"

type WeeklyReportDTO struct {
	ReportID        string    `json:"report_id"`
	UserID          string    `json:"user_id"`
	WeekStart       time.Time `json:"week_start"`
	WeekEnd         time.Time `json:"week_end"`
	Summary         string    `json:"summary"`
	OverallAccuracy float64   `json:"overall_accuracy"`
	StrongTopics    []string  `json:"strong_topics"`
	WeakTopics      []string  `json:"weak_topics"`
	FocusTopics     []string  `json:"focus_topics"`
	FullReport      string    `json:"full_report"`
	GeneratedAt     time.Time `json:"generated_at"`
}

type ReportSummaryDTO struct {
	ReportID        string    `json:"report_id"`
	WeekStart       time.Time `json:"week_start"`
	WeekEnd         time.Time `json:"week_end"`
	Summary         string    `json:"summary"`
	OverallAccuracy float64   `json:"overall_accuracy"`
	GeneratedAt     time.Time `json:"generated_at"`
}
