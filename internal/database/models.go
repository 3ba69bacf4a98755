package database

import (
	"time"
)

// AlertLog is one row of alert_history
type AlertLog struct {
	ID             string
	AlertType      string
	AlertDay       time.Time
	Title          string
	Message        string
	Severity       string
	Recommendation string
	Action         string
	NotifiedAt     time.Time
}

// DayLayout is the calendar-day format used for alert_day parameters
const DayLayout = "2006-01-02"
