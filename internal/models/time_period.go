package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimePeriod is a time-of-day window during which prices are multiplied.
type TimePeriod struct {
	ID         string  `json:"id" firestore:"id"`
	Name       string  `json:"name" firestore:"name"`
	StartTime  string  `json:"start_time" firestore:"startTime"` // HH:MM, 24h
	EndTime    string  `json:"end_time" firestore:"endTime"`
	DaysOfWeek []int   `json:"days_of_week" firestore:"daysOfWeek"` // 0 = Sunday
	Multiplier float64 `json:"multiplier" firestore:"multiplier"`
	Badge      string  `json:"badge" firestore:"badge"`
	Active     bool    `json:"active" firestore:"active"`
}

// TimeMultiplierRules is the pricing_config/time_multipliers document.
type TimeMultiplierRules struct {
	Enabled  bool         `json:"enabled" firestore:"enabled"`
	Timezone string       `json:"timezone" firestore:"timezone"`
	Periods  []TimePeriod `json:"periods" firestore:"periods"`
}

// TimeMultiplier is a resolved surcharge.
type TimeMultiplier struct {
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label"`
}

// DisplayLabel prefers the short badge.
func (p *TimePeriod) DisplayLabel() string {
	if p.Badge != "" {
		return p.Badge
	}
	return p.Name
}

func (p *TimePeriod) HasDay(weekday int) bool {
	for _, d := range p.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}

// ParseClock converts "HH:MM" to minutes after midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hours*60 + minutes, nil
}
