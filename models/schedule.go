// models/schedule.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timer is one fire-time of a daily habit reminder (local time-of-day, "HH:MM").
type Timer struct {
	Time  string `json:"time"`
	Label string `json:"label,omitempty"`
}

// DailyReminder is a habit with one or more timers. A reminder with no
// timers never fires.
type DailyReminder struct {
	HabitName string  `json:"habitName"`
	Timers    []Timer `json:"timers"`
}

// WeeklyTask fires on one weekday at one time, unless already done this week.
type WeeklyTask struct {
	Name         string `json:"name"`
	Day          string `json:"day"` // long English weekday name, e.g. "Monday"
	ReminderTime string `json:"reminderTime"`
	DoneThisWeek bool   `json:"doneThisWeek"`
}

// Custom JSONB types so the nested collections live in single columns and a
// sync replaces them atomically in one row update.
type ReminderList []DailyReminder

func (r ReminderList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ReminderList) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, r)
}

type WeeklyTaskList []WeeklyTask

func (w WeeklyTaskList) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeeklyTaskList) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, w)
}

type Schedule struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Timezone string    // IANA identifier; empty means the scheduler skips this user

	Reminders   ReminderList   `gorm:"type:jsonb"`
	WeeklyTasks WeeklyTaskList `gorm:"type:jsonb"`

	gorm.Model
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
