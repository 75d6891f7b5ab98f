// services/matcher.go
package services

import (
	"fmt"

	"lifetrack-backend/models"
)

// NotificationKind distinguishes daily habit reminders from weekly tasks.
type NotificationKind string

const (
	KindDaily  NotificationKind = "daily"
	KindWeekly NotificationKind = "weekly"
)

// DueNotification is one reminder or task whose scheduled local time matches
// the current resolved local time.
type DueNotification struct {
	Kind      NotificationKind
	HabitName string // daily
	Label     string // daily
	TaskName  string // weekly
}

// Subject line for the outgoing notification.
func (d DueNotification) Subject() string {
	if d.Kind == KindWeekly {
		return fmt.Sprintf("📋 Weekly Task: %s", d.TaskName)
	}
	return fmt.Sprintf("⏰ Time for %s", d.HabitName)
}

// Body text for the outgoing notification.
func (d DueNotification) Body() string {
	if d.Kind == KindWeekly {
		return fmt.Sprintf("Don't forget to complete your task: %s", d.TaskName)
	}
	return d.Label
}

// Heading shown at the top of the notification.
func (d DueNotification) Heading() string {
	if d.Kind == KindWeekly {
		return fmt.Sprintf("Weekly Goal: %s", d.TaskName)
	}
	return fmt.Sprintf("Your Task: %s", d.HabitName)
}

// MatchDue returns every reminder and task in the schedule due at the given
// local time, daily reminders first, each in source order. Matching is exact
// string equality at minute granularity; there is no tolerance window, so an
// item fires at most once per day. Missing collections are treated as empty.
func MatchDue(s models.Schedule, localTime, localWeekday string) []DueNotification {
	var due []DueNotification

	for _, r := range s.Reminders {
		for _, t := range r.Timers {
			if t.Time != localTime {
				continue
			}
			label := t.Label
			if label == "" {
				label = fmt.Sprintf("Time for your %s routine!", r.HabitName)
			}
			due = append(due, DueNotification{
				Kind:      KindDaily,
				HabitName: r.HabitName,
				Label:     label,
			})
		}
	}

	for _, task := range s.WeeklyTasks {
		if task.Day == localWeekday && task.ReminderTime == localTime && !task.DoneThisWeek {
			due = append(due, DueNotification{
				Kind:     KindWeekly,
				TaskName: task.Name,
			})
		}
	}

	return due
}
