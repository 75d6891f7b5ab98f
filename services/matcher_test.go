package services

import (
	"testing"

	"lifetrack-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchDueExactTimeOnly(t *testing.T) {
	schedule := models.Schedule{
		Timezone: "UTC",
		Reminders: models.ReminderList{
			{HabitName: "Stretch", Timers: []models.Timer{{Time: "09:00"}}},
		},
	}

	due := MatchDue(schedule, "09:00", "Monday")
	require.Len(t, due, 1)
	assert.Equal(t, KindDaily, due[0].Kind)
	assert.Equal(t, "Stretch", due[0].HabitName)

	assert.Empty(t, MatchDue(schedule, "08:59", "Monday"))
	assert.Empty(t, MatchDue(schedule, "09:01", "Monday"))
}

func TestMatchDueDefaultLabel(t *testing.T) {
	schedule := models.Schedule{
		Reminders: models.ReminderList{
			{HabitName: "Meditation", Timers: []models.Timer{
				{Time: "07:30"},
				{Time: "21:00", Label: "Evening wind-down"},
			}},
		},
	}

	due := MatchDue(schedule, "07:30", "Friday")
	require.Len(t, due, 1)
	assert.Equal(t, "Time for your Meditation routine!", due[0].Label)

	due = MatchDue(schedule, "21:00", "Friday")
	require.Len(t, due, 1)
	assert.Equal(t, "Evening wind-down", due[0].Label)
}

func TestMatchDueWeeklyTask(t *testing.T) {
	schedule := models.Schedule{
		WeeklyTasks: models.WeeklyTaskList{
			{Name: "Report", Day: "Monday", ReminderTime: "08:00", DoneThisWeek: false},
		},
	}

	due := MatchDue(schedule, "08:00", "Monday")
	require.Len(t, due, 1)
	assert.Equal(t, KindWeekly, due[0].Kind)
	assert.Equal(t, "Report", due[0].TaskName)

	// Wrong day or wrong time: no match
	assert.Empty(t, MatchDue(schedule, "08:00", "Tuesday"))
	assert.Empty(t, MatchDue(schedule, "08:01", "Monday"))
}

func TestMatchDueWeeklySuppression(t *testing.T) {
	schedule := models.Schedule{
		WeeklyTasks: models.WeeklyTaskList{
			{Name: "Report", Day: "Monday", ReminderTime: "08:00", DoneThisWeek: true},
		},
	}

	assert.Empty(t, MatchDue(schedule, "08:00", "Monday"),
		"a task done this week must not fire")
}

func TestMatchDueOrderingAndDuplicates(t *testing.T) {
	schedule := models.Schedule{
		Reminders: models.ReminderList{
			{HabitName: "Water", Timers: []models.Timer{{Time: "10:00"}}},
			{HabitName: "Walk", Timers: []models.Timer{{Time: "10:00"}, {Time: "10:00"}}},
		},
		WeeklyTasks: models.WeeklyTaskList{
			{Name: "Laundry", Day: "Sunday", ReminderTime: "10:00"},
		},
	}

	due := MatchDue(schedule, "10:00", "Sunday")
	require.Len(t, due, 4, "each matching timer fires independently, no dedup")

	assert.Equal(t, "Water", due[0].HabitName)
	assert.Equal(t, "Walk", due[1].HabitName)
	assert.Equal(t, "Walk", due[2].HabitName)
	assert.Equal(t, KindWeekly, due[3].Kind, "daily reminders are evaluated before weekly tasks")
}

func TestMatchDueEmptyCollections(t *testing.T) {
	// Nil collections must not panic and produce nothing.
	assert.Empty(t, MatchDue(models.Schedule{}, "09:00", "Monday"))

	// A reminder with no timers never fires.
	schedule := models.Schedule{
		Reminders: models.ReminderList{{HabitName: "Journaling"}},
	}
	assert.Empty(t, MatchDue(schedule, "09:00", "Monday"))
}

func TestDueNotificationMessages(t *testing.T) {
	daily := DueNotification{Kind: KindDaily, HabitName: "Stretch", Label: "Time for your Stretch routine!"}
	assert.Equal(t, "⏰ Time for Stretch", daily.Subject())
	assert.Equal(t, "Time for your Stretch routine!", daily.Body())
	assert.Equal(t, "Your Task: Stretch", daily.Heading())

	weekly := DueNotification{Kind: KindWeekly, TaskName: "Report"}
	assert.Equal(t, "📋 Weekly Task: Report", weekly.Subject())
	assert.Equal(t, "Don't forget to complete your task: Report", weekly.Body())
	assert.Equal(t, "Weekly Goal: Report", weekly.Heading())
}
