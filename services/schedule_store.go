// services/schedule_store.go
package services

import (
	"context"
	"errors"

	"lifetrack-backend/models"

	"gorm.io/gorm"
)

// ErrScheduleNotFound is returned when a user has no schedule row.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleStore owns all schedule reads and writes. A schedule is one row per
// user with the nested collections in JSONB columns, so a sync is a single
// UPDATE and the scheduler never observes a half-written schedule.
type ScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// ListAll returns every schedule; used by the scheduler on each tick.
func (s *ScheduleStore) ListAll(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := s.db.WithContext(ctx).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetByEmail returns the schedule for one user.
func (s *ScheduleStore) GetByEmail(ctx context.Context, email string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create initializes an empty schedule for a new user.
func (s *ScheduleStore) Create(ctx context.Context, email string) error {
	schedule := models.Schedule{
		Email:       email,
		Timezone:    "",
		Reminders:   models.ReminderList{},
		WeeklyTasks: models.WeeklyTaskList{},
	}
	return s.db.WithContext(ctx).Create(&schedule).Error
}

// Replace overwrites the entire schedule for a user: the latest sync wins,
// nothing is merged. The row is created if the user has none yet.
func (s *ScheduleStore) Replace(ctx context.Context, email, timezone string, reminders models.ReminderList, weeklyTasks models.WeeklyTaskList) error {
	if reminders == nil {
		reminders = models.ReminderList{}
	}
	if weeklyTasks == nil {
		weeklyTasks = models.WeeklyTaskList{}
	}

	result := s.db.WithContext(ctx).Model(&models.Schedule{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"timezone":     timezone,
			"reminders":    reminders,
			"weekly_tasks": weeklyTasks,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	schedule := models.Schedule{
		Email:       email,
		Timezone:    timezone,
		Reminders:   reminders,
		WeeklyTasks: weeklyTasks,
	}
	return s.db.WithContext(ctx).Create(&schedule).Error
}
