package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used across the API and storage
const DateLayout = "2006-01-02"

// ScheduleRule is one weekly recurring availability window of a doctor.
// Rules are disabled through IsActive rather than deleted when history matters.
type ScheduleRule struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_schedule_rules_doctor_day" json:"doctor_id"`
	DayOfWeek    int       `gorm:"not null;index:idx_schedule_rules_doctor_day" json:"day_of_week"` // 0=Sunday..6=Saturday
	StartTime    string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(5);not null" json:"end_time"`
	SlotDuration int       `gorm:"not null;default:30" json:"slot_duration"` // minutes
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (ScheduleRule) TableName() string {
	return "schedule_rules"
}

// BlockedRange is a one-off exclusion of part of a doctor's day
type BlockedRange struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_blocked_ranges_doctor_date" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;index:idx_blocked_ranges_doctor_date" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlockedRange) TableName() string {
	return "blocked_ranges"
}
