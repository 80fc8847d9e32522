package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`

	// Relationships
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FamilyMembers []FamilyMember `gorm:"foreignKey:PatientID" json:"family_members,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// FamilyMember is a dependant a patient may book appointments for
type FamilyMember struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Relation    string     `gorm:"type:varchar(50);not null" json:"relation"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup  string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies   string     `gorm:"type:text" json:"allergies,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}
