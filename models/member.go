package models

import "time"

const MemberTable = "members"

const (
	MemberActive   = "active"
	MemberInactive = "inactive"
)

type Member struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string    `gorm:"size:45" json:"phone,omitempty"`
	Address        string    `gorm:"size:255" json:"address,omitempty"`
	MembershipDate time.Time `gorm:"not null" json:"membershipDate"`
	Status         string    `gorm:"size:20;not null;default:'active'" json:"status"` // active/inactive
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Member) TableName() string { return MemberTable }
