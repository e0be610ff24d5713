package model

import (
	"time"
)

// Event represents the database model for events. Deleting the owner
// leaves the event in place without an owner.
type Event struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_events_name"`
	OwnerID   *uint64   `gorm:"index:idx_events_owner"`
	Owner     *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
