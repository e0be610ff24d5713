package model

import (
	"time"
)

// Purchase represents the database model for purchases. Rows are removed
// with their event or their contributor.
type Purchase struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	EventID       uint64    `gorm:"not null;index:idx_purchases_event_contributor,priority:1"`
	Event         *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	ContributorID uint64    `gorm:"not null;index:idx_purchases_event_contributor,priority:2;index:idx_purchases_contributor"`
	Contributor   *User     `gorm:"foreignKey:ContributorID;constraint:OnDelete:CASCADE"`
	Recipient     string    `gorm:"type:varchar(50);not null"`
	Description   string    `gorm:"type:text;not null"`
	Amount        Money     `gorm:"type:numeric(10,2);not null;check:chk_purchases_amount_non_negative,amount >= 0"`
	CreatedAt     time.Time `gorm:"not null;index:idx_purchases_created_at"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
