package domain

import "time"

type AlertLevel string

const (
	AlertLevelLow    AlertLevel = "Low"
	AlertLevelMedium AlertLevel = "Medium"
	AlertLevelHigh   AlertLevel = "High"
)

type Alert struct {
	AlertType   string     `bson:"alert_type" json:"alert_type"`
	Level       AlertLevel `bson:"level" json:"level"`
	Description string     `bson:"description" json:"description"`
	StartAt     time.Time  `bson:"start_at" json:"start_at"`
	EndAt       time.Time  `bson:"end_at" json:"end_at"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// ValidWindow - окончание строго позже начала
func (a *Alert) ValidWindow() bool {
	return a.EndAt.After(a.StartAt)
}

// SupportContact - контакт поддержки, _id выдаётся последовательностью начиная с 1
type SupportContact struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Channel   string    `bson:"channel" json:"channel"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
