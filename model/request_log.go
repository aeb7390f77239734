package model

import (
	"time"

	"gorm.io/datatypes"
)

// RequestLog represents a persisted endpoint call or domain event
type RequestLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	EventType string         `json:"event_type" gorm:"column:event_type;type:varchar(64);index"`
	RequestID string         `json:"request_id" gorm:"column:request_id;type:varchar(64);index"`
	IP        string         `json:"ip" gorm:"column:ip;type:varchar(45)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details"`
}
