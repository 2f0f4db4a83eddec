package model

import (
	"time"

	"gorm.io/datatypes"
)

// SystemLog is the audit trail written by the event consumer: one row per
// publish or content change, with the event payload kept as raw JSON.
type SystemLog struct {
	Id        uint           `gorm:"primaryKey" json:"id"`
	EventType string         `gorm:"type:varchar(100);not null;index" json:"eventType"`
	Actor     string         `gorm:"type:varchar(255)" json:"actor"`
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
