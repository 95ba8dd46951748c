package models

import "time"

// SettingTotalTables adalah key untuk jumlah meja di restoran.
const SettingTotalTables = "total_tables"

type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Value     string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
