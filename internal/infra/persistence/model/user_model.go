// Package model holds the gorm mappings of the relational schema created by the goose migrations.
package model

import "time"

// UserModel mirrors the 'users' table. Username and email are unique ignoring case.
type UserModel struct {
	ID        int64   `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(50);not null"`
	Password  string  `gorm:"type:text;not null"`
	Email     string  `gorm:"type:varchar(255);not null"`
	FullName  *string `gorm:"type:varchar(100)"`
	Location  *string `gorm:"type:varchar(100)"`
	EcoScore  int     `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserActivityModel mirrors the append-only 'user_activities' table.
type UserActivityModel struct {
	ID           int64  `gorm:"primaryKey"`
	UserID       int64  `gorm:"not null;index"`
	ActivityType string `gorm:"type:varchar(50);not null"`
	Description  string `gorm:"type:text;not null"`
	PointsEarned int    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activities"
}
