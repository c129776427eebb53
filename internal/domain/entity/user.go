// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an EcoVis account. It owns every award-generating record in the system.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName"`
	Location  *string   `json:"location"`
	EcoScore  int       `json:"ecoScore"` // cumulative award balance, only grows through award events
	CreatedAt time.Time `json:"createdAt"`
}

// UserActivity is one append-only audit entry for an award event.
type UserActivity struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	ActivityType string    `json:"activityType"`
	Description  string    `json:"description"`
	PointsEarned int       `json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}
