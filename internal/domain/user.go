package domain

import "time"

// UserStatus is the account state shown in the users table
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserPending   UserStatus = "pending"
)

// User represents a platform customer listed on the dashboard
type User struct {
	ID       int
	Name     string
	Email    string
	Balance  float64
	Status   UserStatus
	JoinedAt time.Time
}
