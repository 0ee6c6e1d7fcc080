package user

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"
)

// User rows carry their own session flags; there is no separate session
// store. Email is intentionally NOT declared unique (see db.Connect).
type User struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Username       string     `gorm:"size:64;not null" json:"username"`
	Email          string     `gorm:"size:128;not null" json:"email"`
	Password       string     `gorm:"size:128;not null" json:"-"`
	Active         bool       `gorm:"not null" json:"active"`
	Role           Role       `gorm:"type:varchar(16);not null;default:'ROLE_USER'" json:"role"`
	IsLoggedIn     bool       `gorm:"column:is_logged_in;not null" json:"is_logged_in"`
	DateRegistered time.Time  `gorm:"column:date_registered" json:"date_registered"`
	LastLoggedIn   *time.Time `gorm:"column:last_logged_in" json:"last_logged_in"`
	LastLoggedOut  *time.Time `gorm:"column:last_logged_out" json:"last_logged_out"`
}

// Response is the public projection returned by list and verification
// endpoints. The password digest never leaves the store layer.
type Response struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Active         bool       `json:"active"`
	Role           Role       `json:"role"`
	IsLoggedIn     bool       `json:"is_logged_in"`
	DateRegistered time.Time  `json:"date_registered"`
	LastLoggedIn   *time.Time `json:"last_logged_in"`
	LastLoggedOut  *time.Time `json:"last_logged_out"`
}

func ToResponse(u *User) Response {
	return Response{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Active:         u.Active,
		Role:           u.Role,
		IsLoggedIn:     u.IsLoggedIn,
		DateRegistered: u.DateRegistered,
		LastLoggedIn:   u.LastLoggedIn,
		LastLoggedOut:  u.LastLoggedOut,
	}
}
