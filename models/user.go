package models

import "time"

// User exists only for authentication. Password material lives exclusively in
// the relational backend; the in-memory store never holds users, so with no
// backend connected nobody can log in.
type User struct {
	ID           int       `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'user'"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Salt         string    `json:"-" gorm:"size:32;not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
