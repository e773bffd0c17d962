package models

import "time"

// Account is a person's contact record
type Account struct {
	DateJoined  time.Time `db:"date_joined"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Address     string    `db:"address"`
	PhoneNumber string    `db:"phone_number"`
	ID          int64     `db:"id"`
}
