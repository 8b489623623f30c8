package users

import "time"

// User is the durable account record. PasswordHash never leaves the package:
// service results carry identity fields only.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
