package domain

import "time"

// AdminUser rows are managed out of band; there is no signup flow.
type AdminUser struct {
	ID            uint      `json:"id"`
	Usuario       string    `json:"usuario"`
	Rol           string    `json:"rol"`
	PasswordHash  string    `json:"-"`
	FechaCreacion time.Time `json:"-"`
}
