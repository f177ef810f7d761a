package domain

import "time"

type Cliente struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Correo        string    `json:"correo"`
	PasswordHash  string    `json:"-"`
	SedeID        uint      `json:"sede_id,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro,omitempty"`
}

// ClienteResumen is the admin-console row: full name, sede name and the
// raffle numbers the client holds.
type ClienteResumen struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	Telefono      string    `json:"telefono"`
	Sede          string    `json:"sede"`
	Codigos       []string  `json:"codigos"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type ClientePage struct {
	Clientes   []ClienteResumen `json:"clientes"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// ClienteFilter narrows admin listings. Search matches nombre, apellidos
// and correo; SedeID of zero means all sedes.
type ClienteFilter struct {
	Search string
	SedeID uint
	Page   int
	Limit  int
}
