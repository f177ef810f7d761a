package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSedeRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
}

func (req *CreateSedeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nombre, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Direccion, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Ciudad, validation.Required, validation.Length(2, 100)),
	)
}

type UpdateSedeRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Estado    string `json:"estado"`
}

func (req *UpdateSedeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nombre, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Direccion, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Ciudad, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Estado, validation.Required, validation.In("activa", "inactiva")),
	)
}
