package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	numeroRifaExp = regexp.MustCompile(`^\d{5}$`)

	errNumeroInvalido       = errors.New("el número ganador debe tener exactamente 5 dígitos")
	errConfirmacionesFaltan = errors.New("las tres confirmaciones son obligatorias")
)

type AdminLoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contraseña"`
}

func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Usuario, validation.Required),
		validation.Field(&req.Contrasena, validation.Required),
	)
}

type UpdateConfigRequest struct {
	Estado string `json:"estado"`
}

func (req *UpdateConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Estado, validation.Required, validation.In("activa", "pausada", "cerrada")),
	)
}

type DesignateWinnerRequest struct {
	NumeroGanador string `json:"numero_ganador"`
}

func (req *DesignateWinnerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NumeroGanador, validation.Required, validation.Match(numeroRifaExp).Error(errNumeroInvalido.Error())),
	)
}

// ResetRaffleRequest wipes all participations, so the caller must tick three
// explicit confirmations and re-enter their password.
type ResetRaffleRequest struct {
	Confirmacion1 bool   `json:"confirmacion_1"`
	Confirmacion2 bool   `json:"confirmacion_2"`
	Confirmacion3 bool   `json:"confirmacion_3"`
	AdminPassword string `json:"admin_password"`
}

func (req *ResetRaffleRequest) Validate() error {
	if !req.Confirmacion1 || !req.Confirmacion2 || !req.Confirmacion3 {
		return errConfirmacionesFaltan
	}
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AdminPassword, validation.Required),
	)
}
