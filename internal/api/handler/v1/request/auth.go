package request

import (
	"errors"
	"regexp"
	"strings"

	regexp2 "github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	codigoRegexPattern = `^[A-Z0-9]{6,12}$`

	// Lookaheads need regexp2; the stdlib engine rejects them.
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	codigoExp   = regexp.MustCompile(codigoRegexPattern)
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errCodigoInvalido   = errors.New("el código debe tener entre 6 y 12 caracteres alfanuméricos")
	errPasswordDebil    = errors.New("la contraseña debe tener al menos 8 caracteres, una letra y un número")
	errTelefonoInvalido = errors.New("el teléfono debe tener entre 7 y 15 dígitos")
)

// NormalizeCodigo maps user input onto the canonical stored form: upper-case,
// no surrounding whitespace.
func NormalizeCodigo(codigo string) string {
	return strings.ToUpper(strings.TrimSpace(codigo))
}

type ValidateCodeRequest struct {
	Codigo string `json:"codigo"`
}

func (req *ValidateCodeRequest) Validate() error {
	req.Codigo = NormalizeCodigo(req.Codigo)
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Codigo, validation.Required, validation.Match(codigoExp).Error(errCodigoInvalido.Error())),
	)
}

type RegisterRequest struct {
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Apellidos  string `json:"apellidos"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contraseña"`
	SedeID     uint   `json:"sede_id"`
}

func (req *RegisterRequest) Validate() error {
	req.Codigo = NormalizeCodigo(req.Codigo)
	req.Correo = strings.ToLower(strings.TrimSpace(req.Correo))

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Codigo, validation.Required, validation.Match(codigoExp).Error(errCodigoInvalido.Error())),
		validation.Field(&req.Nombre, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Apellidos, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Telefono, validation.Required, validation.Match(regexp.MustCompile(`^\+?\d{7,15}$`)).Error(errTelefonoInvalido.Error())),
		validation.Field(&req.Correo, validation.Required, is.Email),
		validation.Field(&req.Contrasena, validation.Required),
		validation.Field(&req.SedeID, validation.Required, validation.Min(uint(1))),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Contrasena); !ok {
		return errPasswordDebil
	}

	return nil
}

type LoginRequest struct {
	Codigo     string `json:"codigo"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contraseña"`
}

func (req *LoginRequest) Validate() error {
	req.Codigo = NormalizeCodigo(req.Codigo)
	req.Correo = strings.ToLower(strings.TrimSpace(req.Correo))

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Codigo, validation.Required, validation.Match(codigoExp).Error(errCodigoInvalido.Error())),
		validation.Field(&req.Correo, validation.Required, is.Email),
		validation.Field(&req.Contrasena, validation.Required),
	)
}
