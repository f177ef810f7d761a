package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Codigo:     "ABC123",
		Nombre:     "Ana",
		Apellidos:  "García",
		Telefono:   "+573001234567",
		Correo:     "ana@example.com",
		Contrasena: "secreta123",
		SedeID:     1,
	}
}

func TestValidateCodeRequest_Validate(t *testing.T) {
	t.Run("normalizes to upper-case", func(t *testing.T) {
		req := ValidateCodeRequest{Codigo: "  abc123  "}
		require.NoError(t, req.Validate())
		assert.Equal(t, "ABC123", req.Codigo)
	})

	tests := []struct {
		name   string
		codigo string
		valid  bool
	}{
		{"six alphanumerics", "ABC123", true},
		{"twelve alphanumerics", "ABCDEF123456", true},
		{"too short", "ABC12", false},
		{"too long", "ABCDEF1234567", false},
		{"empty", "", false},
		{"symbols rejected", "ABC-12", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ValidateCodeRequest{Codigo: tt.codigo}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("valid request passes and is normalized", func(t *testing.T) {
		req := validRegisterRequest()
		req.Codigo = "abc123"
		req.Correo = "Ana@Example.COM"

		require.NoError(t, req.Validate())
		assert.Equal(t, "ABC123", req.Codigo)
		assert.Equal(t, "ana@example.com", req.Correo)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		for _, password := range []string{"corta1", "sinnumeros", "12345678", ""} {
			req := validRegisterRequest()
			req.Contrasena = password
			assert.Error(t, req.Validate(), "password %q should be rejected", password)
		}
	})

	t.Run("accepts letter plus digit passwords of 8+", func(t *testing.T) {
		req := validRegisterRequest()
		req.Contrasena = "abcdefg1"
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects bad email", func(t *testing.T) {
		req := validRegisterRequest()
		req.Correo = "no-es-un-correo"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects missing sede", func(t *testing.T) {
		req := validRegisterRequest()
		req.SedeID = 0
		assert.Error(t, req.Validate())
	})

	t.Run("rejects bad phone", func(t *testing.T) {
		req := validRegisterRequest()
		req.Telefono = "abc"
		assert.Error(t, req.Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{
		Codigo:     "abc123",
		Correo:     "Ana@Example.com",
		Contrasena: "whatever",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "ABC123", req.Codigo)
	assert.Equal(t, "ana@example.com", req.Correo)

	req.Contrasena = ""
	assert.Error(t, req.Validate())
}

func TestUpdateConfigRequest_Validate(t *testing.T) {
	for _, estado := range []string{"activa", "pausada", "cerrada"} {
		req := UpdateConfigRequest{Estado: estado}
		assert.NoError(t, req.Validate())
	}

	for _, estado := range []string{"", "abierta", "ACTIVA"} {
		req := UpdateConfigRequest{Estado: estado}
		assert.Error(t, req.Validate())
	}
}

func TestDesignateWinnerRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DesignateWinnerRequest{NumeroGanador: "00042"}).Validate())
	assert.Error(t, (&DesignateWinnerRequest{NumeroGanador: "42"}).Validate())
	assert.Error(t, (&DesignateWinnerRequest{NumeroGanador: "123456"}).Validate())
	assert.Error(t, (&DesignateWinnerRequest{NumeroGanador: "abcde"}).Validate())
	assert.Error(t, (&DesignateWinnerRequest{}).Validate())
}

func TestResetRaffleRequest_Validate(t *testing.T) {
	valid := ResetRaffleRequest{
		Confirmacion1: true,
		Confirmacion2: true,
		Confirmacion3: true,
		AdminPassword: "hunter22",
	}
	assert.NoError(t, valid.Validate())

	missingOne := valid
	missingOne.Confirmacion2 = false
	assert.ErrorIs(t, missingOne.Validate(), errConfirmacionesFaltan)

	noPassword := valid
	noPassword.AdminPassword = ""
	assert.Error(t, noPassword.Validate())
}

func TestSaveCodeRequest_Validate(t *testing.T) {
	t.Run("valid without expiry", func(t *testing.T) {
		req := SaveCodeRequest{Codigo: "xyz789"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "XYZ789", req.Codigo)
		assert.Nil(t, req.Expiracion())
	})

	t.Run("valid RFC3339 expiry", func(t *testing.T) {
		req := SaveCodeRequest{Codigo: "XYZ789", FechaExpiracion: "2026-12-31T23:59:59Z"}
		require.NoError(t, req.Validate())
		expira := req.Expiracion()
		require.NotNil(t, expira)
		assert.Equal(t, 2026, expira.Year())
	})

	t.Run("rejects malformed expiry", func(t *testing.T) {
		req := SaveCodeRequest{Codigo: "XYZ789", FechaExpiracion: "31/12/2026"}
		assert.Error(t, req.Validate())
	})
}
