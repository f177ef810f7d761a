package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeCliente = "cliente"
	TypeAdmin   = "admin"

	clienteTokenTTL = 24 * time.Hour
	adminTokenTTL   = 2 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims always carry the Type discriminator; admin tokens additionally
// carry Rol. SubjectID is the cliente or admin row id.
type Claims struct {
	jwt.RegisteredClaims

	SubjectID uint   `json:"subject_id"`
	Correo    string `json:"correo,omitempty"`
	Usuario   string `json:"usuario,omitempty"`
	Rol       string `json:"rol,omitempty"`
	Type      string `json:"type"`
}

func GenerateClienteToken(signingKey []byte, clienteID uint, correo string) (string, error) {
	return generate(signingKey, Claims{
		SubjectID: clienteID,
		Correo:    correo,
		Type:      TypeCliente,
	}, clienteTokenTTL)
}

func GenerateAdminToken(signingKey []byte, adminID uint, usuario, rol string) (string, error) {
	return generate(signingKey, Claims{
		SubjectID: adminID,
		Usuario:   usuario,
		Rol:       rol,
		Type:      TypeAdmin,
	}, adminTokenTTL)
}

func generate(signingKey []byte, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken verifies signature and expiry. Any failure collapses into
// ErrInvalidToken; callers never learn why a token was rejected.
func ParseToken(signingKey []byte, tokenString string) (*Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
