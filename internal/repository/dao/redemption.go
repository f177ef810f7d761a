package dao

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// numeroRifaAttempts bounds the collision-retry loop when drawing a 5-digit
// number. The space is 100000 numbers; hitting the bound means the cycle is
// essentially sold out.
const numeroRifaAttempts = 25

var errNumerosAgotados = errors.New("no quedan números de rifa disponibles")

// RedemptionDAO runs the code-redemption transaction. Exactly-once per code
// is enforced by the transaction boundary and the FOR UPDATE lock on the
// code row, never by application-level locking. The advisory checks before
// the lock exist only to produce friendly errors; the locked re-check is the
// sole source of truth.
type RedemptionDAO struct {
	db *gorm.DB
}

func NewRedemptionDAO(db *gorm.DB) *RedemptionDAO {
	return &RedemptionDAO{
		db: db,
	}
}

// RedeemNewCliente is the registration path: inside one transaction it
// checks the raffle is active, runs the advisory code/correo/sede checks,
// inserts the cliente (password already hashed by the caller) and consumes
// the code. Any failure rolls everything back, including the cliente row.
func (d *RedemptionDAO) RedeemNewCliente(ctx context.Context, cliente Cliente, codigo string) (Cliente, Participacion, error) {
	var participacion Participacion

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRifaActiva(tx); err != nil {
			return err
		}

		// Advisory only; may be stale by the time the locked check runs.
		var row Codigo
		if err := tx.First(&row, "codigo = ?", codigo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCodigoNoEncontrado
			}
			return err
		}
		if err := Redeemable(row, time.Now()); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&Cliente{}).Where("correo = ?", cliente.Correo).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCorreoRegistrado
		}

		var sedeCount int64
		if err := tx.Model(&Sede{}).
			Where("id = ? AND estado = ?", cliente.SedeID, "activa").
			Count(&sedeCount).Error; err != nil {
			return err
		}
		if sedeCount == 0 {
			return ErrSedeInvalida
		}

		if err := tx.Create(&cliente).Error; err != nil {
			if isUniqueViolation(err, "correo") {
				return ErrCorreoRegistrado
			}
			return err
		}

		p, err := validateAndUseCode(tx, codigo, cliente.ID)
		if err != nil {
			return err
		}
		participacion = p

		return nil
	})
	if err != nil {
		return Cliente{}, Participacion{}, err
	}

	return cliente, participacion, nil
}

// RedeemExistingCliente is the login path: the caller has already verified
// the password; this transaction checks the raffle and consumes the code for
// the given cliente.
func (d *RedemptionDAO) RedeemExistingCliente(ctx context.Context, codigo string, clienteID uint) (Participacion, error) {
	var participacion Participacion

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRifaActiva(tx); err != nil {
			return err
		}

		p, err := validateAndUseCode(tx, codigo, clienteID)
		if err != nil {
			return err
		}
		participacion = p

		return nil
	})
	if err != nil {
		return Participacion{}, err
	}

	return participacion, nil
}

func checkRifaActiva(tx *gorm.DB) error {
	var conf RifaConfig
	if err := tx.Order("id DESC").First(&conf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRifaNoActiva
		}
		return err
	}
	if conf.Estado != "activa" {
		return ErrRifaNoActiva
	}

	return nil
}

// validateAndUseCode is the atomic compare-and-swap: lock the code row,
// re-check it is still redeemable, mark it usado, draw a collision-free
// numero and insert the participacion. Concurrent redemptions of the same
// code serialize on the row lock; exactly one wins.
func validateAndUseCode(tx *gorm.DB, codigo string, clienteID uint) (Participacion, error) {
	var row Codigo
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "codigo = ?", codigo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Participacion{}, ErrCodigoNoEncontrado
		}
		return Participacion{}, err
	}

	if err = Redeemable(row, time.Now()); err != nil {
		return Participacion{}, err
	}

	if err = tx.Model(&Codigo{}).Where("id = ?", row.ID).Update("estado", "usado").Error; err != nil {
		return Participacion{}, err
	}

	for attempt := 0; attempt < numeroRifaAttempts; attempt++ {
		numero, err := drawNumeroRifa()
		if err != nil {
			return Participacion{}, err
		}

		participacion := Participacion{
			ClienteID:  clienteID,
			CodigoID:   row.ID,
			NumeroRifa: numero,
		}
		// Nested transaction = savepoint, so a unique violation does not
		// abort the outer transaction before the retry.
		err = tx.Transaction(func(inner *gorm.DB) error {
			return inner.Create(&participacion).Error
		})
		if err == nil {
			return participacion, nil
		}
		if !isUniqueViolation(err, "numero_rifa") {
			return Participacion{}, err
		}
		// Collision on the numero index; draw again.
	}

	return Participacion{}, errNumerosAgotados
}

func drawNumeroRifa() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", fmt.Errorf("rand.Int -> %w", err)
	}

	return fmt.Sprintf("%05d", n.Int64()), nil
}
