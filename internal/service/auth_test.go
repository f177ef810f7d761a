package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

type fakeRifaConfigRepo struct {
	conf domain.RifaConfig
	err  error
}

func (f *fakeRifaConfigRepo) CurrentConfig(context.Context) (domain.RifaConfig, error) {
	return f.conf, f.err
}

type fakeCodigoCheckRepo struct {
	err error
}

func (f *fakeCodigoCheckRepo) CheckRedeemable(context.Context, string) error {
	return f.err
}

type fakeClienteLookupRepo struct {
	cliente domain.Cliente
	err     error
}

func (f *fakeClienteLookupRepo) FindByCorreo(context.Context, string) (domain.Cliente, error) {
	return f.cliente, f.err
}

type fakeRedemptionRepo struct {
	cliente       domain.Cliente
	participacion domain.Participacion
	err           error

	gotCliente   domain.Cliente
	gotCodigo    string
	gotClienteID uint
}

func (f *fakeRedemptionRepo) RegisterAndRedeem(_ context.Context, cliente domain.Cliente, codigo string) (domain.Cliente, domain.Participacion, error) {
	f.gotCliente = cliente
	f.gotCodigo = codigo

	return f.cliente, f.participacion, f.err
}

func (f *fakeRedemptionRepo) Redeem(_ context.Context, codigo string, clienteID uint) (domain.Participacion, error) {
	f.gotCodigo = codigo
	f.gotClienteID = clienteID

	return f.participacion, f.err
}

// contendedRedemptionRepo lets exactly one redemption of its code through,
// the way the row lock inside the real transaction does; every later caller
// sees the code already used.
type contendedRedemptionRepo struct {
	numero string

	mu    sync.Mutex
	usado bool
}

func (f *contendedRedemptionRepo) redeem() (domain.Participacion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.usado {
		return domain.Participacion{}, fmt.Errorf("r.dao.RedeemNewCliente -> %w", repository.ErrCodigoUsado)
	}
	f.usado = true

	return domain.Participacion{NumeroRifa: f.numero}, nil
}

func (f *contendedRedemptionRepo) RegisterAndRedeem(_ context.Context, cliente domain.Cliente, _ string) (domain.Cliente, domain.Participacion, error) {
	participacion, err := f.redeem()

	return cliente, participacion, err
}

func (f *contendedRedemptionRepo) Redeem(context.Context, string, uint) (domain.Participacion, error) {
	return f.redeem()
}

func activeRifa() *fakeRifaConfigRepo {
	return &fakeRifaConfigRepo{conf: domain.RifaConfig{Estado: domain.RifaActiva}}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAuthService_ValidateCode(t *testing.T) {
	t.Run("valid code on active raffle", func(t *testing.T) {
		svc := NewAuthService(activeRifa(), &fakeCodigoCheckRepo{}, nil, nil)

		assert.NoError(t, svc.ValidateCode(context.Background(), "ABC123"))
	})

	t.Run("paused raffle rejects every code", func(t *testing.T) {
		svc := NewAuthService(
			&fakeRifaConfigRepo{conf: domain.RifaConfig{Estado: domain.RifaPausada}},
			&fakeCodigoCheckRepo{},
			nil, nil,
		)

		err := svc.ValidateCode(context.Background(), "ABC123")
		assert.ErrorIs(t, err, ErrRifaNoActiva)
	})

	t.Run("code errors pass through untouched", func(t *testing.T) {
		svc := NewAuthService(activeRifa(), &fakeCodigoCheckRepo{err: ErrCodigoUsado}, nil, nil)

		err := svc.ValidateCode(context.Background(), "ABC123")
		assert.ErrorIs(t, err, ErrCodigoUsado)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password before handing off", func(t *testing.T) {
		redemption := &fakeRedemptionRepo{
			cliente:       domain.Cliente{ID: 9, Nombre: "Ana", Correo: "ana@example.com"},
			participacion: domain.Participacion{NumeroRifa: "00042"},
		}
		svc := NewAuthService(activeRifa(), &fakeCodigoCheckRepo{}, nil, redemption)

		cliente, participacion, err := svc.Register(context.Background(), domain.Cliente{
			Nombre: "Ana",
			Correo: "ana@example.com",
			SedeID: 1,
		}, "secreta123", "ABC123")
		require.NoError(t, err)

		assert.Equal(t, uint(9), cliente.ID)
		assert.Equal(t, "00042", participacion.NumeroRifa)
		assert.Equal(t, "ABC123", redemption.gotCodigo)

		// The repository must only ever see a bcrypt hash.
		assert.NotEqual(t, "secreta123", redemption.gotCliente.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(redemption.gotCliente.PasswordHash), []byte("secreta123"),
		))
	})

	t.Run("one code redeemed concurrently wins exactly once", func(t *testing.T) {
		const attempts = 20

		redemption := &contendedRedemptionRepo{numero: "00042"}
		svc := NewAuthService(activeRifa(), &fakeCodigoCheckRepo{}, nil, redemption)

		type outcome struct {
			participacion domain.Participacion
			err           error
		}
		results := make(chan outcome, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				_, participacion, err := svc.Register(context.Background(), domain.Cliente{
					Correo: fmt.Sprintf("cliente%d@example.com", i),
					SedeID: 1,
				}, "secreta123", "ABC123")
				results <- outcome{participacion: participacion, err: err}
			}(i)
		}
		wg.Wait()
		close(results)

		var wins, losses int
		for res := range results {
			if res.err == nil {
				wins++
				assert.Equal(t, "00042", res.participacion.NumeroRifa)

				continue
			}

			losses++
			assert.ErrorIs(t, res.err, ErrCodigoUsado)
		}

		assert.Equal(t, 1, wins)
		assert.Equal(t, attempts-1, losses)
		assert.True(t, redemption.usado)
	})

	t.Run("redemption failures keep their sentinel", func(t *testing.T) {
		redemption := &fakeRedemptionRepo{err: ErrCorreoRegistrado}
		svc := NewAuthService(activeRifa(), &fakeCodigoCheckRepo{}, nil, redemption)

		_, _, err := svc.Register(context.Background(), domain.Cliente{}, "secreta123", "ABC123")
		assert.ErrorIs(t, err, ErrCorreoRegistrado)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success redeems with the cliente id", func(t *testing.T) {
		redemption := &fakeRedemptionRepo{participacion: domain.Participacion{NumeroRifa: "00777"}}
		svc := NewAuthService(
			activeRifa(),
			&fakeCodigoCheckRepo{},
			&fakeClienteLookupRepo{cliente: domain.Cliente{
				ID:           5,
				Correo:       "ana@example.com",
				PasswordHash: hashPassword(t, "secreta123"),
			}},
			redemption,
		)

		cliente, participacion, err := svc.Login(context.Background(), "ana@example.com", "secreta123", "ABC123")
		require.NoError(t, err)

		assert.Equal(t, uint(5), cliente.ID)
		assert.Equal(t, "00777", participacion.NumeroRifa)
		assert.Equal(t, uint(5), redemption.gotClienteID)
	})

	t.Run("unknown correo and wrong password are indistinguishable", func(t *testing.T) {
		unknownSvc := NewAuthService(
			activeRifa(),
			&fakeCodigoCheckRepo{},
			&fakeClienteLookupRepo{err: repository.ErrClienteNoEncontrado},
			&fakeRedemptionRepo{},
		)
		_, _, errUnknown := unknownSvc.Login(context.Background(), "nadie@example.com", "secreta123", "ABC123")

		wrongSvc := NewAuthService(
			activeRifa(),
			&fakeCodigoCheckRepo{},
			&fakeClienteLookupRepo{cliente: domain.Cliente{
				PasswordHash: hashPassword(t, "otra-clave"),
			}},
			&fakeRedemptionRepo{},
		)
		_, _, errWrong := wrongSvc.Login(context.Background(), "ana@example.com", "secreta123", "ABC123")

		assert.ErrorIs(t, errUnknown, ErrCredencialesInvalidas)
		assert.ErrorIs(t, errWrong, ErrCredencialesInvalidas)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("inactive raffle rejects before touching credentials", func(t *testing.T) {
		svc := NewAuthService(
			&fakeRifaConfigRepo{conf: domain.RifaConfig{Estado: domain.RifaCerrada}},
			&fakeCodigoCheckRepo{},
			&fakeClienteLookupRepo{err: errors.New("must not be called")},
			&fakeRedemptionRepo{},
		)

		_, _, err := svc.Login(context.Background(), "ana@example.com", "secreta123", "ABC123")
		assert.ErrorIs(t, err, ErrRifaNoActiva)
	})
}
