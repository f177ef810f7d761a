package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

type fakeAdminRifaRepo struct {
	conf    domain.RifaConfig
	confErr error

	admin    domain.AdminUser
	adminErr error

	ganador    domain.Ganador
	ganadorErr error

	reset    domain.ResetResult
	resetErr error

	updatedEstado    string
	numeroGanadorSet string
	resetCalled      bool
}

func (f *fakeAdminRifaRepo) CurrentConfig(context.Context) (domain.RifaConfig, error) {
	return f.conf, f.confErr
}

func (f *fakeAdminRifaRepo) UpdateEstado(_ context.Context, estado string) error {
	f.updatedEstado = estado
	return nil
}

func (f *fakeAdminRifaRepo) FindGanador(context.Context, string) (domain.Ganador, error) {
	return f.ganador, f.ganadorErr
}

func (f *fakeAdminRifaRepo) SetNumeroGanador(_ context.Context, numeroRifa string) error {
	f.numeroGanadorSet = numeroRifa
	return nil
}

func (f *fakeAdminRifaRepo) FindAdminByUsuario(context.Context, string) (domain.AdminUser, error) {
	return f.admin, f.adminErr
}

func (f *fakeAdminRifaRepo) FindAdminByID(context.Context, uint) (domain.AdminUser, error) {
	return f.admin, f.adminErr
}

func (f *fakeAdminRifaRepo) DashboardStats(context.Context) (domain.DashboardStats, domain.MetricasMensuales, error) {
	return domain.DashboardStats{TotalClientes: 10}, domain.MetricasMensuales{CrecimientoPorcentual: 25}, nil
}

func (f *fakeAdminRifaRepo) ResetRaffleSystem(context.Context) (domain.ResetResult, error) {
	f.resetCalled = true
	return f.reset, f.resetErr
}

type fakeClienteListRepo struct {
	page domain.ClientePage
	err  error
}

func (f *fakeClienteListRepo) List(context.Context, domain.ClienteFilter) (domain.ClientePage, error) {
	return f.page, f.err
}

func TestAdminService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		repo := &fakeAdminRifaRepo{admin: domain.AdminUser{
			ID:           1,
			Usuario:      "root",
			Rol:          "superadmin",
			PasswordHash: hashPassword(t, "hunter22"),
		}}
		svc := NewAdminService(repo, &fakeClienteListRepo{})

		admin, err := svc.Login(context.Background(), "root", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "superadmin", admin.Rol)
	})

	t.Run("unknown usuario and wrong password collapse", func(t *testing.T) {
		unknown := NewAdminService(&fakeAdminRifaRepo{adminErr: repository.ErrAdminNoEncontrado}, &fakeClienteListRepo{})
		_, errUnknown := unknown.Login(context.Background(), "nadie", "hunter22")

		wrong := NewAdminService(&fakeAdminRifaRepo{admin: domain.AdminUser{
			PasswordHash: hashPassword(t, "otra-clave"),
		}}, &fakeClienteListRepo{})
		_, errWrong := wrong.Login(context.Background(), "root", "hunter22")

		assert.ErrorIs(t, errUnknown, ErrCredencialesInvalidas)
		assert.ErrorIs(t, errWrong, ErrCredencialesInvalidas)
	})
}

func TestAdminService_UpdateEstado(t *testing.T) {
	repo := &fakeAdminRifaRepo{}
	svc := NewAdminService(repo, &fakeClienteListRepo{})

	for _, estado := range []string{domain.RifaActiva, domain.RifaPausada, domain.RifaCerrada} {
		require.NoError(t, svc.UpdateEstado(context.Background(), estado))
		assert.Equal(t, estado, repo.updatedEstado)
	}

	err := svc.UpdateEstado(context.Background(), "abierta")
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestAdminService_DesignateWinner(t *testing.T) {
	t.Run("records the number only on a hit", func(t *testing.T) {
		repo := &fakeAdminRifaRepo{ganador: domain.Ganador{
			NumeroRifa: "00042",
			Cliente:    domain.GanadorCliente{Nombre: "Ana García"},
		}}
		svc := NewAdminService(repo, &fakeClienteListRepo{})

		ganador, err := svc.DesignateWinner(context.Background(), "00042")
		require.NoError(t, err)
		assert.Equal(t, "Ana García", ganador.Cliente.Nombre)
		assert.Equal(t, "00042", repo.numeroGanadorSet)
	})

	t.Run("unassigned number leaves config untouched", func(t *testing.T) {
		repo := &fakeAdminRifaRepo{ganadorErr: repository.ErrGanadorNoHallado}
		svc := NewAdminService(repo, &fakeClienteListRepo{})

		_, err := svc.DesignateWinner(context.Background(), "99999")
		assert.ErrorIs(t, err, ErrGanadorNoHallado)
		assert.Empty(t, repo.numeroGanadorSet)
	})
}

func TestAdminService_ResetRaffle(t *testing.T) {
	t.Run("wrong password blocks the reset", func(t *testing.T) {
		repo := &fakeAdminRifaRepo{admin: domain.AdminUser{
			ID:           1,
			PasswordHash: hashPassword(t, "hunter22"),
		}}
		svc := NewAdminService(repo, &fakeClienteListRepo{})

		_, err := svc.ResetRaffle(context.Background(), 1, "incorrecta")
		assert.ErrorIs(t, err, ErrPasswordIncorrecta)
		assert.False(t, repo.resetCalled)
	})

	t.Run("correct password runs the reset and reports counts", func(t *testing.T) {
		repo := &fakeAdminRifaRepo{
			admin: domain.AdminUser{ID: 1, PasswordHash: hashPassword(t, "hunter22")},
			reset: domain.ResetResult{AffectedCodigos: 120, AffectedParticipaciones: 85},
		}
		svc := NewAdminService(repo, &fakeClienteListRepo{})

		result, err := svc.ResetRaffle(context.Background(), 1, "hunter22")
		require.NoError(t, err)
		assert.True(t, repo.resetCalled)
		assert.Equal(t, int64(120), result.AffectedCodigos)
		assert.Equal(t, int64(85), result.AffectedParticipaciones)
	})
}
