package booking

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&ReservaClub{}, &ReservaCurso{}, &ReservaJugador{},
		&ReservaTorneoIndividual{}, &ReservaTorneoDobles{}, &ReservaTorneoEquipos{},
	))
	return db
}

func diaDeJuego() datatypes.Date {
	return datatypes.Date(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
}

func TestReserva_FranjaUnicaPorTabla(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	inicio := datatypes.NewTime(10, 0, 0, 0)
	fin := datatypes.NewTime(11, 0, 0, 0)

	primera := ReservaClub{ClubID: 1, PistaID: 5, FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.NoError(t, db.Create(&primera).Error)

	repetida := ReservaClub{ClubID: 2, PistaID: 5, FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.Error(t, db.Create(&repetida).Error)

	// La misma franja en otra tabla de reservas no choca.
	curso := ReservaCurso{CursoID: 1, PistaID: 5, FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.NoError(t, db.Create(&curso).Error)
}

func TestReserva_FechaSolicitudPorDefecto(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	r := ReservaJugador{JugadorID: 1, PistaID: 3, FechaReserva: diaDeJuego(),
		HoraInicio: datatypes.NewTime(9, 0, 0, 0), HoraFin: datatypes.NewTime(10, 0, 0, 0)}
	require.NoError(t, db.Create(&r).Error)
	require.False(t, r.FechaSolicitud.IsZero())

	pedida := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
	r2 := ReservaJugador{JugadorID: 1, PistaID: 4, FechaReserva: diaDeJuego(),
		HoraInicio: datatypes.NewTime(9, 0, 0, 0), HoraFin: datatypes.NewTime(10, 0, 0, 0),
		Franja: Franja{FechaSolicitud: pedida}}
	require.NoError(t, db.Create(&r2).Error)
	require.True(t, r2.FechaSolicitud.Equal(pedida))
}

func TestRepository_Solapa(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	ocupada := ReservaClub{ClubID: 1, PistaID: 7, FechaReserva: diaDeJuego(),
		HoraInicio: datatypes.NewTime(10, 0, 0, 0), HoraFin: datatypes.NewTime(11, 30, 0, 0)}
	require.NoError(t, repo.CrearReservaClub(&ocupada))

	// Solape parcial dentro de la misma tabla.
	hay, err := repo.SolapaClub(7, diaDeJuego(), datatypes.NewTime(11, 0, 0, 0), datatypes.NewTime(12, 0, 0, 0))
	require.NoError(t, err)
	require.True(t, hay)

	// Franjas contiguas no solapan.
	hay, err = repo.SolapaClub(7, diaDeJuego(), datatypes.NewTime(11, 30, 0, 0), datatypes.NewTime(12, 30, 0, 0))
	require.NoError(t, err)
	require.False(t, hay)

	// Otra pista queda libre.
	hay, err = repo.SolapaClub(8, diaDeJuego(), datatypes.NewTime(10, 0, 0, 0), datatypes.NewTime(11, 0, 0, 0))
	require.NoError(t, err)
	require.False(t, hay)

	// Las tablas se evaluan por separado.
	hay, err = repo.SolapaCurso(7, diaDeJuego(), datatypes.NewTime(10, 0, 0, 0), datatypes.NewTime(11, 0, 0, 0))
	require.NoError(t, err)
	require.False(t, hay)
}

func TestReserva_TorneoConstructores(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	inicio := datatypes.NewTime(17, 0, 0, 0)
	fin := datatypes.NewTime(18, 0, 0, 0)

	individual := ReservaTorneoIndividual{TorneoIndividualID: 1, PistaID: 2,
		FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.NoError(t, repo.CrearReservaTorneoIndividual(&individual))

	dobles := ReservaTorneoDobles{TorneoDoblesID: 1, PistaID: 2,
		FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.NoError(t, repo.CrearReservaTorneoDobles(&dobles))

	equipos := ReservaTorneoEquipos{TorneoEquiposID: 1, PistaID: 2,
		FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.NoError(t, repo.CrearReservaTorneoEquipos(&equipos))

	hay, err := repo.SolapaTorneoIndividual(2, diaDeJuego(), inicio, fin)
	require.NoError(t, err)
	require.True(t, hay)

	repetida := ReservaTorneoEquipos{TorneoEquiposID: 2, PistaID: 2,
		FechaReserva: diaDeJuego(), HoraInicio: inicio, HoraFin: fin}
	require.Error(t, repo.CrearReservaTorneoEquipos(&repetida))
}
