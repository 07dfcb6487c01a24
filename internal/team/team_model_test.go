package team

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/person"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&geo.Provincia{},
		&lookup.TipoIdentificacion{}, &lookup.TipoSexo{}, &lookup.TipoLateralidad{},
		&person.Persona{}, &person.Jugador{}, &Pareja{},
	))
	require.NoError(t, db.Create(&geo.Provincia{Nombre: "Madrid", CodigoINE: "28"}).Error)
	require.NoError(t, db.Create(&lookup.TipoIdentificacion{Nombre: "DNI"}).Error)
	require.NoError(t, db.Create(&lookup.TipoSexo{Nombre: "Masculino"}).Error)
	require.NoError(t, db.Create(&lookup.TipoLateralidad{Nombre: "Diestro"}).Error)
	return db
}

func nuevoJugador(t *testing.T, db *gorm.DB, n int) uint {
	t.Helper()
	movil := fmt.Sprintf("+3461234%04d", n)
	p := person.Persona{
		TipoIdentificacionID: 1,
		DocIdentidadValor:    fmt.Sprintf("0000000%dA", n),
		Nombre:               "Jugador",
		ApellidoPrimero:      fmt.Sprintf("Numero%d", n),
		TipoSexoID:           1,
		Direccion: geo.Direccion{
			CalleNum:     "Calle Mayor 1",
			Localidad:    "Madrid",
			CodigoPostal: "28001",
			ProvinciaID:  1,
			Pais:         "ES",
		},
		NacimientoPais: "ES",
		Email:          fmt.Sprintf("jugador%d@example.com", n),
	}
	p.TelefonoMovil = &movil
	require.NoError(t, db.Create(&p).Error)

	j := person.Jugador{PersonaID: p.ID, TipoLateralidadID: 1}
	require.NoError(t, db.Create(&j).Error)
	return j.ID
}

func TestPareja_MismoJugadorRechazada(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	a := nuevoJugador(t, db, 1)

	p := Pareja{Nombre: "Solo", JugadorIzquierdoID: a, JugadorDerechoID: a}
	require.ErrorIs(t, db.Create(&p).Error, ErrParejaMismoJugador)
}

func TestPareja_DuplicadaEnCualquierOrden(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	a := nuevoJugador(t, db, 1)
	b := nuevoJugador(t, db, 2)

	primera := Pareja{Nombre: "AB", JugadorIzquierdoID: a, JugadorDerechoID: b}
	require.NoError(t, db.Create(&primera).Error)

	invertida := Pareja{Nombre: "BA", JugadorIzquierdoID: b, JugadorDerechoID: a}
	require.ErrorIs(t, db.Create(&invertida).Error, ErrParejaDuplicada)
}

func TestPareja_ActualizarseASiMismaPermitido(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	a := nuevoJugador(t, db, 1)
	b := nuevoJugador(t, db, 2)

	p := Pareja{Nombre: "AB", JugadorIzquierdoID: a, JugadorDerechoID: b}
	require.NoError(t, db.Create(&p).Error)

	// Renaming the same row must not trip the duplicate check on itself.
	p.Nombre = "AB renombrada"
	require.NoError(t, db.Save(&p).Error)
}

func TestPareja_DistintosJugadoresConviven(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	a := nuevoJugador(t, db, 1)
	b := nuevoJugador(t, db, 2)
	c := nuevoJugador(t, db, 3)

	require.NoError(t, db.Create(&Pareja{Nombre: "AB", JugadorIzquierdoID: a, JugadorDerechoID: b}).Error)
	require.NoError(t, db.Create(&Pareja{Nombre: "AC", JugadorIzquierdoID: a, JugadorDerechoID: c}).Error)
}
