package person

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/pkg/qrtoken"
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
		&Persona{}, &Jugador{},
	))
	require.NoError(t, db.Create(&geo.Provincia{Nombre: "Madrid", CodigoINE: "28"}).Error)
	require.NoError(t, db.Create(&lookup.TipoIdentificacion{Nombre: "DNI"}).Error)
	require.NoError(t, db.Create(&lookup.TipoSexo{Nombre: "Masculino"}).Error)
	require.NoError(t, db.Create(&lookup.TipoLateralidad{Nombre: "Diestro"}).Error)
	return db
}

func personaBase(doc, email string) Persona {
	return Persona{
		TipoIdentificacionID: 1,
		DocIdentidadValor:    doc,
		Nombre:               "Ana",
		ApellidoPrimero:      "Garcia",
		TipoSexoID:           1,
		Direccion: geo.Direccion{
			CalleNum:     "Calle Mayor 1",
			Localidad:    "Madrid",
			CodigoPostal: "28001",
			ProvinciaID:  1,
			Pais:         "ES",
		},
		NacimientoPais: "ES",
		Email:          email,
	}
}

func ptr(s string) *string { return &s }

func TestPersona_SinTelefonosRechazada(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p := personaBase("12345678A", "ana@example.com")
	err := db.Create(&p).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "telefono")
}

func TestPersona_UnTelefonoBasta(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p := personaBase("12345678A", "ana@example.com")
	p.TelefonoMovil = ptr("612 345 678")
	require.NoError(t, db.Create(&p).Error)

	var leida Persona
	require.NoError(t, db.First(&leida, p.ID).Error)
	require.NotNil(t, leida.TelefonoMovil)
	require.Equal(t, "+34612345678", *leida.TelefonoMovil, "numbers are normalized to E.164, region ES")
}

func TestPersona_ClaveNaturalUnica(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p1 := personaBase("12345678A", "uno@example.com")
	p1.TelefonoMovil = ptr("+34612345678")
	require.NoError(t, db.Create(&p1).Error)

	p2 := personaBase("12345678A", "dos@example.com")
	p2.TelefonoMovil = ptr("+34612345679")
	require.Error(t, db.Create(&p2).Error,
		"duplicate (tipo identificacion, doc valor) must hit the unique index")
}

func TestJugador_TokenQRGenerado(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p := personaBase("12345678A", "ana@example.com")
	p.TelefonoMovil = ptr("+34612345678")
	require.NoError(t, db.Create(&p).Error)

	j := Jugador{PersonaID: p.ID, TipoLateralidadID: 1}
	require.NoError(t, db.Create(&j).Error)
	require.True(t, qrtoken.Valid(j.TokenQR), "token %q must be 32 lowercase hex", j.TokenQR)

	// Token persists as issued; a second save must not regenerate it.
	emitido := j.TokenQR
	require.NoError(t, db.Save(&j).Error)
	require.Equal(t, emitido, j.TokenQR)
}
