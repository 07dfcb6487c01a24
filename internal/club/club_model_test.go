package club

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/pkg/qrtoken"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Club{}, &Configuracion{}))
	return db
}

func ptr(s string) *string { return &s }

func clubBase(nombre, email string) Club {
	return Club{
		Nombre: nombre,
		Direccion: geo.Direccion{
			CalleNum:     "Avenida del Deporte 5",
			Localidad:    "Sevilla",
			CodigoPostal: "41001",
			ProvinciaID:  1,
			Pais:         "ES",
		},
		Email: email,
	}
}

func TestClub_SinTelefonosRechazado(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	c := clubBase("CD Santa Clara", "club@example.com")
	err := db.Create(&c).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "telefono")
}

func TestClub_TelefonoNormalizadoYToken(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	c := clubBase("CD Triana", "triana@example.com")
	c.TelefonoMovil = ptr("612 345 678")
	require.NoError(t, db.Create(&c).Error)

	require.Equal(t, "+34612345678", *c.TelefonoMovil)
	require.True(t, qrtoken.Valid(c.TokenQR))
}

func TestConfiguracion_TokenGlobalGenerado(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	cfg := Configuracion{PuntosVictoria: 3, PuntosEmpate: 1, PuntosDerrota: 0}
	require.NoError(t, db.Create(&cfg).Error)
	require.True(t, qrtoken.Valid(cfg.TokenQRGlobal))

	otra := Configuracion{PuntosVictoria: 2, PuntosEmpate: 1, PuntosDerrota: 0}
	require.NoError(t, db.Create(&otra).Error)
	require.NotEqual(t, cfg.TokenQRGlobal, otra.TokenQRGlobal)
}
