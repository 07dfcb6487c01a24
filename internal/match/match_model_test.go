package match

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/picklefree/picklefree/pkg/qrtoken"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&PartidoIndividual{}, &PartidoDobles{}))
	return db
}

func TestPartidoIndividual_DosTokensDistintos(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p := PartidoIndividual{
		JugadorLocalID: 1, JugadorVisitanteID: 2,
		EstadoPartidoID: 1, FechaHora: time.Now(),
		TodsFormato: "3x11", GanadorID: 1,
	}
	require.NoError(t, db.Create(&p).Error)
	require.True(t, qrtoken.Valid(p.TokenQR))
	require.True(t, qrtoken.Valid(p.TokenQRConfirmacion))
	require.NotEqual(t, p.TokenQR, p.TokenQRConfirmacion)
}

func TestPartidoDobles_TokensNoSeRegeneran(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	p := PartidoDobles{
		ParejaLocalID: 1, ParejaVisitanteID: 2,
		EstadoPartidoID: 1, FechaHora: time.Now(),
		TodsFormato: "3x11", GanadorID: 2,
	}
	require.NoError(t, db.Create(&p).Error)
	token, confirmacion := p.TokenQR, p.TokenQRConfirmacion

	resultado := "11-7 11-9 8-11 11-5"
	p.TodsResultado = &resultado
	require.NoError(t, db.Save(&p).Error)

	var leido PartidoDobles
	require.NoError(t, db.First(&leido, p.ID).Error)
	require.Equal(t, token, leido.TokenQR)
	require.Equal(t, confirmacion, leido.TokenQRConfirmacion)
}
