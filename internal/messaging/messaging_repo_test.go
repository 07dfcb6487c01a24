package messaging

import (
	"testing"

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
	require.NoError(t, db.AutoMigrate(
		&Mensaje{}, &Envio{},
		&DestinatarioJugador{}, &DestinatarioEquipo{},
	))
	return db
}

func TestMensaje_TokenYFechaAlCrear(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	m := Mensaje{RemitenteID: 1, TipoMensajeID: 1, Asunto: "Cierre por obras"}
	require.NoError(t, repo.Crear(&m, nil))
	require.True(t, qrtoken.Valid(m.TokenQR))
	require.False(t, m.FechaHora.IsZero())
}

func TestCrear_AdjuntaDestinatariosEnLaMismaTransaccion(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	m := Mensaje{RemitenteID: 1, TipoMensajeID: 1, Asunto: "Convocatoria"}
	err := repo.Crear(&m, func(tx *gorm.DB, mensajeID uint) error {
		if err := tx.Create(&DestinatarioJugador{MensajeID: mensajeID, JugadorID: 4}).Error; err != nil {
			return err
		}
		return tx.Create(&DestinatarioEquipo{MensajeID: mensajeID, EquipoID: 2}).Error
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&DestinatarioJugador{}).Where("id_mensaje = ?", m.ID).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestDespachar_UnEnvioPorDestinoConOverride(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	m := Mensaje{RemitenteID: 1, TipoMensajeID: 1, Asunto: "Resultados de la jornada"}
	require.NoError(t, repo.Crear(&m, nil))

	sms := uint(2)
	destinos := []Destino{
		{Direccion: "ana@example.com"},
		{Direccion: "+34612345678", TipoMensajeID: &sms},
		{Direccion: "luis@example.com"},
	}
	envios, err := repo.Despachar(&m, "club@example.com", 1, destinos)
	require.NoError(t, err)
	require.Len(t, envios, 3)

	// El tipo del mensaje se usa salvo override del destinatario.
	require.EqualValues(t, 1, envios[0].TipoMensajeID)
	require.EqualValues(t, 2, envios[1].TipoMensajeID)
	require.Equal(t, "+34612345678", envios[1].Destinatario)
	require.Equal(t, "club@example.com", envios[1].Remitente)

	// Cada envío lleva su propio token.
	require.True(t, qrtoken.Valid(envios[0].TokenQR))
	require.NotEqual(t, envios[0].TokenQR, envios[1].TokenQR)

	guardados, err := repo.EnviosDeMensaje(m.ID)
	require.NoError(t, err)
	require.Len(t, guardados, 3)
}
