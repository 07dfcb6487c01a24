package admin

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRegistry_SlugsUnicos(t *testing.T) {
	t.Parallel()
	vistos := make(map[string]bool, len(Registry))
	tablas := make(map[string]bool, len(Registry))
	for _, reg := range Registry {
		require.False(t, vistos[reg.Slug], "slug repetido: %s", reg.Slug)
		require.False(t, tablas[reg.Table], "tabla repetida: %s", reg.Table)
		require.NotEmpty(t, reg.Label)
		require.NotEmpty(t, reg.LabelPlural)
		require.NotNil(t, reg.Model())
		require.NotNil(t, reg.Slice())
		vistos[reg.Slug] = true
		tablas[reg.Table] = true
	}
}

func TestRegistry_Ocultas(t *testing.T) {
	t.Parallel()
	esperadas := map[string]bool{
		"destinatario_club": true, "destinatario_curso": true,
		"destinatario_directivo": true, "destinatario_equipo": true,
		"destinatario_instalacion": true, "destinatario_jugador": true,
		"destinatario_operario": true, "destinatario_pareja": true,
		"destinatario_pista": true, "destinatario_tecnico": true,
		"destinatario_torneo_dobles": true, "destinatario_torneo_equipos": true,
		"destinatario_torneo_individual": true, "operario": true,
	}
	for _, reg := range Registry {
		require.Equal(t, esperadas[reg.Slug], reg.Hidden, "entidad %s", reg.Slug)
	}
}

func TestRegistry_CamposSoloLectura(t *testing.T) {
	t.Parallel()
	conToken := map[string][]string{
		"club": {"token_qr"}, "configuracion": {"token_qr_global"},
		"curso": {"token_qr"}, "dependencia": {"token_qr"},
		"directivo": {"token_qr"}, "envio": {"token_qr"},
		"equipo": {"token_qr"}, "instalacion": {"token_qr"},
		"jugador": {"token_qr"}, "material": {"token_qr"},
		"mensaje": {"token_qr"}, "operario": {"token_qr"},
		"pareja": {"token_qr"}, "pista": {"token_qr"},
		"tecnico":            {"token_qr"},
		"partido_dobles":     {"token_qr", "token_qr_confirmacion"},
		"partido_individual": {"token_qr", "token_qr_confirmacion"},
		"torneo_dobles":      {"token_qr"},
		"torneo_equipos":     {"token_qr"},
		"torneo_individual":  {"token_qr"},
	}
	for _, reg := range Registry {
		require.Equal(t, conToken[reg.Slug], []string(reg.ReadOnly), "entidad %s", reg.Slug)
	}
}

func TestPermiso_ComodinYObjeto(t *testing.T) {
	t.Parallel()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Permiso{}))

	require.NoError(t, db.Create(&Permiso{CuentaID: 1, Entidad: "club", ObjetoID: 7, Accion: AccionCambiar}).Error)
	require.NoError(t, db.Create(&Permiso{CuentaID: 2, Entidad: "club", ObjetoID: ObjetoComodin, Accion: AccionCambiar}).Error)

	ok, err := Autorizado(db, 1, "club", 7, AccionCambiar)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Autorizado(db, 1, "club", 8, AccionCambiar)
	require.NoError(t, err)
	require.False(t, ok)

	// El comodín cubre cualquier objeto de la entidad.
	ok, err = Autorizado(db, 2, "club", 999, AccionCambiar)
	require.NoError(t, err)
	require.True(t, ok)

	// Pero no otra acción ni otra entidad.
	ok, err = Autorizado(db, 2, "club", 7, AccionBorrar)
	require.NoError(t, err)
	require.False(t, ok)
}
