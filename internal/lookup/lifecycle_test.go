package lookup

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
	require.NoError(t, db.AutoMigrate(&TipoSexo{}, &EstadoPartido{}))
	return db
}

func fecha(año int, mes time.Month, dia int) *datatypes.Date {
	d := datatypes.Date(time.Date(año, mes, dia, 0, 0, 0, 0, time.UTC))
	return &d
}

func TestAssess_ActivoConFechaBajaFutura(t *testing.T) {
	t.Parallel()

	l := Lifecycle{}
	l.Activo = true
	l.FechaBaja = fecha(2099, time.January, 1)

	err := l.Assess("tipo_sexo", time.Now())
	require.Error(t, err, "active with ANY deactivation date must be rejected")
}

func TestAssess_ActivoSinFechaBaja(t *testing.T) {
	t.Parallel()

	l := Lifecycle{}
	l.Activo = true

	require.NoError(t, l.Assess("tipo_sexo", time.Now()))
	require.True(t, l.Activo)
}

func TestAssess_FechaBajaPasadaFuerzaInactivo(t *testing.T) {
	t.Parallel()

	l := Lifecycle{}
	l.Activo = false
	l.FechaBaja = fecha(2000, time.January, 1)

	require.NoError(t, l.Assess("tipo_sexo", time.Now()))
	require.False(t, l.Activo)
}

func TestAssess_FechaBajaFuturaInactivoSeConserva(t *testing.T) {
	t.Parallel()

	l := Lifecycle{}
	l.Activo = false
	l.FechaBaja = fecha(2099, time.January, 1)

	require.NoError(t, l.Assess("tipo_sexo", time.Now()))
	require.False(t, l.Activo, "a future date must not flip the flag")
}

func TestBeforeSave_EscenarioTipoSexo(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	// activo=true + fecha_baja futura -> rejected.
	rechazado := TipoSexo{Nombre: "Masculino"}
	rechazado.Activo = true
	rechazado.FechaBaja = fecha(2099, time.January, 1)
	require.Error(t, db.Create(&rechazado).Error)

	// activo=true, sin fecha_baja -> accepted, stays active.
	aceptado := TipoSexo{Nombre: "Femenino"}
	aceptado.Activo = true
	require.NoError(t, db.Create(&aceptado).Error)

	var leido TipoSexo
	require.NoError(t, db.First(&leido, aceptado.ID).Error)
	require.True(t, leido.Activo)
	require.False(t, time.Time(leido.FechaAlta).IsZero(), "fecha_alta defaults to today")

	// activo=false + fecha_baja pasada -> accepted, activo forced false.
	baja := TipoSexo{Nombre: "Otro"}
	baja.Activo = false
	baja.FechaBaja = fecha(2000, time.January, 1)
	require.NoError(t, db.Create(&baja).Error)

	// A fresh destination: reusing leido would carry its primary key
	// into the query conditions.
	var dado TipoSexo
	require.NoError(t, db.First(&dado, baja.ID).Error)
	require.False(t, dado.Activo)
}

func TestBeforeSave_ReglaCompartidaEntreTablas(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)

	// The same assessment must fire for every lookup type, not only TipoSexo.
	estado := EstadoPartido{Nombre: "Programado"}
	estado.Activo = true
	estado.FechaBaja = fecha(2030, time.June, 1)
	err := db.Create(&estado).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "estado_partido")
}
