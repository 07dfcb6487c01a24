package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/middleware"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/pkg/qrtoken"
)

func montarAdmin(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&lookup.TipoSexo{}, &team.Pareja{}, &club.Configuracion{}))

	r := gin.New()
	ctl := NewController(db)
	grupo := r.Group("/api/admin")
	grupo.Use(func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, uint(1))
		c.Set(middleware.AuthSuperuserKey, true)
	})
	grupo.POST("/:entity", ctl.Create)
	grupo.PUT("/:entity/:id", ctl.Update)
	return r, db
}

func pedir(t *testing.T, r *gin.Engine, metodo, ruta string, cuerpo any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(cuerpo))
	req := httptest.NewRequest(metodo, ruta, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fechaPasada() *datatypes.Date {
	d := datatypes.Date(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	return &d
}

// Updating must run the lifecycle assessment against the merged record: a
// row carrying a fecha_baja can never be driven back to activo=true.
func TestUpdate_LookupNoActivableConFechaBaja(t *testing.T) {
	t.Parallel()
	r, db := montarAdmin(t)

	sexo := lookup.TipoSexo{Nombre: "Masculino"}
	sexo.FechaBaja = fechaPasada()
	require.NoError(t, db.Create(&sexo).Error)
	require.False(t, sexo.Activo)

	w := pedir(t, r, http.MethodPut, fmt.Sprintf("/api/admin/tipo_sexo/%d", sexo.ID),
		gin.H{"activo": true})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var despues lookup.TipoSexo
	require.NoError(t, db.First(&despues, sexo.ID).Error)
	require.False(t, despues.Activo)
	require.NotNil(t, despues.FechaBaja)
}

// The pair rules (no self-pair, no duplicate unordered player set) must
// also hold for values arriving through the update handler.
func TestUpdate_ParejaValidadaConValoresNuevos(t *testing.T) {
	t.Parallel()
	r, db := montarAdmin(t)

	primera := team.Pareja{Nombre: "Ana y Bea", JugadorIzquierdoID: 1, JugadorDerechoID: 2}
	require.NoError(t, db.Create(&primera).Error)
	segunda := team.Pareja{Nombre: "Ana y Carla", JugadorIzquierdoID: 1, JugadorDerechoID: 3}
	require.NoError(t, db.Create(&segunda).Error)

	ruta := fmt.Sprintf("/api/admin/pareja/%d", segunda.ID)

	w := pedir(t, r, http.MethodPut, ruta, gin.H{"id_jugador_derecho": 1})
	require.Equal(t, http.StatusBadRequest, w.Code, "self-pair via update")

	w = pedir(t, r, http.MethodPut, ruta, gin.H{"id_jugador_izquierdo": 2, "id_jugador_derecho": 1})
	require.Equal(t, http.StatusBadRequest, w.Code, "unordered duplicate via update")

	var despues team.Pareja
	require.NoError(t, db.First(&despues, segunda.ID).Error)
	require.Equal(t, uint(1), despues.JugadorIzquierdoID)
	require.Equal(t, uint(3), despues.JugadorDerechoID)

	w = pedir(t, r, http.MethodPut, ruta, gin.H{"nombre": "Ana y Carla II"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&despues, segunda.ID).Error)
	require.Equal(t, "Ana y Carla II", despues.Nombre)
}

// Token fields are read-only on create too: a client-supplied value is
// discarded and the hook issues a fresh one.
func TestCreate_TokenSuministradoSeIgnora(t *testing.T) {
	t.Parallel()
	r, db := montarAdmin(t)

	w := pedir(t, r, http.MethodPost, "/api/admin/configuracion", gin.H{
		"puntos_victoria": 3,
		"puntos_empate":   1,
		"puntos_derrota":  0,
		"token_qr_global": "FALSIFICADO-NO-HEX",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var cfg club.Configuracion
	require.NoError(t, db.First(&cfg).Error)
	require.True(t, qrtoken.Valid(cfg.TokenQRGlobal))

	w = pedir(t, r, http.MethodPut, fmt.Sprintf("/api/admin/configuracion/%d", cfg.ID),
		gin.H{"puntos_victoria": 4, "token_qr_global": "OTRO-INTENTO"})
	require.Equal(t, http.StatusOK, w.Code)

	var despues club.Configuracion
	require.NoError(t, db.First(&despues, cfg.ID).Error)
	require.Equal(t, 4, despues.PuntosVictoria)
	require.Equal(t, cfg.TokenQRGlobal, despues.TokenQRGlobal)
}
