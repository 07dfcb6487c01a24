// internal/admin/admin_controller.go
package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/middleware"
	"github.com/picklefree/picklefree/pkg/responses"
	"github.com/picklefree/picklefree/pkg/validator"
)

const defaultPageSize = 25

// Controller serves generic CRUD over every visible registry entry.
type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// registration resolves the :entity URL segment. Hidden entries are not
// addressable, matching the tables left out of the admin.
func (ctl *Controller) registration(c *gin.Context) (*Registration, bool) {
	reg, ok := Lookup(c.Param("entity"))
	if !ok || reg.Hidden {
		responses.NotFound(c, "Entidad "+c.Param("entity"))
		return nil, false
	}
	return reg, true
}

func (ctl *Controller) autorizar(c *gin.Context, reg *Registration, objetoID uint, accion string) bool {
	if middleware.IsSuperuser(c) {
		return true
	}
	cuentaID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return false
	}
	ok, err := Autorizado(ctl.db, cuentaID, reg.Slug, objetoID, accion)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return false
	}
	if !ok {
		responses.Forbidden(c, "Sin permiso para "+accion+" sobre "+reg.Label)
		return false
	}
	return true
}

// aplicar merges a client payload onto the model. Read-only and
// identifier fields are dropped first; the rest is re-bound through
// JSON so that binding rules and save hooks evaluate the values the
// client actually sent, not the record's previous state.
func aplicar(reg *Registration, payload map[string]any, m any) error {
	for _, campo := range reg.ReadOnly {
		delete(payload, campo)
	}
	delete(payload, "id")
	delete(payload, "id_"+reg.Table)

	crudo, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(crudo, m); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(m)
}

// esConflicto classifies storage errors that should surface as 409:
// unique constraint hits and restrict-delete violations.
func esConflicto(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "constraint") || strings.Contains(msg, "violates")
}

// List godoc
// @Summary      Listar registros de una entidad
// @Tags         Admin
// @Produce      json
// @Param        entity     path   string  true   "Entidad"
// @Param        page       query  int     false  "Página"
// @Param        page_size  query  int     false  "Tamaño de página"
// @Success      200  {object}  responses.PaginatedResponse
// @Router       /admin/{entity} [get]
func (ctl *Controller) List(c *gin.Context) {
	reg, ok := ctl.registration(c)
	if !ok {
		return
	}
	if !ctl.autorizar(c, reg, ObjetoComodin, AccionVer) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > 200 {
		pageSize = defaultPageSize
	}

	var total int64
	if err := ctl.db.Table(reg.Table).Count(&total).Error; err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	items := reg.Slice()
	if err := ctl.db.Table(reg.Table).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(items).Error; err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, reg.LabelPlural, items, total, page, pageSize)
}

// Get godoc
// @Summary      Obtener un registro por id
// @Tags         Admin
// @Produce      json
// @Param        entity  path  string  true  "Entidad"
// @Param        id      path  int     true  "Identificador"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /admin/{entity}/{id} [get]
func (ctl *Controller) Get(c *gin.Context) {
	reg, ok := ctl.registration(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Identificador inválido")
		return
	}
	if !ctl.autorizar(c, reg, uint(id), AccionVer) {
		return
	}

	m := reg.Model()
	if err := ctl.db.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, reg.Label)
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, reg.Label, m)
}

// Create godoc
// @Summary      Crear un registro
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "Entidad"
// @Success      201  {object}  responses.SuccessResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /admin/{entity} [post]
func (ctl *Controller) Create(c *gin.Context) {
	reg, ok := ctl.registration(c)
	if !ok {
		return
	}
	if !ctl.autorizar(c, reg, ObjetoComodin, AccionCrear) {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		responses.BadRequest(c, "Cuerpo inválido: "+err.Error())
		return
	}
	m := reg.Model()
	if err := aplicar(reg, payload, m); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Cuerpo inválido",
			"details": validator.ParseError(err),
		})
		return
	}
	if err := ctl.db.Create(m).Error; err != nil {
		if esConflicto(err) {
			responses.Conflict(c, err.Error())
			return
		}
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, reg.Label+" creado", m)
}

// Update godoc
// @Summary      Actualizar un registro
// @Description  Los campos de sólo lectura (tokens) se descartan del cuerpo.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "Entidad"
// @Param        id      path  int     true  "Identificador"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /admin/{entity}/{id} [put]
func (ctl *Controller) Update(c *gin.Context) {
	reg, ok := ctl.registration(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Identificador inválido")
		return
	}
	if !ctl.autorizar(c, reg, uint(id), AccionCambiar) {
		return
	}

	var cambios map[string]any
	if err := c.ShouldBindJSON(&cambios); err != nil {
		responses.BadRequest(c, "Cuerpo inválido: "+err.Error())
		return
	}

	m := reg.Model()
	if err := ctl.db.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, reg.Label)
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	// Merge onto the loaded record and Save, so cross-field hooks see
	// the post-update state instead of the one read from the database.
	if err := aplicar(reg, cambios, m); err != nil {
		responses.BadRequest(c, "Cuerpo inválido: "+err.Error())
		return
	}
	if err := ctl.db.Save(m).Error; err != nil {
		if esConflicto(err) {
			responses.Conflict(c, err.Error())
			return
		}
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, reg.Label+" actualizado", m)
}

// Delete godoc
// @Summary      Borrar un registro
// @Description  Las violaciones de integridad referencial se devuelven como 409.
// @Tags         Admin
// @Produce      json
// @Param        entity  path  string  true  "Entidad"
// @Param        id      path  int     true  "Identificador"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /admin/{entity}/{id} [delete]
func (ctl *Controller) Delete(c *gin.Context) {
	reg, ok := ctl.registration(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Identificador inválido")
		return
	}
	if !ctl.autorizar(c, reg, uint(id), AccionBorrar) {
		return
	}

	m := reg.Model()
	if err := ctl.db.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, reg.Label)
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	if err := ctl.db.Delete(m).Error; err != nil {
		if esConflicto(err) {
			responses.Conflict(c, "No se puede borrar: hay registros que dependen de este "+reg.Label)
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, reg.Label+" borrado", nil)
}
