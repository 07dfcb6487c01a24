// internal/models/base.go
package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/pkg/qrtoken"
)

// Shared column length limits, mirroring the production schema.
const (
	MaxLenIdentificadorLargo = 10
	MaxLenIdentificadorCorto = 2
	MaxLenNombre             = 50
	MaxLenApellido           = 50
	MaxLenLocalidad          = 50
	MaxLenTods               = 50
	MaxLenTokenQR            = 32
	MaxLenDireccionCalleNum  = 100
	MaxLenCodigoPostal       = 10
	MaxLenTelefonoE164       = 16
	MaxLenEmail              = 254
	MaxLenEmailAsunto        = 100
	MaxLenNombreLargo        = 150
	MaxLenMensajeDireccion   = 254 // max(telefono E.164, email address)
)

// Vigencia is the soft-delete block shared by long-lived entities:
// registration date, optional deactivation date, active flag and free-form
// comments. Rows are never physically deleted while referenced; they are
// deactivated instead.
type Vigencia struct {
	FechaAlta   datatypes.Date  `gorm:"column:fecha_alta;not null" json:"fecha_alta"`
	FechaBaja   *datatypes.Date `gorm:"column:fecha_baja" json:"fecha_baja,omitempty"`
	Activo      bool            `gorm:"column:activo;not null;default:true" json:"activo"`
	Comentarios *string         `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

// BeforeSave defaults fecha_alta to today when unset. Entities that define
// their own BeforeSave shadow this promotion and must call it themselves.
func (v *Vigencia) BeforeSave(tx *gorm.DB) error {
	if time.Time(v.FechaAlta).IsZero() {
		v.FechaAlta = Hoy()
	}
	return nil
}

// QRToken is the shared fragment for entities identified by a scannable code.
// The value is generated once at creation and never regenerated; the unique
// index arbitrates the (negligible) collision risk under concurrent inserts.
type QRToken struct {
	TokenQR string `gorm:"column:token_qr;type:varchar(32);uniqueIndex;not null" json:"token_qr"`
}

// BeforeCreate issues the token if the caller did not bring one.
func (q *QRToken) BeforeCreate(tx *gorm.DB) error {
	if q.TokenQR == "" {
		q.TokenQR = qrtoken.New()
	}
	return nil
}

// RequiereTelefono enforces the phone-presence rule shared by Club,
// Instalacion and Persona: at least one of the three phone columns must be
// set.
func RequiereTelefono(etiqueta string, fijo, movil, otro *string) error {
	if vacio(fijo) && vacio(movil) && vacio(otro) {
		return fmt.Errorf("%s: es necesario al menos un telefono", etiqueta)
	}
	return nil
}

func vacio(s *string) bool {
	return s == nil || *s == ""
}

// Hoy returns the current date truncated to day precision.
func Hoy() datatypes.Date {
	y, m, d := time.Now().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
