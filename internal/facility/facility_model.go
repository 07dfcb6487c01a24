// internal/facility/facility_model.go
package facility

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
)

// Instalacion is a fixed or temporary sports facility where play happens.
type Instalacion struct {
	ID uint `gorm:"column:id_instalacion;primaryKey" json:"id_instalacion"`
	models.QRToken
	Foto   *string `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Plano  *string `gorm:"column:plano;size:254" json:"plano,omitempty"` // floor plan, pdf/svg/png/dwg/dxf
	Nombre string  `gorm:"column:nombre;size:150;not null" json:"nombre"`
	geo.Direccion
	GeoLatitud  *float64 `gorm:"column:geoubicacion_latitud;type:numeric(9,6)" json:"geoubicacion_latitud,omitempty"`
	GeoLongitud *float64 `gorm:"column:geoubicacion_longitud;type:numeric(9,6)" json:"geoubicacion_longitud,omitempty"`
	geo.Telefonos
	Email          string  `gorm:"column:email;size:254;uniqueIndex;not null" json:"email" binding:"omitempty,email"`
	EmailAdicional *string `gorm:"column:email_adicional;size:254;uniqueIndex" json:"email_adicional,omitempty"`
	SitioWeb       *string `gorm:"column:sitio_web;size:254;uniqueIndex" json:"sitio_web,omitempty"`
	models.Vigencia
}

func (Instalacion) TableName() string { return "instalacion" }

// BeforeSave enforces the phone-presence rule and E.164 normalization.
func (i *Instalacion) BeforeSave(tx *gorm.DB) error {
	if err := i.Vigencia.BeforeSave(tx); err != nil {
		return err
	}
	if err := models.RequiereTelefono(fmt.Sprintf("instalacion %d", i.ID), i.TelefonoFijo, i.TelefonoMovil, i.TelefonoOtro); err != nil {
		return err
	}
	return i.Telefonos.Normalizar()
}

// Pista is a playable court inside a facility.
type Pista struct {
	ID uint `gorm:"column:id_pista;primaryKey" json:"id_pista"`
	models.QRToken
	Foto          *string           `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre        *string           `gorm:"column:nombre;size:50" json:"nombre,omitempty"`
	InstalacionID uint              `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion   *Instalacion      `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoPistaID   uint              `gorm:"column:id_tipo_pista;not null" json:"id_tipo_pista"`
	TipoPista     *lookup.TipoPista `gorm:"foreignKey:TipoPistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoSueloID   uint              `gorm:"column:id_tipo_suelo;not null" json:"id_tipo_suelo"`
	TipoSuelo     *lookup.TipoSuelo `gorm:"foreignKey:TipoSueloID;constraint:OnDelete:RESTRICT" json:"-"`
	Iluminada     bool              `gorm:"column:iluminada;not null" json:"iluminada"`
	TieneLlave    bool              `gorm:"column:tiene_llave;not null" json:"tiene_llave"`
	Longitud      float64           `gorm:"column:dimensiones_longitud;type:numeric(5,2);not null" json:"dimensiones_longitud"`
	Anchura       float64           `gorm:"column:dimensiones_archura;type:numeric(5,2);not null" json:"dimensiones_archura"`
	Altura        float64           `gorm:"column:dimensiones_altura;type:numeric(4,2);not null" json:"dimensiones_altura"`
	models.Vigencia
}

func (Pista) TableName() string { return "pista" }

// Dependencia is any other room or space inside a facility.
type Dependencia struct {
	ID uint `gorm:"column:id_dependencia;primaryKey" json:"id_dependencia"`
	models.QRToken
	Foto              *string                 `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre            *string                 `gorm:"column:nombre;size:50" json:"nombre,omitempty"`
	InstalacionID     uint                    `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion       *Instalacion            `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoDependenciaID uint                    `gorm:"column:id_tipo_dependencia;not null" json:"id_tipo_dependencia"`
	TipoDependencia   *lookup.TipoDependencia `gorm:"foreignKey:TipoDependenciaID;constraint:OnDelete:RESTRICT" json:"-"`
	TieneLlave        bool                    `gorm:"column:tiene_llave;not null" json:"tiene_llave"`
	Longitud          *float64                `gorm:"column:dimensiones_longitud;type:numeric(5,2)" json:"dimensiones_longitud,omitempty"`
	Anchura           *float64                `gorm:"column:dimensiones_archura;type:numeric(5,2)" json:"dimensiones_archura,omitempty"`
	Altura            *float64                `gorm:"column:dimensiones_altura;type:numeric(4,2)" json:"dimensiones_altura,omitempty"`
	models.Vigencia
}

func (Dependencia) TableName() string { return "dependencia" }

// Material is portable equipment stored in a dependencia.
type Material struct {
	ID uint `gorm:"column:id_material;primaryKey" json:"id_material"`
	models.QRToken
	Foto          *string      `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre        string       `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Cantidad      int          `gorm:"column:cantidad;not null" json:"cantidad"`
	DependenciaID uint         `gorm:"column:id_dependencia;not null" json:"id_dependencia"`
	Dependencia   *Dependencia `gorm:"foreignKey:DependenciaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Material) TableName() string { return "material" }
