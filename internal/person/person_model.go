// internal/person/person_model.go
package person

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
)

// Persona is the deduplicated root for every human role. The natural key is
// (identification type, identification value); players, technicians, officers
// and staff all point here.
type Persona struct {
	ID                   uint                       `gorm:"column:id_persona;primaryKey" json:"id_persona"`
	Foto                 *string                    `gorm:"column:foto;size:254" json:"foto,omitempty"`
	TipoIdentificacionID uint                       `gorm:"column:id_tipo_identificacion;not null;uniqueIndex:uq_persona_identificacion" json:"id_tipo_identificacion"`
	TipoIdentificacion   *lookup.TipoIdentificacion `gorm:"foreignKey:TipoIdentificacionID;constraint:OnDelete:RESTRICT" json:"-"`
	DocIdentidadValor    string                     `gorm:"column:docidentidad_valor;size:10;not null;uniqueIndex:uq_persona_identificacion" json:"docidentidad_valor"`
	Nombre               string                     `gorm:"column:nombre;size:50;not null" json:"nombre"`
	ApellidoPrimero      string                     `gorm:"column:apellido_primero;size:50;not null" json:"apellido_primero"`
	ApellidoSegundo      *string                    `gorm:"column:apellido_segundo;size:50" json:"apellido_segundo,omitempty"`
	TipoSexoID           uint                       `gorm:"column:id_tipo_sexo;not null" json:"id_tipo_sexo"`
	TipoSexo             *lookup.TipoSexo           `gorm:"foreignKey:TipoSexoID;constraint:OnDelete:RESTRICT" json:"-"`
	geo.Direccion
	NacimientoFecha     *datatypes.Date `gorm:"column:nacimiento_fecha" json:"nacimiento_fecha,omitempty"`
	NacimientoLocalidad *string         `gorm:"column:nacimiento_localidad;size:50" json:"nacimiento_localidad,omitempty"`
	NacimientoPais      string          `gorm:"column:nacimientos_pais;size:2;not null" json:"nacimiento_pais" binding:"omitempty,iso3166_1_alpha2"`
	geo.Telefonos
	Email          string  `gorm:"column:email;size:254;uniqueIndex;not null" json:"email" binding:"omitempty,email"`
	EmailAdicional *string `gorm:"column:email_adicional;size:254;uniqueIndex" json:"email_adicional,omitempty"`
	AuthUserID     *uint   `gorm:"column:auth_user;uniqueIndex" json:"auth_user,omitempty"` // pointer to the admin account table
	models.Vigencia
}

func (Persona) TableName() string { return "persona" }

// BeforeSave enforces the phone-presence rule and normalizes numbers to E.164.
func (p *Persona) BeforeSave(tx *gorm.DB) error {
	if err := p.Vigencia.BeforeSave(tx); err != nil {
		return err
	}
	if err := models.RequiereTelefono(fmt.Sprintf("persona %d", p.ID), p.TelefonoFijo, p.TelefonoMovil, p.TelefonoOtro); err != nil {
		return err
	}
	return p.Telefonos.Normalizar()
}

func (p *Persona) String() string {
	apellidos := p.ApellidoPrimero
	if p.ApellidoSegundo != nil {
		apellidos += " " + *p.ApellidoSegundo
	}
	return fmt.Sprintf("%s, %s [%s]", apellidos, p.Nombre, p.DocIdentidadValor)
}

// Jugador is a persona who practices the sport.
type Jugador struct {
	ID      uint     `gorm:"column:id_jugador;primaryKey" json:"id_jugador"`
	PersonaID uint   `gorm:"column:id_persona;not null" json:"id_persona"`
	Persona *Persona `gorm:"foreignKey:PersonaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	NumFederado       *string                 `gorm:"column:num_federado;size:10;uniqueIndex" json:"num_federado,omitempty"`
	TipoLateralidadID uint                    `gorm:"column:id_tipo_lateralidad;not null" json:"id_tipo_lateralidad"`
	TipoLateralidad   *lookup.TipoLateralidad `gorm:"foreignKey:TipoLateralidadID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Jugador) TableName() string { return "jugador" }

// Tecnico is a persona holding a coaching qualification.
type Tecnico struct {
	ID        uint     `gorm:"column:id_tecnico;primaryKey" json:"id_tecnico"`
	PersonaID uint     `gorm:"column:id_persona;not null" json:"id_persona"`
	Persona   *Persona `gorm:"foreignKey:PersonaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	NumFederado      *string                `gorm:"column:num_federado;size:10;uniqueIndex" json:"num_federado,omitempty"`
	TipoTitulacionID uint                   `gorm:"column:id_tipo_titulacion;not null" json:"id_tipo_titulacion"`
	TipoTitulacion   *lookup.TipoTitulacion `gorm:"foreignKey:TipoTitulacionID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Tecnico) TableName() string { return "tecnico" }

// Directivo is a persona holding a position in a club.
type Directivo struct {
	ID        uint     `gorm:"column:id_directivo;primaryKey" json:"id_directivo"`
	PersonaID uint     `gorm:"column:id_persona;not null" json:"id_persona"`
	Persona   *Persona `gorm:"foreignKey:PersonaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	Curriculum *string `gorm:"column:curriculum;size:254" json:"curriculum,omitempty"` // pdf/docx/doc/odt, see pkg/upload
	models.Vigencia
}

func (Directivo) TableName() string { return "directivo" }

// Operario is a persona holding a staff certification.
type Operario struct {
	ID        uint     `gorm:"column:id_operario;primaryKey" json:"id_operario"`
	PersonaID uint     `gorm:"column:id_persona;not null" json:"id_persona"`
	Persona   *Persona `gorm:"foreignKey:PersonaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	TipoCapacitacionID uint                     `gorm:"column:id_tipo_capacitacion;not null" json:"id_tipo_capacitacion"`
	TipoCapacitacion   *lookup.TipoCapacitacion `gorm:"foreignKey:TipoCapacitacionID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Operario) TableName() string { return "operario" }

// Edad returns the persona's age in full years at the given date, or -1 when
// the birth date is unknown. Used by category eligibility checks.
func (p *Persona) Edad(en time.Time) int {
	if p.NacimientoFecha == nil {
		return -1
	}
	nacimiento := time.Time(*p.NacimientoFecha)
	años := en.Year() - nacimiento.Year()
	if en.YearDay() < nacimiento.YearDay() {
		años--
	}
	return años
}
