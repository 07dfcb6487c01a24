// internal/club/club_model.go
package club

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/pkg/qrtoken"
)

// Club is a sports club, with or without facilities of its own.
type Club struct {
	ID uint `gorm:"column:id_club;primaryKey" json:"id_club"`
	models.QRToken
	Foto   *string `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre string  `gorm:"column:nombre;size:50;not null" json:"nombre"`
	geo.Direccion
	geo.Telefonos
	Email          string  `gorm:"column:email;size:254;uniqueIndex;not null" json:"email" binding:"omitempty,email"`
	EmailAdicional *string `gorm:"column:email_adicional;size:254;uniqueIndex" json:"email_adicional,omitempty"`
	SitioWeb       *string `gorm:"column:sitio_web;size:254;uniqueIndex" json:"sitio_web,omitempty"`
	models.Vigencia
}

func (Club) TableName() string { return "club" }

// BeforeSave enforces the phone-presence rule and E.164 normalization.
func (c *Club) BeforeSave(tx *gorm.DB) error {
	if err := c.Vigencia.BeforeSave(tx); err != nil {
		return err
	}
	if err := models.RequiereTelefono(fmt.Sprintf("club %d", c.ID), c.TelefonoFijo, c.TelefonoMovil, c.TelefonoOtro); err != nil {
		return err
	}
	return c.Telefonos.Normalizar()
}

// Configuracion holds global or per-club settings. A row with no club is the
// global configuration.
type Configuracion struct {
	ID             uint   `gorm:"column:id_configuracion;primaryKey" json:"id_configuracion"`
	ClubID         *uint  `gorm:"column:id_club" json:"id_club,omitempty"`
	Club           *Club  `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	PuntosVictoria int    `gorm:"column:puntos_victoria;not null" json:"puntos_victoria"`
	PuntosEmpate   int    `gorm:"column:puntos_empate;not null" json:"puntos_empate"`
	PuntosDerrota  int    `gorm:"column:puntos_derrota;not null" json:"puntos_derrota"`
	TokenQRGlobal  string `gorm:"column:token_qr_global;type:varchar(32);uniqueIndex;not null" json:"token_qr_global"`
	models.Vigencia
}

func (Configuracion) TableName() string { return "configuracion" }

// BeforeCreate issues the global token; it is immutable afterwards.
func (c *Configuracion) BeforeCreate(tx *gorm.DB) error {
	if c.TokenQRGlobal == "" {
		c.TokenQRGlobal = qrtoken.New()
	}
	return nil
}

// Posesion links a facility to an owning club (N:M).
type Posesion struct {
	ID             uint                  `gorm:"column:id_posesion;primaryKey" json:"id_posesion"`
	InstalacionID  uint                  `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion    *facility.Instalacion `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID         uint                  `gorm:"column:id_club;not null" json:"id_club"`
	Club           *Club                 `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoPosesionID uint                  `gorm:"column:id_tipo_posesion;not null" json:"id_tipo_posesion"`
	TipoPosesion   *lookup.TipoPosesion  `gorm:"foreignKey:TipoPosesionID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Posesion) TableName() string { return "posesion" }

// Pertenencia links a player to a club they belong to (N:M).
type Pertenencia struct {
	ID        uint            `gorm:"column:id_pertenencia;primaryKey" json:"id_pertenencia"`
	JugadorID uint            `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador   *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID    uint            `gorm:"column:id_club;not null" json:"id_club"`
	Club      *Club           `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Pertenencia) TableName() string { return "pertenencia" }

// Contrato links a technician to a contracting club (N:M).
type Contrato struct {
	ID             uint                 `gorm:"column:id_contrato;primaryKey" json:"id_contrato"`
	TecnicoID      uint                 `gorm:"column:id_tecnico;not null" json:"id_tecnico"`
	Tecnico        *person.Tecnico      `gorm:"foreignKey:TecnicoID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID         uint                 `gorm:"column:id_club;not null" json:"id_club"`
	Club           *Club                `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoContratoID uint                 `gorm:"column:id_tipo_contrato;not null" json:"id_tipo_contrato"`
	TipoContrato   *lookup.TipoContrato `gorm:"foreignKey:TipoContratoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Contrato) TableName() string { return "contrato" }

// Mandato links an officer to a club position (N:M).
type Mandato struct {
	ID              uint                  `gorm:"column:id_mandato;primaryKey" json:"id_mandato"`
	DirectivoID     uint                  `gorm:"column:id_directivo;not null" json:"id_directivo"`
	Directivo       *person.Directivo     `gorm:"foreignKey:DirectivoID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID          uint                  `gorm:"column:id_club;not null" json:"id_club"`
	Club            *Club                 `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoDirectivoID uint                  `gorm:"column:id_tipo_directivo;not null" json:"id_tipo_directivo"`
	TipoDirectivo   *lookup.TipoDirectivo `gorm:"foreignKey:TipoDirectivoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Mandato) TableName() string { return "mandato" }

// Empleo links a staff member to the facility employing them (N:M).
type Empleo struct {
	ID            uint                  `gorm:"column:id_empleo;primaryKey" json:"id_empleo"`
	OperarioID    uint                  `gorm:"column:id_operario;not null" json:"id_operario"`
	Operario      *person.Operario      `gorm:"foreignKey:OperarioID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID uint                  `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion   *facility.Instalacion `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoEmpleoID  uint                  `gorm:"column:id_tipo_empleo;not null" json:"id_tipo_empleo"`
	TipoEmpleo    *lookup.TipoEmpleo    `gorm:"foreignKey:TipoEmpleoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Empleo) TableName() string { return "empleo" }
