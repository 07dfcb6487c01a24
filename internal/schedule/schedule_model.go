// internal/schedule/schedule_model.go
package schedule

import (
	"gorm.io/datatypes"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
)

// HorarioClub is a weekly opening slot for a club.
type HorarioClub struct {
	ID              uint                  `gorm:"column:id_horario_club;primaryKey" json:"id_horario_club"`
	ClubID          uint                  `gorm:"column:id_club;not null" json:"id_club"`
	Club            *club.Club            `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoDiasemanalID uint                 `gorm:"column:id_tipo_diasemanal;not null" json:"id_tipo_diasemanal"`
	TipoDiasemanal  *lookup.TipoDiasemanal `gorm:"foreignKey:TipoDiasemanalID;constraint:OnDelete:RESTRICT" json:"-"`
	HoraInicio      datatypes.Time        `gorm:"column:hora_inicio;not null" json:"hora_inicio"`
	HoraFin         datatypes.Time        `gorm:"column:hora_fin;not null" json:"hora_fin"`
	models.Vigencia
}

func (HorarioClub) TableName() string { return "horario_club" }

// HorarioInstalacion is a weekly slot for a facility. A row with no
// club applies to the facility regardless of club.
type HorarioInstalacion struct {
	ID              uint                  `gorm:"column:id_horario_instalacion;primaryKey" json:"id_horario_instalacion"`
	ClubID          *uint                 `gorm:"column:id_club" json:"id_club,omitempty"`
	Club            *club.Club            `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID   uint                  `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion     *facility.Instalacion `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoDiasemanalID uint                 `gorm:"column:id_tipo_diasemanal;not null" json:"id_tipo_diasemanal"`
	TipoDiasemanal  *lookup.TipoDiasemanal `gorm:"foreignKey:TipoDiasemanalID;constraint:OnDelete:RESTRICT" json:"-"`
	HoraInicio      datatypes.Time        `gorm:"column:hora_inicio;not null" json:"hora_inicio"`
	HoraFin         datatypes.Time        `gorm:"column:hora_fin;not null" json:"hora_fin"`
	models.Vigencia
}

func (HorarioInstalacion) TableName() string { return "horario_instalacion" }

// HorarioPista is a weekly slot for a single court.
type HorarioPista struct {
	ID              uint                  `gorm:"column:id_horario_pista;primaryKey" json:"id_horario_pista"`
	PistaID         uint                  `gorm:"column:id_pista;not null" json:"id_pista"`
	Pista           *facility.Pista       `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoDiasemanalID uint                 `gorm:"column:id_tipo_diasemanal;not null" json:"id_tipo_diasemanal"`
	TipoDiasemanal  *lookup.TipoDiasemanal `gorm:"foreignKey:TipoDiasemanalID;constraint:OnDelete:RESTRICT" json:"-"`
	HoraInicio      datatypes.Time        `gorm:"column:hora_inicio;not null" json:"hora_inicio"`
	HoraFin         datatypes.Time        `gorm:"column:hora_fin;not null" json:"hora_fin"`
	models.Vigencia
}

func (HorarioPista) TableName() string { return "horario_pista" }

// CalendarioClub marks a date range for a club, typed by calendar kind
// (festivo, cierre, temporada) and optionally tied to a weekly slot.
type CalendarioClub struct {
	ID               uint                   `gorm:"column:id_calendario_club;primaryKey" json:"id_calendario_club"`
	ClubID           uint                   `gorm:"column:id_club;not null" json:"id_club"`
	Club             *club.Club             `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoCalendarioID uint                   `gorm:"column:id_tipo_calendario;not null" json:"id_tipo_calendario"`
	TipoCalendario   *lookup.TipoCalendario `gorm:"foreignKey:TipoCalendarioID;constraint:OnDelete:RESTRICT" json:"-"`
	HorarioClubID    *uint                  `gorm:"column:id_horario_club" json:"id_horario_club,omitempty"`
	HorarioClub      *HorarioClub           `gorm:"foreignKey:HorarioClubID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaInicio      datatypes.Date         `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	FechaFin         datatypes.Date         `gorm:"column:fecha_fin;not null" json:"fecha_fin"`
	models.Vigencia
}

func (CalendarioClub) TableName() string { return "calendario_club" }

// CalendarioInstalacion marks a date range for a facility. A row with
// no club applies facility-wide.
type CalendarioInstalacion struct {
	ID                   uint                   `gorm:"column:id_calendario_instalacion;primaryKey" json:"id_calendario_instalacion"`
	ClubID               *uint                  `gorm:"column:id_club" json:"id_club,omitempty"`
	Club                 *club.Club             `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID        uint                   `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion          *facility.Instalacion  `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoCalendarioID     uint                   `gorm:"column:id_tipo_calendario;not null" json:"id_tipo_calendario"`
	TipoCalendario       *lookup.TipoCalendario `gorm:"foreignKey:TipoCalendarioID;constraint:OnDelete:RESTRICT" json:"-"`
	HorarioInstalacionID *uint                  `gorm:"column:id_horario_instalacion" json:"id_horario_instalacion,omitempty"`
	HorarioInstalacion   *HorarioInstalacion    `gorm:"foreignKey:HorarioInstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaInicio          datatypes.Date         `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	FechaFin             datatypes.Date         `gorm:"column:fecha_fin;not null" json:"fecha_fin"`
	models.Vigencia
}

func (CalendarioInstalacion) TableName() string { return "calendario_instalacion" }

// CalendarioPista marks a date range for a single court.
type CalendarioPista struct {
	ID               uint                   `gorm:"column:id_calendario_pista;primaryKey" json:"id_calendario_pista"`
	PistaID          uint                   `gorm:"column:id_pista;not null" json:"id_pista"`
	Pista            *facility.Pista        `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoCalendarioID uint                   `gorm:"column:id_tipo_calendario;not null" json:"id_tipo_calendario"`
	TipoCalendario   *lookup.TipoCalendario `gorm:"foreignKey:TipoCalendarioID;constraint:OnDelete:RESTRICT" json:"-"`
	HorarioPistaID   *uint                  `gorm:"column:id_horario_pista" json:"id_horario_pista,omitempty"`
	HorarioPista     *HorarioPista          `gorm:"foreignKey:HorarioPistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaInicio      datatypes.Date         `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	FechaFin         datatypes.Date         `gorm:"column:fecha_fin;not null" json:"fecha_fin"`
	models.Vigencia
}

func (CalendarioPista) TableName() string { return "calendario_pista" }
