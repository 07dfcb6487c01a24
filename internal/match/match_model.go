// internal/match/match_model.go
package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/internal/tournament"
	"github.com/picklefree/picklefree/pkg/qrtoken"
)

// PartidoIndividual is a singles match, loose or belonging to a
// tournament round. It carries two tokens: the match token and a
// separate one the players scan to confirm the result.
type PartidoIndividual struct {
	ID                  uint                         `gorm:"column:id_partido_individual;primaryKey" json:"id_partido_individual"`
	JugadorLocalID      uint                         `gorm:"column:id_jugador_local;not null" json:"id_jugador_local"`
	JugadorLocal        *person.Jugador              `gorm:"foreignKey:JugadorLocalID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorVisitanteID  uint                         `gorm:"column:id_jugador_visitante;not null" json:"id_jugador_visitante"`
	JugadorVisitante    *person.Jugador              `gorm:"foreignKey:JugadorVisitanteID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	TokenQRConfirmacion string                       `gorm:"column:token_qr_confirmacion;type:varchar(32);uniqueIndex;not null" json:"token_qr_confirmacion"`
	EstadoPartidoID     uint                         `gorm:"column:id_estado_partido;not null" json:"id_estado_partido"`
	EstadoPartido       *lookup.EstadoPartido        `gorm:"foreignKey:EstadoPartidoID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID             *uint                        `gorm:"column:id_pista" json:"id_pista,omitempty"`
	Pista               *facility.Pista              `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoIndividualID  *uint                        `gorm:"column:id_torneo_individual" json:"id_torneo_individual,omitempty"`
	TorneoIndividual    *tournament.TorneoIndividual `gorm:"foreignKey:TorneoIndividualID;constraint:OnDelete:RESTRICT" json:"-"`
	RondaOJornada       *int                         `gorm:"column:ronda_o_jornada" json:"ronda_o_jornada,omitempty"`
	FechaHora           time.Time                    `gorm:"column:fecha_hora;not null" json:"fecha_hora"`
	TodsFormato         string                       `gorm:"column:tods_formato;size:50;not null" json:"tods_formato"`
	TodsResultado       *string                      `gorm:"column:tods_resultado;size:50" json:"tods_resultado,omitempty"`
	GanadorID           uint                         `gorm:"column:id_ganador;not null" json:"id_ganador"`
	Ganador             *person.Jugador              `gorm:"foreignKey:GanadorID;constraint:OnDelete:RESTRICT" json:"-"`
	Comentarios         *string                      `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

func (PartidoIndividual) TableName() string { return "partido_individual" }

// BeforeCreate issues both tokens. Defining our own hook shadows the
// promoted QRToken one, so it is called explicitly.
func (p *PartidoIndividual) BeforeCreate(tx *gorm.DB) error {
	if err := p.QRToken.BeforeCreate(tx); err != nil {
		return err
	}
	if p.TokenQRConfirmacion == "" {
		p.TokenQRConfirmacion = qrtoken.New()
	}
	return nil
}

// PartidoDobles is a doubles match between two pairs.
type PartidoDobles struct {
	ID                  uint                     `gorm:"column:id_partido_dobles;primaryKey" json:"id_partido_dobles"`
	ParejaLocalID       uint                     `gorm:"column:id_pareja_local;not null" json:"id_pareja_local"`
	ParejaLocal         *team.Pareja             `gorm:"foreignKey:ParejaLocalID;constraint:OnDelete:RESTRICT" json:"-"`
	ParejaVisitanteID   uint                     `gorm:"column:id_pareja_visitante;not null" json:"id_pareja_visitante"`
	ParejaVisitante     *team.Pareja             `gorm:"foreignKey:ParejaVisitanteID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	TokenQRConfirmacion string                   `gorm:"column:token_qr_confirmacion;type:varchar(32);uniqueIndex;not null" json:"token_qr_confirmacion"`
	EstadoPartidoID     uint                     `gorm:"column:id_estado_partido;not null" json:"id_estado_partido"`
	EstadoPartido       *lookup.EstadoPartido    `gorm:"foreignKey:EstadoPartidoID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID             *uint                    `gorm:"column:id_pista" json:"id_pista,omitempty"`
	Pista               *facility.Pista          `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoDoblesID      *uint                    `gorm:"column:id_torneo_dobles" json:"id_torneo_dobles,omitempty"`
	TorneoDobles        *tournament.TorneoDobles `gorm:"foreignKey:TorneoDoblesID;constraint:OnDelete:RESTRICT" json:"-"`
	RondaOJornada       *int                     `gorm:"column:ronda_o_jornada" json:"ronda_o_jornada,omitempty"`
	FechaHora           time.Time                `gorm:"column:fecha_hora;not null" json:"fecha_hora"`
	TodsFormato         string                   `gorm:"column:tods_formato;size:50;not null" json:"tods_formato"`
	TodsResultado       *string                  `gorm:"column:tods_resultado;size:50" json:"tods_resultado,omitempty"`
	GanadorID           uint                     `gorm:"column:id_ganador;not null" json:"id_ganador"`
	Ganador             *team.Pareja             `gorm:"foreignKey:GanadorID;constraint:OnDelete:RESTRICT" json:"-"`
	Comentarios         *string                  `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

func (PartidoDobles) TableName() string { return "partido_dobles" }

func (p *PartidoDobles) BeforeCreate(tx *gorm.DB) error {
	if err := p.QRToken.BeforeCreate(tx); err != nil {
		return err
	}
	if p.TokenQRConfirmacion == "" {
		p.TokenQRConfirmacion = qrtoken.New()
	}
	return nil
}
