// internal/tournament/tournament_model.go
package tournament

import (
	"gorm.io/datatypes"

	"github.com/picklefree/picklefree/internal/category"
	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
)

// FichaTorneo holds the fields every tournament kind shares: who runs
// it, where, for which category, the competition format, the play and
// enrollment windows and the capacity bounds.
type FichaTorneo struct {
	ClubID            uint                    `gorm:"column:id_club;not null" json:"id_club"`
	Club              *club.Club              `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	DirectorID        uint                    `gorm:"column:id_director;not null" json:"id_director"`
	Director          *person.Tecnico         `gorm:"foreignKey:DirectorID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID     uint                    `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion       *facility.Instalacion   `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	CategoriaID       uint                    `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Categoria         *category.Categoria     `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoCompeticionID uint                    `gorm:"column:id_tipo_competicion;not null" json:"id_tipo_competicion"`
	TipoCompeticion   *lookup.TipoCompeticion `gorm:"foreignKey:TipoCompeticionID;constraint:OnDelete:RESTRICT" json:"-"`
	RondasOJornadas   int                     `gorm:"column:rondas_o_jornadas;not null" json:"rondas_o_jornadas"`
	TorneoInicio      datatypes.Date          `gorm:"column:torneo_inicio;not null" json:"torneo_inicio"`
	TorneoFin         datatypes.Date          `gorm:"column:torneo_fin;not null" json:"torneo_fin"`
	InscripcionInicio datatypes.Date          `gorm:"column:inscripcion_inicio;not null" json:"inscripcion_inicio"`
	InscripcionFin    datatypes.Date          `gorm:"column:inscripcion_fin;not null" json:"inscripcion_fin"`
	AforoMinimo       int                     `gorm:"column:aforo_minimo;not null" json:"aforo_minimo"`
	AforoMaximo       int                     `gorm:"column:aforo_maximo;not null" json:"aforo_maximo"`
	Comentarios       *string                 `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

// TorneoIndividual is a singles tournament.
type TorneoIndividual struct {
	ID uint `gorm:"column:id_torneo_individual;primaryKey" json:"id_torneo_individual"`
	models.QRToken
	Foto   *string `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre string  `gorm:"column:nombre;size:150;not null" json:"nombre"`
	FichaTorneo
}

func (TorneoIndividual) TableName() string { return "torneo_individual" }

// TorneoDobles is a doubles tournament. Mixto marks mixed-sex pairs.
type TorneoDobles struct {
	ID uint `gorm:"column:id_torneo_dobles;primaryKey" json:"id_torneo_dobles"`
	models.QRToken
	Foto   *string `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre string  `gorm:"column:nombre;size:150;not null" json:"nombre"`
	Mixto  bool    `gorm:"column:mixto;not null" json:"mixto"`
	FichaTorneo
}

func (TorneoDobles) TableName() string { return "torneo_dobles" }

// TorneoEquipos is a team tournament with per-team roster bounds.
type TorneoEquipos struct {
	ID uint `gorm:"column:id_torneo_equipos;primaryKey" json:"id_torneo_equipos"`
	models.QRToken
	Foto               *string `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre             string  `gorm:"column:nombre;size:150;not null" json:"nombre"`
	IntegrantesMinimos int     `gorm:"column:integrantes_minimos;not null" json:"integrantes_minimos"`
	IntegrantesMaximos int     `gorm:"column:integrantes_maximos;not null" json:"integrantes_maximos"`
	FichaTorneo
}

func (TorneoEquipos) TableName() string { return "torneo_equipos" }

// InscripcionJugador enrolls a player in a singles tournament.
type InscripcionJugador struct {
	ID                  uint                      `gorm:"column:id_inscripcion_jugador;primaryKey" json:"id_inscripcion_jugador"`
	TorneoIndividualID  uint                      `gorm:"column:id_torneo_individual;not null" json:"id_torneo_individual"`
	TorneoIndividual    *TorneoIndividual         `gorm:"foreignKey:TorneoIndividualID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorID           uint                      `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador             *person.Jugador           `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	Fecha               datatypes.Date            `gorm:"column:fecha;not null" json:"fecha"`
	EstadoInscripcionID uint                      `gorm:"column:id_estado_inscripcion;not null" json:"id_estado_inscripcion"`
	EstadoInscripcion   *lookup.EstadoInscripcion `gorm:"foreignKey:EstadoInscripcionID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (InscripcionJugador) TableName() string { return "inscripcion_jugador" }

// InscripcionPareja enrolls a pair in a doubles tournament.
type InscripcionPareja struct {
	ID                  uint                      `gorm:"column:id_inscripcion_pareja;primaryKey" json:"id_inscripcion_pareja"`
	TorneoDoblesID      uint                      `gorm:"column:id_torneo_dobles;not null" json:"id_torneo_dobles"`
	TorneoDobles        *TorneoDobles             `gorm:"foreignKey:TorneoDoblesID;constraint:OnDelete:RESTRICT" json:"-"`
	ParejaID            uint                      `gorm:"column:id_pareja;not null" json:"id_pareja"`
	Pareja              *team.Pareja              `gorm:"foreignKey:ParejaID;constraint:OnDelete:RESTRICT" json:"-"`
	Fecha               datatypes.Date            `gorm:"column:fecha;not null" json:"fecha"`
	EstadoInscripcionID uint                      `gorm:"column:id_estado_inscripcion;not null" json:"id_estado_inscripcion"`
	EstadoInscripcion   *lookup.EstadoInscripcion `gorm:"foreignKey:EstadoInscripcionID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (InscripcionPareja) TableName() string { return "inscripcion_pareja" }

// InscripcionEquipo enrolls a team in a team tournament.
type InscripcionEquipo struct {
	ID                  uint                      `gorm:"column:id_inscripcion_equipo;primaryKey" json:"id_inscripcion_equipo"`
	TorneoEquiposID     uint                      `gorm:"column:id_torneo_equipos;not null" json:"id_torneo_equipos"`
	TorneoEquipos       *TorneoEquipos            `gorm:"foreignKey:TorneoEquiposID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID            uint                      `gorm:"column:id_equipo;not null" json:"id_equipo"`
	Equipo              *team.Equipo              `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	Fecha               datatypes.Date            `gorm:"column:fecha;not null" json:"fecha"`
	EstadoInscripcionID uint                      `gorm:"column:id_estado_inscripcion;not null" json:"id_estado_inscripcion"`
	EstadoInscripcion   *lookup.EstadoInscripcion `gorm:"foreignKey:EstadoInscripcionID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (InscripcionEquipo) TableName() string { return "inscripcion_equipo" }
