// internal/ranking/ranking_model.go
package ranking

import (
	"gorm.io/datatypes"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/internal/tournament"
)

// Marcador holds the per-snapshot standing counters shared by all
// ranking tables.
type Marcador struct {
	Victorias int `gorm:"column:victorias;not null" json:"victorias"`
	Empates   int `gorm:"column:empates;not null" json:"empates"`
	Derrotas  int `gorm:"column:derrotas;not null" json:"derrotas"`
	Puntos    int `gorm:"column:puntos;not null" json:"puntos"`
	Posicion  int `gorm:"column:posicion;not null" json:"posicion"`
}

// RankingJugadorClub is a dated snapshot of a player's standing within
// a club. One snapshot per player, club and date.
type RankingJugadorClub struct {
	ID        uint            `gorm:"column:id_ranking_jugador_club;primaryKey" json:"id_ranking_jugador_club"`
	JugadorID uint            `gorm:"column:id_jugador;not null;uniqueIndex:uq_ranking_jugador_club" json:"id_jugador"`
	Jugador   *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID    uint            `gorm:"column:id_club;not null;uniqueIndex:uq_ranking_jugador_club" json:"id_club"`
	Club      *club.Club      `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	Marcador
	Fecha     datatypes.Date  `gorm:"column:fecha;not null;uniqueIndex:uq_ranking_jugador_club" json:"fecha"`
}

func (RankingJugadorClub) TableName() string { return "ranking_jugador_club" }

// RankingJugadorTorneo is a player's standing after a round of a
// singles tournament. One row per player, tournament and round.
type RankingJugadorTorneo struct {
	ID                 uint                         `gorm:"column:id_ranking_jugador_torneo;primaryKey" json:"id_ranking_jugador_torneo"`
	JugadorID          uint                         `gorm:"column:id_jugador;not null;uniqueIndex:uq_ranking_jugador_torneo" json:"id_jugador"`
	Jugador            *person.Jugador              `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoIndividualID uint                         `gorm:"column:id_torneo_individual;not null;uniqueIndex:uq_ranking_jugador_torneo" json:"id_torneo_individual"`
	TorneoIndividual   *tournament.TorneoIndividual `gorm:"foreignKey:TorneoIndividualID;constraint:OnDelete:RESTRICT" json:"-"`
	RondaOJornada      int                          `gorm:"column:ronda_o_jornada;not null;uniqueIndex:uq_ranking_jugador_torneo" json:"ronda_o_jornada"`
	Marcador
	Fecha              datatypes.Date               `gorm:"column:fecha;not null" json:"fecha"`
}

func (RankingJugadorTorneo) TableName() string { return "ranking_jugador_torneo" }

// RankingParejaClub is a dated snapshot of a pair's standing within a
// club.
type RankingParejaClub struct {
	ID       uint           `gorm:"column:id_ranking_pareja_club;primaryKey" json:"id_ranking_pareja_club"`
	ParejaID uint           `gorm:"column:id_pareja;not null;uniqueIndex:uq_ranking_pareja_club" json:"id_pareja"`
	Pareja   *team.Pareja   `gorm:"foreignKey:ParejaID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID   uint           `gorm:"column:id_club;not null;uniqueIndex:uq_ranking_pareja_club" json:"id_club"`
	Club     *club.Club     `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	Marcador
	Fecha    datatypes.Date `gorm:"column:fecha;not null;uniqueIndex:uq_ranking_pareja_club" json:"fecha"`
}

func (RankingParejaClub) TableName() string { return "ranking_pareja_club" }

// RankingParejaTorneo is a pair's standing after a round of a doubles
// tournament.
type RankingParejaTorneo struct {
	ID             uint                     `gorm:"column:id_ranking_pareja_torneo;primaryKey" json:"id_ranking_pareja_torneo"`
	ParejaID       uint                     `gorm:"column:id_pareja;not null;uniqueIndex:uq_ranking_pareja_torneo" json:"id_pareja"`
	Pareja         *team.Pareja             `gorm:"foreignKey:ParejaID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoDoblesID uint                     `gorm:"column:id_torneo_dobles;not null;uniqueIndex:uq_ranking_pareja_torneo" json:"id_torneo_dobles"`
	TorneoDobles   *tournament.TorneoDobles `gorm:"foreignKey:TorneoDoblesID;constraint:OnDelete:RESTRICT" json:"-"`
	RondaOJornada  int                      `gorm:"column:ronda_o_jornada;not null;uniqueIndex:uq_ranking_pareja_torneo" json:"ronda_o_jornada"`
	Marcador
	Fecha          datatypes.Date           `gorm:"column:fecha;not null" json:"fecha"`
}

func (RankingParejaTorneo) TableName() string { return "ranking_pareja_torneo" }

// Rating is a dated WPR rating sample for a player. One sample per
// player and date.
type Rating struct {
	ID               uint            `gorm:"column:id_rating;primaryKey" json:"id_rating"`
	JugadorID        uint            `gorm:"column:id_jugador;not null;uniqueIndex:uq_rating_jugador_fecha" json:"id_jugador"`
	Jugador          *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	WprPuntuacion    float64         `gorm:"column:wpr_puntuacion;type:numeric(4,2);not null" json:"wpr_puntuacion"`
	WprIncertidumbre int             `gorm:"column:wpr_incertidumbre;not null" json:"wpr_incertidumbre"`
	Fecha            datatypes.Date  `gorm:"column:fecha;not null;uniqueIndex:uq_rating_jugador_fecha" json:"fecha"`
}

func (Rating) TableName() string { return "rating" }
