// internal/team/team_model.go
package team

import (
	"errors"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
)

// Equipo is a squad of N players coached by up to two technicians.
type Equipo struct {
	ID     uint       `gorm:"column:id_equipo;primaryKey" json:"id_equipo"`
	ClubID uint       `gorm:"column:id_club;not null" json:"id_club"`
	Club   *club.Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	Foto             *string         `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre           string          `gorm:"column:nombre;size:50;not null" json:"nombre"`
	TecnicoPrimeroID *uint           `gorm:"column:id_tecnico_primero" json:"id_tecnico_primero,omitempty"`
	TecnicoPrimero   *person.Tecnico `gorm:"foreignKey:TecnicoPrimeroID;constraint:OnDelete:RESTRICT" json:"-"`
	TecnicoSegundoID *uint           `gorm:"column:id_tecnico_segundo" json:"id_tecnico_segundo,omitempty"`
	TecnicoSegundo   *person.Tecnico `gorm:"foreignKey:TecnicoSegundoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Equipo) TableName() string { return "equipo" }

// Membresia links a player to a team (N:M).
type Membresia struct {
	ID              uint                  `gorm:"column:id_membresia;primaryKey" json:"id_membresia"`
	JugadorID       uint                  `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador         *person.Jugador       `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID        uint                  `gorm:"column:id_equipo;not null" json:"id_equipo"`
	Equipo          *Equipo               `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoMembresiaID uint                  `gorm:"column:id_tipo_membresia;not null" json:"id_tipo_membresia"`
	TipoMembresia   *lookup.TipoMembresia `gorm:"foreignKey:TipoMembresiaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Membresia) TableName() string { return "membresia" }

// Etapa links a technician to a team for a coaching spell (N:M).
type Etapa struct {
	ID        uint            `gorm:"column:id_etapa;primaryKey" json:"id_etapa"`
	TecnicoID uint            `gorm:"column:id_tecnico;not null" json:"id_tecnico"`
	Tecnico   *person.Tecnico `gorm:"foreignKey:TecnicoID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID  uint            `gorm:"column:id_equipo;not null" json:"id_equipo"`
	Equipo    *Equipo         `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	// Role actually exercised during the spell, which may differ from the
	// technician's qualification.
	TipoTecnicoEjercidoID *uint           `gorm:"column:id_tipo_tecnico_ejercido" json:"id_tipo_tecnico_ejercido,omitempty"`
	TipoTecnicoEjercido   *person.Tecnico `gorm:"foreignKey:TipoTecnicoEjercidoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Etapa) TableName() string { return "etapa" }

// Pareja is an unordered combination of two distinct players.
type Pareja struct {
	ID     uint       `gorm:"column:id_pareja;primaryKey" json:"id_pareja"`
	ClubID *uint      `gorm:"column:id_club" json:"id_club,omitempty"`
	Club   *club.Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	Foto               *string         `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre             string          `gorm:"column:nombre;size:50;not null" json:"nombre"`
	JugadorIzquierdoID uint            `gorm:"column:id_jugador_izquierdo;not null" json:"id_jugador_izquierdo"`
	JugadorIzquierdo   *person.Jugador `gorm:"foreignKey:JugadorIzquierdoID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorDerechoID   uint            `gorm:"column:id_jugador_derecho;not null" json:"id_jugador_derecho"`
	JugadorDerecho     *person.Jugador `gorm:"foreignKey:JugadorDerechoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (Pareja) TableName() string { return "pareja" }

var (
	// ErrParejaMismoJugador rejects a pair whose two sides are one player.
	ErrParejaMismoJugador = errors.New("los jugadores de una pareja deben ser distintos entre si")
	// ErrParejaDuplicada rejects a pair whose unordered player set already
	// exists in another row.
	ErrParejaDuplicada = errors.New("esta pareja de jugadores ya existe (con sus miembros en cualquier orden)")
)

// BeforeSave rejects self-pairs and duplicate unordered player sets. The
// duplicate check runs inside the write's transaction; the record being
// updated is excluded from its own comparison.
func (p *Pareja) BeforeSave(tx *gorm.DB) error {
	if err := p.Vigencia.BeforeSave(tx); err != nil {
		return err
	}
	if p.JugadorIzquierdoID != 0 && p.JugadorIzquierdoID == p.JugadorDerechoID {
		return ErrParejaMismoJugador
	}

	var repetidas int64
	err := tx.Session(&gorm.Session{NewDB: true}).Model(&Pareja{}).
		Where("id_pareja <> ?", p.ID).
		Where(
			tx.Session(&gorm.Session{NewDB: true}).
				Where("id_jugador_izquierdo = ? AND id_jugador_derecho = ?", p.JugadorIzquierdoID, p.JugadorDerechoID).
				Or("id_jugador_izquierdo = ? AND id_jugador_derecho = ?", p.JugadorDerechoID, p.JugadorIzquierdoID),
		).
		Count(&repetidas).Error
	if err != nil {
		return err
	}
	if repetidas > 0 {
		return ErrParejaDuplicada
	}
	return nil
}
