// internal/booking/booking_model.go
package booking

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/course"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/internal/tournament"
)

// Franja holds the booked slot plus the request/confirmation trail shared
// by every reservation table. Slot uniqueness is declared per table, not
// here, because each table needs its own index name.
type Franja struct {
	FechaSolicitud    time.Time  `gorm:"column:fecha_solicitud;not null" json:"fecha_solicitud"`
	FechaConfirmacion *time.Time `gorm:"column:fecha_confirmacion" json:"fecha_confirmacion,omitempty"`
	FechaCancelacion  *time.Time `gorm:"column:fecha_cancelacion" json:"fecha_cancelacion,omitempty"`
	FechaAsistencia   *time.Time `gorm:"column:fecha_asistencia" json:"fecha_asistencia,omitempty"`
}

// BeforeCreate stamps the request time if the caller left it empty.
func (f *Franja) BeforeCreate(tx *gorm.DB) error {
	if f.FechaSolicitud.IsZero() {
		f.FechaSolicitud = time.Now()
	}
	return nil
}

// ReservaClub books a court on behalf of a club, optionally for one of
// its teams.
type ReservaClub struct {
	ID           uint            `gorm:"column:id_reserva_club;primaryKey" json:"id_reserva_club"`
	ClubID       uint            `gorm:"column:id_club;not null" json:"id_club"`
	Club         *club.Club      `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID     *uint           `gorm:"column:id_equipo" json:"id_equipo,omitempty"`
	Equipo       *team.Equipo    `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID      uint            `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_club_franja" json:"id_pista"`
	Pista        *facility.Pista `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva datatypes.Date  `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_club_franja" json:"fecha_reserva"`
	HoraInicio   datatypes.Time  `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_club_franja" json:"hora_inicio"`
	HoraFin      datatypes.Time  `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_club_franja" json:"hora_fin"`
	Franja
}

func (ReservaClub) TableName() string { return "reserva_club" }

// ReservaCurso books a court for a course session.
type ReservaCurso struct {
	ID           uint            `gorm:"column:id_reserva_curso;primaryKey" json:"id_reserva_curso"`
	CursoID      uint            `gorm:"column:id_curso;not null" json:"id_curso"`
	Curso        *course.Curso   `gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID      uint            `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_curso_franja" json:"id_pista"`
	Pista        *facility.Pista `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva datatypes.Date  `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_curso_franja" json:"fecha_reserva"`
	HoraInicio   datatypes.Time  `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_curso_franja" json:"hora_inicio"`
	HoraFin      datatypes.Time  `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_curso_franja" json:"hora_fin"`
	Franja
}

func (ReservaCurso) TableName() string { return "reserva_curso" }

// ReservaJugador books a court for a single player.
type ReservaJugador struct {
	ID           uint            `gorm:"column:id_reserva_jugador;primaryKey" json:"id_reserva_jugador"`
	JugadorID    uint            `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador      *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID      uint            `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_jugador_franja" json:"id_pista"`
	Pista        *facility.Pista `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva datatypes.Date  `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_jugador_franja" json:"fecha_reserva"`
	HoraInicio   datatypes.Time  `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_jugador_franja" json:"hora_inicio"`
	HoraFin      datatypes.Time  `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_jugador_franja" json:"hora_fin"`
	Franja
}

func (ReservaJugador) TableName() string { return "reserva_jugador" }

// ReservaTorneoIndividual books a court for a singles tournament.
type ReservaTorneoIndividual struct {
	ID                 uint                          `gorm:"column:id_reserva_torneo_individual;primaryKey" json:"id_reserva_torneo_individual"`
	TorneoIndividualID uint                          `gorm:"column:id_torneo_individual;not null" json:"id_torneo_individual"`
	TorneoIndividual   *tournament.TorneoIndividual  `gorm:"foreignKey:TorneoIndividualID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID            uint                          `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_torneo_individual_franja" json:"id_pista"`
	Pista              *facility.Pista               `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva       datatypes.Date                `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_torneo_individual_franja" json:"fecha_reserva"`
	HoraInicio         datatypes.Time                `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_torneo_individual_franja" json:"hora_inicio"`
	HoraFin            datatypes.Time                `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_torneo_individual_franja" json:"hora_fin"`
	Franja
}

func (ReservaTorneoIndividual) TableName() string { return "reserva_torneo_individual" }

// ReservaTorneoDobles books a court for a doubles tournament.
type ReservaTorneoDobles struct {
	ID             uint                      `gorm:"column:id_reserva_torneo_dobles;primaryKey" json:"id_reserva_torneo_dobles"`
	TorneoDoblesID uint                      `gorm:"column:id_torneo_dobles;not null" json:"id_torneo_dobles"`
	TorneoDobles   *tournament.TorneoDobles  `gorm:"foreignKey:TorneoDoblesID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID        uint                      `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_torneo_dobles_franja" json:"id_pista"`
	Pista          *facility.Pista           `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva   datatypes.Date            `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_torneo_dobles_franja" json:"fecha_reserva"`
	HoraInicio     datatypes.Time            `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_torneo_dobles_franja" json:"hora_inicio"`
	HoraFin        datatypes.Time            `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_torneo_dobles_franja" json:"hora_fin"`
	Franja
}

func (ReservaTorneoDobles) TableName() string { return "reserva_torneo_dobles" }

// ReservaTorneoEquipos books a court for a team tournament.
type ReservaTorneoEquipos struct {
	ID              uint                       `gorm:"column:id_reserva_torneo_equipos;primaryKey" json:"id_reserva_torneo_equipos"`
	TorneoEquiposID uint                       `gorm:"column:id_torneo_equipos;not null" json:"id_torneo_equipos"`
	TorneoEquipos   *tournament.TorneoEquipos  `gorm:"foreignKey:TorneoEquiposID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID         uint                       `gorm:"column:id_pista;not null;uniqueIndex:uq_reserva_torneo_equipos_franja" json:"id_pista"`
	Pista           *facility.Pista            `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaReserva    datatypes.Date             `gorm:"column:fecha_reserva;not null;uniqueIndex:uq_reserva_torneo_equipos_franja" json:"fecha_reserva"`
	HoraInicio      datatypes.Time             `gorm:"column:hora_inicio;not null;uniqueIndex:uq_reserva_torneo_equipos_franja" json:"hora_inicio"`
	HoraFin         datatypes.Time             `gorm:"column:hora_fin;not null;uniqueIndex:uq_reserva_torneo_equipos_franja" json:"hora_fin"`
	Franja
}

func (ReservaTorneoEquipos) TableName() string { return "reserva_torneo_equipos" }
