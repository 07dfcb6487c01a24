// internal/messaging/messaging_model.go
package messaging

import (
	"time"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/course"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/internal/tournament"
)

// Mensaje is a message authored by a club. Recipients live in the
// Destinatario* tables; actual deliveries are Envio rows. When
// AplicacionFutura is set the message also reaches members who join a
// targeted group later.
type Mensaje struct {
	ID            uint               `gorm:"column:id_mensaje;primaryKey" json:"id_mensaje"`
	RemitenteID   uint               `gorm:"column:id_remitente;not null" json:"id_remitente"`
	Remitente     *club.Club         `gorm:"foreignKey:RemitenteID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	TipoMensajeID uint               `gorm:"column:id_tipo_mensaje;not null" json:"id_tipo_mensaje"`
	TipoMensaje   *lookup.TipoMensaje `gorm:"foreignKey:TipoMensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	Asunto        string             `gorm:"column:asunto;size:100;not null" json:"asunto"`
	Cuerpo        *string            `gorm:"column:cuerpo;type:text" json:"cuerpo,omitempty"`
	FechaHora     time.Time          `gorm:"column:fecha_hora;not null" json:"fecha_hora"`
	AplicacionFutura bool            `gorm:"column:aplicacion_futura;not null" json:"aplicacion_futura"`
}

func (Mensaje) TableName() string { return "mensaje" }

// BeforeCreate issues the token and stamps the authoring time.
func (m *Mensaje) BeforeCreate(tx *gorm.DB) error {
	if err := m.QRToken.BeforeCreate(tx); err != nil {
		return err
	}
	if m.FechaHora.IsZero() {
		m.FechaHora = time.Now()
	}
	return nil
}

// TipoOverride is the optional per-recipient message type. When set it
// wins over the Mensaje type at dispatch.
type TipoOverride struct {
	TipoMensajeID *uint               `gorm:"column:id_tipo_mensaje" json:"id_tipo_mensaje,omitempty"`
	TipoMensaje   *lookup.TipoMensaje `gorm:"foreignKey:TipoMensajeID;constraint:OnDelete:RESTRICT" json:"-"`
}

// One Destinatario table per addressable entity kind.

type DestinatarioClub struct {
	ID        uint       `gorm:"column:id_destinatario_club;primaryKey" json:"id_destinatario_club"`
	MensajeID uint       `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje   `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	ClubID    uint       `gorm:"column:id_club;not null" json:"id_club"`
	Club      *club.Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioClub) TableName() string { return "destinatario_club" }

type DestinatarioCurso struct {
	ID        uint          `gorm:"column:id_destinatario_curso;primaryKey" json:"id_destinatario_curso"`
	MensajeID uint          `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje      `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	CursoID   uint          `gorm:"column:id_curso;not null" json:"id_curso"`
	Curso     *course.Curso `gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioCurso) TableName() string { return "destinatario_curso" }

type DestinatarioDirectivo struct {
	ID          uint              `gorm:"column:id_destinatario_directivo;primaryKey" json:"id_destinatario_directivo"`
	MensajeID   uint              `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje     *Mensaje          `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	DirectivoID uint              `gorm:"column:id_directivo;not null" json:"id_directivo"`
	Directivo   *person.Directivo `gorm:"foreignKey:DirectivoID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioDirectivo) TableName() string { return "destinatario_directivo" }

type DestinatarioEquipo struct {
	ID        uint         `gorm:"column:id_destinatario_equipo;primaryKey" json:"id_destinatario_equipo"`
	MensajeID uint         `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje     `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID  uint         `gorm:"column:id_equipo;not null" json:"id_equipo"`
	Equipo    *team.Equipo `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioEquipo) TableName() string { return "destinatario_equipo" }

type DestinatarioInstalacion struct {
	ID            uint                  `gorm:"column:id_destinatario_instalacion;primaryKey" json:"id_destinatario_instalacion"`
	MensajeID     uint                  `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje       *Mensaje              `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID uint                  `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion   *facility.Instalacion `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioInstalacion) TableName() string { return "destinatario_instalacion" }

type DestinatarioJugador struct {
	ID        uint            `gorm:"column:id_destinatario_jugador;primaryKey" json:"id_destinatario_jugador"`
	MensajeID uint            `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje        `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorID uint            `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador   *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioJugador) TableName() string { return "destinatario_jugador" }

type DestinatarioOperario struct {
	ID         uint             `gorm:"column:id_destinatario_operario;primaryKey" json:"id_destinatario_operario"`
	MensajeID  uint             `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje    *Mensaje         `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	OperarioID uint             `gorm:"column:id_operario;not null" json:"id_operario"`
	Operario   *person.Operario `gorm:"foreignKey:OperarioID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioOperario) TableName() string { return "destinatario_operario" }

type DestinatarioPareja struct {
	ID        uint         `gorm:"column:id_destinatario_pareja;primaryKey" json:"id_destinatario_pareja"`
	MensajeID uint         `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje     `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	ParejaID  uint         `gorm:"column:id_pareja;not null" json:"id_pareja"`
	Pareja    *team.Pareja `gorm:"foreignKey:ParejaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioPareja) TableName() string { return "destinatario_pareja" }

type DestinatarioPista struct {
	ID        uint            `gorm:"column:id_destinatario_pista;primaryKey" json:"id_destinatario_pista"`
	MensajeID uint            `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje        `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID   uint            `gorm:"column:id_pista;not null" json:"id_pista"`
	Pista     *facility.Pista `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioPista) TableName() string { return "destinatario_pista" }

type DestinatarioTecnico struct {
	ID        uint            `gorm:"column:id_destinatario_tecnico;primaryKey" json:"id_destinatario_tecnico"`
	MensajeID uint            `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje   *Mensaje        `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	TecnicoID uint            `gorm:"column:id_tecnico;not null" json:"id_tecnico"`
	Tecnico   *person.Tecnico `gorm:"foreignKey:TecnicoID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioTecnico) TableName() string { return "destinatario_tecnico" }

type DestinatarioTorneoDobles struct {
	ID             uint                     `gorm:"column:id_destinatario_torneo_dobles;primaryKey" json:"id_destinatario_torneo_dobles"`
	MensajeID      uint                     `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje        *Mensaje                 `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoDoblesID uint                     `gorm:"column:id_torneo_dobles;not null" json:"id_torneo_dobles"`
	TorneoDobles   *tournament.TorneoDobles `gorm:"foreignKey:TorneoDoblesID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioTorneoDobles) TableName() string { return "destinatario_torneo_dobles" }

type DestinatarioTorneoEquipos struct {
	ID              uint                      `gorm:"column:id_destinatario_torneo_equipos;primaryKey" json:"id_destinatario_torneo_equipos"`
	MensajeID       uint                      `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje         *Mensaje                  `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoEquiposID uint                      `gorm:"column:id_torneo_equipos;not null" json:"id_torneo_equipos"`
	TorneoEquipos   *tournament.TorneoEquipos `gorm:"foreignKey:TorneoEquiposID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioTorneoEquipos) TableName() string { return "destinatario_torneo_equipos" }

type DestinatarioTorneoIndividual struct {
	ID                 uint                         `gorm:"column:id_destinatario_torneo_individual;primaryKey" json:"id_destinatario_torneo_individual"`
	MensajeID          uint                         `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje            *Mensaje                     `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	TorneoIndividualID uint                         `gorm:"column:id_torneo_individual;not null" json:"id_torneo_individual"`
	TorneoIndividual   *tournament.TorneoIndividual `gorm:"foreignKey:TorneoIndividualID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoOverride
}

func (DestinatarioTorneoIndividual) TableName() string { return "destinatario_torneo_individual" }

// Envio is one delivery of a message to one concrete address. It keeps
// the sender and recipient addresses actually used and the message type
// finally applied, so it stays meaningful even if the catalogue rows
// change later.
type Envio struct {
	ID            uint                `gorm:"column:id_envio;primaryKey" json:"id_envio"`
	MensajeID     uint                `gorm:"column:id_mensaje;not null" json:"id_mensaje"`
	Mensaje       *Mensaje            `gorm:"foreignKey:MensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	Remitente     string              `gorm:"column:remitente;size:254;not null" json:"remitente"`
	Destinatario  string              `gorm:"column:destinatario;size:254;not null" json:"destinatario"`
	TipoMensajeID uint                `gorm:"column:id_tipo_mensaje;not null" json:"id_tipo_mensaje"`
	TipoMensaje   *lookup.TipoMensaje `gorm:"foreignKey:TipoMensajeID;constraint:OnDelete:RESTRICT" json:"-"`
	EstadoEnvioID uint                `gorm:"column:id_estado_envio;not null" json:"id_estado_envio"`
	EstadoEnvio   *lookup.EstadoEnvio `gorm:"foreignKey:EstadoEnvioID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaHora     time.Time           `gorm:"column:fecha_hora;not null" json:"fecha_hora"`
}

func (Envio) TableName() string { return "envio" }

// BeforeCreate issues the token and stamps the delivery creation time.
func (e *Envio) BeforeCreate(tx *gorm.DB) error {
	if err := e.QRToken.BeforeCreate(tx); err != nil {
		return err
	}
	if e.FechaHora.IsZero() {
		e.FechaHora = time.Now()
	}
	return nil
}
