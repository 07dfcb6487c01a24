// internal/course/course_model.go
package course

import (
	"time"

	"gorm.io/datatypes"

	"github.com/picklefree/picklefree/internal/category"
	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
)

// Curso is a course run by a club at a facility. A course has its own
// calendar windows (course dates and enrollment dates) and capacity
// bounds. Unlike most catalogue entities it carries no lifecycle block:
// the course dates themselves bound its validity.
type Curso struct {
	ID              uint                  `gorm:"column:id_curso;primaryKey" json:"id_curso"`
	ClubID          uint                  `gorm:"column:id_club;not null" json:"id_club"`
	Club            *club.Club            `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	ProfesorID      uint                  `gorm:"column:id_profesor;not null" json:"id_profesor"`
	Profesor        *person.Tecnico       `gorm:"foreignKey:ProfesorID;constraint:OnDelete:RESTRICT" json:"-"`
	InstalacionID   uint                  `gorm:"column:id_instalacion;not null" json:"id_instalacion"`
	Instalacion     *facility.Instalacion `gorm:"foreignKey:InstalacionID;constraint:OnDelete:RESTRICT" json:"-"`
	CategoriaID     uint                  `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Categoria       *category.Categoria   `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.QRToken
	Foto            *string               `gorm:"column:foto;size:254" json:"foto,omitempty"`
	Nombre          string                `gorm:"column:nombre;size:150;not null" json:"nombre"`
	TipoCursoID     uint                  `gorm:"column:id_tipo_curso;not null" json:"id_tipo_curso"`
	TipoCurso       *lookup.TipoCurso     `gorm:"foreignKey:TipoCursoID;constraint:OnDelete:RESTRICT" json:"-"`
	CursoInicio     datatypes.Date        `gorm:"column:curso_inicio;not null" json:"curso_inicio"`
	CursoFin        datatypes.Date        `gorm:"column:curso_fin;not null" json:"curso_fin"`
	MatriculaInicio datatypes.Date        `gorm:"column:matricula_inicio;not null" json:"matricula_inicio"`
	MatriculaFin    datatypes.Date        `gorm:"column:matricula_fin;not null" json:"matricula_fin"`
	AforoMinimo     int                   `gorm:"column:aforo_minimo;not null" json:"aforo_minimo"`
	AforoMaximo     int                   `gorm:"column:aforo_maximo;not null" json:"aforo_maximo"`
	Comentarios     *string               `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

func (Curso) TableName() string { return "curso" }

// MatriculaJugador enrolls a player in a course. The player reference
// is nullable so an enrollment can be reserved before the player record
// exists.
type MatriculaJugador struct {
	ID        uint            `gorm:"column:id_matricula_jugador;primaryKey" json:"id_matricula_jugador"`
	CursoID   uint            `gorm:"column:id_curso;not null" json:"id_curso"`
	Curso     *Curso          `gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorID *uint           `gorm:"column:id_jugador" json:"id_jugador,omitempty"`
	Jugador   *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (MatriculaJugador) TableName() string { return "matricula_jugador" }

// ClaseJugador records an enrolled player's attendance at one class.
// FechaHora is the player's arrival time, nil while not yet arrived.
type ClaseJugador struct {
	ID          uint            `gorm:"column:id_clase_jugador;primaryKey" json:"id_clase_jugador"`
	JugadorID   uint            `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador     *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	PistaID     uint            `gorm:"column:id_pista;not null" json:"id_pista"`
	Pista       *facility.Pista `gorm:"foreignKey:PistaID;constraint:OnDelete:RESTRICT" json:"-"`
	CursoID     uint            `gorm:"column:id_curso;not null" json:"id_curso"`
	Curso       *Curso          `gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaHora   *time.Time      `gorm:"column:fecha_hora" json:"fecha_hora,omitempty"`
	Comentarios *string         `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

func (ClaseJugador) TableName() string { return "clase_jugador" }

// ClaseProfesor records a teacher giving one class within a course,
// with the class state (impartida, suspendida, ...).
type ClaseProfesor struct {
	ID            uint                `gorm:"column:id_clase_profesor;primaryKey" json:"id_clase_profesor"`
	ProfesorID    uint                `gorm:"column:id_profesor;not null" json:"id_profesor"`
	Profesor      *person.Tecnico     `gorm:"foreignKey:ProfesorID;constraint:OnDelete:RESTRICT" json:"-"`
	CursoID       uint                `gorm:"column:id_curso;not null" json:"id_curso"`
	Curso         *Curso              `gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT" json:"-"`
	EstadoClaseID uint                `gorm:"column:id_estado_clase;not null" json:"id_estado_clase"`
	EstadoClase   *lookup.EstadoClase `gorm:"foreignKey:EstadoClaseID;constraint:OnDelete:RESTRICT" json:"-"`
	FechaHora     *time.Time          `gorm:"column:fecha_hora" json:"fecha_hora,omitempty"`
	Comentarios   *string             `gorm:"column:comentarios;type:text" json:"comentarios,omitempty"`
}

func (ClaseProfesor) TableName() string { return "clase_profesor" }
