// internal/category/category_model.go
package category

import (
	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/models"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/team"
)

// Categoria groups players, pairs and teams by age, sex and rating
// conditions. A row with no club is a global category.
type Categoria struct {
	ID          uint             `gorm:"column:id_categoria;primaryKey" json:"id_categoria"`
	ClubID      *uint            `gorm:"column:id_club" json:"id_club,omitempty"`
	Club        *club.Club       `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT" json:"-"`
	Nombre      string           `gorm:"column:nombre;size:50;not null" json:"nombre"`
	MinEdad     *int             `gorm:"column:condicion_minedad" json:"condicion_minedad,omitempty"`
	MaxEdad     *int             `gorm:"column:condicion_maxedad" json:"condicion_maxedad,omitempty"`
	TipoSexoID  *uint            `gorm:"column:id_tipo_sexo" json:"id_tipo_sexo,omitempty"`
	TipoSexo    *lookup.TipoSexo `gorm:"foreignKey:TipoSexoID;constraint:OnDelete:RESTRICT" json:"-"`
	MinRating   *float64         `gorm:"column:condicion_minrating;type:numeric(4,2)" json:"condicion_minrating,omitempty"`
	MaxRating   *float64         `gorm:"column:condicion_maxrating;type:numeric(4,2)" json:"condicion_maxrating,omitempty"`
	models.Vigencia
}

func (Categoria) TableName() string { return "categoria" }

// CategoriaEquipo links a category to a team (N:M).
type CategoriaEquipo struct {
	ID          uint         `gorm:"column:id_categoria_equipo;primaryKey" json:"id_categoria_equipo"`
	CategoriaID uint         `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Categoria   *Categoria   `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT" json:"-"`
	EquipoID    uint         `gorm:"column:id_equipo;not null" json:"id_equipo"`
	Equipo      *team.Equipo `gorm:"foreignKey:EquipoID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (CategoriaEquipo) TableName() string { return "categoria_equipo" }

// CategoriaJugador links a category to a player (N:M).
type CategoriaJugador struct {
	ID          uint            `gorm:"column:id_categoria_jugador;primaryKey" json:"id_categoria_jugador"`
	CategoriaID uint            `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Categoria   *Categoria      `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT" json:"-"`
	JugadorID   uint            `gorm:"column:id_jugador;not null" json:"id_jugador"`
	Jugador     *person.Jugador `gorm:"foreignKey:JugadorID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (CategoriaJugador) TableName() string { return "categoria_jugador" }

// CategoriaPareja links a category to a pair (N:M).
type CategoriaPareja struct {
	ID          uint         `gorm:"column:id_categoria_pareja;primaryKey" json:"id_categoria_pareja"`
	CategoriaID uint         `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Categoria   *Categoria   `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT" json:"-"`
	ParejaID    uint         `gorm:"column:id_pareja;not null" json:"id_pareja"`
	Pareja      *team.Pareja `gorm:"foreignKey:ParejaID;constraint:OnDelete:RESTRICT" json:"-"`
	models.Vigencia
}

func (CategoriaPareja) TableName() string { return "categoria_pareja" }
