// internal/survey/survey_model.go

// Package survey is the questionnaire plugin. It owns its own schema
// (the djf_surveys_* tables) and is registered in the admin as a
// dependent app with Spanish labels.
package survey

import (
	"time"

	"github.com/picklefree/picklefree/internal/auth"
)

// Encuesta is a questionnaire definition.
type Encuesta struct {
	ID               uint      `gorm:"column:id;primaryKey" json:"id"`
	Nombre           string    `gorm:"column:name;size:200;not null" json:"name"`
	Descripcion      string    `gorm:"column:description;type:text" json:"description"`
	Slug             string    `gorm:"column:slug;size:225;uniqueIndex" json:"slug"`
	Editable         bool      `gorm:"column:editable;not null;default:true" json:"editable"`
	Borrable         bool      `gorm:"column:deletable;not null;default:true" json:"deletable"`
	EntradaDuplicada bool      `gorm:"column:duplicate_entry;not null;default:false" json:"duplicate_entry"`
	RespuestaPrivada bool      `gorm:"column:private_response;not null;default:false" json:"private_response"`
	PermiteAnonimos  bool      `gorm:"column:can_anonymous_user;not null;default:false" json:"can_anonymous_user"`
	CreadaEn         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ActualizadaEn    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Encuesta) TableName() string { return "djf_surveys_survey" }

// Pregunta is one question within a questionnaire. TipoCampo selects
// the widget (text, number, radio, select, multi select, date, rating).
type Pregunta struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	EncuestaID  uint      `gorm:"column:survey_id;not null" json:"survey_id"`
	Encuesta    *Encuesta `gorm:"foreignKey:EncuestaID;constraint:OnDelete:RESTRICT" json:"-"`
	TipoCampo   int       `gorm:"column:type_field;not null" json:"type_field"`
	Etiqueta    string    `gorm:"column:label;size:500;not null" json:"label"`
	Clave       string    `gorm:"column:key;size:225" json:"key"`
	Opciones    string    `gorm:"column:choices;type:text" json:"choices"`
	Ayuda       string    `gorm:"column:help_text;size:200" json:"help_text"`
	Obligatoria bool      `gorm:"column:required;not null;default:true" json:"required"`
	Orden       int       `gorm:"column:ordering;not null;default:0" json:"ordering"`
}

func (Pregunta) TableName() string { return "djf_surveys_question" }

// EncuestaRespondida is one account's submission of a questionnaire.
type EncuestaRespondida struct {
	ID            uint         `gorm:"column:id;primaryKey" json:"id"`
	EncuestaID    uint         `gorm:"column:survey_id;not null" json:"survey_id"`
	Encuesta      *Encuesta    `gorm:"foreignKey:EncuestaID;constraint:OnDelete:RESTRICT" json:"-"`
	UsuarioID     *uint        `gorm:"column:user_id" json:"user_id,omitempty"`
	Usuario       *auth.Cuenta `gorm:"foreignKey:UsuarioID;constraint:OnDelete:RESTRICT" json:"-"`
	CreadaEn      time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ActualizadaEn time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EncuestaRespondida) TableName() string { return "djf_surveys_useranswer" }

// Respuesta is the value given to one question within a submission.
type Respuesta struct {
	ID           uint                `gorm:"column:id;primaryKey" json:"id"`
	PreguntaID   uint                `gorm:"column:question_id;not null" json:"question_id"`
	Pregunta     *Pregunta           `gorm:"foreignKey:PreguntaID;constraint:OnDelete:RESTRICT" json:"-"`
	RespondidaID uint                `gorm:"column:user_answer_id;not null" json:"user_answer_id"`
	Respondida   *EncuestaRespondida `gorm:"foreignKey:RespondidaID;constraint:OnDelete:RESTRICT" json:"-"`
	Valor        string              `gorm:"column:value;type:text" json:"value"`
}

func (Respuesta) TableName() string { return "djf_surveys_answer" }
