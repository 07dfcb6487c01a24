// internal/lookup/lookup_model.go
package lookup

// The lookup tables are the reference entities used as foreign-key targets
// for every categorical column in the schema. They all share the same shape
// (surrogate id, nombre, Lifecycle) and the same write-time assessment,
// which lives once in lifecycle.go.

// TipoCalendario enumerates the kinds of calendar entries.
type TipoCalendario struct {
	ID     uint   `gorm:"column:id_tipo_calendario;primaryKey" json:"id_tipo_calendario"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoCalendario) TableName() string { return "tipo_calendario" }

// TipoSexo enumerates the possible sexes.
type TipoSexo struct {
	ID     uint   `gorm:"column:id_tipo_sexo;primaryKey" json:"id_tipo_sexo"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoSexo) TableName() string { return "tipo_sexo" }

// EstadoClase enumerates the possible states of a class.
type EstadoClase struct {
	ID     uint   `gorm:"column:id_estado_clase;primaryKey" json:"id_estado_clase"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (EstadoClase) TableName() string { return "estado_clase" }

// TipoContrato enumerates the possible contract kinds.
type TipoContrato struct {
	ID     uint   `gorm:"column:id_tipo_contrato;primaryKey" json:"id_tipo_contrato"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoContrato) TableName() string { return "tipo_contrato" }

// TipoCurso enumerates the possible course kinds.
type TipoCurso struct {
	ID     uint   `gorm:"column:id_tipo_curso;primaryKey" json:"id_tipo_curso"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoCurso) TableName() string { return "tipo_curso" }

// TipoDependencia enumerates the possible room kinds.
type TipoDependencia struct {
	ID     uint   `gorm:"column:id_tipo_dependencia;primaryKey" json:"id_tipo_dependencia"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoDependencia) TableName() string { return "tipo_dependencia" }

// TipoMensaje enumerates the possible message kinds.
type TipoMensaje struct {
	ID     uint   `gorm:"column:id_tipo_mensaje;primaryKey" json:"id_tipo_mensaje"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoMensaje) TableName() string { return "tipo_mensaje" }

// EstadoEnvio enumerates the possible states of a dispatch.
type EstadoEnvio struct {
	ID     uint   `gorm:"column:id_estado_envio;primaryKey" json:"id_estado_envio"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (EstadoEnvio) TableName() string { return "estado_envio" }

// TipoDiasemanal enumerates the days of the week.
type TipoDiasemanal struct {
	ID     uint   `gorm:"column:id_tipo_diasemanal;primaryKey" json:"id_tipo_diasemanal"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoDiasemanal) TableName() string { return "tipo_diasemanal" }

// EstadoInscripcion enumerates the possible states of an enrollment.
type EstadoInscripcion struct {
	ID     uint   `gorm:"column:id_estado_inscripcion;primaryKey" json:"id_estado_inscripcion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (EstadoInscripcion) TableName() string { return "estado_inscripcion" }

// TipoLateralidad enumerates the possible handedness kinds.
type TipoLateralidad struct {
	ID     uint   `gorm:"column:id_tipo_lateralidad;primaryKey" json:"id_tipo_lateralidad"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoLateralidad) TableName() string { return "tipo_lateralidad" }

// TipoDirectivo enumerates the possible officer positions.
type TipoDirectivo struct {
	ID     uint   `gorm:"column:id_tipo_directivo;primaryKey" json:"id_tipo_directivo"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoDirectivo) TableName() string { return "tipo_directivo" }

// TipoMembresia enumerates the possible membership kinds.
type TipoMembresia struct {
	ID     uint   `gorm:"column:id_tipo_membresia;primaryKey" json:"id_tipo_membresia"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoMembresia) TableName() string { return "tipo_membresia" }

// EstadoPartido enumerates the possible states of a match.
type EstadoPartido struct {
	ID     uint   `gorm:"column:id_estado_partido;primaryKey" json:"id_estado_partido"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (EstadoPartido) TableName() string { return "estado_partido" }

// TipoIdentificacion enumerates the possible identity-document kinds.
type TipoIdentificacion struct {
	ID     uint   `gorm:"column:id_tipo_identificacion;primaryKey" json:"id_tipo_identificacion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoIdentificacion) TableName() string { return "tipo_identificacion" }

// TipoPista enumerates the possible court kinds.
type TipoPista struct {
	ID     uint   `gorm:"column:id_tipo_pista;primaryKey" json:"id_tipo_pista"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoPista) TableName() string { return "tipo_pista" }

// TipoSuelo enumerates the possible court-surface kinds.
type TipoSuelo struct {
	ID     uint   `gorm:"column:id_tipo_suelo;primaryKey" json:"id_tipo_suelo"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoSuelo) TableName() string { return "tipo_suelo" }

// TipoTitulacion enumerates the possible technician qualifications.
type TipoTitulacion struct {
	ID     uint   `gorm:"column:id_tipo_titulacion;primaryKey" json:"id_tipo_titulacion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoTitulacion) TableName() string { return "tipo_titulacion" }

// TipoPosesion enumerates the possible facility-ownership kinds.
type TipoPosesion struct {
	ID     uint   `gorm:"column:id_tipo_posesion;primaryKey" json:"id_tipo_posesion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoPosesion) TableName() string { return "tipo_posesion" }

// TipoCompeticion enumerates the possible competition formats.
type TipoCompeticion struct {
	ID     uint   `gorm:"column:id_tipo_competicion;primaryKey" json:"id_tipo_competicion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoCompeticion) TableName() string { return "tipo_competicion" }

// TipoEmpleo enumerates the possible staff-employment kinds.
type TipoEmpleo struct {
	ID     uint   `gorm:"column:id_tipo_empleo;primaryKey" json:"id_tipo_empleo"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoEmpleo) TableName() string { return "tipo_empleo" }

// TipoCapacitacion enumerates the possible staff certifications.
type TipoCapacitacion struct {
	ID     uint   `gorm:"column:id_tipo_capacitacion;primaryKey" json:"id_tipo_capacitacion"`
	Nombre string `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Lifecycle
}

func (TipoCapacitacion) TableName() string { return "tipo_capacitacion" }
