// internal/geo/geo_model.go
package geo

// Provincia is a Spanish province, keyed by its INE code.
type Provincia struct {
	ID        uint   `gorm:"column:id_provincia;primaryKey" json:"id_provincia"`
	Nombre    string `gorm:"column:nombre;size:50;uniqueIndex;not null" json:"nombre"`
	CodigoINE string `gorm:"column:codigo_ine;size:2;uniqueIndex;not null" json:"codigo_ine"`
}

func (Provincia) TableName() string { return "provincia" }
