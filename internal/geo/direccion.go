// internal/geo/direccion.go
package geo

import (
	"github.com/picklefree/picklefree/pkg/phone"
)

// Direccion is the postal-address block shared by Club, Instalacion and
// Persona. Countries are ISO 3166-1 alpha-2 codes; provinces reference the
// provincia table.
type Direccion struct {
	CalleNum     string     `gorm:"column:direccion_calle_num;size:100;not null" json:"direccion_calle_num"`
	Localidad    string     `gorm:"column:direccion_localidad;size:50;not null" json:"direccion_localidad"`
	CodigoPostal string     `gorm:"column:direccion_codigopostal;size:10;not null" json:"direccion_codigopostal"`
	ProvinciaID  uint       `gorm:"column:direccion_provincia;not null" json:"direccion_provincia"`
	Provincia    *Provincia `gorm:"foreignKey:ProvinciaID;constraint:OnDelete:RESTRICT" json:"-"`
	Pais         string     `gorm:"column:direccion_pais;size:2;not null" json:"direccion_pais" binding:"omitempty,iso3166_1_alpha2"`
}

// Telefonos is the three-way phone block shared by Club, Instalacion and
// Persona. Each number is optional but unique per table; whether at least one
// must be present is decided by the owning entity.
type Telefonos struct {
	TelefonoFijo  *string `gorm:"column:telefono_fijo;size:16;uniqueIndex" json:"telefono_fijo,omitempty"`
	TelefonoMovil *string `gorm:"column:telefono_movil;size:16;uniqueIndex" json:"telefono_movil,omitempty"`
	TelefonoOtro  *string `gorm:"column:telefono_otro;size:16;uniqueIndex" json:"telefono_otro,omitempty"`
}

// Normalizar rewrites all present numbers to E.164 (region ES) and fails on
// numbers the phone library cannot validate.
func (t *Telefonos) Normalizar() error {
	for _, campo := range []**string{&t.TelefonoFijo, &t.TelefonoMovil, &t.TelefonoOtro} {
		if *campo == nil || **campo == "" {
			continue
		}
		normalizado, err := phone.Normalize(**campo)
		if err != nil {
			return err
		}
		*campo = &normalizado
	}
	return nil
}
