// internal/admin/permission.go
package admin

import (
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/auth"
)

// Actions a permission row can grant.
const (
	AccionVer     = "view"
	AccionCrear   = "add"
	AccionCambiar = "change"
	AccionBorrar  = "delete"
)

// ObjetoComodin grants the action on every object of the entity.
const ObjetoComodin = 0

// Permiso grants one account one action on one entity, either on a
// single object or on all of them (ObjetoID zero). Superusers bypass
// permission checks entirely.
type Permiso struct {
	ID       uint         `gorm:"column:id;primaryKey" json:"id"`
	CuentaID uint         `gorm:"column:id_cuenta;not null;uniqueIndex:uq_permiso" json:"id_cuenta"`
	Cuenta   *auth.Cuenta `gorm:"foreignKey:CuentaID;constraint:OnDelete:RESTRICT" json:"-"`
	Entidad  string       `gorm:"column:entidad;size:50;not null;uniqueIndex:uq_permiso" json:"entidad"`
	ObjetoID uint         `gorm:"column:id_objeto;not null;default:0;uniqueIndex:uq_permiso" json:"id_objeto"`
	Accion   string       `gorm:"column:accion;size:10;not null;uniqueIndex:uq_permiso" json:"accion"`
}

func (Permiso) TableName() string { return "permiso" }

// Autorizado reports whether the account may perform the action on the
// given object of the entity. A wildcard row (object id zero) covers
// every object.
func Autorizado(db *gorm.DB, cuentaID uint, entidad string, objetoID uint, accion string) (bool, error) {
	var n int64
	err := db.Model(&Permiso{}).
		Where("id_cuenta = ? AND entidad = ? AND accion = ?", cuentaID, entidad, accion).
		Where("id_objeto IN ?", []uint{ObjetoComodin, objetoID}).
		Count(&n).Error
	return n > 0, err
}
