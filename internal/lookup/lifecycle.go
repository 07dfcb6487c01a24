// internal/lookup/lifecycle.go
package lookup

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/picklefree/picklefree/internal/models"
)

// Lifecycle is the lifecycle block shared by every lookup table. Unlike the
// plain Vigencia fragment it carries the write-time assessment rule, applied
// uniformly through one promoted GORM hook instead of per-type code.
type Lifecycle struct {
	models.Vigencia
}

// BeforeSave runs the shared assessment on every write of a lookup record.
func (l *Lifecycle) BeforeSave(tx *gorm.DB) error {
	if err := l.Vigencia.BeforeSave(tx); err != nil {
		return err
	}
	return l.Assess(tx.Statement.Table, time.Now())
}

// Assess applies the lookup lifecycle rule:
//
//  1. a record flagged active with ANY deactivation date set (past, present
//     or future) is rejected outright;
//  2. otherwise, a deactivation date strictly before today forces the active
//     flag off;
//  3. otherwise the record is persisted as given.
//
// Rule 1 makes "active with a scheduled future deactivation" unrepresentable,
// which arguably conflicts with rule 2; the behavior is kept as-is pending a
// product decision.
func (l *Lifecycle) Assess(tabla string, now time.Time) error {
	if l.FechaBaja != nil && l.Activo {
		return fmt.Errorf("%s: activo y con fecha de baja", tabla)
	}
	if l.FechaBaja != nil {
		y, m, d := now.Date()
		hoy := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if time.Time(*l.FechaBaja).Before(hoy) {
			l.Activo = false
		}
	}
	return nil
}
