// internal/admin/comments.go
package admin

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AplicarComentariosDeTabla writes each registry comment onto its table
// with COMMENT ON TABLE. Only Postgres understands the statement, so
// other dialects (the sqlite test driver) are skipped.
func AplicarComentariosDeTabla(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		logrus.WithField("dialect", db.Dialector.Name()).Debug("skipping table comments")
		return nil
	}
	for i := range Registry {
		reg := &Registry[i]
		if reg.Comment == "" {
			continue
		}
		comentario := strings.ReplaceAll(reg.Comment, "'", "''")
		sentencia := fmt.Sprintf("COMMENT ON TABLE %s IS '%s'", reg.Table, comentario)
		if err := db.Exec(sentencia).Error; err != nil {
			return fmt.Errorf("comentario de tabla %s: %w", reg.Table, err)
		}
	}
	return nil
}
