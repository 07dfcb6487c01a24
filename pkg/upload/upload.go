// pkg/upload/upload.go
package upload

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind selects the storage prefix and extension policy for an upload.
type Kind string

const (
	FotoClub             Kind = "fotos_clubes"
	FotoCurso            Kind = "fotos_cursos"
	FotoDependencia      Kind = "fotos_dependencias"
	FotoEquipo           Kind = "fotos_equipos"
	FotoInstalacion      Kind = "fotos_instalaciones"
	FotoMaterial         Kind = "fotos_materiales"
	FotoPareja           Kind = "fotos_parejas"
	FotoPersona          Kind = "fotos_personas"
	FotoPista            Kind = "fotos_pistas"
	FotoTorneoDobles     Kind = "fotos_torneos_dobles"
	FotoTorneoEquipos    Kind = "fotos_torneos_equipos"
	FotoTorneoIndividual Kind = "fotos_torneos_individuales"
	PlanoInstalacion     Kind = "planos_instalaciones"
	CurriculumDirectivo  Kind = "curriculums_directivos"
)

var (
	extensionsPlano      = []string{"pdf", "svg", "png", "dwg", "dxf"}
	extensionsCurriculum = []string{"pdf", "docx", "doc", "odt"}
	extensionsFoto       = []string{"jpg", "jpeg", "png", "gif", "webp"}
)

// ErrExtension is wrapped by every extension rejection.
var ErrExtension = errors.New("extension de fichero no permitida")

func allowedExtensions(kind Kind) []string {
	switch kind {
	case PlanoInstalacion:
		return extensionsPlano
	case CurriculumDirectivo:
		return extensionsCurriculum
	default:
		return extensionsFoto
	}
}

// ValidateFilename checks the file extension against the allow-list of the
// given kind. Matching is case-insensitive.
func ValidateFilename(kind Kind, filename string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range allowedExtensions(kind) {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (se admiten %s)", ErrExtension, filename,
		strings.Join(allowedExtensions(kind), ", "))
}

// StoragePath validates the original filename and returns the relative path
// under which the blob is stored: <prefix>/<uuid>.<ext>. The random name
// avoids collisions and leaks nothing about the uploader.
func StoragePath(kind Kind, originalFilename string) (string, error) {
	if err := ValidateFilename(kind, originalFilename); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return path.Join(string(kind), uuid.NewString()+ext), nil
}
