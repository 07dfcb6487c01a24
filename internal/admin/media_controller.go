// internal/admin/media_controller.go
package admin

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/picklefree/picklefree/pkg/responses"
	"github.com/picklefree/picklefree/pkg/upload"
)

// MediaController stores uploaded blobs (fotos, planos, curriculums)
// under the media directory. The returned relative path is what gets
// written into the owning entity's foto, plano or curriculum field.
type MediaController struct {
	mediaDir string
}

func NewMediaController(mediaDir string) *MediaController {
	return &MediaController{mediaDir: mediaDir}
}

var kindsConocidos = map[upload.Kind]bool{
	upload.FotoClub:             true,
	upload.FotoCurso:            true,
	upload.FotoDependencia:      true,
	upload.FotoEquipo:           true,
	upload.FotoInstalacion:      true,
	upload.FotoMaterial:         true,
	upload.FotoPareja:           true,
	upload.FotoPersona:          true,
	upload.FotoPista:            true,
	upload.FotoTorneoDobles:     true,
	upload.FotoTorneoEquipos:    true,
	upload.FotoTorneoIndividual: true,
	upload.PlanoInstalacion:     true,
	upload.CurriculumDirectivo:  true,
}

// Upload godoc
// @Summary      Subir un fichero de medios
// @Description  Guarda el fichero bajo el prefijo del tipo indicado con un nombre aleatorio.
// @Tags         Admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  path      string  true  "Tipo de medio (fotos_clubes, planos_instalaciones, ...)"
// @Param        file  formData  file    true  "Fichero"
// @Success      201   {object}  responses.SuccessResponse
// @Failure      400   {object}  responses.ErrorResponse
// @Router       /admin/media/{kind} [post]
func (mc *MediaController) Upload(c *gin.Context) {
	kind := upload.Kind(c.Param("kind"))
	if !kindsConocidos[kind] {
		responses.BadRequest(c, "Tipo de medio desconocido: "+string(kind))
		return
	}

	fichero, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "Falta el fichero: "+err.Error())
		return
	}

	destino, err := upload.StoragePath(kind, fichero.Filename)
	if err != nil {
		if errors.Is(err, upload.ErrExtension) {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	if err := c.SaveUploadedFile(fichero, filepath.Join(mc.mediaDir, destino)); err != nil {
		responses.InternalServerError(c, "No se pudo guardar el fichero: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Fichero guardado", gin.H{"path": destino})
}
