package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFilename_PlanoAllowList(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"plano.pdf", "plano.svg", "plano.png", "plano.dwg", "plano.DXF"} {
		require.NoError(t, ValidateFilename(PlanoInstalacion, name), name)
	}
	for _, name := range []string{"plano.docx", "plano.jpg", "plano", "plano.exe"} {
		err := ValidateFilename(PlanoInstalacion, name)
		require.ErrorIs(t, err, ErrExtension, name)
	}
}

func TestValidateFilename_CurriculumAllowList(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cv.pdf", "cv.docx", "cv.doc", "cv.ODT"} {
		require.NoError(t, ValidateFilename(CurriculumDirectivo, name), name)
	}
	require.ErrorIs(t, ValidateFilename(CurriculumDirectivo, "cv.svg"), ErrExtension)
}

func TestStoragePath_PrefixAndRandomName(t *testing.T) {
	t.Parallel()

	p1, err := StoragePath(FotoClub, "escudo.JPG")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p1, "fotos_clubes/"))
	require.True(t, strings.HasSuffix(p1, ".jpg"))

	p2, err := StoragePath(FotoClub, "escudo.JPG")
	require.NoError(t, err)
	require.NotEqual(t, p1, p2, "stored names must not collide")
}

func TestStoragePath_RejectsBadExtension(t *testing.T) {
	t.Parallel()

	_, err := StoragePath(PlanoInstalacion, "plano.xlsx")
	require.Error(t, err)
}
