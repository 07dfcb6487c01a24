package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Cuenta{}))
	return db
}

func TestCuenta_Password(t *testing.T) {
	t.Parallel()

	c := Cuenta{Username: "admin"}
	require.NoError(t, c.SetPassword("s3creta"))
	require.NotEqual(t, "s3creta", c.PasswordHash)

	require.True(t, c.CheckPassword("s3creta"))
	require.False(t, c.CheckPassword("otra"))
	require.False(t, c.CheckPassword(""))
}

func TestRepository_TouchLastLogin(t *testing.T) {
	t.Parallel()
	db := abrirDB(t)
	repo := NewRepository(db)

	c := Cuenta{Username: "admin", Activa: true}
	require.NoError(t, c.SetPassword("s3creta"))
	require.NoError(t, repo.Create(&c))
	require.Nil(t, c.UltimoAcceso)

	require.NoError(t, repo.TouchLastLogin(c.ID))

	recargada, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, recargada.UltimoAcceso)
	require.True(t, recargada.CheckPassword("s3creta"))
}
