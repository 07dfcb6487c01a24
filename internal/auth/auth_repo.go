// internal/auth/auth_repo.go
package auth

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetByUsername(username string) (*Cuenta, error)
	GetByID(id uint) (*Cuenta, error)
	Create(c *Cuenta) error
	TouchLastLogin(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(username string) (*Cuenta, error) {
	var c Cuenta
	if err := r.db.Where("username = ?", username).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByID(id uint) (*Cuenta, error) {
	var c Cuenta
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(c *Cuenta) error {
	return r.db.Create(c).Error
}

func (r *repository) TouchLastLogin(id uint) error {
	return r.db.Model(&Cuenta{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
