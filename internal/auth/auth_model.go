// internal/auth/auth_model.go
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Cuenta is an administration account. Personas may be linked to one
// through their auth_user column.
type Cuenta struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	Username     string     `gorm:"column:username;size:150;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"column:email;size:254" json:"email"`
	PasswordHash string     `gorm:"column:password;size:128;not null" json:"-"`
	Staff        bool       `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	Superuser    bool       `gorm:"column:is_superuser;not null;default:false" json:"is_superuser"`
	Activa       bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	UltimoAcceso *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

func (Cuenta) TableName() string { return "auth_user" }

// SetPassword stores a bcrypt hash of the given password.
func (c *Cuenta) SetPassword(plano string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plano), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the hash.
func (c *Cuenta) CheckPassword(plano string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(plano)) == nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
