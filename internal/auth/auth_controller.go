// internal/auth/auth_controller.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/config"
	"github.com/picklefree/picklefree/pkg/responses"
	"github.com/picklefree/picklefree/pkg/token"
)

type Controller struct {
	repo   Repository
	config *config.Config
}

func NewController(repo Repository, cfg *config.Config) *Controller {
	return &Controller{repo: repo, config: cfg}
}

func (ctl *Controller) emitirTokens(cuenta *Cuenta) (*TokenResponse, error) {
	access, err := token.GenerateJWT(cuenta.ID, cuenta.Superuser,
		ctl.config.JWT.AccessTokenSecret, ctl.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := token.GenerateRefreshToken(cuenta.ID,
		ctl.config.JWT.RefreshTokenSecret, ctl.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida usuario y contraseña y devuelve un par de tokens JWT.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credenciales"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Petición inválida: "+err.Error())
		return
	}

	cuenta, err := ctl.repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Usuario o contraseña incorrectos")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	if !cuenta.Activa || !cuenta.CheckPassword(req.Password) {
		responses.Unauthorized(c, "Usuario o contraseña incorrectos")
		return
	}

	tokens, err := ctl.emitirTokens(cuenta)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	if err := ctl.repo.TouchLastLogin(cuenta.ID); err != nil {
		logrus.WithError(err).Warn("could not update last_login")
	}
	responses.SendSuccess(c, http.StatusOK, "Sesión iniciada", tokens)
}

// Refresh godoc
// @Summary      Renovar tokens
// @Description  Valida un refresh token y devuelve un par nuevo.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        refresh  body  RefreshRequest  true  "Refresh token"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/refresh [post]
func (ctl *Controller) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Petición inválida: "+err.Error())
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ctl.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Refresh token inválido: "+err.Error())
		return
	}

	cuenta, err := ctl.repo.GetByID(claims.UserID)
	if err != nil || !cuenta.Activa {
		responses.Unauthorized(c, "Cuenta no disponible")
		return
	}

	tokens, err := ctl.emitirTokens(cuenta)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tokens renovados", tokens)
}
