// internal/messaging/messaging_repo.go
package messaging

import (
	"fmt"

	"gorm.io/gorm"
)

// Destino is one resolved delivery target: the address to use and the
// recipient-level type override, if any.
type Destino struct {
	Direccion     string
	TipoMensajeID *uint
}

// Repository persists messages and fans them out into Envio rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Crear persists a message and then runs adjuntar with the fresh id so
// the caller can attach Destinatario* rows in the same transaction.
func (r *Repository) Crear(m *Mensaje, adjuntar func(tx *gorm.DB, mensajeID uint) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if adjuntar == nil {
			return nil
		}
		return adjuntar(tx, m.ID)
	})
}

// Despachar creates one Envio per resolved target. Each delivery keeps
// the sender address given, the target address, and the message type
// finally used: the recipient override when present, the message's own
// type otherwise. The initial delivery state applies to every row.
func (r *Repository) Despachar(m *Mensaje, remitente string, estadoInicialID uint, destinos []Destino) ([]Envio, error) {
	envios := make([]Envio, 0, len(destinos))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range destinos {
			tipo := m.TipoMensajeID
			if d.TipoMensajeID != nil {
				tipo = *d.TipoMensajeID
			}
			e := Envio{
				MensajeID:     m.ID,
				Remitente:     remitente,
				Destinatario:  d.Direccion,
				TipoMensajeID: tipo,
				EstadoEnvioID: estadoInicialID,
			}
			if err := tx.Create(&e).Error; err != nil {
				return fmt.Errorf("envio de mensaje %d a %s: %w", m.ID, d.Direccion, err)
			}
			envios = append(envios, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return envios, nil
}

// EnviosDeMensaje lists the deliveries of one message.
func (r *Repository) EnviosDeMensaje(mensajeID uint) ([]Envio, error) {
	var envios []Envio
	err := r.db.Where("id_mensaje = ?", mensajeID).Order("id_envio").Find(&envios).Error
	return envios, err
}
