// internal/booking/booking_repo.go
package booking

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Repository wraps reservation persistence. The unique index on
// (pista, fecha, hora_inicio, hora_fin) is the arbiter for exact
// duplicates; Solapa answers the softer question of whether any booking
// in one table overlaps a candidate slot.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// solapa counts rows in the table mapped by modelo whose slot overlaps
// [inicio, fin) on the same court and date. Slots that merely touch at
// an endpoint do not overlap. Each reservation table is checked in
// isolation; the same tuple may exist in two different tables.
func (r *Repository) solapa(modelo any, pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	var n int64
	err := r.db.Model(modelo).
		Where("id_pista = ? AND fecha_reserva = ?", pistaID, fecha).
		Where("hora_inicio < ? AND hora_fin > ?", fin, inicio).
		Count(&n).Error
	return n > 0, err
}

func (r *Repository) SolapaClub(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaClub{}, pistaID, fecha, inicio, fin)
}

func (r *Repository) SolapaCurso(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaCurso{}, pistaID, fecha, inicio, fin)
}

func (r *Repository) SolapaJugador(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaJugador{}, pistaID, fecha, inicio, fin)
}

func (r *Repository) SolapaTorneoIndividual(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaTorneoIndividual{}, pistaID, fecha, inicio, fin)
}

func (r *Repository) SolapaTorneoDobles(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaTorneoDobles{}, pistaID, fecha, inicio, fin)
}

func (r *Repository) SolapaTorneoEquipos(pistaID uint, fecha datatypes.Date, inicio, fin datatypes.Time) (bool, error) {
	return r.solapa(&ReservaTorneoEquipos{}, pistaID, fecha, inicio, fin)
}

// CrearReservaClub persists a club booking.
func (r *Repository) CrearReservaClub(res *ReservaClub) error {
	return r.db.Create(res).Error
}

// CrearReservaCurso persists a course booking.
func (r *Repository) CrearReservaCurso(res *ReservaCurso) error {
	return r.db.Create(res).Error
}

// CrearReservaJugador persists a player booking.
func (r *Repository) CrearReservaJugador(res *ReservaJugador) error {
	return r.db.Create(res).Error
}

// CrearReservaTorneoIndividual persists a singles-tournament booking.
func (r *Repository) CrearReservaTorneoIndividual(res *ReservaTorneoIndividual) error {
	return r.db.Create(res).Error
}

// CrearReservaTorneoDobles persists a doubles-tournament booking.
func (r *Repository) CrearReservaTorneoDobles(res *ReservaTorneoDobles) error {
	return r.db.Create(res).Error
}

// CrearReservaTorneoEquipos persists a team-tournament booking.
func (r *Repository) CrearReservaTorneoEquipos(res *ReservaTorneoEquipos) error {
	return r.db.Create(res).Error
}
