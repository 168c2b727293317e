package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// Implementações em memória dos mesmos contratos da versão Postgres.
// O mutex cobre checagem e inserção juntas, então a garantia de
// serialização sobre a tupla é a mesma que a constraint dá no banco.
// Usadas nos testes e em execução local sem banco.

// --------------------------------------------------
// Slot Ledger
// --------------------------------------------------

type SlotMemoryLedger struct {
	mu     sync.Mutex
	nextID uint
	slots  []models.Slot
}

func NewSlotMemoryLedger() *SlotMemoryLedger {
	return &SlotMemoryLedger{nextID: 1}
}

func (l *SlotMemoryLedger) Insert(_ context.Context, slot *models.Slot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range l.slots {
		if s.ProfessionalID == slot.ProfessionalID &&
			s.Date == slot.Date && s.Time == slot.Time {
			return httperr.ErrBusiness("availability_exists")
		}
	}

	slot.ID = l.nextID
	l.nextID++
	l.slots = append(l.slots, *slot)
	return nil
}

func (l *SlotMemoryLedger) GetByID(_ context.Context, id uint) (*models.Slot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range l.slots {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness("availability_not_found")
}

func (l *SlotMemoryLedger) Delete(_ context.Context, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.slots {
		if s.ID == id {
			l.slots = append(l.slots[:i], l.slots[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("availability_not_found")
}

func (l *SlotMemoryLedger) ExistsByTuple(
	_ context.Context,
	professionalID uint,
	date string,
	timeStr string,
) (bool, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range l.slots {
		if s.ProfessionalID == professionalID && s.Date == date && s.Time == timeStr {
			return true, nil
		}
	}
	return false, nil
}

func (l *SlotMemoryLedger) ListDates(
	_ context.Context,
	professionalID uint,
	from string,
) ([]string, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool)
	dates := []string{}
	for _, s := range l.slots {
		if s.ProfessionalID != professionalID || s.Date < from || seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		dates = append(dates, s.Date)
	}

	// ISO ordena lexicograficamente
	sort.Strings(dates)
	return dates, nil
}

func (l *SlotMemoryLedger) ListTimes(
	_ context.Context,
	professionalID uint,
	date string,
) ([]string, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	times := []string{}
	for _, s := range l.slots {
		if s.ProfessionalID == professionalID && s.Date == date {
			times = append(times, s.Time)
		}
	}
	return times, nil
}

// --------------------------------------------------
// Reservation Registry
// --------------------------------------------------

type ReservationMemoryRegistry struct {
	mu           sync.Mutex
	nextID       uint
	reservations []models.Reservation
}

func NewReservationMemoryRegistry() *ReservationMemoryRegistry {
	return &ReservationMemoryRegistry{nextID: 1}
}

func (r *ReservationMemoryRegistry) Get(_ context.Context, id uint) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.ID == id {
			out := res
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness("reservation_not_found")
}

func (r *ReservationMemoryRegistry) ListAll(_ context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *ReservationMemoryRegistry) ListByUser(
	_ context.Context,
	userID uint,
) ([]models.Reservation, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ReservationMemoryRegistry) ExistsByTuple(
	_ context.Context,
	professionalID uint,
	date string,
	timeStr string,
) (bool, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tupleTaken(professionalID, date, timeStr), nil
}

func (r *ReservationMemoryRegistry) Insert(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tupleTaken(res.ProfessionalID, res.Date, res.Time) {
		return httperr.ErrBusiness("slot_already_booked")
	}

	res.ID = r.nextID
	r.nextID++
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *ReservationMemoryRegistry) Update(
	_ context.Context,
	id uint,
	fields domain.ReservationUpdate,
) (*models.Reservation, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reservations {
		if r.reservations[i].ID != id {
			continue
		}

		res := &r.reservations[i]
		if fields.UserID != nil {
			res.UserID = *fields.UserID
		}
		if fields.Date != nil {
			res.Date = *fields.Date
		}
		if fields.Time != nil {
			res.Time = *fields.Time
		}
		if fields.Status != nil {
			res.Status = *fields.Status
		}

		out := *res
		return &out, nil
	}

	return nil, httperr.ErrBusiness("reservation_not_found")
}

func (r *ReservationMemoryRegistry) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("reservation_not_found")
}

// caller must hold r.mu
func (r *ReservationMemoryRegistry) tupleTaken(
	professionalID uint,
	date string,
	timeStr string,
) bool {

	for _, res := range r.reservations {
		if res.ProfessionalID == professionalID && res.Date == date && res.Time == timeStr {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

type MemoryDirectory struct {
	mu            sync.Mutex
	users         map[uint]bool
	professionals map[uint]models.Professional
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users:         make(map[uint]bool),
		professionals: make(map[uint]models.Professional),
	}
}

func (d *MemoryDirectory) AddUser(id uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[id] = true
}

func (d *MemoryDirectory) AddProfessional(p models.Professional) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.professionals[p.ID] = p
}

func (d *MemoryDirectory) RemoveProfessional(id uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.professionals, id)
}

func (d *MemoryDirectory) UserExists(_ context.Context, id uint) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.users[id], nil
}

func (d *MemoryDirectory) ProfessionalExists(_ context.Context, id uint) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.professionals[id]
	return ok, nil
}

func (d *MemoryDirectory) GetProfessional(
	_ context.Context,
	id uint,
) (*models.Professional, error) {

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.professionals[id]; ok {
		out := p
		return &out, nil
	}
	return nil, httperr.ErrBusiness("professional_not_found")
}

// Compile-time checks
var (
	_ domain.SlotLedger          = (*SlotMemoryLedger)(nil)
	_ domain.ReservationRegistry = (*ReservationMemoryRegistry)(nil)
	_ domain.Directory           = (*MemoryDirectory)(nil)
)
