package booking

import (
	"context"
	"testing"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

func strPtr(s string) *string { return &s }

func TestUpdateReservation_PartialFields(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	ctx := context.Background()

	res, err := f.createUC().Execute(ctx, domain.CreateReservationInput{
		UserID: 7, ProfessionalID: 1, Date: "2025-03-10", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewUpdateReservation(f.registry, nil)

	updated, err := uc.Execute(ctx, res.ID, domain.ReservationUpdate{
		Status: strPtr("confirmed"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != "confirmed" {
		t.Errorf("expected status confirmed, got %q", updated.Status)
	}
	if updated.Date != "2025-03-10" || updated.Time != "09:00" {
		t.Errorf("untouched fields changed: %q %q", updated.Date, updated.Time)
	}
}

func TestUpdateReservation_InvalidDate(t *testing.T) {
	f := newFixture()
	uc := NewUpdateReservation(f.registry, nil)

	if _, err := uc.Execute(context.Background(), 1, domain.ReservationUpdate{
		Date: strPtr("10/03/2025"),
	}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestUpdateReservation_NotFound(t *testing.T) {
	f := newFixture()
	uc := NewUpdateReservation(f.registry, nil)

	if _, err := uc.Execute(context.Background(), 42, domain.ReservationUpdate{
		Status: strPtr("confirmed"),
	}); !httperr.IsBusiness(err, "reservation_not_found") {
		t.Fatalf("expected reservation_not_found, got %v", err)
	}
}

// A atualização não revalida a nova tupla contra o ledger: mover a
// reserva para um horário sem slot declarado é aceito.
func TestUpdateReservation_NoSlotRevalidation(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	ctx := context.Background()

	res, err := f.createUC().Execute(ctx, domain.CreateReservationInput{
		UserID: 7, ProfessionalID: 1, Date: "2025-03-10", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := NewUpdateReservation(f.registry, nil).Execute(ctx, res.ID, domain.ReservationUpdate{
		Time: strPtr("23:30"),
	})
	if err != nil {
		t.Fatalf("update to undeclared time: %v", err)
	}
	if updated.Time != "23:30" {
		t.Errorf("expected time 23:30, got %q", updated.Time)
	}
}
