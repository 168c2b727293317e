package booking

import (
	"context"
	"testing"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

func TestListUserReservations_Empty(t *testing.T) {
	f := newFixture()

	out, err := NewListUserReservations(f.registry, f.dir).Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d items", len(out))
	}
}

func TestListUserReservations_ProfessionalGone(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	ctx := context.Background()

	if _, err := f.createUC().Execute(ctx, domain.CreateReservationInput{
		UserID: 7, ProfessionalID: 1, Date: "2025-03-10", Time: "09:00",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := NewListUserReservations(f.registry, f.dir).Execute(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(out))
	}
	if out[0].ProfessionalName != "Dr. Bianchi" {
		t.Errorf("expected resolved name, got %q", out[0].ProfessionalName)
	}

	// profissional removido: a reserva continua listável, nome sentinela
	f.dir.RemoveProfessional(1)

	out, err = NewListUserReservations(f.registry, f.dir).Execute(ctx, 7)
	if err != nil {
		t.Fatalf("list after removal: %v", err)
	}
	if out[0].ProfessionalName != domain.ProfessionalUnavailable {
		t.Errorf("expected %q, got %q", domain.ProfessionalUnavailable, out[0].ProfessionalName)
	}
}
