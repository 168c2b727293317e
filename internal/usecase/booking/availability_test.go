package booking

import (
	"context"
	"reflect"
	"testing"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

func TestAddSlot_Validation(t *testing.T) {
	f := newFixture()
	uc := NewAddSlot(f.ledger, nil, nil)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, domain.AddSlotInput{ProfessionalID: 1, Date: "10-03-2025", Time: "09:00"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date, got %v", err)
	}
	if _, err := uc.Execute(ctx, domain.AddSlotInput{ProfessionalID: 1, Date: "2025-03-10", Time: "  "}); !httperr.IsBusiness(err, "invalid_time") {
		t.Errorf("expected invalid_time, got %v", err)
	}
}

func TestAddSlot_DuplicateTuple(t *testing.T) {
	f := newFixture()
	uc := NewAddSlot(f.ledger, nil, nil)
	ctx := context.Background()

	in := domain.AddSlotInput{ProfessionalID: 1, Date: "2025-03-10", Time: "09:00"}

	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "availability_exists") {
		t.Fatalf("expected availability_exists, got %v", err)
	}

	// mesmo horário para outro profissional não colide
	in.ProfessionalID = 2
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("other professional, same tuple tail: %v", err)
	}
}

func TestListAvailableDates_FilterAndOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// inserção fora de ordem, com data repetida e outro profissional
	for _, s := range []domain.AddSlotInput{
		{ProfessionalID: 1, Date: "2025-03-12", Time: "09:00"},
		{ProfessionalID: 1, Date: "2025-03-10", Time: "09:00"},
		{ProfessionalID: 1, Date: "2025-03-10", Time: "10:00"},
		{ProfessionalID: 1, Date: "2025-03-08", Time: "09:00"},
		{ProfessionalID: 2, Date: "2025-03-11", Time: "09:00"},
	} {
		f.addSlot(t, s.ProfessionalID, s.Date, s.Time)
	}

	uc := NewListAvailableDates(f.ledger, nil)

	dates, err := uc.Execute(ctx, 1, "2025-03-09")
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}

	want := []string{"2025-03-10", "2025-03-12"}
	if !reflect.DeepEqual(dates, want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}

	// consulta é idempotente
	again, err := uc.Execute(ctx, 1, "2025-03-09")
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if !reflect.DeepEqual(again, dates) {
		t.Fatalf("expected identical result, got %v then %v", dates, again)
	}

	if _, err := uc.Execute(ctx, 1, "09/03/2025"); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date for malformed from, got %v", err)
	}
}

func TestListAvailableTimes_InsertionOrder(t *testing.T) {
	f := newFixture()

	f.addSlot(t, 1, "2025-03-10", "14:00")
	f.addSlot(t, 1, "2025-03-10", "09:00")
	f.addSlot(t, 1, "2025-03-11", "10:00")

	times, err := NewListAvailableTimes(f.ledger, nil).Execute(context.Background(), 1, "2025-03-10")
	if err != nil {
		t.Fatalf("list times: %v", err)
	}

	want := []string{"14:00", "09:00"}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("expected %v, got %v", want, times)
	}
}

func TestRevokeSlot_Unconditional(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	slot := f.addSlot(t, 1, "2025-03-10", "09:00")

	ctx := context.Background()

	// reserva viva sobre a tupla não bloqueia a revogação
	if _, err := f.createUC().Execute(ctx, domain.CreateReservationInput{
		UserID: 7, ProfessionalID: 1, Date: "2025-03-10", Time: "09:00",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewRevokeSlot(f.ledger, nil, nil)

	if _, err := uc.Execute(ctx, slot.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	// a reserva sobrevive intacta
	all, err := f.registry.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected reservation to survive revocation, got %d", len(all))
	}

	if _, err := uc.Execute(ctx, slot.ID); !httperr.IsBusiness(err, "availability_not_found") {
		t.Fatalf("expected availability_not_found, got %v", err)
	}
}
