package booking

import (
	"context"
	"sync"
	"testing"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	infraRepo "github.com/salusbook/api-prenotazioni/internal/infra/repository"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

type fixture struct {
	ledger   *infraRepo.SlotMemoryLedger
	registry *infraRepo.ReservationMemoryRegistry
	dir      *infraRepo.MemoryDirectory
}

func newFixture() *fixture {
	return &fixture{
		ledger:   infraRepo.NewSlotMemoryLedger(),
		registry: infraRepo.NewReservationMemoryRegistry(),
		dir:      infraRepo.NewMemoryDirectory(),
	}
}

func (f *fixture) createUC() *CreateReservation {
	return NewCreateReservation(f.ledger, f.registry, f.dir, nil)
}

func (f *fixture) addSlot(t *testing.T, professionalID uint, date, timeStr string) *models.Slot {
	t.Helper()

	slot, err := NewAddSlot(f.ledger, nil, nil).Execute(context.Background(), domain.AddSlotInput{
		ProfessionalID: professionalID,
		Date:           date,
		Time:           timeStr,
	})
	if err != nil {
		t.Fatalf("add slot: %v", err)
	}
	return slot
}

func TestCreateReservation_BookCancelRebook(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	ctx := context.Background()

	times, err := NewListAvailableTimes(f.ledger, nil).Execute(ctx, 1, "2025-03-10")
	if err != nil {
		t.Fatalf("list times: %v", err)
	}
	if len(times) != 1 || times[0] != "09:00" {
		t.Fatalf("expected [09:00], got %v", times)
	}

	in := domain.CreateReservationInput{
		UserID:         7,
		ProfessionalID: 1,
		Date:           "2025-03-10",
		Time:           "09:00",
	}

	res, err := f.createUC().Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != "pending" {
		t.Errorf("expected status pending, got %q", res.Status)
	}

	// mesma tupla de novo
	if _, err := f.createUC().Execute(ctx, in); !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}

	if err := NewCancelReservation(f.registry, nil).Execute(ctx, res.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// o slot continua existindo, a tupla volta a ficar livre
	if _, err := f.createUC().Execute(ctx, in); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestCreateReservation_CheckOrder(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})

	ctx := context.Background()
	uc := f.createUC()

	cases := []struct {
		name string
		in   domain.CreateReservationInput
		code string
	}{
		{
			name: "malformed date wins over everything",
			in:   domain.CreateReservationInput{UserID: 99, ProfessionalID: 99, Date: "10-03-2025", Time: "09:00"},
			code: "invalid_date",
		},
		{
			name: "unknown user before unknown professional",
			in:   domain.CreateReservationInput{UserID: 99, ProfessionalID: 99, Date: "2025-03-10", Time: "09:00"},
			code: "unknown_user",
		},
		{
			name: "unknown professional before slot check",
			in:   domain.CreateReservationInput{UserID: 7, ProfessionalID: 99, Date: "2025-03-10", Time: "09:00"},
			code: "unknown_professional",
		},
		{
			name: "no declared slot",
			in:   domain.CreateReservationInput{UserID: 7, ProfessionalID: 1, Date: "2025-03-10", Time: "09:00"},
			code: "slot_unavailable",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(ctx, tc.in); !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestCreateReservation_StatusPassThrough(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	res, err := f.createUC().Execute(context.Background(), domain.CreateReservationInput{
		UserID:         7,
		ProfessionalID: 1,
		Date:           "2025-03-10",
		Time:           "09:00",
		Status:         "confirmed",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != "confirmed" {
		t.Errorf("expected status confirmed, got %q", res.Status)
	}
}

// De N requisições concorrentes pela mesma tupla, exatamente uma vence.
func TestCreateReservation_ConcurrentSameTuple(t *testing.T) {
	f := newFixture()
	f.dir.AddUser(7)
	f.dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})
	f.addSlot(t, 1, "2025-03-10", "09:00")

	uc := f.createUC()

	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), domain.CreateReservationInput{
				UserID:         7,
				ProfessionalID: 1,
				Date:           "2025-03-10",
				Time:           "09:00",
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for i, err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, "slot_already_booked"):
			// perdedor esperado
		default:
			t.Errorf("worker %d: unexpected error %v", i, err)
		}
	}

	if wins != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", wins)
	}

	all, err := f.registry.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single stored reservation, got %d", len(all))
	}
}
