package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	infraRepo "github.com/salusbook/api-prenotazioni/internal/infra/repository"
	"github.com/salusbook/api-prenotazioni/internal/models"
	ucBooking "github.com/salusbook/api-prenotazioni/internal/usecase/booking"
)

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ledger := infraRepo.NewSlotMemoryLedger()
	registry := infraRepo.NewReservationMemoryRegistry()
	dir := infraRepo.NewMemoryDirectory()

	dir.AddUser(7)
	dir.AddProfessional(models.Professional{ID: 1, Name: "Dr. Bianchi"})

	resHandler := NewReservationHandler(
		registry,
		ucBooking.NewCreateReservation(ledger, registry, dir, nil),
		ucBooking.NewUpdateReservation(registry, nil),
		ucBooking.NewCancelReservation(registry, nil),
		ucBooking.NewListUserReservations(registry, dir),
	)
	availHandler := NewAvailabilityHandler(
		ucBooking.NewAddSlot(ledger, nil, nil),
		ucBooking.NewRevokeSlot(ledger, nil, nil),
		ucBooking.NewListAvailableDates(ledger, nil),
		ucBooking.NewListAvailableTimes(ledger, nil),
	)

	r := gin.New()
	r.POST("/reservations", resHandler.Create)
	r.GET("/reservations/:id", resHandler.Get)
	r.DELETE("/reservations/:id", resHandler.Cancel)
	r.POST("/professionals/:id/availability", availHandler.AddSlot)
	r.GET("/professionals/:id/availability", availHandler.ListDates)

	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body.Code
}

func TestReservationHandler_CreateConflict(t *testing.T) {
	r := newBookingRouter(t)

	if w := doJSON(r, http.MethodPost, "/professionals/1/availability",
		`{"date":"2025-03-10","time":"09:00"}`); w.Code != http.StatusCreated {
		t.Fatalf("add slot: status %d: %s", w.Code, w.Body.String())
	}

	payload := `{"user_id":7,"professional_id":1,"date":"2025-03-10","time":"09:00"}`

	w := doJSON(r, http.MethodPost, "/reservations", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/reservations", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate: status %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "slot_already_booked" {
		t.Errorf("expected slot_already_booked, got %q", code)
	}
}

func TestReservationHandler_NotFoundMapsTo404(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodGet, "/reservations/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "reservation_not_found" {
		t.Errorf("expected reservation_not_found, got %q", code)
	}
}

func TestReservationHandler_UnknownUserMapsTo400(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations",
		`{"user_id":99,"professional_id":1,"date":"2025-03-10","time":"09:00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "unknown_user" {
		t.Errorf("expected unknown_user, got %q", code)
	}
}

func TestAvailabilityHandler_ListDates(t *testing.T) {
	r := newBookingRouter(t)

	for _, body := range []string{
		`{"date":"2025-03-12","time":"09:00"}`,
		`{"date":"2025-03-10","time":"09:00"}`,
	} {
		if w := doJSON(r, http.MethodPost, "/professionals/1/availability", body); w.Code != http.StatusCreated {
			t.Fatalf("add slot: status %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(r, http.MethodGet, "/professionals/1/availability?from=2025-03-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list dates: status %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Dates []string `json:"available_dates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	if len(body.Dates) != 2 || body.Dates[0] != "2025-03-10" || body.Dates[1] != "2025-03-12" {
		t.Fatalf("expected ascending dates, got %v", body.Dates)
	}
}
