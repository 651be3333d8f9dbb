package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "slotwise/database/repository/booking"
	"slotwise/models"
	"slotwise/services/availability"
)

type fakeOrgRepo struct {
	org      models.Organisation
	provider models.Provider
	bt       models.BookingType
}

func (f *fakeOrgRepo) CreateOrganisation(ctx context.Context, org *models.Organisation) error {
	return nil
}
func (f *fakeOrgRepo) GetOrganisation(ctx context.Context, orgID string) (*models.Organisation, error) {
	if orgID != f.org.ID {
		return nil, errors.New("not found")
	}
	org := f.org
	return &org, nil
}
func (f *fakeOrgRepo) CreateProvider(ctx context.Context, p *models.Provider) error { return nil }
func (f *fakeOrgRepo) GetProvider(ctx context.Context, orgID, providerID string) (*models.Provider, error) {
	p := f.provider
	return &p, nil
}
func (f *fakeOrgRepo) CreateBookingType(ctx context.Context, bt *models.BookingType) error {
	return nil
}
func (f *fakeOrgRepo) GetBookingType(ctx context.Context, orgID, bookingTypeID string) (*models.BookingType, error) {
	if bookingTypeID != f.bt.ID {
		return nil, errors.New("not found")
	}
	bt := f.bt
	return &bt, nil
}
func (f *fakeOrgRepo) ListBookingTypes(ctx context.Context, orgID string) ([]models.BookingType, error) {
	return []models.BookingType{f.bt}, nil
}
func (f *fakeOrgRepo) CreateAdmin(ctx context.Context, admin *models.OrgAdmin) error { return nil }
func (f *fakeOrgRepo) GetAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error) {
	return nil, errors.New("not found")
}

type fakeScheduleRepo struct {
	workingHours []models.WorkingHourSlot
	overrides    []models.Override
	recurring    []models.RecurringOverride
}

func (f *fakeScheduleRepo) ReplaceWorkingHours(ctx context.Context, orgID, providerID string, slots []models.WorkingHourSlot) error {
	f.workingHours = slots
	return nil
}
func (f *fakeScheduleRepo) GetWorkingHours(ctx context.Context, orgID, providerID string) ([]models.WorkingHourSlot, error) {
	return f.workingHours, nil
}
func (f *fakeScheduleRepo) CreateOverride(ctx context.Context, ov *models.Override) error {
	f.overrides = append(f.overrides, *ov)
	return nil
}
func (f *fakeScheduleRepo) DeleteOverride(ctx context.Context, orgID, overrideID string) error {
	return nil
}
func (f *fakeScheduleRepo) GetOverridesForDate(ctx context.Context, orgID, providerID, date string) ([]models.Override, error) {
	var out []models.Override
	for _, ov := range f.overrides {
		if ov.Date == date {
			out = append(out, ov)
		}
	}
	return out, nil
}
func (f *fakeScheduleRepo) CreateRecurringOverride(ctx context.Context, ov *models.RecurringOverride) error {
	f.recurring = append(f.recurring, *ov)
	return nil
}
func (f *fakeScheduleRepo) GetRecurringOverrides(ctx context.Context, orgID, providerID string) ([]models.RecurringOverride, error) {
	return f.recurring, nil
}
func (f *fakeScheduleRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.ProviderID == b.ProviderID &&
			existing.Status == models.BookingStatusConfirmed &&
			existing.Start.Equal(b.Start) {
			return bookingRepo.ErrSlotTaken
		}
	}
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", len(f.bookings)+1)
	}
	f.bookings = append(f.bookings, *b)
	return nil
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, orgID, bookingID string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			out := b
			return &out, nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeBookingRepo) GetConfirmedForRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusConfirmed && b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) ListByOrg(ctx context.Context, orgID string, from, to time.Time) ([]models.Booking, error) {
	return f.bookings, nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, orgID, bookingID, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}
func (f *fakeBookingRepo) SetInvoiceID(ctx context.Context, bookingID, invoiceID string) error {
	return nil
}
func (f *fakeBookingRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newTestServices(t *testing.T) (*DefaultAvailabilityService, *DefaultBookingService, *fakeBookingRepo) {
	t.Helper()
	orgs := &fakeOrgRepo{
		org:      models.Organisation{ID: "org-1", Name: "Acme Clinic", Timezone: "Europe/London"},
		provider: models.Provider{ID: "prov-1", OrgID: "org-1", Name: "Dr. Lee"},
		bt: models.BookingType{
			ID:           "bt-1",
			OrgID:        "org-1",
			ProviderID:   "prov-1",
			Name:         "Consultation",
			DurationMins: 30,
		},
	}
	schedules := &fakeScheduleRepo{
		workingHours: []models.WorkingHourSlot{
			{ProviderID: "prov-1", Weekday: time.Wednesday, StartClock: "09:00", EndClock: "17:00"},
		},
	}
	bookings := &fakeBookingRepo{}

	avail := &DefaultAvailabilityService{
		OrgRepo:      orgs,
		ScheduleRepo: schedules,
		BookingRepo:  bookings,
		Recurrence:   WeeklyRecurrenceResolver{},
		BusyTimes:    noopBusyProvider{},
		Now: func() time.Time {
			return time.Date(2026, 3, 30, 12, 0, 0, 0, time.UTC)
		},
	}
	svc := &DefaultBookingService{
		Repo:         bookings,
		OrgRepo:      orgs,
		Availability: avail,
	}
	return avail, svc, bookings
}

type noopBusyProvider struct{}

func (noopBusyProvider) BusyTimes(ctx context.Context, account *models.CalendarAccount, from, to time.Time) ([]availability.TimeRange, error) {
	return nil, nil
}

func TestCreateBooking_HappyPath(t *testing.T) {
	_, svc, _ := newTestServices(t)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, "org-1", models.BookingRequest{
		BookingTypeID: "bt-1",
		Date:          "2026-04-01",
		Start:         "2026-04-01T09:00:00+01:00",
		ClientName:    "Sam",
		ClientEmail:   "sam@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed booking, got %s", b.Status)
	}
	if b.End.Sub(b.Start) != 30*time.Minute {
		t.Fatalf("expected 30 minute booking, got %s", b.End.Sub(b.Start))
	}
}

func TestCreateBooking_SlotNotOffered(t *testing.T) {
	_, svc, _ := newTestServices(t)
	ctx := context.Background()

	// 09:10 is not slot-aligned and was never offered.
	_, err := svc.CreateBooking(ctx, "org-1", models.BookingRequest{
		BookingTypeID: "bt-1",
		Date:          "2026-04-01",
		Start:         "2026-04-01T09:10:00+01:00",
		ClientName:    "Sam",
		ClientEmail:   "sam@example.com",
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCreateBooking_SecondBookerConflicts(t *testing.T) {
	_, svc, _ := newTestServices(t)
	ctx := context.Background()

	req := models.BookingRequest{
		BookingTypeID: "bt-1",
		Date:          "2026-04-01",
		Start:         "2026-04-01T10:00:00+01:00",
		ClientName:    "Sam",
		ClientEmail:   "sam@example.com",
	}
	if _, err := svc.CreateBooking(ctx, "org-1", req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// The recomputed slot set no longer contains 10:00.
	req.ClientName = "Alex"
	req.ClientEmail = "alex@example.com"
	_, err := svc.CreateBooking(ctx, "org-1", req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for double booking, got %v", err)
	}
}

func TestCreateBooking_MalformedStart(t *testing.T) {
	_, svc, _ := newTestServices(t)

	_, err := svc.CreateBooking(context.Background(), "org-1", models.BookingRequest{
		BookingTypeID: "bt-1",
		Date:          "2026-04-01",
		Start:         "ten o'clock",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetAvailableSlots_SerializesInstants(t *testing.T) {
	avail, _, _ := newTestServices(t)

	resp, err := avail.GetAvailableSlots(context.Background(), "org-1", "bt-1", "2026-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(resp.Slots))
	}
	if resp.Timezone != "Europe/London" {
		t.Fatalf("expected org timezone in response, got %s", resp.Timezone)
	}
	first, err := time.Parse(time.RFC3339, resp.Slots[0].Start)
	if err != nil {
		t.Fatalf("slot start is not RFC 3339: %v", err)
	}
	want := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC) // 09:00 BST
	if !first.Equal(want) {
		t.Fatalf("expected first slot at %s, got %s", want, first)
	}
}
