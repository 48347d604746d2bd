package commission

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type fixture struct {
	repo *repository.MemoryRepository
	tz   *timezone.Normalizer
	ana  *models.Collaborator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	ana := &models.Collaborator{Name: "Ana", CommissionPercentage: decimal.NewFromInt(10), Active: true}
	repo.PutCollaborator(ana)

	return &fixture{
		repo: repo,
		tz:   timezone.NewNormalizer(timezone.DefaultTimezone),
		ana:  ana,
	}
}

// seedLine grava um agendamento com uma linha no status informado.
func (f *fixture) seedLine(t *testing.T, day time.Time, status string, price int64, collaboratorID *uint) *models.ScheduledService {
	t.Helper()
	ctx := context.Background()

	ap := &models.Appointment{ClientName: "Maria", Date: day, StartTime: "09:00", EndTime: "10:00", Status: "scheduled"}
	if err := f.repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	ss := &models.ScheduledService{
		AppointmentID:  ap.ID,
		ServiceID:      1,
		CollaboratorID: collaboratorID,
		Price:          decimal.NewFromInt(price),
		Status:         status,
	}
	if err := f.repo.CreateScheduledService(ctx, ss); err != nil {
		t.Fatalf("seed line: %v", err)
	}
	return ss
}

func (f *fixture) day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, f.tz.Location())
}

func TestCalculateCommission(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewCalculateCommission(f.repo, nil)

	ss := f.seedLine(t, f.day(2025, 3, 10), "completed", 100, &f.ana.ID)

	first, err := uc.Execute(ctx, ss.ID)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !first.Amount.Equal(decimal.NewFromInt(10)) || first.Paid {
		t.Fatalf("expected unpaid 10, got %s paid=%v", first.Amount, first.Paid)
	}

	second, err := uc.Execute(ctx, ss.ID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("recalculation must reuse the commission")
	}

	all, _ := f.repo.ListCommissions(ctx, domain.CommissionFilter{})
	if len(all) != 1 {
		t.Fatalf("expected exactly one commission, got %d", len(all))
	}
}

func TestCalculateRecalculateKeepsPaid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewCalculateCommission(f.repo, nil)

	ss := f.seedLine(t, f.day(2025, 3, 10), "completed", 100, &f.ana.ID)
	c, err := uc.Execute(ctx, ss.ID)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	paidAt := time.Now()
	_ = f.repo.SetCommissionsPaid(ctx, []uint{c.ID}, true, &paidAt)

	// novo percentual do colaborador
	f.ana.CommissionPercentage = decimal.NewFromInt(20)
	f.repo.PutCollaborator(f.ana)

	again, err := uc.Execute(ctx, ss.ID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if !again.Amount.Equal(decimal.NewFromInt(20)) || !again.Paid {
		t.Fatalf("expected 20 and paid kept, got %s paid=%v", again.Amount, again.Paid)
	}
}

func TestCalculateCommissionPreconditions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status string
		assign bool
		kind   httperr.Kind
	}{
		{name: "pending line", status: "pending", assign: true, kind: httperr.KindInvalidState},
		{name: "cancelled line", status: "cancelled", assign: true, kind: httperr.KindInvalidState},
		{name: "no collaborator", status: "completed", assign: false, kind: httperr.KindMissingCollaborator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var collaboratorID *uint
			if tt.assign {
				collaboratorID = &f.ana.ID
			}
			ss := f.seedLine(t, f.day(2025, 3, 10), tt.status, 100, collaboratorID)

			_, err := NewCalculateCommission(f.repo, nil).Execute(ctx, ss.ID)
			if !httperr.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}

	f := newFixture(t)
	_, err := NewCalculateCommission(f.repo, nil).Execute(ctx, 999)
	if !httperr.IsBusiness(err, "scheduled_service_not_found") {
		t.Fatalf("expected scheduled_service_not_found, got %v", err)
	}
}

func TestCalculateAppointmentCommissionsSkipsOpenLines(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	done := f.seedLine(t, f.day(2025, 3, 10), "completed", 100, &f.ana.ID)
	open := &models.ScheduledService{
		AppointmentID: done.AppointmentID,
		ServiceID:     1,
		Price:         decimal.NewFromInt(50),
		Status:        "pending",
	}
	_ = f.repo.CreateScheduledService(ctx, open)

	uc := NewCalculateAppointmentCommissions(f.repo, nil)
	out, err := uc.Execute(ctx, done.AppointmentID)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(out) != 1 || out[0].ScheduledServiceID != done.ID {
		t.Fatalf("expected one commission for the completed line, got %+v", out)
	}

	// segunda execução devolve a mesma comissão
	again, err := uc.Execute(ctx, done.AppointmentID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(again) != 1 || again[0].ID != out[0].ID {
		t.Fatalf("expected existing commission back, got %+v", again)
	}
	if f.repo.Calls("UpdateCommission") != 0 {
		t.Fatalf("existing commissions must not be rewritten")
	}
}

func TestSetCommissionsPaid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	calc := NewCalculateCommission(f.repo, nil)
	uc := NewSetCommissionsPaid(f.repo, f.tz, nil)

	a, _ := calc.Execute(ctx, f.seedLine(t, f.day(2025, 3, 10), "completed", 100, &f.ana.ID).ID)
	b, _ := calc.Execute(ctx, f.seedLine(t, f.day(2025, 3, 11), "completed", 80, &f.ana.ID).ID)

	paid, err := uc.Execute(ctx, []uint{a.ID, b.ID, a.ID}, true)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if len(paid) != 2 {
		t.Fatalf("expected 2 commissions, got %d", len(paid))
	}
	for _, c := range paid {
		if !c.Paid || c.PaidAt == nil {
			t.Fatalf("expected paid with timestamp, got %+v", c)
		}
	}

	unpaid, err := uc.Execute(ctx, []uint{a.ID}, false)
	if err != nil {
		t.Fatalf("mark unpaid: %v", err)
	}
	if unpaid[0].Paid || unpaid[0].PaidAt != nil {
		t.Fatalf("expected unpaid without timestamp, got %+v", unpaid[0])
	}
}

func TestSetCommissionsPaidPartialMismatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, _ := NewCalculateCommission(f.repo, nil).Execute(ctx, f.seedLine(t, f.day(2025, 3, 10), "completed", 100, &f.ana.ID).ID)
	uc := NewSetCommissionsPaid(f.repo, f.tz, nil)

	_, err := uc.Execute(ctx, []uint{c.ID, 999}, true)
	if !httperr.IsKind(err, httperr.KindBatchPartialMismatch) {
		t.Fatalf("expected batch partial mismatch, got %v", err)
	}

	stored, _ := f.repo.FindCommissionsByIDs(ctx, []uint{c.ID})
	if stored[0].Paid {
		t.Fatalf("no commission may change on mismatch")
	}

	_, err = uc.Execute(ctx, nil, true)
	if !httperr.IsBusiness(err, "no_commission_ids") {
		t.Fatalf("expected no_commission_ids, got %v", err)
	}
}

func TestListCommissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	calc := NewCalculateCommission(f.repo, nil)

	march, _ := calc.Execute(ctx, f.seedLine(t, f.day(2025, 3, 31), "completed", 100, &f.ana.ID).ID)
	_, _ = calc.Execute(ctx, f.seedLine(t, f.day(2025, 4, 1), "completed", 100, &f.ana.ID).ID)

	uc := NewListCommissions(f.repo, f.tz)

	out, err := uc.Execute(ctx, ListCommissionsInput{Year: 2025, Month: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].ID != march.ID {
		t.Fatalf("expected only the march commission, got %+v", out)
	}

	paid := true
	out, _ = uc.Execute(ctx, ListCommissionsInput{Paid: &paid})
	if len(out) != 0 {
		t.Fatalf("expected no paid commissions, got %d", len(out))
	}

	_, err = uc.Execute(ctx, ListCommissionsInput{Year: 2025, Month: 13})
	if !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}
