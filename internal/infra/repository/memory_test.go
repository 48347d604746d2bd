package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestMemoryTransactionRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateAppointment(ctx, &models.Appointment{ClientName: "Ana"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	apps, _ := repo.ListAppointmentsForPeriod(ctx, time.Time{}, time.Now().AddDate(100, 0, 0))
	if len(apps) != 0 {
		t.Fatalf("rollback must discard the appointment, found %d", len(apps))
	}
}

func TestMemoryNestedTransactionKeepsOuterWork(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_ = repo.Transaction(ctx, func(tx domain.Repository) error {
		_ = tx.CreateAppointment(ctx, &models.Appointment{ClientName: "Ana"})
		_ = tx.Transaction(ctx, func(inner domain.Repository) error {
			_ = inner.CreateAppointment(ctx, &models.Appointment{ClientName: "Bia"})
			return errors.New("inner failure")
		})
		return nil
	})

	apps, _ := repo.ListAppointmentsForPeriod(ctx, time.Time{}, time.Now().AddDate(100, 0, 0))
	if len(apps) != 1 || apps[0].ClientName != "Ana" {
		t.Fatalf("expected only the outer appointment, got %+v", apps)
	}
}

func TestMemoryConcurrentTransactionsDoNotUndoEachOther(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	started := make(chan struct{})
	release := make(chan struct{})
	failed := make(chan error, 1)

	go func() {
		failed <- repo.Transaction(ctx, func(tx domain.Repository) error {
			close(started)
			<-release
			return errors.New("rollback")
		})
	}()
	<-started

	committed := make(chan error, 1)
	go func() {
		committed <- repo.Transaction(ctx, func(tx domain.Repository) error {
			return tx.CreateAppointment(ctx, &models.Appointment{ClientName: "Ana"})
		})
	}()

	close(release)
	if err := <-failed; err == nil {
		t.Fatalf("first transaction must fail")
	}
	if err := <-committed; err != nil {
		t.Fatalf("second transaction: %v", err)
	}

	apps, _ := repo.ListAppointmentsForPeriod(ctx, time.Time{}, time.Now().AddDate(100, 0, 0))
	if len(apps) != 1 {
		t.Fatalf("rollback of one transaction must keep the other's write, found %d", len(apps))
	}
}

func TestMemoryCommissionUniquePerScheduledService(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := &models.Commission{ScheduledServiceID: 10, Amount: decimal.NewFromInt(5)}
	if err := repo.CreateCommission(ctx, first); err != nil {
		t.Fatal(err)
	}

	dup := &models.Commission{ScheduledServiceID: 10, Amount: decimal.NewFromInt(5)}
	if err := repo.CreateCommission(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key, got %v", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if _, err := repo.GetAppointment(ctx, 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
	if _, err := repo.GetScheduledService(ctx, 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
	if repo.Calls("GetAppointment") != 1 {
		t.Fatalf("expected one tracked call, got %d", repo.Calls("GetAppointment"))
	}
}

func TestMemoryListCommissionsByPeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	for _, date := range []time.Time{march, april} {
		ap := &models.Appointment{Date: date}
		_ = repo.CreateAppointment(ctx, ap)
		ss := &models.ScheduledService{AppointmentID: ap.ID}
		_ = repo.CreateScheduledService(ctx, ss)
		_ = repo.CreateCommission(ctx, &models.Commission{ScheduledServiceID: ss.ID, Paid: true})
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	paid := true

	list, err := repo.ListCommissions(ctx, domain.CommissionFilter{Paid: &paid, Start: &start, End: &end})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one commission in march, got %d", len(list))
	}
}
