package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// MemoryRepository implementa a porta em memória (testes e ambiente local).
// Transaction restaura um snapshot quando fn falha e serializa as transações
// entre si; escritas feitas fora de Transaction não esperam por txMu.
type MemoryRepository struct {
	mu   sync.Mutex
	txMu sync.Mutex

	state memoryState
	calls map[string]int
}

type memoryState struct {
	nextID uint

	services          map[uint]models.Service
	collaborators     map[uint]models.Collaborator
	appointments      map[uint]models.Appointment
	scheduledServices map[uint]models.ScheduledService
	commissions       map[uint]models.Commission
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		state: memoryState{
			services:          map[uint]models.Service{},
			collaborators:     map[uint]models.Collaborator{},
			appointments:      map[uint]models.Appointment{},
			scheduledServices: map[uint]models.ScheduledService{},
			commissions:       map[uint]models.Commission{},
		},
		calls: map[string]int{},
	}
}

// Calls retorna quantas vezes um método da porta foi invocado.
func (r *MemoryRepository) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

func (r *MemoryRepository) track(method string) {
	r.calls[method]++
}

func (r *MemoryRepository) id() uint {
	r.state.nextID++
	return r.state.nextID
}

func (s memoryState) clone() memoryState {
	out := memoryState{
		nextID:            s.nextID,
		services:          make(map[uint]models.Service, len(s.services)),
		collaborators:     make(map[uint]models.Collaborator, len(s.collaborators)),
		appointments:      make(map[uint]models.Appointment, len(s.appointments)),
		scheduledServices: make(map[uint]models.ScheduledService, len(s.scheduledServices)),
		commissions:       make(map[uint]models.Commission, len(s.commissions)),
	}
	for k, v := range s.services {
		out.services[k] = v
	}
	for k, v := range s.collaborators {
		out.collaborators[k] = v
	}
	for k, v := range s.appointments {
		out.appointments[k] = v
	}
	for k, v := range s.scheduledServices {
		out.scheduledServices[k] = v
	}
	for k, v := range s.commissions {
		out.commissions[k] = v
	}
	return out
}

// --------------------------------------------------
// Seed (catálogo)
// --------------------------------------------------

func (r *MemoryRepository) PutService(s *models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.id()
	}
	r.state.services[s.ID] = *s
}

func (r *MemoryRepository) PutCollaborator(c *models.Collaborator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.id()
	}
	stored := *c
	stored.Services = append([]models.Service(nil), c.Services...)
	r.state.collaborators[c.ID] = stored
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *MemoryRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	return r.savepoint(fn)
}

func (r *MemoryRepository) savepoint(fn func(tx domain.Repository) error) error {
	r.mu.Lock()
	snapshot := r.state.clone()
	r.mu.Unlock()

	if err := fn(memoryTx{r}); err != nil {
		r.mu.Lock()
		r.state = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

// memoryTx é a visão entregue a fn; transações aninhadas viram savepoints.
type memoryTx struct {
	*MemoryRepository
}

func (tx memoryTx) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return tx.savepoint(fn)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *MemoryRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetService")

	s, ok := r.state.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) GetCollaborator(ctx context.Context, id uint) (*models.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetCollaborator")

	c, ok := r.state.collaborators[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Services = append([]models.Service(nil), c.Services...)
	return &c, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("CreateAppointment")

	now := time.Now()
	ap.ID = r.id()
	ap.CreatedAt, ap.UpdatedAt = now, now

	stored := *ap
	stored.ScheduledServices = nil
	r.state.appointments[ap.ID] = stored
	return nil
}

func (r *MemoryRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetAppointment")

	return r.loadAppointment(id)
}

func (r *MemoryRepository) GetAppointmentForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetAppointmentForUpdate")

	return r.loadAppointment(id)
}

func (r *MemoryRepository) loadAppointment(id uint) (*models.Appointment, error) {
	ap, ok := r.state.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ap.ScheduledServices = r.linesOf(id)
	return &ap, nil
}

func (r *MemoryRepository) linesOf(appointmentID uint) []models.ScheduledService {
	lines := []models.ScheduledService{}
	for _, ss := range r.state.scheduledServices {
		if ss.AppointmentID == appointmentID {
			lines = append(lines, r.hydrate(ss))
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}

func (r *MemoryRepository) hydrate(ss models.ScheduledService) models.ScheduledService {
	ss.Service = r.state.services[ss.ServiceID]
	ss.Collaborator = nil
	if ss.CollaboratorID != nil {
		if c, ok := r.state.collaborators[*ss.CollaboratorID]; ok {
			ss.Collaborator = &c
		}
	}
	return ss
}

func (r *MemoryRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("UpdateAppointment")

	if _, ok := r.state.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	ap.UpdatedAt = time.Now()
	stored := *ap
	stored.ScheduledServices = nil
	r.state.appointments[ap.ID] = stored
	return nil
}

func (r *MemoryRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("ListAppointmentsForPeriod")

	out := []models.Appointment{}
	for _, ap := range r.state.appointments {
		if inRange(ap.Date, start, end) {
			ap.ScheduledServices = r.linesOf(ap.ID)
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// --------------------------------------------------
// Scheduled service
// --------------------------------------------------

func (r *MemoryRepository) CreateScheduledService(ctx context.Context, ss *models.ScheduledService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("CreateScheduledService")

	now := time.Now()
	ss.ID = r.id()
	ss.CreatedAt, ss.UpdatedAt = now, now
	r.state.scheduledServices[ss.ID] = stripLine(*ss)
	return nil
}

func (r *MemoryRepository) GetScheduledService(ctx context.Context, id uint) (*models.ScheduledService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetScheduledService")

	ss, ok := r.state.scheduledServices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ss = r.hydrate(ss)
	return &ss, nil
}

func (r *MemoryRepository) UpdateScheduledService(ctx context.Context, ss *models.ScheduledService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("UpdateScheduledService")

	if _, ok := r.state.scheduledServices[ss.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	ss.UpdatedAt = time.Now()
	r.state.scheduledServices[ss.ID] = stripLine(*ss)
	return nil
}

// associações não são persistidas, igual ao Omit(clause.Associations)
func stripLine(ss models.ScheduledService) models.ScheduledService {
	ss.Service = models.Service{}
	ss.Collaborator = nil
	return ss
}

func (r *MemoryRepository) ListScheduledServicesByAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.ScheduledService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("ListScheduledServicesByAppointment")

	return r.linesOf(appointmentID), nil
}

func (r *MemoryRepository) ListScheduledServicesForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.ScheduledService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("ListScheduledServicesForPeriod")

	out := []models.ScheduledService{}
	for _, ss := range r.state.scheduledServices {
		ap, ok := r.state.appointments[ss.AppointmentID]
		if ok && inRange(ap.Date, start, end) {
			out = append(out, ss)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --------------------------------------------------
// Commission
// --------------------------------------------------

func (r *MemoryRepository) GetCommissionByScheduledService(
	ctx context.Context,
	scheduledServiceID uint,
) (*models.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("GetCommissionByScheduledService")

	for _, c := range r.state.commissions {
		if c.ScheduledServiceID == scheduledServiceID {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) CreateCommission(ctx context.Context, c *models.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("CreateCommission")

	for _, existing := range r.state.commissions {
		if existing.ScheduledServiceID == c.ScheduledServiceID {
			return gorm.ErrDuplicatedKey
		}
	}

	now := time.Now()
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = now, now
	r.state.commissions[c.ID] = stripCommission(*c)
	return nil
}

func (r *MemoryRepository) UpdateCommission(ctx context.Context, c *models.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("UpdateCommission")

	if _, ok := r.state.commissions[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	c.UpdatedAt = time.Now()
	r.state.commissions[c.ID] = stripCommission(*c)
	return nil
}

func stripCommission(c models.Commission) models.Commission {
	c.Collaborator = models.Collaborator{}
	c.ScheduledService = models.ScheduledService{}
	return c
}

func (r *MemoryRepository) FindCommissionsByIDs(ctx context.Context, ids []uint) ([]models.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("FindCommissionsByIDs")

	out := []models.Commission{}
	seen := map[uint]bool{}
	for _, id := range ids {
		if c, ok := r.state.commissions[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) SetCommissionsPaid(
	ctx context.Context,
	ids []uint,
	paid bool,
	paidAt *time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("SetCommissionsPaid")

	now := time.Now()
	for _, id := range ids {
		c, ok := r.state.commissions[id]
		if !ok {
			continue
		}
		c.Paid = paid
		c.PaidAt = paidAt
		c.UpdatedAt = now
		r.state.commissions[id] = c
	}
	return nil
}

func (r *MemoryRepository) ListCommissions(
	ctx context.Context,
	filter domain.CommissionFilter,
) ([]models.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track("ListCommissions")

	out := []models.Commission{}
	for _, c := range r.state.commissions {
		if filter.CollaboratorID != nil && c.CollaboratorID != *filter.CollaboratorID {
			continue
		}
		if filter.Paid != nil && c.Paid != *filter.Paid {
			continue
		}
		if filter.Start != nil || filter.End != nil {
			ss := r.state.scheduledServices[c.ScheduledServiceID]
			date := r.state.appointments[ss.AppointmentID].Date
			if filter.Start != nil && date.Before(*filter.Start) {
				continue
			}
			if filter.End != nil && date.After(*filter.End) {
				continue
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*MemoryRepository)(nil)
