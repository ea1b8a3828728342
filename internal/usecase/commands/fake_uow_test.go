//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"appointment-booking/internal/domain/appointment"
	"appointment-booking/internal/domain/provider"
	"appointment-booking/internal/domain/slot"
	"appointment-booking/internal/domain/user"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. Within serializes
// transactions with a mutex, so the conditional-update semantics of the real
// slot repository hold: only one booking can observe booked=false.
type fakeStore struct {
	mu           sync.Mutex
	slots        map[uuid.UUID]*shared.SlotSnapshot
	appointments map[uuid.UUID]*shared.AppointmentSnapshot
	providers    map[uuid.UUID]*shared.ProviderSnapshot
	users        map[uuid.UUID]*queries.AuthorizedUserView
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:        make(map[uuid.UUID]*shared.SlotSnapshot),
		appointments: make(map[uuid.UUID]*shared.AppointmentSnapshot),
		providers:    make(map[uuid.UUID]*shared.ProviderSnapshot),
		users:        make(map[uuid.UUID]*queries.AuthorizedUserView),
	}
}

func (s *fakeStore) addProvider(name string) uuid.UUID {
	id := uuid.New()
	s.providers[id] = &shared.ProviderSnapshot{ID: id, UserID: uuid.New(), Name: name}
	return id
}

func (s *fakeStore) addSlot(providerID uuid.UUID, availableAt time.Time, booked bool) uuid.UUID {
	id := uuid.New()
	s.slots[id] = &shared.SlotSnapshot{
		ID:          id,
		ProviderID:  providerID,
		AvailableAt: availableAt,
		Booked:      booked,
	}
	return id
}

func (s *fakeStore) addAppointment(userID, providerID uuid.UUID, slotID *uuid.UUID, at time.Time, status string) uuid.UUID {
	id := uuid.New()
	s.appointments[id] = &shared.AppointmentSnapshot{
		ID:          id,
		UserID:      userID,
		ProviderID:  providerID,
		SlotID:      slotID,
		ScheduledAt: at,
		Status:      status,
	}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store, locking: true}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Slots() shared.SlotRepository { return &fakeSlotRepo{store: t.store} }

func (t *fakeTx) Appointments() shared.AppointmentRepository {
	return &fakeAppointmentRepo{store: t.store}
}

func (t *fakeTx) Users() shared.UserRepository { return &fakeUserRepo{store: t.store} }

func (t *fakeTx) Providers() shared.ProviderRepository { return &fakeProviderRepo{store: t.store} }

func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

func (t *fakeTx) DB() db.DBTX { return nil }

type fakeReads struct {
	store *fakeStore
	// pool-level reads run outside Within and must take the lock themselves
	locking bool
}

func (r *fakeReads) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.slots[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) AppointmentByID(_ context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.appointments[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ProviderByID(_ context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.providers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "provider not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ProviderByUserID(_ context.Context, userID uuid.UUID) (*shared.ProviderSnapshot, error) {
	defer r.lock()()
	for _, snap := range r.store.providers {
		if snap.UserID == userID {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "provider not found")
}

func (r *fakeReads) CountAppointmentsBySlot(_ context.Context, slotID uuid.UUID) (int64, error) {
	defer r.lock()()
	var count int64
	for _, snap := range r.store.appointments {
		if snap.SlotID != nil && *snap.SlotID == slotID {
			count++
		}
	}
	return count, nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) Create(_ context.Context, _ db.DBTX, s *slot.Slot) (uuid.UUID, error) {
	if _, ok := r.store.providers[s.ProviderID()]; !ok {
		return uuid.Nil, infra.NewRepoErr(infra.KindForeignKeyViolated, "provider not found")
	}
	r.store.slots[s.ID()] = &shared.SlotSnapshot{
		ID:          s.ID(),
		ProviderID:  s.ProviderID(),
		AvailableAt: s.AvailableAt(),
		Booked:      s.Booked(),
	}
	return s.ID(), nil
}

func (r *fakeSlotRepo) MarkBooked(_ context.Context, _ db.DBTX, id uuid.UUID) (time.Time, error) {
	snap, ok := r.store.slots[id]
	if !ok {
		return time.Time{}, infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	if snap.Booked {
		return time.Time{}, infra.NewRepoErr(infra.KindConflict, "slot is already booked")
	}
	snap.Booked = true
	return snap.AvailableAt, nil
}

func (r *fakeSlotRepo) Release(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if snap, ok := r.store.slots[id]; ok {
		snap.Booked = false
	}
	return nil
}

func (r *fakeSlotRepo) UpdateTime(_ context.Context, _ db.DBTX, id uuid.UUID, availableAt time.Time) error {
	snap, ok := r.store.slots[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	snap.AvailableAt = availableAt
	return nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.slots[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	delete(r.store.slots, id)
	return nil
}

type fakeAppointmentRepo struct {
	store *fakeStore
}

func (r *fakeAppointmentRepo) Create(_ context.Context, _ db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	r.store.appointments[a.ID()] = &shared.AppointmentSnapshot{
		ID:          a.ID(),
		UserID:      a.UserID(),
		ProviderID:  a.ProviderID(),
		SlotID:      a.SlotID(),
		ScheduledAt: a.ScheduledAt(),
		Status:      a.Status().String(),
	}
	return a.ID(), nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to appointment.Status) error {
	snap, ok := r.store.appointments[id]
	if !ok || snap.Status != from.String() {
		return infra.NewRepoErr(infra.KindConflict, "appointment status changed concurrently")
	}
	snap.Status = to.String()
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.appointments[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	delete(r.store.appointments, id)
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.store.users {
		if existing.Email == u.Email().Value() {
			return uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "email already exists")
		}
	}
	r.store.users[u.ID()] = &queries.AuthorizedUserView{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeProviderRepo struct {
	store *fakeStore
}

func (r *fakeProviderRepo) Create(_ context.Context, _ db.DBTX, p *provider.Provider) (uuid.UUID, error) {
	r.store.providers[p.ID()] = &shared.ProviderSnapshot{
		ID:     p.ID(),
		UserID: p.UserID(),
		Name:   p.Name(),
	}
	return p.ID(), nil
}

// fakeAppointmentReadStore serves the read-after-write lookups the commands
// do once a transaction commits.
type fakeAppointmentReadStore struct {
	store *fakeStore
}

func (r *fakeAppointmentReadStore) view(snap *shared.AppointmentSnapshot) *queries.AppointmentView {
	name := ""
	if p, ok := r.store.providers[snap.ProviderID]; ok {
		name = p.Name
	}
	return &queries.AppointmentView{
		ID:           snap.ID,
		UserID:       snap.UserID,
		UserEmail:    "patient@example.com",
		ProviderID:   snap.ProviderID,
		ProviderName: name,
		SlotID:       snap.SlotID,
		ScheduledAt:  snap.ScheduledAt,
		Status:       snap.Status,
	}
}

func (r *fakeAppointmentReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.appointments[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return r.view(snap), nil
}

func (r *fakeAppointmentReadStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.AppointmentView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var views []*queries.AppointmentView
	for _, snap := range r.store.appointments {
		if snap.UserID == userID {
			views = append(views, r.view(snap))
		}
	}
	return views, nil
}

func (r *fakeAppointmentReadStore) FindByProviderID(_ context.Context, providerID uuid.UUID) ([]*queries.AppointmentView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var views []*queries.AppointmentView
	for _, snap := range r.store.appointments {
		if snap.ProviderID == providerID {
			views = append(views, r.view(snap))
		}
	}
	return views, nil
}

func (r *fakeAppointmentReadStore) FindBySlotID(_ context.Context, slotID uuid.UUID) ([]*queries.AppointmentView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var views []*queries.AppointmentView
	for _, snap := range r.store.appointments {
		if snap.SlotID != nil && *snap.SlotID == slotID {
			views = append(views, r.view(snap))
		}
	}
	return views, nil
}

func (r *fakeAppointmentReadStore) FindAll(_ context.Context) ([]*queries.AppointmentView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	views := make([]*queries.AppointmentView, 0, len(r.store.appointments))
	for _, snap := range r.store.appointments {
		views = append(views, r.view(snap))
	}
	return views, nil
}

func (r *fakeAppointmentReadStore) CountByStatus(_ context.Context, status string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, snap := range r.store.appointments {
		if snap.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentReadStore) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.appointments)), nil
}

// fakeSlotReadStore mirrors the slot views for the slot commands.
type fakeSlotReadStore struct {
	store *fakeStore
}

func (r *fakeSlotReadStore) view(snap *shared.SlotSnapshot) *queries.SlotView {
	name := ""
	if p, ok := r.store.providers[snap.ProviderID]; ok {
		name = p.Name
	}
	return &queries.SlotView{
		ID:           snap.ID,
		ProviderID:   snap.ProviderID,
		ProviderName: name,
		AvailableAt:  snap.AvailableAt,
		Booked:       snap.Booked,
	}
}

func (r *fakeSlotReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.slots[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return r.view(snap), nil
}

func (r *fakeSlotReadStore) FindByProviderID(_ context.Context, providerID uuid.UUID, availableOnly bool) ([]*queries.SlotView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var views []*queries.SlotView
	for _, snap := range r.store.slots {
		if snap.ProviderID != providerID {
			continue
		}
		if availableOnly && snap.Booked {
			continue
		}
		views = append(views, r.view(snap))
	}
	return views, nil
}

func (r *fakeSlotReadStore) FindAll(_ context.Context) ([]*queries.SlotView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	views := make([]*queries.SlotView, 0, len(r.store.slots))
	for _, snap := range r.store.slots {
		views = append(views, r.view(snap))
	}
	return views, nil
}
