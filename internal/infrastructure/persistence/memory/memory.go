// Package memory fornece implementações em memória dos repositórios,
// usadas nos testes e como adapter sem banco. Comportamento espelha o
// gormstore, inclusive a unicidade de número de placa e de username.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// Store agrega os repositórios em memória sobre um único mutex
type Store struct {
	mu      sync.RWMutex
	users   map[string]*entities.User
	plates  map[string]*entities.Plate
	windows map[string]*entities.SchedulingWindow
	config  *entities.SystemConfig
}

// NewStore cria um Store vazio com a configuração padrão
func NewStore() *Store {
	return &Store{
		users:   make(map[string]*entities.User),
		plates:  make(map[string]*entities.Plate),
		windows: make(map[string]*entities.SchedulingWindow),
	}
}

// Users retorna o repositório de contas
func (s *Store) Users() repositories.UserRepository { return &userRepo{s} }

// Plates retorna o repositório de placas
func (s *Store) Plates() repositories.PlateRepository { return &plateRepo{s} }

// Config retorna o repositório de configuração
func (s *Store) Config() repositories.ConfigRepository { return &configRepo{s} }

// Windows retorna o repositório de janelas
func (s *Store) Windows() repositories.WindowRepository { return &windowRepo{s} }

// UnitOfWork retorna um UnitOfWork que apenas executa a função;
// o mutex único do Store já serializa as operações
func (s *Store) UnitOfWork() ports.UnitOfWork { return &noopUow{} }

type noopUow struct{}

func (u *noopUow) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *noopUow) Commit(ctx context.Context) error                   { return nil }
func (u *noopUow) Rollback(ctx context.Context) error                 { return nil }
func (u *noopUow) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// ---- users ----

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domainerrors.ErrUsernameTaken
		}
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	for _, u := range r.s.users {
		if u.Username == user.Username && u.ID != user.ID {
			return domainerrors.ErrUsernameTaken
		}
	}

	user.UpdatedAt = time.Now()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.users, id)
	return nil
}

func (r *userRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if filters.Role != nil && u.Role != *filters.Role {
			continue
		}
		cp := *u
		users = append(users, &cp)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *userRepo) ListTransportadoras(ctx context.Context) ([]*entities.User, error) {
	role := entities.RoleTransportadora
	return r.List(ctx, repositories.UserFilters{Role: &role, PageSize: 100})
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.users)), nil
}

// ---- plates ----

type plateRepo struct{ s *Store }

func (r *plateRepo) Create(ctx context.Context, plate *entities.Plate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.plates {
		if strings.EqualFold(p.Number, plate.Number) {
			return domainerrors.ErrDuplicatePlate
		}
	}

	if plate.CreatedAt.IsZero() {
		plate.CreatedAt = time.Now()
	}

	cp := *plate
	r.s.plates[plate.ID] = &cp
	return nil
}

func (r *plateRepo) FindByID(ctx context.Context, id string) (*entities.Plate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.plates[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *plateRepo) FindByNumber(ctx context.Context, number string) (*entities.Plate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.plates {
		if strings.EqualFold(p.Number, number) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *plateRepo) Update(ctx context.Context, plate *entities.Plate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.plates[plate.ID]; !ok {
		return domainerrors.ErrPlateNotFound
	}
	cp := *plate
	r.s.plates[plate.ID] = &cp
	return nil
}

func (r *plateRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.plates, id)
	return nil
}

func (r *plateRepo) DeleteByTransportadora(ctx context.Context, transportadoraID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, p := range r.s.plates {
		if p.TransportadoraID == transportadoraID {
			delete(r.s.plates, id)
		}
	}
	return nil
}

func (r *plateRepo) List(ctx context.Context) ([]*entities.Plate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	plates := make([]*entities.Plate, 0, len(r.s.plates))
	for _, p := range r.s.plates {
		cp := *p
		plates = append(plates, &cp)
	}

	sort.Slice(plates, func(i, j int) bool {
		return plates[i].CreatedAt.After(plates[j].CreatedAt)
	})
	return plates, nil
}

func (r *plateRepo) ListByTransportadora(ctx context.Context, transportadoraID string) ([]*entities.Plate, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	plates := make([]*entities.Plate, 0, len(all))
	for _, p := range all {
		if p.TransportadoraID == transportadoraID {
			plates = append(plates, p)
		}
	}
	return plates, nil
}

func (r *plateRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.plates)), nil
}

func (r *plateRepo) CountByTransportadora(ctx context.Context, transportadoraID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, p := range r.s.plates {
		if p.TransportadoraID == transportadoraID {
			count++
		}
	}
	return count, nil
}

// ---- config ----

type configRepo struct{ s *Store }

func (r *configRepo) Get(ctx context.Context) (*entities.SystemConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.config == nil {
		return entities.DefaultSystemConfig(), nil
	}
	cp := *r.s.config
	cp.AllowedDays = append([]int(nil), r.s.config.AllowedDays...)
	return &cp, nil
}

func (r *configRepo) Save(ctx context.Context, cfg *entities.SystemConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *cfg
	cp.AllowedDays = append([]int(nil), cfg.AllowedDays...)
	r.s.config = &cp
	return nil
}

// ---- windows ----

type windowRepo struct{ s *Store }

func (r *windowRepo) Create(ctx context.Context, window *entities.SchedulingWindow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	if window.CreatedAt.IsZero() {
		window.CreatedAt = now
	}
	window.UpdatedAt = now

	cp := *window
	r.s.windows[window.ID] = &cp
	return nil
}

func (r *windowRepo) FindByID(ctx context.Context, id string) (*entities.SchedulingWindow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.windows[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *windowRepo) Update(ctx context.Context, window *entities.SchedulingWindow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.windows[window.ID]; !ok {
		return domainerrors.ErrStorage
	}
	window.UpdatedAt = time.Now()
	cp := *window
	r.s.windows[window.ID] = &cp
	return nil
}

func (r *windowRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.windows, id)
	return nil
}

func (r *windowRepo) List(ctx context.Context) ([]*entities.SchedulingWindow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	windows := make([]*entities.SchedulingWindow, 0, len(r.s.windows))
	for _, w := range r.s.windows {
		cp := *w
		windows = append(windows, &cp)
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].StartDate.Before(windows[j].StartDate)
	})
	return windows, nil
}
