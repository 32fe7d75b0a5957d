package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/policy"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
	"github.com/placasafe/placasafe-backend/internal/domain/valueobjects"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/metrics"
)

// PlateService contém a lógica de negócio do cadastro e do ciclo de
// vida das placas
type PlateService struct {
	plates   repositories.PlateRepository
	users    repositories.UserRepository
	config   repositories.ConfigRepository
	windows  repositories.WindowRepository
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewPlateService cria um novo PlateService
func NewPlateService(
	plates repositories.PlateRepository,
	users repositories.UserRepository,
	config repositories.ConfigRepository,
	windows repositories.WindowRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *PlateService {
	return &PlateService{
		plates:   plates,
		users:    users,
		config:   config,
		windows:  windows,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock troca a fonte de tempo; usado nos testes das regras de
// horário
func (s *PlateService) WithClock(now func() time.Time) *PlateService {
	s.now = now
	return s
}

// RegisterPlateInput representa os dados para cadastrar uma placa
type RegisterPlateInput struct {
	Number        string
	ScheduledDate *time.Time
	Observations  string
}

// Register executa o pipeline de cadastro: papel -> formato -> horário
// (ou janela de agendamento, quando agendada) -> duplicidade -> cota ->
// gravação -> broadcast. A primeira falha interrompe com o erro
// correspondente.
func (s *PlateService) Register(ctx context.Context, actorID string, input RegisterPlateInput) (*entities.Plate, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, storageError(err)
	}
	if actor == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	if !actor.IsTransportadora() {
		return nil, domainerrors.ErrForbidden
	}

	number, err := valueobjects.NewPlateNumber(input.Number)
	if err != nil {
		metrics.RegistrationsDenied.WithLabelValues("formato").Inc()
		return nil, domainerrors.ErrInvalidPlateFormat
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	now := s.now()
	if input.ScheduledDate != nil {
		// Placa agendada: o compromisso é futuro, então a checagem
		// vale para a data/hora agendada, não para o "agora"
		if !policy.WithinAllowedTime(*input.ScheduledDate, cfg) {
			metrics.RegistrationsDenied.WithLabelValues("horario").Inc()
			return nil, domainerrors.ErrOutsideAllowedTime
		}

		windows, err := s.windows.List(ctx)
		if err != nil {
			return nil, storageError(err)
		}
		if !policy.WithinActiveWindows(*input.ScheduledDate, windows) {
			metrics.RegistrationsDenied.WithLabelValues("janela").Inc()
			return nil, domainerrors.ErrOutsideSchedulingWindow
		}
	} else {
		if !policy.WithinAllowedTime(now, cfg) {
			metrics.RegistrationsDenied.WithLabelValues("horario").Inc()
			return nil, domainerrors.ErrOutsideAllowedTime
		}
	}

	existing, err := s.plates.FindByNumber(ctx, number.String())
	if err != nil {
		return nil, storageError(err)
	}
	if existing != nil {
		metrics.RegistrationsDenied.WithLabelValues("duplicada").Inc()
		return nil, domainerrors.ErrDuplicatePlate
	}

	carrierCount, err := s.plates.CountByTransportadora(ctx, actor.ID)
	if err != nil {
		return nil, storageError(err)
	}
	totalCount, err := s.plates.Count(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	carriers, err := s.users.ListTransportadoras(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	carrierLimit := actor.PlateLimit(cfg.MaxPlatesPerTransportadora)
	totalAvailable := policy.TotalAvailableTrips(carriers, cfg)

	if err := policy.CanRegister(int(carrierCount), carrierLimit, int(totalCount), totalAvailable); err != nil {
		metrics.RegistrationsDenied.WithLabelValues("cota").Inc()
		return nil, err
	}

	plate := &entities.Plate{
		ID:                 uuid.NewString(),
		Number:             number.String(),
		TransportadoraID:   actor.ID,
		TransportadoraName: actor.Name,
		CreatedAt:          now,
		ScheduledDate:      input.ScheduledDate,
	}
	if obs := strings.TrimSpace(input.Observations); obs != "" {
		plate.Observations = &obs
	}

	// O índice único do storage decide a corrida entre dois cadastros
	// simultâneos do mesmo número
	if err := s.plates.Create(ctx, plate); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("plate registered",
		"plate", plate.Number,
		"transportadora", actor.Username,
	)
	metrics.PlatesRegistered.Inc()

	s.notifier.Broadcast(ports.Event{Type: ports.EventPlateAdded, Plate: plate})
	return plate, nil
}

// ConfirmArrival marca a chegada física de um veículo
func (s *PlateService) ConfirmArrival(ctx context.Context, plateID string) (*entities.Plate, error) {
	plate, err := s.plates.FindByID(ctx, plateID)
	if err != nil {
		return nil, storageError(err)
	}
	if plate == nil {
		return nil, domainerrors.ErrPlateNotFound
	}

	if err := plate.ConfirmArrival(s.now()); err != nil {
		return nil, err
	}

	if err := s.plates.Update(ctx, plate); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("arrival confirmed", "plate", plate.Number)
	s.notifier.Broadcast(ports.Event{Type: ports.EventPlateUpdated, Plate: plate})
	return plate, nil
}

// ConfirmDeparture marca a saída física de um veículo; exige chegada
// confirmada
func (s *PlateService) ConfirmDeparture(ctx context.Context, plateID string) (*entities.Plate, error) {
	plate, err := s.plates.FindByID(ctx, plateID)
	if err != nil {
		return nil, storageError(err)
	}
	if plate == nil {
		return nil, domainerrors.ErrPlateNotFound
	}

	if err := plate.ConfirmDeparture(s.now()); err != nil {
		return nil, err
	}

	if err := s.plates.Update(ctx, plate); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("departure confirmed", "plate", plate.Number)
	s.notifier.Broadcast(ports.Event{Type: ports.EventPlateUpdated, Plate: plate})
	return plate, nil
}

// Delete remove uma placa. Admin remove qualquer uma; a transportadora
// só remove as próprias.
func (s *PlateService) Delete(ctx context.Context, actor *ports.TokenClaims, plateID string) error {
	plate, err := s.plates.FindByID(ctx, plateID)
	if err != nil {
		return storageError(err)
	}
	if plate == nil {
		return domainerrors.ErrPlateNotFound
	}

	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleTransportadora:
		if plate.TransportadoraID != actor.UserID {
			return domainerrors.ErrForbidden
		}
	default:
		return domainerrors.ErrForbidden
	}

	if err := s.plates.Delete(ctx, plateID); err != nil {
		return storageError(err)
	}

	s.logger.Info("plate removed", "plate", plate.Number, "by", actor.Username)
	s.notifier.Broadcast(ports.Event{Type: ports.EventPlateRemoved, Plate: plate})
	return nil
}

// List retorna as placas visíveis para o ator: admin e portaria veem
// todas; transportadora só as próprias
func (s *PlateService) List(ctx context.Context, actor *ports.TokenClaims) ([]*entities.Plate, error) {
	if actor.Role == entities.RoleTransportadora {
		plates, err := s.plates.ListByTransportadora(ctx, actor.UserID)
		if err != nil {
			return nil, storageError(err)
		}
		return plates, nil
	}

	plates, err := s.plates.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return plates, nil
}

// Stats agrega os totais exibidos nos painéis
type Stats struct {
	Total              int
	Aguardando         int
	NoPatio            int
	Finalizadas        int
	ViagensDisponiveis int
}

// Stats computa os totais do pátio e as viagens disponíveis
func (s *PlateService) Stats(ctx context.Context) (*Stats, error) {
	plates, err := s.plates.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	carriers, err := s.users.ListTransportadoras(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	stats := &Stats{
		Total:              len(plates),
		ViagensDisponiveis: policy.TotalAvailableTrips(carriers, cfg),
	}
	for _, p := range plates {
		switch p.Status() {
		case entities.StatusAguardando:
			stats.Aguardando++
		case entities.StatusNoPatio:
			stats.NoPatio++
		case entities.StatusFinalizada:
			stats.Finalizadas++
		}
	}
	return stats, nil
}
