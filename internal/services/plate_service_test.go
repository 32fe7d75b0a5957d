package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/logging"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/persistence/memory"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// captureNotifier acumula os eventos emitidos pelos serviços
type captureNotifier struct {
	mu     sync.Mutex
	events []ports.Event
}

func (n *captureNotifier) Broadcast(event ports.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *captureNotifier) Events() []ports.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.Event, len(n.events))
	copy(out, n.events)
	return out
}

var _ = Describe("PlateService", func() {
	var (
		ctx      context.Context
		store    *memory.Store
		notifier *captureNotifier
		svc      *services.PlateService
		carrier  *entities.User
	)

	// segunda-feira às 10:00, dentro do horário padrão
	businessHours := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	intPtr := func(v int) *int { return &v }

	newCarrier := func(id, username, name string, maxPlates *int) *entities.User {
		user := &entities.User{
			ID:        id,
			Username:  username,
			Name:      name,
			Role:      entities.RoleTransportadora,
			MaxPlates: maxPlates,
		}
		Expect(store.Users().Create(ctx, user)).To(Succeed())
		return user
	}

	BeforeEach(func() {
		ctx = context.Background()
		store = memory.NewStore()
		notifier = &captureNotifier{}
		logger := logging.NewSlogLogger("error")

		svc = services.NewPlateService(
			store.Plates(),
			store.Users(),
			store.Config(),
			store.Windows(),
			notifier,
			logger,
		).WithClock(func() time.Time { return businessHours })

		carrier = newCarrier("carrier-1", "transportadora1", "Transportes ABC", intPtr(2))
	})

	Describe("Register", func() {
		It("cadastra uma placa válida e emite PLATE_ADDED", func() {
			plate, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())

			Expect(plate.Number).To(Equal("ABC-1234"))
			Expect(plate.TransportadoraID).To(Equal(carrier.ID))
			Expect(plate.TransportadoraName).To(Equal("Transportes ABC"))
			Expect(plate.Status()).To(Equal(entities.StatusAguardando))

			events := notifier.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(ports.EventPlateAdded))
			Expect(events[0].Plate.Number).To(Equal("ABC-1234"))
		})

		It("normaliza o número para maiúsculas", func() {
			plate, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "abc1d23"})
			Expect(err).NotTo(HaveOccurred())
			Expect(plate.Number).To(Equal("ABC1D23"))
		})

		It("rejeita formato inválido", func() {
			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC1234"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidPlateFormat))
		})

		It("rejeita cadastro duplicado, mesmo com caixa diferente", func() {
			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "abc-1234"})
			Expect(err).To(MatchError(domainerrors.ErrDuplicatePlate))
		})

		It("aplica o limite individual da transportadora", func() {
			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "XYZ1D23"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "QRS-9999"})
			Expect(err).To(MatchError(domainerrors.ErrCarrierQuotaExceeded))

			var quotaErr *domainerrors.QuotaError
			Expect(errors.As(err, &quotaErr)).To(BeTrue())
			Expect(quotaErr.Limit).To(Equal(2))
		})

		It("aplica o limite total do sistema, somado sobre as transportadoras", func() {
			// placas herdadas de uma transportadora já removida ocupam
			// vagas do total sem contar no limite individual de ninguém
			for i, number := range []string{"GHO-0001", "GHO-0002", "GHO-0003"} {
				Expect(store.Plates().Create(ctx, &entities.Plate{
					ID:               number,
					Number:           number,
					TransportadoraID: "removida",
					CreatedAt:        businessHours.Add(time.Duration(i) * time.Minute),
				})).To(Succeed())
			}

			// soma dos limites: só carrier-1 existe, com limite 2; as
			// três vagas fantasmas já excedem o total disponível
			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).To(MatchError(domainerrors.ErrSystemQuotaExceeded))
		})

		It("rejeita cadastro fora do horário permitido", func() {
			sunday := time.Date(2026, 6, 14, 10, 0, 0, 0, time.UTC)
			svc.WithClock(func() time.Time { return sunday })

			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).To(MatchError(domainerrors.ErrOutsideAllowedTime))
		})

		It("rejeita ator que não é transportadora", func() {
			gate := &entities.User{ID: "gate-1", Username: "portaria", Name: "Portaria", Role: entities.RolePortaria}
			Expect(store.Users().Create(ctx, gate)).To(Succeed())

			_, err := svc.Register(ctx, gate.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("rejeita ator desconhecido", func() {
			_, err := svc.Register(ctx, "nao-existe", services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		Context("com data agendada", func() {
			scheduled := time.Date(2026, 6, 17, 14, 0, 0, 0, time.UTC)

			It("valida o horário global contra a data agendada, não o relógio", func() {
				// relógio fora do expediente; a data agendada decide
				svc.WithClock(func() time.Time {
					return time.Date(2026, 6, 15, 22, 0, 0, 0, time.UTC)
				})

				_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{
					Number:        "ABC-1234",
					ScheduledDate: &scheduled,
				})
				Expect(err).To(MatchError(domainerrors.ErrOutsideAllowedTime))
			})

			It("exige que a data caia em alguma janela ativa", func() {
				window := &entities.SchedulingWindow{
					ID:        "w1",
					StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
					StartTime: "08:00",
					EndTime:   "18:00",
					IsActive:  true,
				}
				Expect(store.Windows().Create(ctx, window)).To(Succeed())

				_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{
					Number:        "ABC-1234",
					ScheduledDate: &scheduled,
				})
				Expect(err).To(MatchError(domainerrors.ErrOutsideSchedulingWindow))
			})

			It("aceita data dentro de uma janela ativa", func() {
				window := &entities.SchedulingWindow{
					ID:        "w1",
					StartDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
					StartTime: "08:00",
					EndTime:   "18:00",
					IsActive:  true,
				}
				Expect(store.Windows().Create(ctx, window)).To(Succeed())

				plate, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{
					Number:        "ABC-1234",
					ScheduledDate: &scheduled,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(plate.ScheduledDate).NotTo(BeNil())
			})

			It("sem janelas ativas o horário global sozinho governa", func() {
				plate, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{
					Number:        "ABC-1234",
					ScheduledDate: &scheduled,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(plate.Status()).To(Equal(entities.StatusAguardando))
			})
		})
	})

	Describe("ciclo de chegada e saída", func() {
		var plate *entities.Plate

		BeforeEach(func() {
			var err error
			plate, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("confirma chegada e depois saída, emitindo PLATE_UPDATED", func() {
			updated, err := svc.ConfirmArrival(ctx, plate.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status()).To(Equal(entities.StatusNoPatio))

			updated, err = svc.ConfirmDeparture(ctx, plate.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status()).To(Equal(entities.StatusFinalizada))

			events := notifier.Events()
			Expect(events).To(HaveLen(3))
			Expect(events[1].Type).To(Equal(ports.EventPlateUpdated))
			Expect(events[2].Type).To(Equal(ports.EventPlateUpdated))
		})

		It("rejeita saída antes da chegada", func() {
			_, err := svc.ConfirmDeparture(ctx, plate.ID)
			Expect(err).To(MatchError(domainerrors.ErrArrivalRequired))
		})

		It("rejeita chegada repetida", func() {
			_, err := svc.ConfirmArrival(ctx, plate.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ConfirmArrival(ctx, plate.ID)
			Expect(err).To(MatchError(domainerrors.ErrAlreadyArrived))
		})

		It("retorna não encontrado para placa inexistente", func() {
			_, err := svc.ConfirmArrival(ctx, "nao-existe")
			Expect(err).To(MatchError(domainerrors.ErrPlateNotFound))
		})
	})

	Describe("Delete", func() {
		var plate *entities.Plate

		adminClaims := &ports.TokenClaims{UserID: "admin-1", Username: "admin", Role: entities.RoleAdmin}

		BeforeEach(func() {
			var err error
			plate, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("admin remove qualquer placa e emite PLATE_REMOVED", func() {
			Expect(svc.Delete(ctx, adminClaims, plate.ID)).To(Succeed())

			events := notifier.Events()
			Expect(events[len(events)-1].Type).To(Equal(ports.EventPlateRemoved))
		})

		It("transportadora remove a própria placa", func() {
			claims := &ports.TokenClaims{UserID: carrier.ID, Username: carrier.Username, Role: entities.RoleTransportadora}
			Expect(svc.Delete(ctx, claims, plate.ID)).To(Succeed())
		})

		It("transportadora não remove placa alheia", func() {
			claims := &ports.TokenClaims{UserID: "outra", Username: "outra", Role: entities.RoleTransportadora}
			err := svc.Delete(ctx, claims, plate.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("portaria não remove placas", func() {
			claims := &ports.TokenClaims{UserID: "gate-1", Username: "portaria", Role: entities.RolePortaria}
			err := svc.Delete(ctx, claims, plate.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			other := newCarrier("carrier-2", "transportadora2", "Logística XYZ", intPtr(3))

			_, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Register(ctx, other.ID, services.RegisterPlateInput{Number: "XYZ1D23"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("transportadora enxerga apenas as próprias placas", func() {
			claims := &ports.TokenClaims{UserID: carrier.ID, Role: entities.RoleTransportadora}
			plates, err := svc.List(ctx, claims)
			Expect(err).NotTo(HaveOccurred())
			Expect(plates).To(HaveLen(1))
			Expect(plates[0].Number).To(Equal("ABC-1234"))
		})

		It("portaria enxerga todas as placas", func() {
			claims := &ports.TokenClaims{UserID: "gate-1", Role: entities.RolePortaria}
			plates, err := svc.List(ctx, claims)
			Expect(err).NotTo(HaveOccurred())
			Expect(plates).To(HaveLen(2))
		})
	})

	Describe("Stats", func() {
		It("conta as placas por estado e as viagens disponíveis", func() {
			newCarrier("carrier-2", "transportadora2", "Logística XYZ", intPtr(3))

			first, err := svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "ABC-1234"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Register(ctx, carrier.ID, services.RegisterPlateInput{Number: "XYZ1D23"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ConfirmArrival(ctx, first.ID)
			Expect(err).NotTo(HaveOccurred())

			stats, err := svc.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Total).To(Equal(2))
			Expect(stats.Aguardando).To(Equal(1))
			Expect(stats.NoPatio).To(Equal(1))
			Expect(stats.Finalizadas).To(Equal(0))
			Expect(stats.ViagensDisponiveis).To(Equal(5))
		})
	})
})
