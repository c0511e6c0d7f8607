package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

// memoryStore backs the ticket, participant and event fakes so scenario
// tests can observe persisted state.
type memoryStore struct {
	mu           sync.Mutex
	tickets      map[uuid.UUID]domain.Ticket
	participants map[uuid.UUID]domain.Participant
	events       map[uuid.UUID]domain.Event

	failSetCheckedIn error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		tickets:      make(map[uuid.UUID]domain.Ticket),
		participants: make(map[uuid.UUID]domain.Participant),
		events:       make(map[uuid.UUID]domain.Event),
	}
}

func (s *memoryStore) addEvent(date time.Time) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.Event{ID: uuid.New(), Name: "Hackathon", Date: date}
	s.events[e.ID] = e
	return e
}

func (s *memoryStore) addParticipant(eventID uuid.UUID, name string) domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Participant{ID: uuid.New(), EventID: eventID, Name: name, Email: name + "@example.com"}
	s.participants[p.ID] = p
	return p
}

func (s *memoryStore) ticket(id uuid.UUID) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets[id]
}

func (s *memoryStore) participant(id uuid.UUID) domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participants[id]
}

func (s *memoryStore) putTicket(t domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.ID] = t
}

type memTickets struct{ *memoryStore }

func (m memTickets) Create(_ context.Context, ticket *domain.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tickets {
		if t.TicketNumber == ticket.TicketNumber {
			return domain.ErrDuplicateTicketNumber
		}
	}
	m.tickets[ticket.ID] = *ticket
	return nil
}

func (m memTickets) GetByID(_ context.Context, id uuid.UUID) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m memTickets) GetByNumber(_ context.Context, number string) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tickets {
		if t.TicketNumber == number {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m memTickets) ListByEvent(_ context.Context, eventID uuid.UUID) ([]domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Ticket
	for _, t := range m.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m memTickets) MarkUsed(_ context.Context, id uuid.UUID, checkIn domain.CheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tickets[id]
	if !ok || t.Status != domain.TicketValid {
		return domain.ErrStatusConflict
	}

	at, by := checkIn.Time, checkIn.By
	t.Status = domain.TicketUsed
	t.CheckInTime = &at
	t.CheckInBy = &by
	t.CheckInLocation = checkIn.Location
	m.tickets[id] = t
	return nil
}

func (m memTickets) MarkStatus(_ context.Context, id uuid.UUID, status domain.TicketStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tickets[id]
	if !ok || t.Status != domain.TicketValid {
		return domain.ErrStatusConflict
	}

	t.Status = status
	m.tickets[id] = t
	return nil
}

func (m memTickets) CountByStatus(_ context.Context, eventID uuid.UUID) (map[domain.TicketStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[domain.TicketStatus]int)
	for _, t := range m.tickets {
		if t.EventID == eventID {
			counts[t.Status]++
		}
	}
	return counts, nil
}

func (m memTickets) CheckInTimesSince(_ context.Context, eventID uuid.UUID, since time.Time) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []time.Time
	for _, t := range m.tickets {
		if t.EventID == eventID && t.Status == domain.TicketUsed && !t.CheckInTime.Before(since) {
			out = append(out, *t.CheckInTime)
		}
	}
	return out, nil
}

func (m memTickets) ListUnsyncedCheckIns(_ context.Context, limit int) ([]domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Ticket
	for _, t := range m.tickets {
		if t.Status == domain.TicketUsed && !m.participants[t.ParticipantID].CheckedIn {
			out = append(out, t)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type memParticipants struct{ *memoryStore }

func (m memParticipants) GetByID(_ context.Context, id uuid.UUID) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.participants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m memParticipants) ListByEvent(_ context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Participant
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m memParticipants) SetCheckedIn(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSetCheckedIn != nil {
		err := m.failSetCheckedIn
		m.failSetCheckedIn = nil
		return err
	}

	p, ok := m.participants[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CheckedIn = true
	if p.CheckedInAt == nil {
		p.CheckedInAt = &at
	}
	m.participants[id] = p
	return nil
}

func (m memParticipants) AttachTicket(_ context.Context, participantID, ticketID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.participants[participantID]
	if !ok {
		return domain.ErrNotFound
	}
	p.TicketID = &ticketID
	m.participants[participantID] = p
	return nil
}

type memEvents struct{ *memoryStore }

func (m memEvents) GetByID(_ context.Context, id uuid.UUID) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

// nopCache never hits and records invalidations.
type nopCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (c *nopCache) GetStats(context.Context, uuid.UUID) (*domain.CheckInStats, bool, error) {
	return nil, false, nil
}

func (c *nopCache) SetStats(context.Context, *domain.CheckInStats) error { return nil }

func (c *nopCache) GetParticipants(context.Context, uuid.UUID) ([]domain.Participant, bool, error) {
	return nil, false, nil
}

func (c *nopCache) SetParticipants(context.Context, uuid.UUID, []domain.Participant) error {
	return nil
}

func (c *nopCache) Invalidate(_ context.Context, eventID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, eventID)
	return nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) PublishTicketEvent(_ context.Context, routingKey string, _ *domain.Ticket) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

var errBrokerDown = errors.New("broker down")
