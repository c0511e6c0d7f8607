package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/setu-events/ticket-service/internal/core/domain"
	"github.com/setu-events/ticket-service/internal/core/services"
)

type TicketService interface {
	IssueTicket(ctx context.Context, req services.IssueTicketRequest) (*domain.Ticket, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
	ValidateAndCheckIn(ctx context.Context, token string, performedBy uuid.UUID, location *domain.GeoPoint) (*domain.Ticket, error)
	CancelTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
	ListEventTickets(ctx context.Context, eventID uuid.UUID) ([]domain.Ticket, error)
	ComputeCheckInStats(ctx context.Context, eventID uuid.UUID) (*domain.CheckInStats, error)
}

type ParticipantRegistry interface {
	ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error)
	Refresh(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error)
}

// TicketLinker records the issued ticket on the participant.
type TicketLinker interface {
	AttachTicket(ctx context.Context, participantID uuid.UUID, ticketID uuid.UUID) error
}

type CheckInRequest struct {
	Token       string           `json:"token" binding:"required"`
	PerformedBy string           `json:"performed_by" binding:"required"`
	Location    *domain.GeoPoint `json:"location"`
}

type TicketHandler struct {
	svc      TicketService
	registry ParticipantRegistry
	linker   TicketLinker
	logger   *zap.Logger
}

func NewTicketHandler(svc TicketService, registry ParticipantRegistry, linker TicketLinker, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{svc: svc, registry: registry, linker: linker, logger: logger}
}

func (h *TicketHandler) IssueTicket(c *gin.Context) {
	var req services.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid json body")
		return
	}

	ticket, err := h.svc.IssueTicket(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.linker.AttachTicket(c.Request.Context(), ticket.ParticipantID, ticket.ID); err != nil {
		h.logger.Warn("failed to link ticket to participant",
			zap.String("ticket_id", ticket.ID.String()),
			zap.String("participant_id", ticket.ParticipantID.String()),
			zap.Error(err),
		)
	}

	respondCreated(c, ticket)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ticket, err := h.svc.GetTicket(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respondOK(c, ticket)
}

func (h *TicketHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "token and performed_by are required")
		return
	}

	performedBy, err := uuid.Parse(req.PerformedBy)
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid performed_by")
		return
	}

	ticket, err := h.svc.ValidateAndCheckIn(c.Request.Context(), req.Token, performedBy, req.Location)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respondOK(c, ticket)
}

func (h *TicketHandler) CancelTicket(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ticket, err := h.svc.CancelTicket(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respondOK(c, ticket)
}

func (h *TicketHandler) ListEventTickets(c *gin.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}

	tickets, err := h.svc.ListEventTickets(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if tickets == nil {
		tickets = []domain.Ticket{}
	}

	respondOK(c, tickets)
}

func (h *TicketHandler) GetCheckInStats(c *gin.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}

	stats, err := h.svc.ComputeCheckInStats(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respondOK(c, stats)
}

func (h *TicketHandler) ListParticipants(c *gin.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}

	participants, err := h.registry.ListParticipants(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if participants == nil {
		participants = []domain.Participant{}
	}

	respondOK(c, participants)
}

func (h *TicketHandler) RefreshParticipants(c *gin.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}

	participants, err := h.registry.Refresh(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if participants == nil {
		participants = []domain.Participant{}
	}

	respondOK(c, participants)
}

func (h *TicketHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TicketHandler) writeError(c *gin.Context, err error) {
	if te, isTicketErr := domain.AsTicketError(err); isTicketErr {
		switch {
		case errors.Is(te, domain.ErrExpired):
			respondErrorWithData(c, http.StatusGone, codeTicketExpired, te.Error(), string(te.Status), te.Ticket)
			return
		case errors.Is(te, domain.ErrInvalidState):
			respondErrorWithData(c, http.StatusConflict, codeInvalidState, te.Error(), string(te.Status), te.Ticket)
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(c, http.StatusBadRequest, codeInvalidToken, "invalid verification token")
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, codeInvalidInput, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, err.Error())
	default:
		_ = c.Error(err)
		h.logger.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
