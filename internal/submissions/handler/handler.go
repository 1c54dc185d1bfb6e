// Package handler wires the submission endpoints to the submissions service.
// Handlers decode and validate input, delegate, and translate errors; no
// business logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	submetrics "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/metrics"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/models"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/store"
	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/platform/httputil"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/requestcontext"
)

// Pagination defaults for every list endpoint.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// Service defines the interface for submission operations.
type Service interface {
	CreateDonation(ctx context.Context, req models.DonationCreate) (*models.Donation, error)
	ListDonations(ctx context.Context, page store.Page) ([]models.Donation, error)
	CreateMembership(ctx context.Context, req models.MembershipCreate) (*models.Membership, error)
	ListMemberships(ctx context.Context, page store.Page) ([]models.Membership, error)
	CreateVolunteer(ctx context.Context, req models.VolunteerCreate) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context, page store.Page) ([]models.Volunteer, error)
	CreateContact(ctx context.Context, req models.ContactCreate) (*models.Contact, error)
	ListContacts(ctx context.Context, page store.Page) ([]models.Contact, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Handler handles the submission endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *submetrics.Metrics
}

// New creates a new submissions Handler.
func New(service Service, logger *slog.Logger, metrics *submetrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the submission routes on the given router. The /api prefix
// is applied by the caller.
func (h *Handler) Register(r chi.Router) {
	r.Post("/donations", h.handleCreateDonation)
	r.Get("/donations", h.handleListDonations)
	r.Post("/memberships", h.handleCreateMembership)
	r.Get("/memberships", h.handleListMemberships)
	r.Post("/volunteers", h.handleCreateVolunteer)
	r.Get("/volunteers", h.handleListVolunteers)
	r.Post("/contact", h.handleCreateContact)
	r.Get("/contact", h.handleListContacts)
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.DonationCreate](w, r, h.logger)
	if !ok {
		h.incrementRejected(submetrics.KindDonation)
		return
	}

	donation, err := h.service.CreateDonation(ctx, *req)
	if err != nil {
		h.logError(ctx, "error creating donation", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, donation)
}

func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	donations, err := h.service.ListDonations(ctx, page)
	if err != nil {
		h.logError(ctx, "error fetching donations", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, donations)
}

func (h *Handler) handleCreateMembership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.MembershipCreate](w, r, h.logger)
	if !ok {
		h.incrementRejected(submetrics.KindMembership)
		return
	}

	membership, err := h.service.CreateMembership(ctx, *req)
	if err != nil {
		h.logError(ctx, "error creating membership", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, membership)
}

func (h *Handler) handleListMemberships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	memberships, err := h.service.ListMemberships(ctx, page)
	if err != nil {
		h.logError(ctx, "error fetching memberships", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, memberships)
}

func (h *Handler) handleCreateVolunteer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.VolunteerCreate](w, r, h.logger)
	if !ok {
		h.incrementRejected(submetrics.KindVolunteer)
		return
	}

	volunteer, err := h.service.CreateVolunteer(ctx, *req)
	if err != nil {
		h.logError(ctx, "error creating volunteer", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, volunteer)
}

func (h *Handler) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	volunteers, err := h.service.ListVolunteers(ctx, page)
	if err != nil {
		h.logError(ctx, "error fetching volunteers", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, volunteers)
}

func (h *Handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.ContactCreate](w, r, h.logger)
	if !ok {
		h.incrementRejected(submetrics.KindContact)
		return
	}

	contact, err := h.service.CreateContact(ctx, *req)
	if err != nil {
		h.logError(ctx, "error creating contact message", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, contact)
}

func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contacts, err := h.service.ListContacts(ctx, page)
	if err != nil {
		h.logError(ctx, "error fetching contact messages", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, contacts)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logError(ctx, "error fetching stats", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}

func (h *Handler) incrementRejected(kind string) {
	if h.metrics != nil {
		h.metrics.IncrementRejected(kind)
	}
}

// parsePage reads the skip/limit query parameters common to every list
// endpoint. Missing values fall back to the defaults; non-integer or negative
// values are validation failures. A limit of 0 means no limit, matching the
// document store.
func parsePage(r *http.Request) (store.Page, error) {
	page := store.Page{Skip: defaultSkip, Limit: defaultLimit}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return store.Page{}, dErrors.New(dErrors.CodeValidation, "skip must be a non-negative integer")
		}
		page.Skip = v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return store.Page{}, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer")
		}
		page.Limit = v
	}
	return page, nil
}
