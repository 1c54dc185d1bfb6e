// Package service orchestrates submission creation and reads: build the
// record from a validated request, persist it, and wrap storage failures with
// the internal error code. Field validation has already happened at the
// handler boundary; nothing here re-checks input shape.
package service

import (
	"context"
	"log/slog"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/idgen"
	submetrics "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/metrics"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/models"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/store"
	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/requestcontext"
)

// Stores bundles the four typed collections the service writes and reads.
// Constructed in main and injected; the service owns no connection state.
type Stores struct {
	Donations   store.Collection[models.Donation]
	Memberships store.Collection[models.Membership]
	Volunteers  store.Collection[models.Volunteer]
	Contacts    store.Collection[models.Contact]
}

// IDSource produces primary ids. It exists so tests can pin id generation;
// production uses idgen.NewSubmissionID.
type IDSource func() string

// Service implements the submission operations behind the HTTP handlers.
type Service struct {
	stores  Stores
	logger  *slog.Logger
	metrics *submetrics.Metrics
	newID   IDSource
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithMetrics attaches submission metrics.
func WithMetrics(m *submetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithIDSource overrides the primary-id generator.
func WithIDSource(ids IDSource) Option {
	return func(s *Service) { s.newID = ids }
}

// New constructs the submissions service.
func New(stores Stores, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		stores: stores,
		logger: logger,
		newID:  idgen.NewSubmissionID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDonation persists a new donation submission and returns the full
// record. The timestamp and any reference-derived values come from the
// request-scoped clock.
func (s *Service) CreateDonation(ctx context.Context, req models.DonationCreate) (*models.Donation, error) {
	donation := models.NewDonation(req, s.newID(), requestcontext.Now(ctx))
	if err := s.stores.Donations.Insert(ctx, donation); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create donation")
	}
	s.incrementCreated(submetrics.KindDonation)
	s.logger.InfoContext(ctx, "new donation created",
		"request_id", requestcontext.RequestID(ctx),
		"donation_id", donation.ID,
		"amount", donation.Amount,
	)
	return &donation, nil
}

// ListDonations returns donations newest-first within the given window.
func (s *Service) ListDonations(ctx context.Context, page store.Page) ([]models.Donation, error) {
	out, err := s.stores.Donations.List(ctx, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch donations")
	}
	return out, nil
}

// CreateMembership persists a new membership application. The membership
// number is derived from the request clock at second resolution.
func (s *Service) CreateMembership(ctx context.Context, req models.MembershipCreate) (*models.Membership, error) {
	now := requestcontext.Now(ctx)
	number := idgen.ReferenceNumber(idgen.MembershipPrefix, now)
	membership := models.NewMembership(req, s.newID(), number, now)
	if err := s.stores.Memberships.Insert(ctx, membership); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create membership")
	}
	s.incrementCreated(submetrics.KindMembership)
	s.logger.InfoContext(ctx, "new membership created",
		"request_id", requestcontext.RequestID(ctx),
		"membership_id", membership.ID,
		"membership_type", membership.MembershipType,
	)
	return &membership, nil
}

// ListMemberships returns membership applications newest-first.
func (s *Service) ListMemberships(ctx context.Context, page store.Page) ([]models.Membership, error) {
	out, err := s.stores.Memberships.List(ctx, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch memberships")
	}
	return out, nil
}

// CreateVolunteer persists a new volunteer registration.
func (s *Service) CreateVolunteer(ctx context.Context, req models.VolunteerCreate) (*models.Volunteer, error) {
	now := requestcontext.Now(ctx)
	volunteerID := idgen.ReferenceNumber(idgen.VolunteerPrefix, now)
	volunteer := models.NewVolunteer(req, s.newID(), volunteerID, now)
	if err := s.stores.Volunteers.Insert(ctx, volunteer); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create volunteer registration")
	}
	s.incrementCreated(submetrics.KindVolunteer)
	s.logger.InfoContext(ctx, "new volunteer registered",
		"request_id", requestcontext.RequestID(ctx),
		"volunteer_id", volunteer.ID,
	)
	return &volunteer, nil
}

// ListVolunteers returns volunteer registrations newest-first.
func (s *Service) ListVolunteers(ctx context.Context, page store.Page) ([]models.Volunteer, error) {
	out, err := s.stores.Volunteers.List(ctx, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch volunteers")
	}
	return out, nil
}

// CreateContact persists a new contact message.
func (s *Service) CreateContact(ctx context.Context, req models.ContactCreate) (*models.Contact, error) {
	contact := models.NewContact(req, s.newID(), requestcontext.Now(ctx))
	if err := s.stores.Contacts.Insert(ctx, contact); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create contact message")
	}
	s.incrementCreated(submetrics.KindContact)
	s.logger.InfoContext(ctx, "new contact message",
		"request_id", requestcontext.RequestID(ctx),
		"contact_id", contact.ID,
		"subject", contact.Subject,
	)
	return &contact, nil
}

// ListContacts returns contact messages newest-first.
func (s *Service) ListContacts(ctx context.Context, page store.Page) ([]models.Contact, error) {
	out, err := s.stores.Contacts.List(ctx, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch contact messages")
	}
	return out, nil
}

func (s *Service) incrementCreated(kind string) {
	if s.metrics != nil {
		s.metrics.IncrementCreated(kind)
	}
}
