package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/models"
	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/requestcontext"
)

// Stats returns the total per collection plus recent_activity, the count of
// donations created on or after the start of the current UTC day.
//
// The five counts run concurrently and each hits the store independently;
// under concurrent writes they may reflect slightly different instants. That
// is acceptable for a dashboard figure and avoids any cross-collection
// transaction.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	startOfDay := startOfUTCDay(requestcontext.Now(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalDonations, err = s.stores.Donations.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalMembers, err = s.stores.Memberships.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalVolunteers, err = s.stores.Volunteers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalContacts, err = s.stores.Contacts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentActivity, err = s.stores.Donations.CountCreatedSince(gctx, startOfDay)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch statistics")
	}
	return stats, nil
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
