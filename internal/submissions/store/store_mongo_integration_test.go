//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/models"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/store"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/testutil/containers"
)

type MongoStoreSuite struct {
	suite.Suite
	db *mongo.Database
}

func TestMongoStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	mc := containers.NewMongoContainer(t)
	s := &MongoStoreSuite{db: mc.Database("shp_test")}
	suite.Run(t, s)
}

func (s *MongoStoreSuite) SetupTest() {
	ctx := context.Background()
	for _, name := range []string{
		store.CollectionDonations, store.CollectionMemberships,
		store.CollectionVolunteers, store.CollectionContacts,
	} {
		s.Require().NoError(s.db.Collection(name).Drop(ctx))
	}
}

// Mongo stores timestamps at millisecond precision, so test times are
// pre-truncated to survive the round trip intact.
func (s *MongoStoreSuite) at(offset time.Duration) time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(offset).Truncate(time.Millisecond)
}

func (s *MongoStoreSuite) donationAt(id string, created time.Time) models.Donation {
	req := models.DonationCreate{
		Name:   "Rajesh Kumar",
		Email:  "rajesh@example.com",
		Phone:  "9876543210",
		Amount: "500",
	}
	s.Require().NoError(req.Validate())
	return models.NewDonation(req, id, created)
}

func (s *MongoStoreSuite) TestDonationRoundTrip() {
	ctx := context.Background()
	donations := store.NewMongo[models.Donation](s.db, store.CollectionDonations)

	want := s.donationAt("d1", s.at(0))
	want.Message = "keep it up"
	s.Require().NoError(donations.Insert(ctx, want))

	got, err := donations.List(ctx, store.Page{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(got, 1)

	s.Equal(want.ID, got[0].ID)
	s.Equal(want.Name, got[0].Name)
	s.Equal(want.Email, got[0].Email)
	s.Equal(want.Phone, got[0].Phone)
	s.Equal(want.Amount, got[0].Amount)
	s.Equal(want.Message, got[0].Message)
	s.Equal(want.Status, got[0].Status)
	s.True(want.CreatedAt.Equal(got[0].CreatedAt))
}

func (s *MongoStoreSuite) TestListOrderingAndWindow() {
	ctx := context.Background()
	donations := store.NewMongo[models.Donation](s.db, store.CollectionDonations)

	for i := 0; i < 5; i++ {
		d := s.donationAt(string(rune('a'+i)), s.at(time.Duration(i)*time.Minute))
		s.Require().NoError(donations.Insert(ctx, d))
	}

	got, err := donations.List(ctx, store.Page{Skip: 1, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	// Newest first is e,d,c,b,a; skipping one leaves d,c.
	s.Equal("d", got[0].ID)
	s.Equal("c", got[1].ID)

	empty, err := donations.List(ctx, store.Page{Skip: 10, Limit: 5})
	s.Require().NoError(err)
	s.Empty(empty)

	// Limit 0 is unbounded.
	all, err := donations.List(ctx, store.Page{Limit: 0})
	s.Require().NoError(err)
	s.Len(all, 5)
}

func (s *MongoStoreSuite) TestCounts() {
	ctx := context.Background()
	donations := store.NewMongo[models.Donation](s.db, store.CollectionDonations)

	times := []time.Duration{-48 * time.Hour, -time.Minute, 0, time.Minute}
	for i, offset := range times {
		d := s.donationAt(string(rune('a'+i)), s.at(offset))
		s.Require().NoError(donations.Insert(ctx, d))
	}

	total, err := donations.Count(ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), total)

	// Boundary is inclusive: the record created exactly at the cutoff counts.
	recent, err := donations.CountCreatedSince(ctx, s.at(0))
	s.Require().NoError(err)
	s.Equal(int64(2), recent)
}

func (s *MongoStoreSuite) TestMembershipFieldsPersist() {
	ctx := context.Background()
	memberships := store.NewMongo[models.Membership](s.db, store.CollectionMemberships)

	req := models.MembershipCreate{
		Name:           "Priya Sharma",
		Email:          "priya@example.com",
		Phone:          "8123456789",
		MembershipType: "family",
		Address:        "42 MG Road, Bengaluru",
	}
	s.Require().NoError(req.Validate())
	want := models.NewMembership(req, "m1", "SHP1748781045", s.at(0))
	s.Require().NoError(memberships.Insert(ctx, want))

	got, err := memberships.List(ctx, store.Page{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(models.MembershipFamily, got[0].MembershipType)
	s.Equal("SHP1748781045", got[0].MembershipNumber)
	s.Equal(want.Address, got[0].Address)
}

func (s *MongoStoreSuite) TestEmptyCollection() {
	ctx := context.Background()
	contacts := store.NewMongo[models.Contact](s.db, store.CollectionContacts)

	got, err := contacts.List(ctx, store.Page{Limit: 100})
	s.Require().NoError(err)
	s.Empty(got)

	total, err := contacts.Count(ctx)
	s.Require().NoError(err)
	s.Zero(total)
}
