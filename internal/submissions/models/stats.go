package models

// Stats is the aggregate view returned by GET /api/stats. The five counts are
// computed independently; under concurrent writes they may reflect slightly
// different instants.
type Stats struct {
	TotalDonations  int64 `json:"total_donations"`
	TotalMembers    int64 `json:"total_members"`
	TotalVolunteers int64 `json:"total_volunteers"`
	TotalContacts   int64 `json:"total_contacts"`
	RecentActivity  int64 `json:"recent_activity"`
}
