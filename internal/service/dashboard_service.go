package service

import (
	"context"
	"fmt"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// DashboardService aggregates the counts shown on the admin dashboard.
type DashboardService struct {
	st store.Store
}

// DashboardSummary holds real collection counts. Counts of zero are reported
// as zero; nothing is padded for presentation.
type DashboardSummary struct {
	Students         int64        `json:"students"`
	NewRegistrations int64        `json:"newRegistrations"`
	Services         int64        `json:"services"`
	Testimonials     int64        `json:"testimonials"`
	TeamMembers      int64        `json:"teamMembers"`
	Partners         int64        `json:"partners"`
	Images           int64        `json:"images"`
	ContentRecords   int64        `json:"contentRecords"`
	RecentStudents   []db.Student `json:"recentStudents"`
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(st store.Store) *DashboardService {
	return &DashboardService{st: st}
}

// Summary counts every collection and returns the latest registrations.
func (s *DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	var summary DashboardSummary
	counts := []struct {
		collection string
		filter     bson.M
		dst        *int64
	}{
		{db.ColStudents, bson.M{}, &summary.Students},
		{db.ColStudents, bson.M{"status": db.StudentStatusNew}, &summary.NewRegistrations},
		{db.ColServices, bson.M{}, &summary.Services},
		{db.ColTestimonials, bson.M{}, &summary.Testimonials},
		{db.ColTeam, bson.M{}, &summary.TeamMembers},
		{db.ColPartners, bson.M{}, &summary.Partners},
		{db.ColImages, bson.M{}, &summary.Images},
		{db.ColContent, bson.M{}, &summary.ContentRecords},
	}

	for _, c := range counts {
		count, err := s.st.Collection(c.collection).Count(ctx, c.filter)
		if err != nil {
			return summary, fmt.Errorf("count %s: %w", c.collection, err)
		}
		*c.dst = count
	}

	summary.RecentStudents = []db.Student{}
	err := s.st.Collection(db.ColStudents).Find(ctx, bson.M{}, store.FindOptions{
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
		Limit: 5,
	}, &summary.RecentStudents)
	if err != nil {
		return summary, fmt.Errorf("load recent students: %w", err)
	}
	return summary, nil
}
