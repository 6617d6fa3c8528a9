package handler

import (
	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/Zerogne/Haneducation-sub000/internal/storage"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.uber.org/zap"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	st           store.Store
	contents     *service.ContentService
	students     *service.StudentService
	catalog      *service.CatalogService
	testimonials *service.TestimonialService
	team         *service.TeamService
	partners     *service.PartnerService
	images       *service.ImageService
	users        *service.UserService
	dashboard    *service.DashboardService
	uploader     storage.Uploader
	quotaBytes   int64
	log          *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(st store.Store, uploader storage.Uploader, storageQuotaMB int64, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		st:           st,
		contents:     service.NewContentService(st.Collection(db.ColContent), log),
		students:     service.NewStudentService(st.Collection(db.ColStudents)),
		catalog:      service.NewCatalogService(st.Collection(db.ColServices)),
		testimonials: service.NewTestimonialService(st.Collection(db.ColTestimonials)),
		team:         service.NewTeamService(st.Collection(db.ColTeam)),
		partners:     service.NewPartnerService(st.Collection(db.ColPartners)),
		images:       service.NewImageService(st.Collection(db.ColImages)),
		users:        service.NewUserService(st.Collection(db.ColUsers)),
		dashboard:    service.NewDashboardService(st),
		uploader:     uploader,
		quotaBytes:   storageQuotaMB * 1024 * 1024,
		log:          log,
	}
}

// Users exposes the user service for startup bootstrap.
func (a *API) Users() *service.UserService {
	return a.users
}
