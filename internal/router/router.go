// Package router wires the HTTP surface: the public site API and the
// session-guarded admin API.
package router

import (
	"github.com/Zerogne/Haneducation-sub000/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with all routes registered.
func New(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("haneducation_session", store))

	r.GET("/healthz", api.Healthz)

	public := r.Group("/api")
	{
		public.GET("/content", api.ListContent)
		public.GET("/content/resolve", api.ResolveContent)
		public.GET("/services", api.GetServices)
		public.GET("/testimonials", api.GetTestimonials)
		public.GET("/team", api.GetTeam)
		public.GET("/partners", api.GetPartners)
		public.POST("/register", api.Register)
	}

	r.POST("/admin/login", api.Login)
	r.POST("/admin/logout", api.Logout)

	admin := r.Group("/admin/api")
	admin.Use(handler.AuthRequired())
	{
		admin.GET("/dashboard", api.Dashboard)
		admin.GET("/storage", api.StorageUsage)

		admin.GET("/content", api.AdminListContent)
		admin.PUT("/content", api.SaveContent)
		admin.DELETE("/content", api.DeleteContent)

		admin.GET("/students", api.ListStudents)
		admin.POST("/students", api.CreateStudent)
		admin.GET("/students/:id", api.GetStudent)
		admin.PUT("/students/:id", api.UpdateStudent)
		admin.DELETE("/students/:id", api.DeleteStudent)

		admin.GET("/services", api.AdminListServices)
		admin.POST("/services", api.CreateService)
		admin.GET("/services/:id", api.GetService)
		admin.PUT("/services/:id", api.UpdateService)
		admin.DELETE("/services/:id", api.DeleteService)

		admin.GET("/testimonials", api.AdminListTestimonials)
		admin.POST("/testimonials", api.CreateTestimonial)
		admin.GET("/testimonials/:id", api.GetTestimonial)
		admin.PUT("/testimonials/:id", api.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", api.DeleteTestimonial)

		admin.GET("/team", api.AdminListTeam)
		admin.POST("/team", api.CreateTeamMember)
		admin.GET("/team/:id", api.GetTeamMember)
		admin.PUT("/team/:id", api.UpdateTeamMember)
		admin.DELETE("/team/:id", api.DeleteTeamMember)

		admin.GET("/partners", api.AdminListPartners)
		admin.POST("/partners", api.CreatePartner)
		admin.GET("/partners/:id", api.GetPartner)
		admin.PUT("/partners/:id", api.UpdatePartner)
		admin.DELETE("/partners/:id", api.DeletePartner)

		admin.GET("/images", api.ListImages)
		admin.POST("/uploads", api.UploadImage)
		admin.DELETE("/images/:id", api.DeleteImage)
	}

	return r
}
