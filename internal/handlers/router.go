package handlers

import (
	"log/slog"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/config"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps bundles everything the router needs.
type Deps struct {
	Cfg   *config.Config
	Log   *slog.Logger
	Auth  *auth.Middleware
	AuthH *AuthHandler
	JobH  *JobHandler
	AppH  *ApplicationHandler
	FileH *FileHandler
	DashH *DashboardHandler
}

// NewRouter assembles the gin engine and the full route table.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(d.Log))

	corsCfg := cors.DefaultConfig()
	if len(d.Cfg.CORS.AllowOrigins) == 1 && d.Cfg.CORS.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = d.Cfg.CORS.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", HealthCheck)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.AuthH.Register)
		authGroup.POST("/login", d.AuthH.Login)
		authGroup.GET("/google/login", d.AuthH.GoogleLogin)
		authGroup.GET("/google/callback", d.AuthH.GoogleCallback)
		authGroup.GET("/me", d.Auth.RequireAuth(), d.AuthH.Me)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", d.JobH.List)
		jobs.GET("/:id", d.JobH.Get)
		jobs.POST("", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness), d.JobH.Create)
		jobs.PUT("/:id", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness), d.JobH.Update)
		jobs.DELETE("/:id", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness), d.JobH.Delete)

		jobs.POST("/:id/apply", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleApplicant), d.AppH.Apply)
		jobs.GET("/applications/my", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleApplicant), d.AppH.ListMine)
		jobs.GET("/:id/applications", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness), d.AppH.ListForJob)
		jobs.PUT("/applications/:id/status", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness), d.AppH.UpdateStatus)
	}

	r.GET("/files/*path", d.Auth.RequireAuth(), d.FileH.Serve)

	dash := r.Group("/dashboard", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleBusiness))
	{
		dash.GET("", d.DashH.Dashboard)
		dash.GET("/jobs", d.DashH.JobList)
		dash.PUT("/jobs/:id/status", d.DashH.UpdateJobStatus)
		dash.POST("/jobs/:id/archive", d.DashH.Archive)
		dash.POST("/jobs/:id/unarchive", d.DashH.Unarchive)
	}

	r.GET("/admin/stats", d.Auth.RequireAuth(), d.Auth.RequireRole(models.RoleAdmin), d.DashH.AdminStats)

	return r
}
