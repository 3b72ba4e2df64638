package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitJWT()
	utils.InitMongoClient()
	utils.InitRedis(config.LoadServerConfig().RedisURI)

	if err := repository.SetupIndexes(utils.Database()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
}

func setupRouter() *gin.Engine {
	cfg := config.LoadServerConfig()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Initialize repositories
	db := utils.Database()
	usersRepo := repository.GetUsersRepo(db)
	notesRepo := repository.GetNotesRepo(db)
	assignmentsRepo := repository.GetAssignmentsRepo(db)
	remindersRepo := repository.GetRemindersRepo(db)
	timetableRepo := repository.GetTimetableRepo(db)
	projectsRepo := repository.GetProjectsRepo(db)

	// Initialize services
	userService := &usecase.UserService{UsersRepo: usersRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo, UsersRepo: usersRepo}
	assignmentsService := &usecase.AssignmentsService{AssignmentsRepo: assignmentsRepo}
	remindersService := &usecase.RemindersService{RemindersRepo: remindersRepo}
	timetableService := &usecase.TimetableService{TimetableRepo: timetableRepo}
	projectsService := &usecase.ProjectsService{ProjectsRepo: projectsRepo, UsersRepo: usersRepo}
	dashboardService := &usecase.DashboardService{
		NotesRepo:       notesRepo,
		AssignmentsRepo: assignmentsRepo,
		RemindersRepo:   remindersRepo,
		TimetableRepo:   timetableRepo,
	}
	loginLimiter := &services.LoginLimiter{Client: utils.RedisClient}

	// Operational endpoints (no authentication required)
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, loginLimiter)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(usersRepo))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", handler.LogoutHandler)
			auth.GET("/me", handler.MeHandler)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetNotesHandler(c, notesService)
			})
			notes.GET("/shared", func(c *gin.Context) {
				handler.GetSharedNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}

		assignments := protected.Group("/assignments")
		{
			assignments.GET("", func(c *gin.Context) {
				handler.GetAssignmentsHandler(c, assignmentsService)
			})
			assignments.POST("", func(c *gin.Context) {
				handler.CreateAssignmentHandler(c, assignmentsService)
			})
			assignments.PUT("/:id", func(c *gin.Context) {
				handler.UpdateAssignmentHandler(c, assignmentsService)
			})
			assignments.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteAssignmentHandler(c, assignmentsService)
			})
		}

		reminders := protected.Group("/reminders")
		{
			reminders.GET("", func(c *gin.Context) {
				handler.GetRemindersHandler(c, remindersService)
			})
			reminders.GET("/upcoming", func(c *gin.Context) {
				handler.GetUpcomingRemindersHandler(c, remindersService)
			})
			reminders.POST("", func(c *gin.Context) {
				handler.CreateReminderHandler(c, remindersService)
			})
			reminders.PUT("/:id", func(c *gin.Context) {
				handler.UpdateReminderHandler(c, remindersService)
			})
			reminders.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteReminderHandler(c, remindersService)
			})
		}

		timetable := protected.Group("/timetable")
		{
			timetable.GET("", func(c *gin.Context) {
				handler.GetTimetableHandler(c, timetableService)
			})
			timetable.POST("", func(c *gin.Context) {
				handler.CreateTimetableEntryHandler(c, timetableService)
			})
			timetable.PUT("/:id", func(c *gin.Context) {
				handler.UpdateTimetableEntryHandler(c, timetableService)
			})
			timetable.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTimetableEntryHandler(c, timetableService)
			})
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", func(c *gin.Context) {
				handler.GetProjectsHandler(c, projectsService)
			})
			projects.POST("", func(c *gin.Context) {
				handler.CreateProjectHandler(c, projectsService)
			})
			projects.PUT("/:id", func(c *gin.Context) {
				handler.UpdateProjectHandler(c, projectsService)
			})
			projects.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteProjectHandler(c, projectsService)
			})
			projects.POST("/:id/members", func(c *gin.Context) {
				handler.AddProjectMemberHandler(c, projectsService)
			})
			projects.DELETE("/:id/members/:userId", func(c *gin.Context) {
				handler.RemoveProjectMemberHandler(c, projectsService)
			})
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", func(c *gin.Context) {
				handler.GetDashboardStatsHandler(c, dashboardService)
			})
			dashboard.GET("/activity", func(c *gin.Context) {
				handler.GetDashboardActivityHandler(c, dashboardService)
			})
		}
	}

	return router
}

func main() {
	router := setupRouter()

	cfg := config.LoadServerConfig()
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
