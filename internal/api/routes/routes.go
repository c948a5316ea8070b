package routes

import (
	"time"

	"teammatch-backend/internal/api/handlers"
	"teammatch-backend/internal/api/middleware"
	"teammatch-backend/internal/auth"
	"teammatch-backend/internal/config"
	"teammatch-backend/internal/repository"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	applicationRepo := repository.NewTeamApplicationRepository(db)
	invitationRepo := repository.NewTeamInvitationRepository(db)
	classRepo := repository.NewClassroomRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	matchingService := service.NewMatchingService(userRepo, teamRepo, cfg.MatchingCategoryExclusive)
	membershipService := service.NewMembershipService(memberRepo, teamRepo, notificationService)
	teamService := service.NewTeamService(teamRepo, memberRepo, classRepo, categoryRepo, notificationService, validate)
	applicationService := service.NewApplicationService(applicationRepo, teamRepo, memberRepo, classRepo, notificationService)
	invitationService := service.NewInvitationService(invitationRepo, teamRepo, memberRepo, userRepo, classRepo, notificationService)
	classService := service.NewClassService(classRepo, teamRepo, teamService, validate)
	categoryService := service.NewCategoryService(categoryRepo, validate)
	userService := service.NewUserService(userRepo, memberRepo, friendRepo, classRepo, teamService, membershipService, validate)
	friendService := service.NewFriendService(friendRepo, userRepo)

	// Initialize auth
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authMiddleware := auth.NewMiddleware(tokenService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService, tokenService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService, membershipService, matchingService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	classHandler := handlers.NewClassHandler(classService, teamService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, teamService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	friendHandler := handlers.NewFriendHandler(friendService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me/profile", userHandler.UpdateProfile)
			users.DELETE("/me", userHandler.DeleteMe)
			users.GET("/search", userHandler.SearchUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/mine", teamHandler.ListMyTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DissolveTeam)
			teams.GET("/:id/members", teamHandler.GetTeamWithMembers)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
			teams.POST("/:id/delegate/:userId", teamHandler.DelegateLeadership)
			teams.PATCH("/:id/recruit-status", teamHandler.SetRecruitStatus)
			teams.GET("/:id/candidates", teamHandler.GetCandidates)
			teams.POST("/:id/applications", applicationHandler.Apply)
			teams.GET("/:id/applications", applicationHandler.ListTeamApplications)
			teams.POST("/:id/invitations", invitationHandler.Invite)
		}

		// Application routes
		applications := v1.Group("/applications")
		{
			applications.GET("/mine", applicationHandler.ListMyApplications)
			applications.POST("/:id/accept", applicationHandler.AcceptApplication)
			applications.POST("/:id/reject", applicationHandler.RejectApplication)
		}

		// Invitation routes
		invitations := v1.Group("/invitations")
		{
			invitations.GET("/mine", invitationHandler.ListMyInvitations)
			invitations.POST("/:id/accept", invitationHandler.AcceptInvitation)
			invitations.POST("/:id/decline", invitationHandler.DeclineInvitation)
		}

		// Class routes
		classes := v1.Group("/classes")
		{
			classes.POST("", classHandler.CreateClass)
			classes.GET("/mine", classHandler.ListMyClasses)
			classes.POST("/join", classHandler.JoinClass)
			classes.GET("/:id", classHandler.GetClass)
			classes.GET("/:id/teams", classHandler.ListClassTeams)
			classes.DELETE("/:id", classHandler.DissolveClass)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id/teams", categoryHandler.ListCategoryTeams)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
		}

		// Friend routes
		friends := v1.Group("/friends")
		{
			friends.GET("", friendHandler.ListFriends)
			friends.GET("/requests", friendHandler.ListFriendRequests)
			friends.POST("/requests", friendHandler.RequestFriend)
			friends.POST("/requests/:userId/accept", friendHandler.AcceptFriend)
			friends.POST("/:userId/block", friendHandler.BlockFriend)
			friends.DELETE("/:userId", friendHandler.RemoveFriend)
		}
	}

	return router
}
