package router

import (
	"time"

	"github.com/codeAntu/battle-zone-sub000/config"
	"github.com/codeAntu/battle-zone-sub000/internal/handler"
	"github.com/codeAntu/battle-zone-sub000/internal/middleware"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
	"github.com/codeAntu/battle-zone-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	requestRepo := repository.NewWalletRequestRepository(db)
	winningRepo := repository.NewWinningRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	walletSvc := service.NewWalletService(db, requestRepo, ledgerRepo, userRepo)
	tournamentSvc := service.NewTournamentService(tournamentRepo)
	enrollmentSvc := service.NewEnrollmentService(db, tournamentRepo, participantRepo, ledgerRepo, cfg.Tournament.MinPlayerLevel)
	settlementSvc := service.NewSettlementService(db, tournamentRepo, participantRepo, ledgerRepo, winningRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userRepo, walletSvc, enrollmentSvc, settlementSvc)
	walletHandler := handler.NewWalletHandler(walletSvc)
	tournamentHandler := handler.NewTournamentHandler(tournamentSvc, enrollmentSvc)
	adminHandler := handler.NewAdminHandler(userRepo, tournamentSvc, enrollmentSvc, settlementSvc, walletSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/admin/login", authHandler.AdminLogin)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", userHandler.Profile)
			me.GET("/transactions", userHandler.Transactions)
			me.GET("/winnings", userHandler.Winnings)
			me.GET("/tournaments", userHandler.Tournaments)
			me.GET("/wallet/requests", userHandler.WalletRequests)
		}

		wallet := api.Group("/wallet")
		wallet.Use(authMw)
		{
			wallet.POST("/deposit", walletHandler.RequestDeposit)
			wallet.POST("/withdraw", walletHandler.RequestWithdrawal)
		}

		tournaments := api.Group("/tournaments")
		tournaments.Use(authMw)
		{
			tournaments.GET("", tournamentHandler.List)
			tournaments.GET("/:id", tournamentHandler.Get)
			tournaments.POST("/:id/join", tournamentHandler.Join)
			tournaments.GET("/:id/participation", tournamentHandler.Participation)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.POST("/tournaments", adminHandler.CreateTournament)
			admin.PUT("/tournaments/:id", adminHandler.UpdateTournament)
			admin.PATCH("/tournaments/:id/room", adminHandler.SetRoom)
			admin.GET("/tournaments/:id/participants", adminHandler.ListParticipants)
			admin.PUT("/tournaments/:id/participants/:userId/kills", adminHandler.RecordKills)
			admin.POST("/tournaments/:id/end", adminHandler.EndTournament)

			admin.GET("/wallet/requests", adminHandler.ListWalletRequests)
			admin.POST("/wallet/deposits/:id/approve", adminHandler.ApproveDeposit)
			admin.POST("/wallet/withdrawals/:id/approve", adminHandler.ApproveWithdrawal)
			admin.POST("/wallet/requests/:id/reject", adminHandler.RejectRequest)

			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id/deactivate", adminHandler.DeactivateUser)
		}
	}
	return r
}
