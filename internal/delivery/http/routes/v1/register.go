package v1

import (
	"log"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database"
	"skill-pulse/internal/delivery/http/handler"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/infrastructure/cache"
	"skill-pulse/internal/pkg/jwt"
	"skill-pulse/internal/repository"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API. Auth and the public calculator sit outside
// the JWT middleware; everything touching per-user state sits behind it.
func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	recordRepo := repository.NewPostgresSkillRecordRepository(db)
	roleRepo := repository.NewPostgresRoleRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	questionRepo := repository.NewPostgresQuestionRepository(db)
	cooldownRepo := repository.NewPostgresCooldownRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	sciUC := usecase.NewSCIUsecase()
	skillUC := usecase.NewSkillUsecase(skillRepo)
	recordUC := usecase.NewSkillRecordUsecase(recordRepo, redisCache)
	assessmentUC := usecase.NewAssessmentUsecase(
		skillRepo, questionRepo, recordRepo, cooldownRepo,
		redisCache, logger, cfg.Assessment.Cooldown,
	)
	gapUC := usecase.NewGapUsecase(roleRepo, recordRepo)
	rankingUC := usecase.NewRankingUsecase(jobRepo, recordRepo, redisCache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	sciHandler := handler.NewSCIHandler(sciUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	recordHandler := handler.NewSkillRecordHandler(recordUC)
	assessmentHandler := handler.NewAssessmentHandler(assessmentUC)
	gapHandler := handler.NewGapHandler(gapUC)
	rankingHandler := handler.NewRankingHandler(rankingUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)
	sciHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	skillHandler.RegisterRoutes(protected)
	gapHandler.RegisterRoutes(protected)
	rankingHandler.RegisterRoutes(protected)
	assessmentHandler.RegisterRoutes(protected)

	usersGroup := protected.Group("/users")
	recordHandler.RegisterRoutes(usersGroup)
}
