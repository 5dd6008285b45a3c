package app

import (
	"thaimusic_backend/docs"
	"thaimusic_backend/internal/config"
	"thaimusic_backend/internal/middleware"
	"thaimusic_backend/internal/model"
	"thaimusic_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/forgot-password", c.auth.ForgotPassword)
		public.POST("/reset-password", c.auth.ResetPassword)

		public.GET("/instruments", c.instrument.List)
		public.GET("/instruments/:id", c.instrument.Get)
	}
}

func (a *App) registerUserRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.Profile)
	group.PUT("/profile", c.auth.UpdateProfile)

	// One submit route per tier. Each tier carries its own foreign key names
	// in the request body.
	group.POST("/submit-pretest", c.test.SubmitPretest)
	group.POST("/submit-posttest", c.test.SubmitPosttest)
	group.POST("/submit-leveltestone", c.test.SubmitLevelTestOne)
	group.POST("/submit-leveltesttwo", c.test.SubmitLevelTestTwo)
	group.POST("/submit-leveltestthree", c.test.SubmitLevelTestThree)

	group.GET("/tests/:tier/:testId/questions", c.test.ListQuestions)
	group.GET("/tests/:tier/status/:contextId", c.test.Status)

	group.GET("/learning/:instrumentId", c.learning.ListLessons)
	group.GET("/learning/lessons/:id", c.learning.GetLesson)

	group.GET("/levels", c.userLevel.List)
	group.GET("/levels/me", c.userLevel.Current)

	group.GET("/unlocks", c.history.MyUnlocks)
	group.GET("/answers", c.history.MyAnswers)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/instruments", c.instrument.Create)
		admin.PUT("/instruments/:id", c.instrument.Update)
		admin.DELETE("/instruments/:id", c.instrument.Delete)
		admin.POST("/instruments/:id/media", c.instrument.UploadMedia)
		admin.POST("/instruments/:id/components", c.instrument.AddComponentMedia)
		admin.DELETE("/instruments/components/:mediaId", c.instrument.DeleteComponentMedia)

		admin.POST("/lessons", c.learning.CreateLesson)
		admin.PUT("/lessons/:id", c.learning.UpdateLesson)
		admin.DELETE("/lessons/:id", c.learning.DeleteLesson)
		admin.POST("/lessons/:id/media", c.learning.UploadMedia)
		admin.DELETE("/lessons/media/:mediaId", c.learning.DeleteMedia)

		admin.GET("/catalog/:tier/instrument/:instrumentId", c.catalog.ListByInstrument)
		admin.GET("/catalog/:tier/lesson/:lessonId", c.catalog.ListByLesson)
		admin.POST("/catalog/tests", c.catalog.CreateTest)

		admin.GET("/questions/:tier/:testId", c.question.ListByTest)
		admin.POST("/questions", c.question.Create)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)
		admin.POST("/questions/:id/choices", c.question.AddChoice)
		admin.PUT("/questions/choices/:choiceId", c.question.UpdateChoice)
		admin.DELETE("/questions/choices/:choiceId", c.question.DeleteChoice)
		admin.POST("/questions/:id/pairs", c.question.AddPair)
		admin.PUT("/questions/pairs/:pairId", c.question.UpdatePair)
		admin.DELETE("/questions/pairs/:pairId", c.question.DeletePair)
		admin.POST("/questions/:id/media", c.question.AddMedia)
		admin.DELETE("/questions/media/:mediaId", c.question.DeleteMedia)
		admin.GET("/question-types", c.question.ListQuestionTypes)
		admin.POST("/question-types", c.question.CreateQuestionType)

		admin.GET("/requirements", c.requirement.List)
		admin.POST("/requirements", c.requirement.Create)
		admin.PUT("/requirements/:id", c.requirement.Update)
		admin.DELETE("/requirements/:id", c.requirement.Delete)
		admin.GET("/leveltestone-scores", c.requirement.ListLevelTestOneScores)
		admin.POST("/leveltestone-scores", c.requirement.CreateLevelTestOneScore)
		admin.PUT("/leveltestone-scores/:id", c.requirement.UpdateLevelTestOneScore)
		admin.DELETE("/leveltestone-scores/:id", c.requirement.DeleteLevelTestOneScore)

		admin.POST("/levels", c.userLevel.Create)
		admin.PUT("/levels/:id", c.userLevel.Update)
		admin.DELETE("/levels/:id", c.userLevel.Delete)

		admin.GET("/user-history/:username", c.history.ByUsername)
		admin.POST("/reset-test", c.history.ResetTest)
	}
}
