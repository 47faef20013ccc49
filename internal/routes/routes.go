package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	"github.com/cocktails-rolodex/cocktails-api/internal/config"
	"github.com/cocktails-rolodex/cocktails-api/internal/handlers"
	infraRepo "github.com/cocktails-rolodex/cocktails-api/internal/infra/repository"
	"github.com/cocktails-rolodex/cocktails-api/internal/middleware"
	ucDrink "github.com/cocktails-rolodex/cocktails-api/internal/usecase/drink"
	ucIngredient "github.com/cocktails-rolodex/cocktails-api/internal/usecase/ingredient"
	ucUser "github.com/cocktails-rolodex/cocktails-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	recorder audit.Recorder,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	drinkRepo := infraRepo.NewDrinkGormRepository(db)
	ingredientRepo := infraRepo.NewIngredientGormRepository(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucUser.NewListUsers(userRepo),
		ucUser.NewGetUser(userRepo),
		ucUser.NewCreateUser(userRepo, recorder),
		ucUser.NewUpdateUser(userRepo, recorder),
		ucUser.NewDeleteUser(userRepo, recorder),
		log,
	)

	drinkHandler := handlers.NewDrinkHandler(
		ucDrink.NewListDrinks(drinkRepo),
		ucDrink.NewGetDrink(drinkRepo),
		ucDrink.NewCreateDrink(drinkRepo, recorder),
		ucDrink.NewUpdateDrink(drinkRepo, recorder),
		ucDrink.NewDeleteDrink(drinkRepo, recorder),
		log,
	)

	ingredientHandler := handlers.NewIngredientHandler(
		ucIngredient.NewListIngredients(ingredientRepo),
		ucIngredient.NewGetIngredient(ingredientRepo),
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group(cfg.APIPrefix)
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.POST("/signup", userHandler.Signup)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		drinks := api.Group("/drinks")
		{
			drinks.GET("", drinkHandler.List)
			drinks.GET("/:id", drinkHandler.Get)
			drinks.POST("", drinkHandler.Create)
			drinks.PUT("/:id", drinkHandler.Update)
			drinks.DELETE("/:id", drinkHandler.Delete)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.List)
			ingredients.GET("/:id", ingredientHandler.Get)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
