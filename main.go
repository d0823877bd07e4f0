package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Lumberjack100/app-remote-config-site-backend/auth"
	"github.com/Lumberjack100/app-remote-config-site-backend/config"
	"github.com/Lumberjack100/app-remote-config-site-backend/controllers"
	"github.com/Lumberjack100/app-remote-config-site-backend/middlewares"
	"github.com/Lumberjack100/app-remote-config-site-backend/store"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Create tables and the default account
	if err := config.InitDB(db, cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	users := store.NewUserStore(db)
	configs := store.NewSensorConfigStore(db)
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpires)

	r := setupRouter(cfg, users, configs, tokens)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(cfg *config.Config, users *store.UserStore, configs *store.SensorConfigStore, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		controllers.Fail(c, http.StatusInternalServerError, controllers.MsgInternalError)
		c.Abort()
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://app-remote-config.lumberjack2.com", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Access-Type"},
		AllowCredentials: true,
	}))

	authCtl := controllers.NewAuthController(users, tokens)
	sensorCtl := controllers.NewSensorConfigController(configs)

	api := r.Group(cfg.APIPrefix)

	// Public routes
	api.POST("/SignIn", authCtl.SignIn)

	// Protected routes using auth middleware
	protected := api.Group("/")
	protected.Use(middlewares.AuthMiddleware(tokens, users))
	protected.GET("/GetUserByToken", authCtl.GetUserByToken)
	protected.POST("/QueryMR702SensorConfigList", sensorCtl.Query)
	protected.POST("/AddMR702SensorConfigItem", sensorCtl.Add)
	protected.POST("/EditMR702SensorConfigItem", sensorCtl.Edit)
	protected.POST("/BatchDeleteMR702SensorConfigItem", sensorCtl.BatchDelete)

	return r
}
