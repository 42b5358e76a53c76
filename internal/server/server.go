package server

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/devlink/internal/config"
	"github.com/thereayou/devlink/internal/database"
	"github.com/thereayou/devlink/internal/handlers"
	"github.com/thereayou/devlink/internal/websocket"
	"github.com/thereayou/devlink/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	Config     *config.Config
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *websocket.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable, github cache disabled: %v", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	hub := websocket.NewHub()
	go hub.Run()

	authH := handlers.NewAuthHandler(dbConn, jwtMgr)
	userH := handlers.NewUserHandler(dbConn, jwtMgr)
	profileH := handlers.NewProfileHandler(dbConn)
	githubH := handlers.NewGithubHandler(rdb, cfg.GithubToken)
	wsH := handlers.NewWSHandler(hub)

	router := gin.Default()
	APIEndpoints(router, jwtMgr, authH, userH, profileH, githubH, wsH)

	return &Server{
		Router:     router,
		Config:     cfg,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
