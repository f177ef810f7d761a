package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/epicorifa/rifa-api/docs"
	v1 "github.com/epicorifa/rifa-api/internal/api/handler/v1"
	"github.com/epicorifa/rifa-api/internal/api/middleware"
	"github.com/epicorifa/rifa-api/internal/config"
	"github.com/epicorifa/rifa-api/internal/ratelimit"
	"github.com/epicorifa/rifa-api/internal/repository"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
	"github.com/epicorifa/rifa-api/internal/service"
)

// integrationName identifies the partner system whose API key guards the
// /integration routes; it also tags every audit row.
const integrationName = "epico"

// Limiters carries one limiter per route class. All three usually share a
// backend but never a budget.
type Limiters struct {
	Auth        ratelimit.Limiter
	Admin       ratelimit.Limiter
	Integration ratelimit.Limiter
}

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	limiters *Limiters
}

func NewServer(conf *config.AppConfig, db *gorm.DB, limiters *Limiters) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		limiters: limiters,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	adminHandler := s.initAdminHandler(db)
	sedeHandler := s.initSedeHandler(db)
	integrationHandler, integrationSvc := s.initIntegrationHandler(db)
	s.MountHandlers(authHandler, adminHandler, sedeHandler, integrationHandler, integrationSvc)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	rifaRepo := repository.NewRifaRepository(dao.NewRifaDAO(db))
	codigoRepo := repository.NewCodigoRepository(dao.NewCodigoDAO(db))
	clienteRepo := repository.NewClienteRepository(dao.NewClienteDAO(db))
	redemptionRepo := repository.NewRedemptionRepository(dao.NewRedemptionDAO(db))
	svc := service.NewAuthService(rifaRepo, codigoRepo, clienteRepo, redemptionRepo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	rifaRepo := repository.NewRifaRepository(dao.NewRifaDAO(db))
	clienteRepo := repository.NewClienteRepository(dao.NewClienteDAO(db))
	svc := service.NewAdminService(rifaRepo, clienteRepo)
	handler := v1.NewAdminHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initSedeHandler(db *gorm.DB) *v1.SedeHandler {
	repo := repository.NewSedeRepository(dao.NewSedeDAO(db))
	svc := service.NewSedeService(repo)
	handler := v1.NewSedeHandler(svc)

	return handler
}

func (s *Server) initIntegrationHandler(db *gorm.DB) (*v1.IntegrationHandler, *service.IntegrationService) {
	repo := repository.NewIntegrationRepository(dao.NewIntegrationDAO(db))
	codigoRepo := repository.NewCodigoRepository(dao.NewCodigoDAO(db))
	svc := service.NewIntegrationService(repo, codigoRepo)
	handler := v1.NewIntegrationHandler(svc, integrationName)

	return handler, svc
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	adminHandler *v1.AdminHandler,
	sedeHandler *v1.SedeHandler,
	integrationHandler *v1.IntegrationHandler,
	integrationSvc *service.IntegrationService,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath, middleware.RateLimit(s.limiters.Auth))
	{
		public.POST("/auth/validate-code", authHandler.HandleValidateCode)
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/sedes", sedeHandler.HandleGetActiveSedes)
	}

	adminAuth := s.Router.Group(basePath, middleware.RateLimit(s.limiters.Admin))
	{
		adminAuth.POST("/admin/login", adminHandler.HandleLogin)
	}

	admin := s.Router.Group(basePath,
		middleware.RateLimit(s.limiters.Admin),
		authenticator.VerifyJWT(),
		authenticator.RequireAdmin(),
	)
	{
		admin.POST("/admin/logout", adminHandler.HandleLogout)
		admin.GET("/admin/dashboard", adminHandler.HandleDashboard)
		admin.GET("/admin/clientes", adminHandler.HandleListClientes)
		admin.GET("/admin/clientes/export", adminHandler.HandleExportClientes)
		admin.GET("/admin/sedes", sedeHandler.HandleListSedes)
		admin.POST("/admin/sedes", sedeHandler.HandleCreateSede)
		admin.PUT("/admin/sedes/:sedeID", sedeHandler.HandleUpdateSede)
		admin.DELETE("/admin/sedes/:sedeID", sedeHandler.HandleDeleteSede)
		admin.GET("/admin/config", adminHandler.HandleGetConfig)
		admin.PUT("/admin/config", adminHandler.HandleUpdateConfig)
		admin.POST("/admin/ganador", adminHandler.HandleDesignateWinner)
		admin.POST("/admin/reset-raffle", adminHandler.HandleResetRaffle)
	}

	gate := middleware.NewIntegrationGate(integrationSvc, integrationSvc, s.limiters.Integration, integrationName)
	integration := s.Router.Group(basePath, gate.Guard())
	{
		integration.POST("/integration/save-code", integrationHandler.HandleSaveCode)
		integration.GET("/integration/health", integrationHandler.HandleHealth)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Rifa API"
	docs.SwaggerInfo.Description = "Raffle-entry campaign API: code redemption, venue management, partner integration."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
