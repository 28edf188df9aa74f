package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/treasuretrove/treasures-api/docs"
	v1 "github.com/treasuretrove/treasures-api/internal/api/handler/v1"
	"github.com/treasuretrove/treasures-api/internal/api/middleware"
	"github.com/treasuretrove/treasures-api/internal/config"
	"github.com/treasuretrove/treasures-api/internal/repository"
	"github.com/treasuretrove/treasures-api/internal/repository/dao"
	"github.com/treasuretrove/treasures-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	treasureHandler := s.initTreasureHandler(db)
	shopHandler := s.initShopHandler(db)
	s.MountHandlers(treasureHandler, shopHandler)

	return s
}

func (s *Server) initTreasureHandler(db *gorm.DB) *v1.TreasureHandler {
	treasureDAO := dao.NewTreasureDAO(db)
	repo := repository.NewTreasureRepository(treasureDAO)
	svc := service.NewTreasureService(repo)
	handler := v1.NewTreasureHandler(svc)

	return handler
}

func (s *Server) initShopHandler(db *gorm.DB) *v1.ShopHandler {
	shopDAO := dao.NewShopDAO(db)
	repo := repository.NewShopRepository(shopDAO)
	svc := service.NewShopService(repo)
	handler := v1.NewShopHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(treasureHandler *v1.TreasureHandler, shopHandler *v1.ShopHandler) {
	const basePath = "/api"

	treasures := s.Router.Group(basePath)
	{
		treasures.GET("/treasures", treasureHandler.HandleListTreasures)
		treasures.POST("/treasures", treasureHandler.HandleCreateTreasure)
		treasures.PATCH("/treasures/:treasureID", treasureHandler.HandleUpdatePrice)
		treasures.DELETE("/treasures/:treasureID", treasureHandler.HandleDeleteTreasure)
	}

	shops := s.Router.Group(basePath)
	{
		shops.GET("/shops", shopHandler.HandleListShops)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Treasures API"
	docs.SwaggerInfo.Description = "CRUD API over treasures and their shops."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
