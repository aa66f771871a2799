package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/handlers"
	"github.com/logistservice/logist/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Operators may
// read directories and orders; mutations and reports require admin or
// manager, and account administration is restricted to admins.
func Setup(facade handlers.LogisticsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	assignmentHandler := handlers.NewAssignmentHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	driverHandler := handlers.NewDriverHandler(facade)
	vehicleHandler := handlers.NewVehicleHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	readers := authed.Group("")
	readers.Use(middleware.RequireRoles(model.RoleAdmin, model.RoleManager, model.RoleOperator))

	readers.GET("/orders", orderHandler.List)
	readers.GET("/orders/:id", orderHandler.Details)
	readers.GET("/clients", clientHandler.List)
	readers.GET("/clients/:id", clientHandler.Get)
	readers.GET("/drivers", driverHandler.List)
	readers.GET("/drivers/:id", driverHandler.Get)
	readers.GET("/vehicles", vehicleHandler.List)
	readers.GET("/vehicles/:id", vehicleHandler.Get)

	managers := authed.Group("")
	managers.Use(middleware.RequireRoles(model.RoleAdmin, model.RoleManager))

	managers.GET("/stats/order-status", statsHandler.StatusCounts)
	managers.GET("/stats/top-clients", statsHandler.TopClients)
	managers.GET("/stats/vehicle-load", statsHandler.VehicleLoad)

	managers.POST("/orders", orderHandler.Create)
	managers.PUT("/orders/:id", orderHandler.Update)
	managers.DELETE("/orders/:id", orderHandler.Delete)
	managers.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	managers.POST("/orders/:id/assignments", assignmentHandler.Add)
	managers.PUT("/assignments/:id", assignmentHandler.Update)
	managers.DELETE("/assignments/:id", assignmentHandler.Delete)

	managers.POST("/clients", clientHandler.Create)
	managers.PUT("/clients/:id", clientHandler.Update)
	managers.DELETE("/clients/:id", clientHandler.Delete)
	managers.POST("/drivers", driverHandler.Create)
	managers.PUT("/drivers/:id", driverHandler.Update)
	managers.DELETE("/drivers/:id", driverHandler.Delete)
	managers.POST("/vehicles", vehicleHandler.Create)
	managers.PUT("/vehicles/:id", vehicleHandler.Update)
	managers.DELETE("/vehicles/:id", vehicleHandler.Delete)

	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))

	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	return engine
}
