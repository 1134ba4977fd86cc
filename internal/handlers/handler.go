package handlers

import (
	"contacts_api/internal/logger"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerUserRoutes(router)
	h.registerContactRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
	}

	authed := users.Group("", h.authenticate)
	{
		authed.GET("/profile", h.profile)
		authed.POST("/update", h.updateProfile)
		authed.POST("/updatePassword", h.updatePassword)
		authed.GET("/logout", h.logout)
	}
}

func (h *Handler) registerContactRoutes(r *gin.Engine) {
	contacts := r.Group("/contacts", h.authenticate)
	{
		contacts.GET("", h.searchContacts)
		contacts.POST("/createStored", h.createContact)
		contacts.POST("/updateStored", h.updateContact)
		contacts.POST("/deleteStored", h.deleteContact)
		contacts.GET("/:id", h.getContact)
	}

	addresses := contacts.Group("/address")
	{
		addresses.GET("/list", h.listAddresses)
		addresses.GET("/detail", h.getAddress)
		addresses.POST("/createStored", h.createAddress)
		addresses.POST("/updateStored", h.updateAddress)
		addresses.POST("/deleteStored", h.deleteAddress)
	}
}
