package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/controllers"
	"github.com/mkuznecov/bank-app/middlewares"
)

// Each service builds its own engine; they share the same middleware
// chain and the same route shape: GET /:id, GET read-all by repeated
// id query param, POST create, PUT update.

const (
	rateLimitPerInterval = 50
	rateLimitIntervalSec = 1
)

// newEngine installs the shared middleware chain. Middleware must be
// attached here, before any route is registered: gin snapshots a
// route's handler chain at registration, so anything Use'd later never
// runs for those routes.
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.NewRateLimiter(rateLimitPerInterval, rateLimitIntervalSec).RateLimit())
	return r
}

func SetupAccountRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	detailsCtrl := controllers.NewAccountDetailsController(db)
	auditCtrl := controllers.NewAuditController(db)

	api := r.Group("/api")
	details := api.Group("/details")
	details.GET("/:id", detailsCtrl.GetByID)
	details.GET("/read/all", detailsCtrl.GetAllByID)
	details.POST("/create", detailsCtrl.Create)
	details.PUT("/update/:id", detailsCtrl.Update)

	registerAuditRoutes(api, auditCtrl)
	return r
}

func SetupAntifraudRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	transferCtrl := controllers.NewSuspiciousAccountTransferController(db)
	auditCtrl := controllers.NewAuditController(db)

	api := r.Group("/api")
	suspicious := api.Group("/suspicious/account/transfer")
	suspicious.GET("/:id", transferCtrl.GetByID)
	suspicious.GET("/read/all", transferCtrl.GetAllByID)
	suspicious.POST("/create", transferCtrl.Create)
	suspicious.PUT("/update/:id", transferCtrl.Update)

	registerAuditRoutes(api, auditCtrl)
	return r
}

func SetupAuthorizationRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	userCtrl := controllers.NewUserController(db)
	auditCtrl := controllers.NewAuditController(db)

	api := r.Group("/api")
	users := api.Group("/user")
	users.GET("/:id", userCtrl.GetByID)
	users.GET("/read/all", userCtrl.GetAllByID)
	users.POST("/create", userCtrl.Create)
	users.PUT("/update/:id", userCtrl.Update)

	api.POST("/auth/login", userCtrl.Login)

	registerAuditRoutes(api, auditCtrl)
	return r
}

func SetupPublicInfoRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	bankDetailsCtrl := controllers.NewBankDetailsController(db)
	branchCtrl := controllers.NewBranchController(db)
	auditCtrl := controllers.NewAuditController(db)

	api := r.Group("/api")
	bank := api.Group("/bank/details")
	bank.GET("/:id", bankDetailsCtrl.GetByID)
	bank.GET("/read/all", bankDetailsCtrl.GetAllByID)
	bank.POST("/create", bankDetailsCtrl.Create)
	bank.PUT("/update/:id", bankDetailsCtrl.Update)

	branch := api.Group("/branch")
	branch.GET("/:id", branchCtrl.GetByID)
	branch.GET("/read/all", branchCtrl.GetAllByID)
	branch.POST("/create", branchCtrl.Create)
	branch.PUT("/update/:id", branchCtrl.Update)

	registerAuditRoutes(api, auditCtrl)
	return r
}

func SetupTransferRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	transferCtrl := controllers.NewAccountTransferController(db)
	auditCtrl := controllers.NewAuditController(db)

	api := r.Group("/api")
	transfers := api.Group("/transfer/account")
	transfers.GET("/:id", transferCtrl.GetByID)
	transfers.GET("/read/all", transferCtrl.GetAllByID)
	transfers.POST("/create", transferCtrl.Create)
	transfers.PUT("/update/:id", transferCtrl.Update)

	registerAuditRoutes(api, auditCtrl)
	return r
}

func SetupHistoryRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()
	historyCtrl := controllers.NewHistoryController(db)

	api := r.Group("/api")
	history := api.Group("/history")
	history.GET("/:id", historyCtrl.GetByID)
	history.GET("", historyCtrl.GetAllByID)
	history.POST("", historyCtrl.Create)
	history.PUT("/:id", historyCtrl.Update)
	return r
}

func registerAuditRoutes(api *gin.RouterGroup, auditCtrl *controllers.AuditController) {
	audit := api.Group("/audit")
	audit.GET("/:id", auditCtrl.GetByID)
	audit.GET("", auditCtrl.GetAllByID)
}
