package routes

import (
	"github.com/KarlovS28/uchettest/internal/api/handlers"
	"github.com/KarlovS28/uchettest/internal/api/middleware"
	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/config"
	"github.com/KarlovS28/uchettest/internal/database/models"
	"github.com/KarlovS28/uchettest/internal/files"
	"github.com/KarlovS28/uchettest/internal/service"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Dependencies carries everything the router needs. DB is nil when running on
// the memory storage driver; the health check degrades accordingly.
type Dependencies struct {
	Store        storage.Storage
	DB           *gorm.DB
	SessionStore sessions.Store
	FileStore    *files.Store
	Config       *config.Config
	Log          *logrus.Logger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Log))
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.CORS(deps.Config))
	router.Use(sessions.Sessions(auth.SessionName, deps.SessionStore))

	validate := validator.New()

	// Services
	authService := auth.NewService(deps.Store, deps.Log)
	departmentService := service.NewDepartmentService(deps.Store, validate)
	employeeService := service.NewEmployeeService(deps.Store, validate)
	inventoryService := service.NewInventoryService(deps.Store, validate)
	userService := service.NewUserService(deps.Store, validate)
	documentService := service.NewDocumentService(deps.Store)
	excelService := service.NewExcelService(deps.Store, deps.Log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(authService, deps.Log)
	organizationHandler := handlers.NewOrganizationHandler(deps.Store, deps.Log)
	departmentHandler := handlers.NewDepartmentHandler(departmentService, deps.Log)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, deps.Log)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, deps.Log)
	userHandler := handlers.NewUserHandler(userService, deps.Log)
	documentHandler := handlers.NewDocumentHandler(documentService, deps.FileStore, deps.Log)
	uploadHandler := handlers.NewUploadHandler(employeeService, documentService, deps.FileStore, deps.Log)
	excelHandler := handlers.NewExcelHandler(excelService, deps.Log)

	requireAuth := auth.RequireAuth(authService)

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		// Public endpoints
		api.GET("/system-status", authHandler.SystemStatus)
		api.POST("/setup", authHandler.Setup)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		authed := api.Group("", requireAuth)
		{
			authed.GET("/user", authHandler.CurrentUser)
			authed.GET("/organizations/:id", organizationHandler.Get)

			authed.GET("/departments", departmentHandler.List)
			authed.GET("/departments/:id", departmentHandler.Get)
			authed.POST("/departments", auth.RequirePermission(models.PermissionManageDepartments), departmentHandler.Create)
			authed.PUT("/departments/:id", auth.RequirePermission(models.PermissionManageDepartments), departmentHandler.Update)
			authed.DELETE("/departments/:id", auth.RequirePermission(models.PermissionManageDepartments), departmentHandler.Delete)

			authed.GET("/employees", employeeHandler.List)
			authed.GET("/employees/:id", employeeHandler.Get)
			authed.POST("/employees", auth.RequirePermission(models.PermissionManageEmployees), employeeHandler.Create)
			authed.PUT("/employees/:id", auth.RequirePermission(models.PermissionManageEmployees), employeeHandler.Update)
			authed.POST("/employees/:id/dismiss", auth.RequirePermission(models.PermissionManageEmployees), employeeHandler.Dismiss)

			authed.GET("/employees/:id/documents", documentHandler.List)
			authed.DELETE("/employees/documents/:id", auth.RequirePermission(models.PermissionManageEmployees), documentHandler.Delete)

			authed.GET("/inventory", inventoryHandler.List)
			authed.GET("/inventory/:id", inventoryHandler.Get)
			authed.POST("/inventory", auth.RequirePermission(models.PermissionManageLiability), inventoryHandler.Create)
			authed.PUT("/inventory/:id", auth.RequirePermission(models.PermissionManageLiability), inventoryHandler.Update)
			authed.DELETE("/inventory/:id", auth.RequirePermission(models.PermissionManageLiability), inventoryHandler.Delete)

			authed.GET("/users", auth.RequirePermission(models.PermissionViewEmployeeData), userHandler.List)
			authed.POST("/users", auth.RequirePermission(models.PermissionManageEmployees), userHandler.Create)
			authed.PUT("/users/:id", auth.RequirePermission(models.PermissionManageEmployees), userHandler.Update)

			authed.POST("/upload/photo/:employeeId", auth.RequirePermission(models.PermissionManageEmployees), uploadHandler.Photo)
			authed.POST("/upload/document/:employeeId", auth.RequirePermission(models.PermissionManageEmployees), uploadHandler.Document)

			authed.POST("/import/employees", auth.RequirePermission(models.PermissionManageEmployees), excelHandler.ImportEmployees)
			authed.POST("/import/inventory", auth.RequirePermission(models.PermissionManageLiability), excelHandler.ImportInventory)
			authed.GET("/export/employees", excelHandler.ExportEmployees)
			authed.GET("/export/inventory", excelHandler.ExportInventory)
		}
	}

	// Stored uploads are only reachable by signed-in users
	if deps.FileStore != nil {
		router.Group("/uploads", requireAuth).Static("", deps.FileStore.BaseDir())
	}

	return router
}
