package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/controllers"
	"github.com/yigit/personnel/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	departmentController *controllers.DepartmentController,
	healthController *controllers.HealthController,
	metricsHandler http.Handler,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Health)
	api.GET("/positions", employeeController.ListPositions)
	api.GET("/stats", employeeController.GetStats)

	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	employees := api.Group("/employees")
	{
		employees.GET("/department/:departmentId", employeeController.GetEmployeesByDepartment)
		employees.POST("/search", employeeController.SearchEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.GET("/:id", employeeController.GetEmployeeByID)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.PATCH("/:id/status", employeeController.ChangeStatus)
	}

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	SetupSwagger(router)

	router.NoRoute(middleware.NotFound())
}
