package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// GetEmployeesByDepartment lists the employees of one department
// @Summary List department employees
// @Description Returns every employee of the department ordered by full name. Unknown departments yield an empty list.
// @Tags employees
// @Produce json
// @Param departmentId path string true "Department ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/department/{departmentId} [get]
func (c *EmployeeController) GetEmployeesByDepartment(ctx *gin.Context) {
	employees, err := c.employeeService.GetEmployeesByDepartment(ctx.Request.Context(), ctx.Param("departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employees, ""))
}

// SearchEmployees runs a filtered employee search
// @Summary Search employees
// @Description Filters employees by name substring, position, gender, education and age range. Absent or blank filters do not restrict the result and an empty body lists every employee. ageFrom and ageTo of 0 are applied as bounds; omit them to leave the range open.
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.SearchEmployeesRequest false "Search criteria"
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Matching employees"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/search [post]
func (c *EmployeeController) SearchEmployees(ctx *gin.Context) {
	var req dto.SearchEmployeesRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	employees, err := c.employeeService.SearchEmployees(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employees, ""))
}

// GetEmployeeByID retrieves an employee by ID
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	employee, err := c.employeeService.GetEmployeeByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employee, ""))
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates an active employee. Every field is required and the passport must be unique.
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=models.Employee} "Employee created"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid values or duplicate passport"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(employee, "Employee created"))
}

// UpdateEmployee rewrites the descriptive fields of an employee
// @Summary Update employee
// @Description Replaces name, gender, age, education, position and passport. Status and department are unchanged.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Param request body dto.UpdateEmployeeRequest true "Employee information"
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employee, "Employee updated"))
}

// ChangeStatus moves an employee to another lifecycle status
// @Summary Change employee status
// @Description active clears lifecycle timestamps, vacation stamps the vacation start, fired stamps the dismissal time.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Param request body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Status changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id}/status [patch]
func (c *EmployeeController) ChangeStatus(ctx *gin.Context) {
	var req dto.ChangeStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.ChangeStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employee, services.StatusChangeMessage(employee.Status)))
}

// ListPositions returns the known job titles
// @Summary List positions
// @Description Baseline titles merged with every title currently held, sorted and de-duplicated.
// @Tags positions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Positions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [get]
func (c *EmployeeController) ListPositions(ctx *gin.Context) {
	positions, err := c.employeeService.ListPositions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(positions, ""))
}

// GetStats reports headcount per status
// @Summary Employee statistics
// @Tags employees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.EmployeeStats} "Employee statistics"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *EmployeeController) GetStats(ctx *gin.Context) {
	stats, err := c.employeeService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
