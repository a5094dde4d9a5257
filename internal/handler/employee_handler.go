package handler

import (
	"github.com/gin-gonic/gin"

	"showroomos/internal/service"
)

// EmployeeHandler handles employee management endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /api/v1/employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee details"
// @Success 201 {object} Response{data=domain.Employee} "Employee created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, employee)
}

// List handles GET /api/v1/employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Param active query bool false "Only active employees"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Employee,meta=PagMeta} "List of employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)
	activeOnly := c.Query("active") == "true"

	employees, total, err := h.employeeService.List(c.Request.Context(), tenantID, activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, employees, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=domain.Employee} "Employee details"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "employee ID")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Update handles PUT /api/v1/employees/:id
// @Summary Update an employee
// @Description Update employee details; setting left_on also deactivates the employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=domain.Employee} "Employee updated"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "employee ID")
	if !ok {
		return
	}

	var input service.UpdateEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Delete handles DELETE /api/v1/employees/:id
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Employee deleted"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "employee ID")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "employee deleted"})
}
