package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atlashr/employee-api/internal/lib/logger/sl"
	"github.com/atlashr/employee-api/internal/models"
	"github.com/atlashr/employee-api/internal/repository"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	detailNotFound = "Employee not found"
)

// EmployeeStore is the slice of the repository the HTTP handlers need.
type EmployeeStore interface {
	ListEmployees(ctx context.Context, skip, limit int) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	CreateEmployee(ctx context.Context, name, department string) (models.Employee, error)
	UpdateEmployeeColumn(ctx context.Context, identifier int, column repository.Column, value string) (bool, error)
	DeleteEmployee(ctx context.Context, identifier int) (bool, error)
}

// EmployeeHandler translates HTTP requests into store calls. It holds no
// per-request state; every request stands alone.
type EmployeeHandler struct {
	log   *slog.Logger
	store EmployeeStore
}

func NewEmployeeHandler(log *slog.Logger, store EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{log: log, store: store}
}

type createEmployeeRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// List handles GET /employees. Negative skip clamps to zero; a missing or
// non-positive limit falls back to the default, and limit is capped.
func (h *EmployeeHandler) List(c *gin.Context) {
	const opn = "EmployeeHandler.List"

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "skip must be an integer"})
		return
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer"})
		return
	}

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	employees, err := h.store.ListEmployees(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondInternalError(c, opn, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// Get handles GET /employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	const opn = "EmployeeHandler.Get"

	identifier, ok := pathID(c)
	if !ok {
		return
	}

	employee, err := h.store.GetEmployeeByID(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
			return
		}
		h.respondInternalError(c, opn, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Create handles POST /employees. Any id in the request body is ignored;
// the store assigns one.
func (h *EmployeeHandler) Create(c *gin.Context) {
	const opn = "EmployeeHandler.Create"

	var request createEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	employee, err := h.store.CreateEmployee(c.Request.Context(), request.Name, request.Department)
	if err != nil {
		h.respondInternalError(c, opn, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /employees/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	const opn = "EmployeeHandler.Delete"

	identifier, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteEmployee(c.Request.Context(), identifier)
	if err != nil {
		h.respondInternalError(c, opn, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// Update handles PUT /employees/:id/:column/:value. Only the name and
// department columns are accepted; anything else is a client error.
func (h *EmployeeHandler) Update(c *gin.Context) {
	const opn = "EmployeeHandler.Update"

	identifier, ok := pathID(c)
	if !ok {
		return
	}

	column, ok := repository.ParseColumn(c.Param("column"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "column must be one of: name, department"})
		return
	}

	updated, err := h.store.UpdateEmployeeColumn(c.Request.Context(), identifier, column, c.Param("value"))
	if err != nil {
		h.respondInternalError(c, opn, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

func (h *EmployeeHandler) respondInternalError(c *gin.Context, opn string, err error) {
	h.log.ErrorContext(c.Request.Context(), "Store operation failed", sl.Op(opn), sl.Err(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// pathID parses the :id segment, answering 400 itself on garbage input.
func pathID(c *gin.Context) (int, bool) {
	identifier, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "employee id must be an integer"})
		return 0, false
	}
	return identifier, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
