package repository

import (
	"context"
	"errors"

	"github.com/atlashr/employee-api/internal/metrics"
	"github.com/atlashr/employee-api/internal/models"
)

// ErrEmployeeNotFound is the sentinel returned when a lookup matches no row.
var ErrEmployeeNotFound = errors.New("employee not found")

// Column identifies a mutable employee column. Only the listed constants
// are bound to update statements; free-form column names never reach SQL.
type Column string

const (
	ColumnName       Column = "name"
	ColumnDepartment Column = "department"
)

// ParseColumn maps a wire-level column name onto a Column constant.
func ParseColumn(name string) (Column, bool) {
	switch Column(name) {
	case ColumnName:
		return ColumnName, true
	case ColumnDepartment:
		return ColumnDepartment, true
	default:
		return "", false
	}
}

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	EnsureSchema(ctx context.Context) error
	ListEmployees(ctx context.Context, skip, limit int) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	CreateEmployee(ctx context.Context, name, department string) (models.Employee, error)
	UpdateEmployeeColumn(ctx context.Context, identifier int, column Column, value string) (bool, error)
	DeleteEmployee(ctx context.Context, identifier int) (bool, error)
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
