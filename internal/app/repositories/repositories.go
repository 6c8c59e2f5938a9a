package repositories

import "github.com/yigit/personnel/internal/db"

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository   *EmployeeRepository
	DepartmentRepository *DepartmentRepository
}

// NewRepositories initializes all repositories on one shared handle
func NewRepositories(q db.Querier) *Repositories {
	return &Repositories{
		EmployeeRepository:   NewEmployeeRepository(q),
		DepartmentRepository: NewDepartmentRepository(q),
	}
}
