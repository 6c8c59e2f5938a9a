package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/db"
)

type department struct {
	Name        string
	Description string
}

type employee struct {
	FullName   string
	Gender     models.Gender
	Age        int
	Education  models.Education
	Position   string
	Passport   string
	Department string
	Status     models.EmployeeStatus
}

// Departments are created on first start
var Departments = []department{
	{Name: "IT-департамент", Description: "Разработка ПО"},
	{Name: "Отдел продаж", Description: "Продажи и маркетинг"},
	{Name: "HR-отдел", Description: "Управление персоналом"},
	{Name: "Финансовый отдел", Description: "Финансы и бухгалтерия"},
	{Name: "Маркетинг", Description: "Маркетинг и реклама"},
}

// Employees are demo records attached to Departments by name
var Employees = []employee{
	{"Иванов Иван Иванович", models.GenderMale, 35, models.EducationHigher, "Программист", "1234 567890", "IT-департамент", models.StatusActive},
	{"Петрова Анна Сергеевна", models.GenderFemale, 28, models.EducationHigher, "Аналитик", "2345 678901", "IT-департамент", models.StatusVacation},
	{"Сидоров Петр Александрович", models.GenderMale, 42, models.EducationHigher, "Менеджер по продажам", "3456 789012", "Отдел продаж", models.StatusActive},
	{"Козлова Мария Викторовна", models.GenderFemale, 31, models.EducationHigher, "HR-менеджер", "4567 890123", "HR-отдел", models.StatusActive},
}

const insertDepartment = `
	INSERT INTO departments (name, description)
	VALUES ($1, $2)
	ON CONFLICT (name) DO NOTHING`

// The vacation start is stamped for demo employees already on vacation
const insertEmployee = `
	INSERT INTO employees (full_name, gender, age, education, position, passport, department_id, status, vacation_start_at)
	SELECT $1::text, $2::text, $3::int, $4::text, $5::text, $6::text, d.id, $8::text,
		CASE WHEN $8::text = 'vacation' THEN NOW() END
	FROM departments d
	WHERE d.name = $7::text
	ON CONFLICT (passport) DO NOTHING`

// CreateDefaultData inserts the default departments and demo employees in
// one transaction. Rows that already exist are left untouched.
func CreateDefaultData(ctx context.Context, conn db.TxBeginner, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Departments/Employees)...")

	var departments, employees int64
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		for _, d := range Departments {
			tag, err := tx.Exec(ctx, insertDepartment, d.Name, d.Description)
			if err != nil {
				return fmt.Errorf("seed department %q: %w", d.Name, err)
			}
			departments += tag.RowsAffected()
		}

		for _, e := range Employees {
			tag, err := tx.Exec(ctx, insertEmployee,
				e.FullName, string(e.Gender), e.Age, string(e.Education), e.Position, e.Passport, e.Department, string(e.Status))
			if err != nil {
				return fmt.Errorf("seed employee %q: %w", e.FullName, err)
			}
			employees += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int64("departments", departments).Int64("employees", employees).Msg("Default data ensured")
	return nil
}
