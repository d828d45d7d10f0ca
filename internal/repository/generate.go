package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/storage/database"
)

// ========== Employee 相关查询接口 ==========

// EmployeeQuerier 员工查询接口
type EmployeeQuerier interface {
	// GetByIDAndOrganization 按主键和组织查询员工
	//
	// SELECT * FROM @@table WHERE id = @id AND organization_id = @orgID LIMIT 1
	GetByIDAndOrganization(id int64, orgID string) (*gen.T, error)

	// ListByOrganization 按组织查询员工列表（分页，支持筛选）
	//
	// SELECT * FROM @@table
	// WHERE organization_id = @orgID
	//   {{if status != ""}}
	//   AND status = @status
	//   {{end}}
	// ORDER BY last_name, first_name
	// LIMIT @limit OFFSET @offset
	ListByOrganization(orgID string, status string, limit, offset int) ([]*gen.T, error)
}

// ========== Attendance 相关查询接口 ==========

// AttendanceQuerier 考勤查询接口
type AttendanceQuerier interface {
	// GetByEmployeeAndDate 查询员工某个组织本地日期的考勤记录
	//
	// SELECT * FROM @@table
	// WHERE employee_id = @employeeID AND date = @date::date
	// LIMIT 1
	GetByEmployeeAndDate(employeeID int64, date string) (*gen.T, error)

	// ListByOrganizationAndDateRange 按组织和日期范围查询考勤（分页，支持筛选）
	//
	// SELECT a.* FROM @@table a
	// INNER JOIN employees e ON e.id = a.employee_id
	// WHERE a.organization_id = @orgID
	//   {{if status != ""}}
	//   AND a.status = @status
	//   {{end}}
	//   {{if dateFrom != ""}}
	//   AND a.date >= @dateFrom::date
	//   {{end}}
	//   {{if dateTo != ""}}
	//   AND a.date <= @dateTo::date
	//   {{end}}
	// ORDER BY a.date DESC, a.time_in DESC
	// LIMIT @limit OFFSET @offset
	ListByOrganizationAndDateRange(orgID string, status, dateFrom, dateTo string, limit, offset int) ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return errors.ErrDatabaseConnectionNil
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "github.com/24svcs/svcs-api/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		&model.Organization{},
		&model.OrganizationPreferences{},
		&model.Employee{},
		&model.Attendance{},
		&model.NotificationAlert{},
	)

	g.ApplyInterface(func(EmployeeQuerier) {}, &model.Employee{})
	g.ApplyInterface(func(AttendanceQuerier) {}, &model.Attendance{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
