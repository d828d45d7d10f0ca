package service

import (
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/24svcs/svcs-api/internal/cache"
	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
)

func TestMain(m *testing.M) {
	logger.Init()
	if err := snowflake.Init(1, 1); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestDB 为每个测试创建独立的内存数据库
// 限制单连接避免连接池拿到不同的 :memory: 实例
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Organization{},
		&model.OrganizationPreferences{},
		&model.Employee{},
		&model.Attendance{},
		&model.NotificationAlert{},
	))
	return db
}

type testFixture struct {
	db          *gorm.DB
	orgID       string
	employee    *model.Employee
	attendances *repository.AttendanceRepo
	employees   *repository.EmployeeRepo
	orgs        *repository.OrganizationRepo
	store       *cache.MemoryStore
	tz          *TimezoneResolver
}

// newFixture 建好组织、UTC 偏好和一名 09:00-17:00 班次的员工
func newFixture(t *testing.T) *testFixture {
	t.Helper()

	db := newTestDB(t)
	orgID := uuid.NewString()

	require.NoError(t, db.Create(&model.Organization{
		ID:     orgID,
		Name:   "Acme Staffing",
		Status: model.OrganizationStatusActive,
	}).Error)

	prefsID, err := snowflake.NextID()
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.OrganizationPreferences{
		BaseModel:      model.BaseModel{ID: prefsID},
		OrganizationID: orgID,
		Timezone:       "UTC",
		GraceMinutes:   DefaultGraceMinutes,
		AlertOnLate:    true,
		AlertOnHalfDay: true,
	}).Error)

	f := &testFixture{
		db:          db,
		orgID:       orgID,
		attendances: repository.NewAttendanceRepo(db),
		employees:   repository.NewEmployeeRepo(db),
		orgs:        repository.NewOrganizationRepo(db),
		store:       cache.NewMemoryStore(),
	}
	f.tz = NewTimezoneResolver(f.orgs, f.store)
	f.employee = f.addEmployee(t, "Jane", "Doe", "09:00:00", "17:00:00")
	return f
}

func (f *testFixture) addEmployee(t *testing.T, first, last, shiftStart, shiftEnd string) *model.Employee {
	t.Helper()

	id, err := snowflake.NextID()
	require.NoError(t, err)

	emp := &model.Employee{
		BaseModel:      model.BaseModel{ID: id},
		OrganizationID: f.orgID,
		FirstName:      first,
		LastName:       last,
		ShiftStart:     shiftStart,
		ShiftEnd:       shiftEnd,
		Status:         model.EmployeeStatusActive,
	}
	require.NoError(t, f.db.Create(emp).Error)
	return emp
}

func (f *testFixture) attendanceService() *AttendanceService {
	return NewAttendanceService(f.attendances, f.employees, f.orgs, f.tz, nil)
}

// fixedClock 返回固定时刻的时钟
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// 时间戳列的缺省值由建表语句提供，绕过 ORM 的写入也要能拿到时间
func TestTimestampColumnDefaults(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	require.NoError(t, db.Exec(
		"INSERT INTO organizations (id, name, status) VALUES (?, ?, ?)",
		uuid.NewString(), "Acme Staffing", "active",
	).Error)

	var org model.Organization
	require.NoError(t, db.Take(&org).Error)
	require.False(t, org.CreatedAt.IsZero())
}
