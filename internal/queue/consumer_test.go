package queue

import (
	"context"
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
)

func TestMain(m *testing.M) {
	logger.Init()
	if err := snowflake.Init(1, 2); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type consumerFixture struct {
	db       *gorm.DB
	orgID    string
	employee *model.Employee
	alerts   *repository.AlertRepo
	consumer *AlertConsumer
}

func newConsumerFixture(t *testing.T, alertOnLate, alertOnHalfDay bool) *consumerFixture {
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
		GraceMinutes:   15,
		AlertOnLate:    alertOnLate,
		AlertOnHalfDay: alertOnHalfDay,
	}).Error)

	empID, err := snowflake.NextID()
	require.NoError(t, err)
	emp := &model.Employee{
		BaseModel:      model.BaseModel{ID: empID},
		OrganizationID: orgID,
		FirstName:      "Jane",
		LastName:       "Doe",
		ShiftStart:     "09:00:00",
		ShiftEnd:       "17:00:00",
		Status:         model.EmployeeStatusActive,
	}
	require.NoError(t, db.Create(emp).Error)

	alerts := repository.NewAlertRepo(db)
	return &consumerFixture{
		db:       db,
		orgID:    orgID,
		employee: emp,
		alerts:   alerts,
		consumer: NewAlertConsumer(
			repository.NewOrganizationRepo(db),
			repository.NewEmployeeRepo(db),
			alerts,
		),
	}
}

func (f *consumerFixture) lateCheckInEvent() model.AttendanceEventMessage {
	return model.AttendanceEventMessage{
		MessageID:      uuid.NewString(),
		EventType:      model.AttendanceEventCheckIn,
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		AttendanceID:   5001,
		Date:           "2026-03-02",
		TimeIn:         "09:40:00",
		Status:         model.AttendanceStatusLate,
	}
}

func (f *consumerFixture) alertCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&model.NotificationAlert{}).Count(&count).Error)
	return count
}

func TestProcessLateCheckInCreatesAlert(t *testing.T) {
	t.Parallel()

	f := newConsumerFixture(t, true, true)
	ctx := context.Background()

	require.NoError(t, f.consumer.process(ctx, f.lateCheckInEvent()))

	var alert model.NotificationAlert
	require.NoError(t, f.db.First(&alert).Error)
	require.Equal(t, model.AlertKindLateArrival, alert.Kind)
	require.EqualValues(t, 5001, alert.AttendanceID)
	require.Contains(t, alert.Message, "Jane Doe")
	require.Contains(t, alert.Message, "09:40:00")
}

func TestProcessRedeliveryIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newConsumerFixture(t, true, true)
	ctx := context.Background()

	// 同一条考勤重复投递，告警只写一次
	event := f.lateCheckInEvent()
	require.NoError(t, f.consumer.process(ctx, event))
	require.NoError(t, f.consumer.process(ctx, event))
	require.EqualValues(t, 1, f.alertCount(t))
}

func TestProcessRespectsAlertPreferences(t *testing.T) {
	t.Parallel()

	f := newConsumerFixture(t, false, false)
	ctx := context.Background()

	require.NoError(t, f.consumer.process(ctx, f.lateCheckInEvent()))
	require.NoError(t, f.consumer.process(ctx, model.AttendanceEventMessage{
		MessageID:      uuid.NewString(),
		EventType:      model.AttendanceEventCheckOut,
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		AttendanceID:   5002,
		Date:           "2026-03-02",
		TimeIn:         "13:30:00",
		TimeOut:        "17:00:00",
		Status:         model.AttendanceStatusPresent,
		Warnings:       []string{"attendance covered less than half of the scheduled shift"},
	}))

	require.EqualValues(t, 0, f.alertCount(t))
}

func TestProcessHalfDayCheckOutCreatesAlert(t *testing.T) {
	t.Parallel()

	f := newConsumerFixture(t, true, true)
	ctx := context.Background()

	require.NoError(t, f.consumer.process(ctx, model.AttendanceEventMessage{
		MessageID:      uuid.NewString(),
		EventType:      model.AttendanceEventCheckOut,
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		AttendanceID:   5003,
		Date:           "2026-03-02",
		TimeIn:         "13:30:00",
		TimeOut:        "17:00:00",
		Status:         model.AttendanceStatusPresent,
		Warnings:       []string{"attendance covered less than half of the scheduled shift"},
	}))

	var alert model.NotificationAlert
	require.NoError(t, f.db.First(&alert).Error)
	require.Equal(t, model.AlertKindHalfDay, alert.Kind)
	require.Contains(t, alert.Message, "less than half")
}

func TestProcessOnTimeCheckInNoAlert(t *testing.T) {
	t.Parallel()

	f := newConsumerFixture(t, true, true)
	ctx := context.Background()

	event := f.lateCheckInEvent()
	event.Status = model.AttendanceStatusPresent
	event.TimeIn = "08:55:00"

	require.NoError(t, f.consumer.process(ctx, event))
	require.EqualValues(t, 0, f.alertCount(t))
}
