package service

import (
	"sync"

	"github.com/24svcs/svcs-api/internal/cache"
	"github.com/24svcs/svcs-api/internal/queue"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/storage/database"
)

// 进程级单例，handler 层通过这里取 service

var (
	timezoneResolver *TimezoneResolver
	timezoneOnce     sync.Once

	attendanceService *AttendanceService
	attendanceOnce    sync.Once

	employeeService *EmployeeService
	employeeOnce    sync.Once

	preferenceService *PreferenceService
	preferenceOnce    sync.Once
)

func Timezone() *TimezoneResolver {
	timezoneOnce.Do(func() {
		timezoneResolver = NewTimezoneResolver(
			repository.NewOrganizationRepo(database.DB()),
			cache.NewRedisStore(),
		)
	})
	return timezoneResolver
}

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		db := database.DB()
		attendanceService = NewAttendanceService(
			repository.NewAttendanceRepo(db),
			repository.NewEmployeeRepo(db),
			repository.NewOrganizationRepo(db),
			Timezone(),
			queue.NewProducer(),
		)
	})
	return attendanceService
}

func Employee() *EmployeeService {
	employeeOnce.Do(func() {
		employeeService = NewEmployeeService(repository.NewEmployeeRepo(database.DB()))
	})
	return employeeService
}

func Preference() *PreferenceService {
	preferenceOnce.Do(func() {
		preferenceService = NewPreferenceService(
			repository.NewOrganizationRepo(database.DB()),
		)
	})
	return preferenceService
}
