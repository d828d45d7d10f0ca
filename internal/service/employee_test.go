package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
)

func TestEmployeeCreate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := NewEmployeeService(f.employees)

	t.Run("success", func(t *testing.T) {
		emp, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName:  "Ana",
			LastName:   "Silva",
			Phone:      "+5511987654321",
			ShiftStart: "09:00:00",
			ShiftEnd:   "17:00:00",
		})
		require.NoError(t, err)
		require.NotZero(t, emp.ID)
		require.Equal(t, model.EmployeeStatusActive, emp.Status)

		got, err := svc.Get(ctx, f.orgID, emp.ID)
		require.NoError(t, err)
		require.Equal(t, "Ana Silva", got.FullName())
	})

	t.Run("overnight shift allowed", func(t *testing.T) {
		emp, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName:  "Night",
			LastName:   "Owl",
			ShiftStart: "22:00:00",
			ShiftEnd:   "06:00:00",
		})
		require.NoError(t, err)
		require.Equal(t, "22:00:00", emp.ShiftStart)
	})

	t.Run("malformed shift time rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName:  "Bad",
			LastName:   "Shift",
			ShiftStart: "9am",
			ShiftEnd:   "17:00:00",
		})
		require.ErrorIs(t, err, errors.InvalidTimeOfDay)
	})

	t.Run("no shift configured allowed", func(t *testing.T) {
		emp, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName: "Flex",
			LastName:  "Worker",
		})
		require.NoError(t, err)
		require.Empty(t, emp.ShiftStart)
		require.Empty(t, emp.ShiftEnd)
	})

	t.Run("shift end alone allowed", func(t *testing.T) {
		emp, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName: "Late",
			LastName:  "Starter",
			ShiftEnd:  "17:00:00",
		})
		require.NoError(t, err)
		require.Empty(t, emp.ShiftStart)
		require.Equal(t, "17:00:00", emp.ShiftEnd)
	})

	t.Run("identical shift start and end rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName:  "Zero",
			LastName:   "Shift",
			ShiftStart: "09:00:00",
			ShiftEnd:   "09:00:00",
		})
		require.ErrorIs(t, err, errors.InvalidShiftRange)
	})

	t.Run("invalid phone rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, f.orgID, model.CreateEmployeeRequest{
			FirstName:  "Bad",
			LastName:   "Phone",
			Phone:      "not-a-phone",
			ShiftStart: "09:00:00",
			ShiftEnd:   "17:00:00",
		})
		require.ErrorIs(t, err, errors.InvalidPhone)
	})
}

func TestEmployeeGetScopedToOrganization(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEmployeeService(f.employees)

	_, err := svc.Get(context.Background(), "11111111-2222-3333-4444-555555555555", f.employee.ID)
	require.ErrorIs(t, err, errors.EmployeeNotFound)
}

func TestEmployeeList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := NewEmployeeService(f.employees)
	f.addEmployee(t, "Omar", "Benali", "09:00:00", "17:00:00")

	emps, total, err := svc.List(ctx, f.orgID, model.EmployeeListQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, emps, 2)

	emps, total, err = svc.List(ctx, f.orgID, model.EmployeeListQuery{Name: "benali"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Omar", emps[0].FirstName)
}
