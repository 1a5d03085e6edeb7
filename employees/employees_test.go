package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"simplehr.com/simplehr/core/coretest"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/utils"
)

func input(first string) Input {
	return Input{
		FirstName:      first,
		LastName:       "Smith",
		Email:          first + "@example.com",
		EmploymentType: "W2",
		StartDate:      utils.MustParseDate("2025-06-02"),
		Department:     utils.NilIfEmpty("Ops"),
	}
}

func TestCreateAndUpdate(t *testing.T) {
	db := coretest.NewDB(t)

	emp, err := Create(db, input("alex"))
	require.NoError(t, err)
	assert.NotZero(t, emp.ID)
	assert.Equal(t, "active", emp.Status)

	in := input("alexandra")
	in.Position = utils.NilIfEmpty("Lead")
	in.Department = nil
	updated, err := Update(db, emp.ID, in)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, updated.ID)

	stored, err := FindByID(db, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alexandra", stored.FirstName)
	assert.Equal(t, "Lead", utils.Format(stored.Position))
	assert.Nil(t, stored.Department)
	assert.Equal(t, "active", stored.Status)
}

func TestCreateValidates(t *testing.T) {
	db := coretest.NewDB(t)
	in := input("x")
	in.LastName = " "
	_, err := Create(db, in)
	assert.ErrorIs(t, err, ErrInvalidEmployee)
}

func TestUpdateMissing(t *testing.T) {
	db := coretest.NewDB(t)
	_, err := Update(db, 77, input("nobody"))
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteCascades(t *testing.T) {
	db := coretest.NewDB(t)
	emp, err := Create(db, input("casey"))
	require.NoError(t, err)
	other, err := Create(db, input("drew"))
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.OnboardingTask{EmployeeID: emp.ID, Title: "Badge"}).Error)
	require.NoError(t, db.Create(&models.OnboardingTask{EmployeeID: other.ID, Title: "Badge"}).Error)
	require.NoError(t, db.Create(&models.Timesheet{EmployeeID: emp.ID, WeekStart: emp.StartDate, TotalHours: 40, Status: models.TimesheetPending}).Error)
	user := models.User{Email: "casey@example.com", HashedPassword: "x", Role: models.RoleEmployee, EmployeeID: &emp.ID}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, Delete(db, emp.ID))

	_, err = FindByID(db, emp.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	var tasks, sheets int64
	require.NoError(t, db.Model(&models.OnboardingTask{}).Count(&tasks).Error)
	require.NoError(t, db.Model(&models.Timesheet{}).Count(&sheets).Error)
	assert.Equal(t, int64(1), tasks)
	assert.Equal(t, int64(0), sheets)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Nil(t, stored.EmployeeID)

	assert.ErrorIs(t, Delete(db, emp.ID), ErrEmployeeNotFound)
}

func TestCountAndExists(t *testing.T) {
	db := coretest.NewDB(t)
	emp, err := Create(db, input("eve"))
	require.NoError(t, err)

	n, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := Exists(db, emp.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = Exists(db, emp.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportWorkbook(t *testing.T) {
	roster := []models.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", EmploymentType: "W2", Status: "active", StartDate: utils.MustParseDate("2024-09-01"), Position: utils.Ptr("Analyst")},
		{ID: 2, FirstName: "Bo", LastName: "Kim", Email: "bo@example.com", EmploymentType: "1099", Status: "inactive", StartDate: utils.MustParseDate("2023-01-15")},
	}

	f, err := ExportWorkbook(roster)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Employees"}, f.GetSheetList())

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employment type", rows[0][4])
	require.GreaterOrEqual(t, len(rows[1]), 8)
	assert.Equal(t, []string{"1", "Ann", "Lee", "ann@example.com", "W2", "active", "2024-09-01", "Analyst"}, rows[1][:8])
	assert.Equal(t, "2023-01-15", rows[2][6])

	cell, err := f.GetCellValue("Employees", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Bo", cell)
}
