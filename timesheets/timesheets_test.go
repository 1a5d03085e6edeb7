package timesheets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"simplehr.com/simplehr/core/coretest"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/utils"
)

func newEmployee(t *testing.T, db *gorm.DB) models.Employee {
	t.Helper()
	emp := models.Employee{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		EmploymentType: "W2",
		Status:         "active",
		StartDate:      utils.MustParseDate("2025-01-06"),
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func status(t *testing.T, db *gorm.DB, id uint) models.TimesheetStatus {
	t.Helper()
	var ts models.Timesheet
	require.NoError(t, db.First(&ts, id).Error)
	return ts.Status
}

func TestSubmitCreatesPending(t *testing.T) {
	db := coretest.NewDB(t)
	emp := newEmployee(t, db)

	ts, err := Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), 38.5, utils.Ptr("sick friday"))
	require.NoError(t, err)
	assert.Equal(t, models.TimesheetPending, ts.Status)
	assert.Equal(t, models.TimesheetPending, status(t, db, ts.ID))

	_, err = Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), -1, nil)
	assert.ErrorIs(t, err, ErrInvalidHours)
	_, err = Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), 200, nil)
	assert.ErrorIs(t, err, ErrInvalidHours)
	_, err = Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), math.NaN(), nil)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestApproveAndReject(t *testing.T) {
	db := coretest.NewDB(t)
	emp := newEmployee(t, db)
	a, err := Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), 40, nil)
	require.NoError(t, err)
	b, err := Submit(db, emp.ID, utils.MustParseDate("2025-02-10"), 40, nil)
	require.NoError(t, err)

	require.NoError(t, Approve(db, a.ID))
	require.NoError(t, Approve(db, a.ID))
	assert.Equal(t, models.TimesheetApproved, status(t, db, a.ID))

	require.NoError(t, Reject(db, b.ID))
	assert.Equal(t, models.TimesheetRejected, status(t, db, b.ID))

	// overwrites are unconditional
	require.NoError(t, Approve(db, b.ID))
	assert.Equal(t, models.TimesheetApproved, status(t, db, b.ID))
}

func TestApproveMissingIsNoop(t *testing.T) {
	db := coretest.NewDB(t)
	assert.NoError(t, Approve(db, 12345))
	assert.NoError(t, Reject(db, 12345))
}

func TestListPendingAndCount(t *testing.T) {
	db := coretest.NewDB(t)
	emp := newEmployee(t, db)
	a, err := Submit(db, emp.ID, utils.MustParseDate("2025-02-10"), 40, nil)
	require.NoError(t, err)
	b, err := Submit(db, emp.ID, utils.MustParseDate("2025-02-03"), 32, nil)
	require.NoError(t, err)
	require.NoError(t, Approve(db, a.ID))

	pending, err := ListPending(db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)
	assert.Equal(t, "Jane", pending[0].Employee.FirstName)

	n, err := CountPending(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mine, err := ListForEmployee(db, emp.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, a.ID, mine[0].ID)
}
