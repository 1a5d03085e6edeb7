package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"simplehr.com/simplehr/core/models"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "silent", want: LogLevelSilent},
		{in: "ERROR", want: LogLevelError},
		{in: "", want: LogLevelWarn},
		{in: " info ", want: LogLevelInfo},
		{in: "debug", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSQLite(t *testing.T) {
	assert.True(t, IsSQLite("sqlite:hr_app.db"))
	assert.False(t, IsSQLite("root:pw@tcp(localhost:3306)/hr?parseTime=true"))
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	dsn := "sqlite:" + filepath.Join(t.TempDir(), "hr.db")
	dm, err := New(dsn, 10, LogLevelSilent)
	require.NoError(t, err)
	defer dm.Close()

	require.NoError(t, Migrate(dm.DB))

	created, err := EnsureAdmin(dm.DB, "admin@example.com", "hash")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(dm.DB, "admin@example.com", "hash")
	require.NoError(t, err)
	assert.False(t, created)

	var users []models.User
	require.NoError(t, dm.DB.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	require.NotNil(t, users[0].EmployeeID)

	var emp models.Employee
	require.NoError(t, dm.DB.First(&emp, *users[0].EmployeeID).Error)
	assert.Equal(t, "Admin", emp.FirstName)
}
