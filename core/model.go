package core

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite:"

// Dialector picks the gorm driver for a DSN. "sqlite:<path>" opens a SQLite
// file, anything else is handed to the MySQL driver.
func Dialector(dsn string) gorm.Dialector {
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		return sqlite.Open(path)
	}
	return mysql.Open(dsn)
}

// IsSQLite reports whether dsn targets SQLite.
func IsSQLite(dsn string) bool {
	return strings.HasPrefix(dsn, sqlitePrefix)
}
