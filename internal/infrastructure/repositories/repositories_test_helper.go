package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		phone TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL,
		last_survey_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSurveySubmissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE survey_submissions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		answers TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createAccessLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE access_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_profile_id TEXT NOT NULL,
		filters TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createPostTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE posts (
		id TEXT PRIMARY KEY,
		author TEXT NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		content TEXT NOT NULL,
		views INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE replies (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		author TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}
