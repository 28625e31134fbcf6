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

func createProjectTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		creator TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		goal INTEGER NOT NULL,
		current_funding INTEGER NOT NULL DEFAULT 0,
		escrow_balance INTEGER NOT NULL DEFAULT 0,
		refunded_contributions INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		mode TEXT NOT NULL,
		funding_deadline INTEGER NOT NULL,
		milestone_count INTEGER NOT NULL DEFAULT 0,
		next_milestone INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE milestones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		idx INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		percentage INTEGER NOT NULL,
		deadline INTEGER NOT NULL,
		status TEXT NOT NULL,
		approvals INTEGER NOT NULL DEFAULT 0,
		rejections INTEGER NOT NULL DEFAULT 0,
		funds_released BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (project_id, idx)
	);`)
}

func createBackingTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE backings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		backer TEXT NOT NULL,
		amount INTEGER NOT NULL,
		refunded BOOLEAN NOT NULL DEFAULT 0,
		refunded_amount INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (project_id, backer)
	);`)
	mustExec(t, db, `CREATE TABLE reviewers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		reviewer TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (project_id, reviewer)
	);`)
	mustExec(t, db, `CREATE TABLE votes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		milestone_index INTEGER NOT NULL,
		voter TEXT NOT NULL,
		approve BOOLEAN NOT NULL,
		created_at DATETIME,
		UNIQUE (project_id, milestone_index, voter)
	);`)
}

func createPayoutTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payouts (
		id TEXT PRIMARY KEY,
		project_id INTEGER NOT NULL,
		milestone_index INTEGER NOT NULL,
		milestone_amount INTEGER NOT NULL,
		platform_fee INTEGER NOT NULL,
		creator_amount INTEGER NOT NULL,
		creator TEXT NOT NULL,
		tx_hash TEXT,
		released_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		wallet_address TEXT UNIQUE NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
