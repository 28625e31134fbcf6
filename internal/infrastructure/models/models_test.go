package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func tableName(t *testing.T, model interface{}) string {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(model))
	return stmt.Schema.Table
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "projects", tableName(t, &Project{}))
	assert.Equal(t, "milestones", tableName(t, &Milestone{}))
	assert.Equal(t, "backings", tableName(t, &Backing{}))
	assert.Equal(t, "reviewers", tableName(t, &Reviewer{}))
	assert.Equal(t, "votes", tableName(t, &Vote{}))
	assert.Equal(t, "payouts", tableName(t, &Payout{}))
	assert.Equal(t, "users", tableName(t, &User{}))
}

func TestMilestoneIndexColumnName(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(&Milestone{}))

	// "index" is reserved in most SQL dialects; the column is "idx"
	field := stmt.Schema.LookUpField("Idx")
	require.NotNil(t, field)
	assert.Equal(t, "idx", field.DBName)
}
