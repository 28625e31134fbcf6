package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
)

func seedMilestone(t *testing.T, repo *MilestoneRepositoryImpl, projectID uint64, index uint32, pct uint32, deadline uint64, status entities.MilestoneStatus) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entities.Milestone{
		ProjectID:  projectID,
		Index:      index,
		Title:      "Milestone",
		Percentage: pct,
		Deadline:   deadline,
		Status:     status,
	}))
}

func TestMilestoneRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	seedMilestone(t, repo, 1, 0, 40, 1000, entities.MilestoneStatusPending)

	got, err := repo.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ProjectID)
	assert.Equal(t, uint32(0), got.Index)
	assert.Equal(t, uint32(40), got.Percentage)
	assert.Equal(t, entities.MilestoneStatusPending, got.Status)

	// missing rows surface as the domain sentinel, so callers can tell
	// "there is no next milestone" apart from a failed lookup
	_, err = repo.Get(ctx, 1, 7)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMilestoneRepository_DuplicateIndexRejected(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	seedMilestone(t, repo, 1, 0, 40, 1000, entities.MilestoneStatusPending)

	err := repo.Create(ctx, &entities.Milestone{
		ProjectID: 1, Index: 0, Title: "dup", Percentage: 10, Deadline: 2000,
		Status: entities.MilestoneStatusPending,
	})
	assert.Error(t, err, "(project_id, idx) is unique")
}

func TestMilestoneRepository_UpdatePersistsVerificationState(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	seedMilestone(t, repo, 1, 0, 40, 1000, entities.MilestoneStatusActive)

	m, err := repo.Get(ctx, 1, 0)
	require.NoError(t, err)
	m.Status = entities.MilestoneStatusInReview
	m.Approvals = 3
	m.Rejections = 1
	m.FundsReleased = true
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.MilestoneStatusInReview, got.Status)
	assert.Equal(t, uint32(3), got.Approvals)
	assert.Equal(t, uint32(1), got.Rejections)
	assert.True(t, got.FundsReleased)
}

func TestMilestoneRepository_ListByProjectOrdersByIndex(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	seedMilestone(t, repo, 1, 2, 20, 3000, entities.MilestoneStatusPending)
	seedMilestone(t, repo, 1, 0, 40, 1000, entities.MilestoneStatusPending)
	seedMilestone(t, repo, 1, 1, 40, 2000, entities.MilestoneStatusPending)
	seedMilestone(t, repo, 2, 0, 100, 1000, entities.MilestoneStatusPending)

	ms, err := repo.ListByProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	for i, m := range ms {
		assert.Equal(t, uint32(i), m.Index)
	}
}

func TestMilestoneRepository_SumPercentages(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	sum, err := repo.SumPercentages(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), sum, "no rows sums to zero")

	seedMilestone(t, repo, 1, 0, 40, 1000, entities.MilestoneStatusPending)
	seedMilestone(t, repo, 1, 1, 35, 2000, entities.MilestoneStatusPending)
	seedMilestone(t, repo, 2, 0, 100, 1000, entities.MilestoneStatusPending)

	sum, err = repo.SumPercentages(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(75), sum)
}

func TestMilestoneRepository_ListOverdueActive(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	seedMilestone(t, repo, 1, 0, 40, 100, entities.MilestoneStatusActive)   // overdue
	seedMilestone(t, repo, 2, 0, 40, 100, entities.MilestoneStatusPending)  // wrong status
	seedMilestone(t, repo, 3, 0, 40, 500, entities.MilestoneStatusActive)   // deadline == height, not overdue
	seedMilestone(t, repo, 4, 0, 40, 499, entities.MilestoneStatusActive)   // overdue
	seedMilestone(t, repo, 5, 0, 40, 1000, entities.MilestoneStatusActive)  // future
	seedMilestone(t, repo, 6, 0, 40, 200, entities.MilestoneStatusInReview) // submitted in time

	overdue, err := repo.ListOverdueActive(ctx, 500, 10)
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	for _, m := range overdue {
		assert.Equal(t, entities.MilestoneStatusActive, m.Status)
		assert.Less(t, m.Deadline, uint64(500))
	}
}

func TestMilestoneRepository_ListOverdueActiveHonorsLimit(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewMilestoneRepository(db)
	ctx := context.Background()

	for i := uint64(1); i <= 5; i++ {
		seedMilestone(t, repo, i, 0, 40, 10, entities.MilestoneStatusActive)
	}

	overdue, err := repo.ListOverdueActive(ctx, 100, 3)
	require.NoError(t, err)
	assert.Len(t, overdue, 3)
}
