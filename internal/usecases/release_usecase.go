package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/volatiletech/null/v8"
	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/domain/errors"
	domainRepos "fundvault.backend/internal/domain/repositories"
	"fundvault.backend/pkg/utils"
)

// ReleaseUsecase performs the escrow distribution for an approved milestone.
// The decision to approve is access-controlled; the release trigger itself is
// deliberately open to any caller once the approval rule objectively holds,
// which removes a liveness bottleneck.
type ReleaseUsecase struct {
	projectRepo   domainRepos.ProjectRepository
	milestoneRepo domainRepos.MilestoneRepository
	payoutRepo    domainRepos.PayoutRepository
	ledger        domainRepos.EscrowLedger
	uow           domainRepos.UnitOfWork
	treasury      string
}

func NewReleaseUsecase(
	projectRepo domainRepos.ProjectRepository,
	milestoneRepo domainRepos.MilestoneRepository,
	payoutRepo domainRepos.PayoutRepository,
	ledger domainRepos.EscrowLedger,
	uow domainRepos.UnitOfWork,
	treasury string,
) *ReleaseUsecase {
	return &ReleaseUsecase{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		payoutRepo:    payoutRepo,
		ledger:        ledger,
		uow:           uow,
		treasury:      treasury,
	}
}

// ReleaseMilestoneFunds pays out an approved in-review milestone: the
// creator's share and the platform fee leave escrow together, the release
// flag flips exactly once, and either the next milestone arms or the project
// completes. All of it commits atomically or not at all.
func (uc *ReleaseUsecase) ReleaseMilestoneFunds(ctx context.Context, projectID uint64, index uint32) (*entities.Payout, error) {
	var payout *entities.Payout
	err := uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}

		milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
		if err != nil {
			return errors.NotFound("milestone not found")
		}
		if milestone.FundsReleased {
			return errors.AlreadyDone("milestone funds already released")
		}
		if milestone.Status != entities.MilestoneStatusInReview {
			return errors.StateConflict("milestone is not in review")
		}
		if !Approved(project.Mode, milestone) {
			return errors.StateConflict("milestone is not approved")
		}

		milestoneAmount := MilestoneAmount(project.CurrentFunding, milestone.Percentage)
		creatorAmount, platformFee := SplitPayout(milestoneAmount)
		if milestoneAmount > project.EscrowBalance {
			// Escrow can never owe more than it holds; percentages are capped
			// at 100 so this only trips on corrupted state.
			return errors.StateConflict("escrow balance below milestone amount")
		}

		milestone.FundsReleased = true
		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}

		project.EscrowBalance -= milestoneAmount
		next, err := uc.milestoneRepo.Get(ctx, projectID, index+1)
		switch {
		case err == nil:
			next.Status = entities.MilestoneStatusActive
			if err := uc.milestoneRepo.Update(ctx, next); err != nil {
				return errors.InternalError(err)
			}
			project.NextMilestone = index + 1
		case stderrors.Is(err, errors.ErrNotFound):
			// No further milestone: the project is done. Only a definitive
			// not-found completes it; any other lookup failure aborts the
			// transaction instead of reaching a terminal state.
			project.Status = entities.ProjectStatusCompleted
		default:
			return errors.InternalError(err)
		}
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}

		creatorTx, err := uc.ledger.Payout(ctx, project.Creator, creatorAmount)
		if err != nil {
			return errors.TransferFailed(err)
		}
		if platformFee > 0 {
			if _, err := uc.ledger.Payout(ctx, uc.treasury, platformFee); err != nil {
				return errors.TransferFailed(err)
			}
		}

		payout = &entities.Payout{
			ID:              utils.GenerateUUIDv7(),
			ProjectID:       projectID,
			MilestoneIndex:  index,
			MilestoneAmount: milestoneAmount,
			PlatformFee:     platformFee,
			CreatorAmount:   creatorAmount,
			Creator:         project.Creator,
			TxHash:          null.NewString(creatorTx, creatorTx != ""),
			ReleasedAt:      time.Now(),
		}
		if err := uc.payoutRepo.Create(ctx, payout); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// ListPayouts returns the release audit trail for a project
func (uc *ReleaseUsecase) ListPayouts(ctx context.Context, projectID uint64) ([]*entities.Payout, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, errors.NotFound("project not found")
	}
	return uc.payoutRepo.ListByProject(ctx, projectID)
}
