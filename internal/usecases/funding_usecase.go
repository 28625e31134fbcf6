package usecases

import (
	"context"

	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/domain/errors"
	domainRepos "fundvault.backend/internal/domain/repositories"
)

// FundingUsecase handles contributions into escrow and refunds out of it.
// Both paths run inside a unit of work so the ledger transfer and the record
// updates commit or unwind together.
type FundingUsecase struct {
	projectRepo   domainRepos.ProjectRepository
	milestoneRepo domainRepos.MilestoneRepository
	backingRepo   domainRepos.BackingRepository
	ledger        domainRepos.EscrowLedger
	uow           domainRepos.UnitOfWork
	clock         domainRepos.HeightClock
}

func NewFundingUsecase(
	projectRepo domainRepos.ProjectRepository,
	milestoneRepo domainRepos.MilestoneRepository,
	backingRepo domainRepos.BackingRepository,
	ledger domainRepos.EscrowLedger,
	uow domainRepos.UnitOfWork,
	clock domainRepos.HeightClock,
) *FundingUsecase {
	return &FundingUsecase{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		backingRepo:   backingRepo,
		ledger:        ledger,
		uow:           uow,
		clock:         clock,
	}
}

// BackProject contributes value toward a project's goal. One backing per
// backer per project; re-backing is rejected, not accumulated. Overfunding
// beyond the goal is accepted uncapped. Reaching the goal flips the project
// to active and arms milestone 0.
func (uc *FundingUsecase) BackProject(ctx context.Context, projectID uint64, backer string, amount uint64) error {
	if amount == 0 {
		return errors.BadRequest("contribution amount must be positive")
	}

	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return errors.InternalError(err)
	}

	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Status != entities.ProjectStatusFunding {
			return errors.StateConflict("project is not accepting contributions")
		}
		if height > project.FundingDeadline {
			return errors.DeadlineViolation("funding deadline has passed")
		}
		if existing, err := uc.backingRepo.Get(ctx, projectID, backer); err == nil && existing != nil {
			return errors.AlreadyDone("backer has already contributed to this project")
		}

		if err := uc.backingRepo.Create(ctx, &entities.Backing{
			ProjectID: projectID,
			Backer:    backer,
			Amount:    amount,
		}); err != nil {
			return errors.InternalError(err)
		}

		project.CurrentFunding += amount
		project.EscrowBalance += amount

		if project.GoalReached() {
			project.Status = entities.ProjectStatusActive

			first, err := uc.milestoneRepo.Get(ctx, projectID, 0)
			if err != nil {
				return errors.InternalError(err)
			}
			first.Status = entities.MilestoneStatusActive
			if err := uc.milestoneRepo.Update(ctx, first); err != nil {
				return errors.InternalError(err)
			}
		}

		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}

		// Transfer last, once every record write has been staged, so a
		// rejected transfer unwinds the whole operation.
		if _, err := uc.ledger.Deposit(ctx, backer, amount); err != nil {
			return errors.TransferFailed(err)
		}
		return nil
	})
}

// RequestRefund returns a backer's share of the remaining escrow. Eligible
// when the project was cancelled, or when the funding window closed below the
// goal. Refunds are prorated against the escrow still held, so releases that
// already happened reduce every remaining backer's refund proportionally.
func (uc *FundingUsecase) RequestRefund(ctx context.Context, projectID uint64, backer string) (uint64, error) {
	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return 0, errors.InternalError(err)
	}

	var refund uint64
	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}

		backing, err := uc.backingRepo.Get(ctx, projectID, backer)
		if err != nil || backing == nil {
			return errors.NotFound("no contribution recorded for this backer")
		}
		if backing.Refunded {
			return errors.AlreadyDone("contribution already refunded")
		}

		switch project.Status {
		case entities.ProjectStatusCancelled:
			// refundable
		case entities.ProjectStatusFunding:
			if height <= project.FundingDeadline {
				return errors.DeadlineViolation("funding window is still open")
			}
			if project.GoalReached() {
				return errors.StateConflict("funding goal was met")
			}
		default:
			return errors.StateConflict("project is not refundable")
		}

		outstanding := project.OutstandingContributions()
		if outstanding == 0 {
			return errors.StateConflict("no outstanding contributions to refund")
		}
		refund = ProratedRefund(backing.Amount, project.EscrowBalance, outstanding)

		backing.Refunded = true
		backing.RefundedAmount = refund
		if err := uc.backingRepo.Update(ctx, backing); err != nil {
			return errors.InternalError(err)
		}

		project.EscrowBalance -= refund
		project.RefundedContributions += backing.Amount
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}

		if refund > 0 {
			if _, err := uc.ledger.Payout(ctx, backer, refund); err != nil {
				return errors.TransferFailed(err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

// GetBacking returns a backer's contribution record
func (uc *FundingUsecase) GetBacking(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error) {
	backing, err := uc.backingRepo.Get(ctx, projectID, backer)
	if err != nil || backing == nil {
		return nil, errors.NotFound("no contribution recorded for this backer")
	}
	return backing, nil
}

// ListBackings returns a project's contributions
func (uc *FundingUsecase) ListBackings(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, 0, errors.NotFound("project not found")
	}
	return uc.backingRepo.ListByProject(ctx, projectID, limit, offset)
}
