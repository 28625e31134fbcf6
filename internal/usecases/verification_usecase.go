package usecases

import (
	"context"

	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/domain/errors"
	domainRepos "fundvault.backend/internal/domain/repositories"
)

// VerificationUsecase implements the dual approval mechanism on top of the
// milestone state machine. Voting mode counts unweighted backer votes;
// reviewer mode counts designated reviewers. The approval rule itself is only
// evaluated at release time, never when a vote or approval is recorded.
type VerificationUsecase struct {
	projectRepo   domainRepos.ProjectRepository
	milestoneRepo domainRepos.MilestoneRepository
	backingRepo   domainRepos.BackingRepository
	reviewerRepo  domainRepos.ReviewerRepository
	voteRepo      domainRepos.VoteRepository
	uow           domainRepos.UnitOfWork
	clock         domainRepos.HeightClock
}

func NewVerificationUsecase(
	projectRepo domainRepos.ProjectRepository,
	milestoneRepo domainRepos.MilestoneRepository,
	backingRepo domainRepos.BackingRepository,
	reviewerRepo domainRepos.ReviewerRepository,
	voteRepo domainRepos.VoteRepository,
	uow domainRepos.UnitOfWork,
	clock domainRepos.HeightClock,
) *VerificationUsecase {
	return &VerificationUsecase{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		backingRepo:   backingRepo,
		reviewerRepo:  reviewerRepo,
		voteRepo:      voteRepo,
		uow:           uow,
		clock:         clock,
	}
}

// SubmitForVerification moves an active milestone into review. Creator only.
func (uc *VerificationUsecase) SubmitForVerification(ctx context.Context, projectID uint64, index uint32, caller string) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Creator != caller {
			return errors.Forbidden("only the creator can submit milestones")
		}
		if project.Status != entities.ProjectStatusActive {
			return errors.StateConflict("project is not active")
		}

		milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
		if err != nil {
			return errors.NotFound("milestone not found")
		}
		if milestone.Status != entities.MilestoneStatusActive {
			return errors.StateConflict("milestone is not active")
		}

		milestone.Status = entities.MilestoneStatusInReview
		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// VoteOnMilestone records one immutable vote from a recorded backer on an
// in-review milestone of a voting-mode project.
func (uc *VerificationUsecase) VoteOnMilestone(ctx context.Context, projectID uint64, index uint32, voter string, approve bool) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Mode != entities.VerificationModeVoting {
			return errors.StateConflict("project does not use backer voting")
		}

		milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
		if err != nil {
			return errors.NotFound("milestone not found")
		}
		if milestone.Status != entities.MilestoneStatusInReview {
			return errors.StateConflict("milestone is not in review")
		}
		if milestone.FundsReleased {
			return errors.StateConflict("milestone funds already released")
		}

		backing, err := uc.backingRepo.Get(ctx, projectID, voter)
		if err != nil || backing == nil {
			return errors.Forbidden("only backers can vote")
		}
		if existing, err := uc.voteRepo.Get(ctx, projectID, index, voter); err == nil && existing != nil {
			return errors.AlreadyDone("backer has already voted on this milestone")
		}

		if err := uc.voteRepo.Create(ctx, &entities.Vote{
			ProjectID:      projectID,
			MilestoneIndex: index,
			Voter:          voter,
			Approve:        approve,
		}); err != nil {
			return errors.InternalError(err)
		}

		if approve {
			milestone.Approvals++
		} else {
			milestone.Rejections++
		}
		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// ReviewerApprove records an approval from an active designated reviewer on
// an in-review milestone of a reviewer-mode project.
func (uc *VerificationUsecase) ReviewerApprove(ctx context.Context, projectID uint64, index uint32, caller string) error {
	return uc.reviewerDecision(ctx, projectID, index, caller, true)
}

// ReviewerReject records a rejection and returns the milestone to active so
// the creator can rework and resubmit it.
func (uc *VerificationUsecase) ReviewerReject(ctx context.Context, projectID uint64, index uint32, caller string) error {
	return uc.reviewerDecision(ctx, projectID, index, caller, false)
}

func (uc *VerificationUsecase) reviewerDecision(ctx context.Context, projectID uint64, index uint32, caller string, approve bool) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Mode != entities.VerificationModeReviewer {
			return errors.StateConflict("project does not use reviewer verification")
		}

		reviewer, err := uc.reviewerRepo.Get(ctx, projectID, caller)
		if err != nil || reviewer == nil || !reviewer.Active {
			return errors.Forbidden("caller is not an active reviewer for this project")
		}

		milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
		if err != nil {
			return errors.NotFound("milestone not found")
		}
		if milestone.Status != entities.MilestoneStatusInReview {
			return errors.StateConflict("milestone is not in review")
		}
		if milestone.FundsReleased {
			return errors.StateConflict("milestone funds already released")
		}

		if approve {
			milestone.Approvals++
		} else {
			milestone.Rejections++
			milestone.Status = entities.MilestoneStatusActive
		}
		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// ReportMilestoneFailure marks an active milestone that missed its deadline
// as failed and cancels the whole project. Callable by anyone; a single missed
// milestone kills the project with no partial salvage.
func (uc *VerificationUsecase) ReportMilestoneFailure(ctx context.Context, projectID uint64, index uint32) error {
	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return errors.InternalError(err)
	}

	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}

		milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
		if err != nil {
			return errors.NotFound("milestone not found")
		}
		if milestone.Status != entities.MilestoneStatusActive {
			return errors.StateConflict("milestone is not active")
		}
		if height <= milestone.Deadline {
			return errors.DeadlineViolation("milestone deadline has not passed")
		}

		milestone.Status = entities.MilestoneStatusFailed
		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}

		project.Status = entities.ProjectStatusCancelled
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// Approved evaluates the release-time approval rule for a milestone.
// Voting: strictly more approvals than rejections among cast votes.
// Reviewer: any single approval suffices; there is no quorum.
func Approved(mode entities.VerificationMode, milestone *entities.Milestone) bool {
	switch mode {
	case entities.VerificationModeVoting:
		return milestone.Approvals > milestone.Rejections
	case entities.VerificationModeReviewer:
		return milestone.Approvals > 0
	default:
		return false
	}
}

// ListOverdueMilestones returns active milestones whose deadline is below the
// current height. Used by the failure sweep.
func (uc *VerificationUsecase) ListOverdueMilestones(ctx context.Context, limit int) ([]*entities.Milestone, error) {
	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return nil, errors.InternalError(err)
	}
	return uc.milestoneRepo.ListOverdueActive(ctx, height, limit)
}

// ListVotes returns the votes cast on a milestone
func (uc *VerificationUsecase) ListVotes(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error) {
	return uc.voteRepo.ListByMilestone(ctx, projectID, index)
}

// GetVote returns a single voter's vote on a milestone
func (uc *VerificationUsecase) GetVote(ctx context.Context, projectID uint64, index uint32, voter string) (*entities.Vote, error) {
	vote, err := uc.voteRepo.Get(ctx, projectID, index, voter)
	if err != nil || vote == nil {
		return nil, errors.NotFound("vote not found")
	}
	return vote, nil
}
