package service

import (
	"context"
	"errors"

	"userdir/internal/users/model"
	"userdir/internal/users/repository"

	"github.com/google/uuid"
)

// Ingest runs a batch through validation, duplicate resolution and
// persistence, producing exactly one outcome per input record, in input
// order. Records are processed sequentially: batch-local duplicate detection
// depends on the records accepted earlier in the same call. Registration mail
// is handed to the notifier and never awaited.
//
// One record's rejection or lost uniqueness race never aborts the rest of the
// batch. Only a storage failure that makes the whole call pointless (the
// lookup or insert erroring for reasons other than a duplicate key) returns
// an error from Ingest itself.
func (s *Service) Ingest(ctx context.Context, batch []model.CandidateRecord) ([]model.BatchOutcome, error) {
	outcomes := make([]model.BatchOutcome, 0, len(batch))
	accepted := make(map[string]string, len(batch)) // normalized email -> created user id

	for i := range batch {
		candidate := batch[i]

		if reasons := candidate.Check(); len(reasons) > 0 {
			outcomes = append(outcomes, model.BatchOutcome{
				Status:  model.OutcomeRejected,
				Reasons: reasons,
			})
			continue
		}

		verdict, err := s.resolveDuplicate(ctx, &candidate, accepted)
		if err != nil {
			return nil, err
		}
		if verdict.Duplicate {
			outcomes = append(outcomes, model.BatchOutcome{
				Status:      model.OutcomeDuplicate,
				DuplicateOf: verdict.ExistingID,
			})
			continue
		}

		user := &model.User{
			ID:                uuid.NewString(),
			Name:              candidate.Name,
			Email:             normalizeEmail(candidate.Email),
			Role:              candidate.Role,
			NotificationState: model.NotificationPending,
		}
		if user.Role == "" {
			user.Role = model.RoleMember
		}

		if err := s.Repo.CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				// Lost the uniqueness race to a concurrent request after the
				// in-process check passed; the unique index is authoritative.
				outcomes = append(outcomes, model.BatchOutcome{
					Status:  model.OutcomeRejected,
					Reasons: []string{"persistence conflict"},
				})
				continue
			}
			return nil, err
		}

		accepted[user.Email] = user.ID
		s.Notifier.Enqueue(user)
		outcomes = append(outcomes, model.BatchOutcome{
			Status: model.OutcomeCreated,
			User:   user,
		})
	}

	return outcomes, nil
}
