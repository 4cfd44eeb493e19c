package service

import (
	"context"
	"errors"
	"strings"

	"userdir/internal/users/model"
	"userdir/internal/users/repository"
)

type duplicateVerdict struct {
	Duplicate  bool
	ExistingID string
}

// Email equality is case-insensitive across the directory.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// resolveDuplicate checks the candidate against records accepted earlier in
// the same batch, then against persisted users. The batch-local check comes
// first: bulk submissions commonly contain accidental repeats, and a storage
// lookup alone would let every repeat through as an independent insert.
func (s *Service) resolveDuplicate(ctx context.Context, candidate *model.CandidateRecord, accepted map[string]string) (duplicateVerdict, error) {
	email := normalizeEmail(candidate.Email)

	if id, ok := accepted[email]; ok {
		return duplicateVerdict{Duplicate: true, ExistingID: id}, nil
	}

	existing, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return duplicateVerdict{}, nil
		}
		return duplicateVerdict{}, err
	}
	return duplicateVerdict{Duplicate: true, ExistingID: existing.ID}, nil
}
