package usecase

import (
	"errors"
	"fmt"

	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid credentials")
)

// validate runs the struct tags of a request and reports failures as
// ErrValidation.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}

// fromRepository maps repository sentinels onto the service taxonomy. what
// names the record for the error message.
func fromRepository(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s %w", what, ErrConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %s references a record that does not exist", ErrValidation, what)
	default:
		return err
	}
}

// missingIDsError reports ids that were referenced but do not exist.
func missingIDsError(field string, ids []int64) error {
	return fmt.Errorf("%w: %s: unknown ids %v", ErrValidation, field, ids)
}

// dedupeIDs keeps the first occurrence of every id.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
