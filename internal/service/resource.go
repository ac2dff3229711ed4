package service

import (
	"context"
	"errors"
	"net/http"

	"catalog-api/internal/repository"

	"go.uber.org/zap"
)

// Outcome tags the result of a service operation. Expected failures
// (invalid input, missing resource) are outcomes, not Go errors, so
// callers can switch on the tag instead of inspecting error strings.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeCreated
	OutcomeInvalid
	OutcomeNotFound
	OutcomeFailed
)

// HTTPStatus maps an outcome to the status code the transport layer
// writes on the response.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeOK:
		return http.StatusOK
	case OutcomeCreated:
		return http.StatusCreated
	case OutcomeInvalid:
		return http.StatusBadRequest
	case OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Result is the uniform return value of every service operation. Value
// is meaningful only for OutcomeOK and OutcomeCreated; Errors carries
// the per-element messages of a failed bulk validation.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Message string
	Errors  []string
}

func ok[T any](value T, message string) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Value: value, Message: message}
}

func created[T any](value T, message string) Result[T] {
	return Result[T]{Outcome: OutcomeCreated, Value: value, Message: message}
}

func invalid[T any](message string, errs ...string) Result[T] {
	return Result[T]{Outcome: OutcomeInvalid, Message: message, Errors: errs}
}

func notFound[T any](message string) Result[T] {
	return Result[T]{Outcome: OutcomeNotFound, Message: message}
}

func failed[T any](message string) Result[T] {
	return Result[T]{Outcome: OutcomeFailed, Message: message}
}

// Page is the uniform listing payload.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// normalizePagination rejects non-positive values. The minimum valid
// page and limit is 1; the transport layer substitutes the defaults for
// parameters that were not provided at all.
func normalizePagination(page, limit int) (int, int, bool) {
	if page < 1 || limit < 1 {
		return 0, 0, false
	}
	return page, limit, true
}

func pageOf[T any](items []T, total, page, limit int) Page[T] {
	totalPages := (total + limit - 1) / limit
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// crudStore is the minimal persistence surface shared by every entity
// repository. The per-entity repository interfaces satisfy it.
type crudStore[T any, ID comparable] interface {
	FindByID(ctx context.Context, id ID) (*T, error)
	Delete(ctx context.Context, id ID) error
}

// crudService carries the lookup and delete paths that are identical
// across the three entity services. noun is the lowercase entity name
// used in messages ("category", "product", "sale").
type crudService[T any, ID comparable] struct {
	store  crudStore[T, ID]
	noun   string
	logger *zap.Logger
}

func (s crudService[T, ID]) findByID(ctx context.Context, id ID) Result[*T] {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*T](titled(s.noun) + " not found")
		}
		s.logger.Error("Failed to find "+s.noun, zap.Error(err))
		return failed[*T]("Error getting " + s.noun)
	}
	return ok(record, titled(s.noun)+" found successfully")
}

func (s crudService[T, ID]) deleteByID(ctx context.Context, id ID) Result[ID] {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[ID](titled(s.noun) + " not found")
		}
		s.logger.Error("Failed to delete "+s.noun, zap.Error(err))
		return failed[ID]("Error deleting " + s.noun)
	}
	return ok(id, titled(s.noun)+" deleted successfully")
}

func titled(noun string) string {
	if noun == "" {
		return noun
	}
	return string(noun[0]-'a'+'A') + noun[1:]
}
