package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintNotNull
	constraintCheck
)

// classifyConstraint maps a write error onto the violated constraint. gorm's
// translated errors cover postgres; SQLSTATE codes and message fragments cover
// drivers that do not translate.
func classifyConstraint(err error) constraintKind {
	if err == nil {
		return constraintNone
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintCheck
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "23505", "duplicate key", "unique constraint"):
		return constraintUnique
	case containsAny(msg, "23502", "not null", "null value"):
		return constraintNotNull
	case containsAny(msg, "23514", "check constraint"):
		return constraintCheck
	}

	return constraintNone
}

func containsAny(s string, fragments ...string) bool {
	for _, fragment := range fragments {
		if strings.Contains(s, fragment) {
			return true
		}
	}

	return false
}
