package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constraintKind
	}{
		{name: "nil", err: nil, want: constraintNone},
		{name: "translated duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "create"), want: constraintUnique},
		{name: "translated check", err: gorm.ErrCheckConstraintViolated, want: constraintCheck},
		{name: "postgres unique", err: errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`), want: constraintUnique},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.email"), want: constraintUnique},
		{name: "postgres not null", err: errors.New(`null value in column "email" violates not-null constraint (SQLSTATE 23502)`), want: constraintNotNull},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: resenas.direccion"), want: constraintNotNull},
		{name: "postgres check", err: errors.New(`new row violates check constraint "resenas_valoracion_check" (SQLSTATE 23514)`), want: constraintCheck},
		{name: "sqlite check", err: errors.New("CHECK constraint failed: valoracion"), want: constraintCheck},
		{name: "unrelated", err: errors.New("connection reset by peer"), want: constraintNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConstraint(tt.err))
		})
	}
}
