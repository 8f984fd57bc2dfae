package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "failed to create user")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "failed to create collection")))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"null value message", errors.New(`null value in column "email" violates not-null constraint`), true},
		{"sqlstate code", errors.New("ERROR: 23502"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}
