package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindNotFound, KindOf(NotFound("item %d missing", 7)))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", Conflict("duplicate"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindConflict))
}

func TestInternalHidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestFromDBUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (email)=(ana@example.com) already exists.",
	}

	err := FromDB(fmt.Errorf("create failed: %w", pgErr))
	require.Equal(t, KindConflict, err.Kind)
	assert.Equal(t, "(email)=(ana@example.com) already exists.", err.Message)
}

func TestFromDBOtherErrors(t *testing.T) {
	t.Parallel()

	err := FromDB(errors.New("deadlock detected"))
	assert.Equal(t, KindInternal, err.Kind)

	notUnique := &pgconn.PgError{Code: "23503", Detail: "violates foreign key"}
	assert.Equal(t, KindInternal, FromDB(notUnique).Kind)
}
