package dto

import (
	"testing"

	"github.com/shoplist/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationDefaults(t *testing.T) {
	t.Parallel()

	p := DefaultPagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	require.NoError(t, p.Validate())
	assert.Equal(t, 0, p.Offset())
}

func TestPaginationValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    PaginationArgs
		wantErr bool
	}{
		{"valid window", PaginationArgs{Page: 2, Limit: 5}, false},
		{"zero limit rejected", PaginationArgs{Page: 1, Limit: 0}, true},
		{"zero page rejected", PaginationArgs{Page: 0, Limit: 10}, true},
		{"negative page rejected", PaginationArgs{Page: -1, Limit: 10}, true},
		{"negative limit rejected", PaginationArgs{Page: 1, Limit: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.args.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, PaginationArgs{Page: 2, Limit: 5}.Offset())
	assert.Equal(t, 20, PaginationArgs{Page: 3, Limit: 10}.Offset())
}
