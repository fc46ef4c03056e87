package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemInputValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&CreateItemInput{Name: "Blue Chair", Quantity: 2}).Validate())
	require.Error(t, (&CreateItemInput{Name: "  ", Quantity: 1}).Validate())
	require.Error(t, (&CreateItemInput{Name: "Chair", Quantity: -1}).Validate())
}

func TestUpdateItemInputPatchSemantics(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	// nil fields are a valid empty patch
	require.NoError(t, (&UpdateItemInput{ID: id}).Validate())

	name := "Red Chair"
	qty := 3.0
	require.NoError(t, (&UpdateItemInput{ID: id, Name: &name, Quantity: &qty}).Validate())

	empty := " "
	err := (&UpdateItemInput{ID: id, Name: &empty}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	neg := -2.0
	require.Error(t, (&UpdateItemInput{ID: id, Quantity: &neg}).Validate())

	require.Error(t, (&UpdateItemInput{}).Validate(), "missing id must be rejected")
}

func TestUpdateListItemInputValidate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	require.NoError(t, (&UpdateListItemInput{ID: id}).Validate())

	nilRef := uuid.Nil
	require.Error(t, (&UpdateListItemInput{ID: id, ListID: &nilRef}).Validate())
	require.Error(t, (&UpdateListItemInput{ID: id, ItemID: &nilRef}).Validate())

	target := uuid.New()
	done := true
	require.NoError(t, (&UpdateListItemInput{ID: id, ListID: &target, Completed: &done}).Validate())
}
