package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listItemColumns() []string {
	return []string{"id", "quantity", "completed", "list_id", "item_id", "created_at", "updated_at", "deleted_at"}
}

func newListItemsServiceWithMock(t *testing.T) (*ListItemsService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewListItemsService(db, NewItemsService(db), NewListsService(db)), mock
}

func TestListItemsFindAllExcludesRemovedRows(t *testing.T) {
	t.Parallel()

	svc, mock := newListItemsServiceWithMock(t)

	list := &models.List{ID: uuid.New(), UserID: uuid.New()}
	itemID := uuid.New()
	now := time.Now()

	// Reads only see live rows; the deletion filter is part of the query.
	mock.ExpectQuery(`SELECT \* FROM "list_items" WHERE list_items\.list_id = \$1 AND "list_items"\."deleted_at" IS NULL LIMIT \$2`).
		WithArgs(list.ID, 10).
		WillReturnRows(sqlmock.NewRows(listItemColumns()).
			AddRow(uuid.New().String(), 1.0, false, list.ID.String(), itemID.String(), now, now, nil))
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE "items"\."id" = \$1`).
		WithArgs(itemID).
		WillReturnRows(sqlmock.NewRows(itemColumns()).
			AddRow(itemID.String(), "Bread", 1.0, list.UserID.String(), now, now))

	listItems, err := svc.FindAll(list, dto.DefaultPagination(), dto.SearchArgs{})
	require.NoError(t, err)
	require.Len(t, listItems, 1)
	require.NotNil(t, listItems[0].Item)
	assert.Equal(t, "Bread", listItems[0].Item.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemsFindOneScopedThroughListOwner(t *testing.T) {
	t.Parallel()

	svc, mock := newListItemsServiceWithMock(t)

	id := uuid.New()
	stranger := &models.User{ID: uuid.New()}

	// The association resolves through the parent list's owner, so a user
	// who owns neither list nor item gets an empty result.
	mock.ExpectQuery(`JOIN lists ON lists\.id = list_items\.list_id AND lists\.user_id = \$1 WHERE list_items\.id = \$2 AND "list_items"\."deleted_at" IS NULL ORDER BY`).
		WithArgs(stranger.ID, id, 1).
		WillReturnRows(sqlmock.NewRows(listItemColumns()))

	listItem, err := svc.FindOne(id, stranger)
	require.Error(t, err)
	assert.Nil(t, listItem)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemsCreateDuplicatePairIsConflict(t *testing.T) {
	t.Parallel()

	svc, mock := newListItemsServiceWithMock(t)

	owner := &models.User{ID: uuid.New()}
	listID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "lists" WHERE id = \$1 AND user_id = \$2 ORDER BY`).
		WithArgs(listID, owner.ID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "created_at", "updated_at"}).
			AddRow(listID.String(), "Groceries", owner.ID.String(), now, now))
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = \$1 AND user_id = \$2 ORDER BY`).
		WithArgs(itemID, owner.ID, 1).
		WillReturnRows(sqlmock.NewRows(itemColumns()).
			AddRow(itemID.String(), "Bread", 1.0, owner.ID.String(), now, now))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "list_items"`).
		WillReturnError(&pgconn.PgError{
			Code:    "23505",
			Message: "duplicate key value violates unique constraint",
			Detail:  `Key (list_id, item_id)=(` + listID.String() + `, ` + itemID.String() + `) already exists.`,
		})
	mock.ExpectRollback()

	_, err := svc.Create(&dto.CreateListItemInput{ListID: listID, ItemID: itemID}, owner)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Contains(t, err.Error(), "(list_id, item_id)")
	assert.NotContains(t, err.Error(), "Key ")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemsRemoveIsSoftDelete(t *testing.T) {
	t.Parallel()

	svc, mock := newListItemsServiceWithMock(t)

	owner := &models.User{ID: uuid.New()}
	id := uuid.New()
	listID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`JOIN lists ON lists\.id = list_items\.list_id AND lists\.user_id = \$1 WHERE list_items\.id = \$2 AND "list_items"\."deleted_at" IS NULL ORDER BY`).
		WithArgs(owner.ID, id, 1).
		WillReturnRows(sqlmock.NewRows(listItemColumns()).
			AddRow(id.String(), 2.0, true, listID.String(), itemID.String(), now, now, nil))

	// Removal stamps deleted_at instead of deleting the row.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "list_items" SET "deleted_at"=\$1 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	snapshot, err := svc.Remove(id, owner)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, id, snapshot.ID)
	assert.Equal(t, 2.0, snapshot.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}
