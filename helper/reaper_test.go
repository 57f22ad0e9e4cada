package helper

import (
	"context"
	"errors"
	"io"
	"restro_pos/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	destroyed  []string
	destroyErr error
}

func (f *fakeImageStore) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	return "https://img.test/" + publicID, publicID, nil
}

func (f *fakeImageStore) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return f.destroyErr
}

func TestBillReaperDeletesExpiredBills(t *testing.T) {
	db := newTestDB(t)
	store := &fakeImageStore{}

	expired := model.Bill{
		OwnerID:     1,
		OrderID:     1,
		StoreItemID: ptr("bills/bill_1"),
		StoreLink:   ptr("https://img.test/bills/bill_1"),
		ExpiresAt:   time.Now().Add(-24 * time.Hour),
	}
	alive := model.Bill{
		OwnerID:     1,
		OrderID:     2,
		StoreItemID: ptr("bills/bill_2"),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&alive).Error)

	NewBillReaper(db, store).Run()

	assert.Equal(t, []string{"bills/bill_1"}, store.destroyed, "image delete must run exactly once, before the row delete")

	var count int64
	db.Model(&model.Bill{}).Where("id = ?", expired.ID).Count(&count)
	assert.Zero(t, count, "expired bill row must be gone")
	db.Model(&model.Bill{}).Where("id = ?", alive.ID).Count(&count)
	assert.EqualValues(t, 1, count, "unexpired bill must survive")
}

func TestBillReaperDeletesModifiedVariant(t *testing.T) {
	db := newTestDB(t)
	store := &fakeImageStore{}

	bill := model.Bill{
		OwnerID:             1,
		OrderID:             1,
		StoreItemID:         ptr("bills/bill_1"),
		ModifiedStoreItemID: ptr("bills/bill_1_modified"),
		ExpiresAt:           time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&bill).Error)

	NewBillReaper(db, store).Run()

	assert.Equal(t, []string{"bills/bill_1", "bills/bill_1_modified"}, store.destroyed)
}

func TestBillReaperIgnoresImageDeleteFailure(t *testing.T) {
	db := newTestDB(t)
	store := &fakeImageStore{destroyErr: errors.New("already deleted")}

	bill := model.Bill{
		OwnerID:     1,
		OrderID:     1,
		StoreItemID: ptr("bills/bill_1"),
		ExpiresAt:   time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&bill).Error)

	NewBillReaper(db, store).Run()

	var count int64
	db.Model(&model.Bill{}).Count(&count)
	assert.Zero(t, count, "row deletion must not be blocked by the image store")
}

func TestBillReaperSkipsBillsWithoutImages(t *testing.T) {
	db := newTestDB(t)
	store := &fakeImageStore{}

	bill := model.Bill{OwnerID: 1, OrderID: 1, ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, db.Create(&bill).Error)

	NewBillReaper(db, store).Run()

	assert.Empty(t, store.destroyed)
	var count int64
	db.Model(&model.Bill{}).Count(&count)
	assert.Zero(t, count)
}

func ptr(s string) *string { return &s }
