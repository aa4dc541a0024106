package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/grishma-roka/Campus-Cart/internal/db/mocks"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/repository/postgresql"
)

func TestDeliveryRepo_ClaimTx(t *testing.T) {
	ctx := context.Background()

	t.Run("open delivery is claimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockTx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq("dl-1"), gomock.Eq("rider-1"),
				gomock.Eq(repository.DeliveryStatusAssigned), gomock.Any(),
				gomock.Eq(repository.DeliveryStatusOpen)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*string) = "order-77"
				return nil
			})

		orderID, err := repo.ClaimTx(ctx, mockTx, "dl-1", "rider-1")
		assert.NoError(t, err)
		assert.Equal(t, "order-77", orderID)
	})

	t.Run("lost race surfaces as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockTx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.ClaimTx(ctx, mockTx, "dl-1", "rider-2")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestDeliveryRepo_ProgressByRiderTx(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("picked_up stamps pickup_time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockTx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq("dl-1"), gomock.Eq("rider-1"),
				gomock.Eq(repository.DeliveryStatusPickedUp), gomock.Eq(now),
				gomock.Eq(repository.DeliveryStatusAssigned)).
			DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "pickup_time")
				*dest.(*string) = "order-77"
				return nil
			})

		orderID, err := repo.ProgressByRiderTx(ctx, mockTx, "dl-1", "rider-1",
			repository.DeliveryStatusAssigned, repository.DeliveryStatusPickedUp, now)
		assert.NoError(t, err)
		assert.Equal(t, "order-77", orderID)
	})

	t.Run("delivered stamps delivery_time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockTx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "delivery_time")
				*dest.(*string) = "order-77"
				return nil
			})

		_, err := repo.ProgressByRiderTx(ctx, mockTx, "dl-1", "rider-1",
			repository.DeliveryStatusPickedUp, repository.DeliveryStatusDelivered, now)
		assert.NoError(t, err)
	})

	t.Run("wrong prior state surfaces as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		mockTx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.ProgressByRiderTx(ctx, mockTx, "dl-1", "rider-1",
			repository.DeliveryStatusAssigned, repository.DeliveryStatusPickedUp, now)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("unknown target status is rejected before touching the db", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewDeliveryRepo(mockDB)

		_, err := repo.ProgressByRiderTx(ctx, mockTx, "dl-1", "rider-1",
			repository.DeliveryStatusOpen, "lost", now)
		assert.Error(t, err)
	})
}

func TestDeliveryRepo_ListOpen(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewDeliveryRepo(mockDB)

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(repository.DeliveryStatusOpen)).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "ORDER BY created_at ASC")
			*dest.(*[]*repository.Delivery) = []*repository.Delivery{{ID: "dl-1"}, {ID: "dl-2"}}
			return nil
		})

	deliveries, err := repo.ListOpen(ctx)
	assert.NoError(t, err)
	assert.Len(t, deliveries, 2)
}
