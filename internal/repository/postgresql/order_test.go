package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/grishma-roka/Campus-Cart/internal/db/mocks"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/repository/postgresql"
)

func TestOrderRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Now().UTC()
		testOrder := &repository.Order{
			ID:              "order-123",
			BuyerID:         "buyer-456",
			SellerID:        "seller-789",
			ItemID:          "item-1",
			Quantity:        2,
			TotalAmount:     300,
			DeliveryAddress: "Dorm 14",
			Status:          repository.OrderStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testOrder.ID),
			gomock.Eq(testOrder.BuyerID),
			gomock.Eq(testOrder.SellerID),
			gomock.Eq(testOrder.ItemID),
			gomock.Eq(testOrder.Quantity),
			gomock.Eq(testOrder.TotalAmount),
			gomock.Eq(testOrder.DeliveryAddress),
			gomock.Eq(testOrder.Status),
			gomock.Eq(testOrder.CreatedAt),
			gomock.Eq(testOrder.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, testOrder)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.Order{ID: "order-123"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("order-404")).
			Return(pgx.ErrNoRows)

		order, err := repo.GetByID(ctx, "order-404")
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestOrderRepo_ConfirmPending(t *testing.T) {
	ctx := context.Background()

	t.Run("pending order confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq("order-1"), gomock.Eq("seller-1"),
				gomock.Eq(repository.OrderStatusConfirmed), gomock.Any(),
				gomock.Eq(repository.OrderStatusPending)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.ConfirmPending(ctx, "order-1", "seller-1")
		assert.NoError(t, err)
	})

	t.Run("zero rows means missing, foreign or already processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.ConfirmPending(ctx, "order-1", "rival-seller")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestOrderRepo_CancelPendingTx(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed order still cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq("order-1"), gomock.Eq(repository.OrderStatusCancelled), gomock.Any(),
				gomock.Eq(repository.OrderStatusPending), gomock.Eq(repository.OrderStatusConfirmed)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.CancelPendingTx(ctx, mockTx, "order-1")
		assert.NoError(t, err)
	})

	t.Run("orders past confirmed do not cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.CancelPendingTx(ctx, mockTx, "order-1")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
