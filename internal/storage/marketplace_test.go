package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	mock_database "github.com/grishma-roka/Campus-Cart/internal/db/mocks"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
	mock_storage "github.com/grishma-roka/Campus-Cart/internal/storage/mocks"
)

type marketplaceFixture struct {
	db         *mock_database.MockDB
	tx         *mock_database.MockTx
	items      *mock_storage.MockItemRepository
	orders     *mock_storage.MockOrderRepository
	deliveries *mock_storage.MockDeliveryRepository
	borrows    *mock_storage.MockBorrowRepository
	conditions *mock_storage.MockConditionRepository
	outbox     *mock_storage.MockOutboxTaskRepository
	cache      *mock_storage.MockItemCache

	marketplace *storage.Marketplace
}

func newFixture(t *testing.T, withCache bool) *marketplaceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &marketplaceFixture{
		db:         mock_database.NewMockDB(ctrl),
		tx:         mock_database.NewMockTx(ctrl),
		items:      mock_storage.NewMockItemRepository(ctrl),
		orders:     mock_storage.NewMockOrderRepository(ctrl),
		deliveries: mock_storage.NewMockDeliveryRepository(ctrl),
		borrows:    mock_storage.NewMockBorrowRepository(ctrl),
		conditions: mock_storage.NewMockConditionRepository(ctrl),
		outbox:     mock_storage.NewMockOutboxTaskRepository(ctrl),
	}
	var cache storage.ItemCache
	if withCache {
		f.cache = mock_storage.NewMockItemCache(ctrl)
		cache = f.cache
	}
	f.marketplace = storage.NewMarketplace(
		f.db, f.items, f.orders, f.deliveries, f.borrows, f.conditions, f.outbox, cache, nil)
	return f
}

// expectTx arms one transaction: BeginTx hands out the mock tx and the
// deferred rollback is tolerated whether or not the commit happened.
func (f *marketplaceFixture) expectTx() {
	f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func availableItem() *repository.Item {
	return &repository.Item{
		ID:                "item-1",
		SellerID:          "seller-1",
		Title:             "Graphing calculator",
		Price:             150,
		IsAvailable:       true,
		IsBorrowable:      true,
		BorrowPricePerDay: 100,
		MaxBorrowDays:     7,
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order and open delivery in one transaction", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)
		f.expectTx()

		var orderID string
		f.orders.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, order *repository.Order) error {
				assert.Equal(t, "buyer-1", order.BuyerID)
				assert.Equal(t, "seller-1", order.SellerID)
				assert.Equal(t, 2, order.Quantity)
				assert.Equal(t, 300, order.TotalAmount)
				assert.Equal(t, repository.OrderStatusPending, order.Status)
				orderID = order.ID
				return nil
			})
		f.deliveries.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, d *repository.Delivery) error {
				assert.Equal(t, orderID, d.OrderID)
				assert.Equal(t, repository.DeliveryStatusOpen, d.Status)
				assert.Nil(t, d.RiderID)
				assert.Equal(t, "Dorm 14, Room 220", d.DeliveryAddress)
				return nil
			})
		f.outbox.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Equal(t, storage.EventOrderCreated, task.Topic)
				return nil
			})
		f.tx.EXPECT().Commit(ctx).Return(nil)

		order, err := f.marketplace.CreateOrder(ctx, "buyer-1", storage.CreateOrderInput{
			ItemID:          "item-1",
			Quantity:        2,
			DeliveryAddress: "Dorm 14, Room 220",
		})
		require.NoError(t, err)
		assert.Equal(t, repository.OrderStatusPending, order.Status)
		assert.Equal(t, 300, order.TotalAmount)
	})

	t.Run("unavailable item is reported as not found", func(t *testing.T) {
		f := newFixture(t, false)
		item := availableItem()
		item.IsAvailable = false
		f.items.EXPECT().GetByID(ctx, "item-1").Return(item, nil)

		_, err := f.marketplace.CreateOrder(ctx, "buyer-1", storage.CreateOrderInput{
			ItemID:          "item-1",
			DeliveryAddress: "x",
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delivery insert failure rolls the order back", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)
		f.expectTx()
		f.orders.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.deliveries.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(assert.AnError)

		_, err := f.marketplace.CreateOrder(ctx, "buyer-1", storage.CreateOrderInput{
			ItemID:          "item-1",
			DeliveryAddress: "x",
		})
		assert.Error(t, err)
	})

	t.Run("missing delivery address is rejected", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.marketplace.CreateOrder(ctx, "buyer-1", storage.CreateOrderInput{ItemID: "item-1"})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})
}

func TestConfirmOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("pending order confirms once", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().ConfirmPending(ctx, "order-1", "seller-1").Return(nil)

		assert.NoError(t, f.marketplace.ConfirmOrder(ctx, "order-1", "seller-1"))
	})

	t.Run("second confirm loses the compare-and-set", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().
			ConfirmPending(ctx, "order-1", "seller-1").
			Return(repository.ErrObjectNotFound)

		err := f.marketplace.ConfirmOrder(ctx, "order-1", "seller-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()
	order := &repository.Order{
		ID:       "order-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Status:   repository.OrderStatusPending,
	}

	t.Run("buyer cancels and the delivery follows", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)
		f.expectTx()
		f.orders.EXPECT().CancelPendingTx(ctx, f.tx, "order-1").Return(nil)
		f.deliveries.EXPECT().CancelByOrderTx(ctx, f.tx, "order-1").Return(nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		assert.NoError(t, f.marketplace.CancelOrder(ctx, "order-1", "buyer-1"))
	})

	t.Run("strangers are forbidden", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)

		err := f.marketplace.CancelOrder(ctx, "order-1", "rider-1")
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("delivered orders cannot be cancelled", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)
		f.expectTx()
		f.orders.EXPECT().
			CancelPendingTx(ctx, f.tx, "order-1").
			Return(repository.ErrObjectNotFound)

		err := f.marketplace.CancelOrder(ctx, "order-1", "buyer-1")
		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestAcceptDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("first rider wins and the order mirrors to assigned", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ClaimTx(ctx, f.tx, "dl-1", "rider-1").
			Return("order-1", nil)
		f.orders.EXPECT().
			SetStatusTx(ctx, f.tx, "order-1", repository.OrderStatusAssigned).
			Return(nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		assert.NoError(t, f.marketplace.AcceptDelivery(ctx, "dl-1", "rider-1"))
	})

	t.Run("lost race reports a conflict", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ClaimTx(ctx, f.tx, "dl-1", "rider-2").
			Return("", repository.ErrObjectNotFound)
		rider := "rider-1"
		f.deliveries.EXPECT().
			GetByID(ctx, "dl-1").
			Return(&repository.Delivery{ID: "dl-1", RiderID: &rider, Status: repository.DeliveryStatusAssigned}, nil)

		err := f.marketplace.AcceptDelivery(ctx, "dl-1", "rider-2")
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("missing delivery reports not found", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ClaimTx(ctx, f.tx, "dl-404", "rider-1").
			Return("", repository.ErrObjectNotFound)
		f.deliveries.EXPECT().
			GetByID(ctx, "dl-404").
			Return(nil, repository.ErrObjectNotFound)

		err := f.marketplace.AcceptDelivery(ctx, "dl-404", "rider-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUpdateDeliveryStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned to picked_up stamps the pickup time", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ProgressByRiderTx(ctx, f.tx, "dl-1", "rider-1",
				repository.DeliveryStatusAssigned, repository.DeliveryStatusPickedUp, gomock.Any()).
			Return("order-1", nil)
		f.orders.EXPECT().
			SetStatusTx(ctx, f.tx, "order-1", repository.DeliveryStatusPickedUp).
			Return(nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		assert.NoError(t, f.marketplace.UpdateDeliveryStatus(ctx, "dl-1", "rider-1", repository.DeliveryStatusPickedUp))
	})

	t.Run("only picked_up and delivered are accepted", func(t *testing.T) {
		f := newFixture(t, false)

		err := f.marketplace.UpdateDeliveryStatus(ctx, "dl-1", "rider-1", "open")
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("another rider's delivery is forbidden", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ProgressByRiderTx(ctx, f.tx, "dl-1", "rider-2",
				repository.DeliveryStatusPickedUp, repository.DeliveryStatusDelivered, gomock.Any()).
			Return("", repository.ErrObjectNotFound)
		rider := "rider-1"
		f.deliveries.EXPECT().
			GetByID(ctx, "dl-1").
			Return(&repository.Delivery{ID: "dl-1", RiderID: &rider, Status: repository.DeliveryStatusPickedUp}, nil)

		err := f.marketplace.UpdateDeliveryStatus(ctx, "dl-1", "rider-2", repository.DeliveryStatusDelivered)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("skipping picked_up is a conflict", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.deliveries.EXPECT().
			ProgressByRiderTx(ctx, f.tx, "dl-1", "rider-1",
				repository.DeliveryStatusPickedUp, repository.DeliveryStatusDelivered, gomock.Any()).
			Return("", repository.ErrObjectNotFound)
		rider := "rider-1"
		f.deliveries.EXPECT().
			GetByID(ctx, "dl-1").
			Return(&repository.Delivery{ID: "dl-1", RiderID: &rider, Status: repository.DeliveryStatusAssigned}, nil)

		err := f.marketplace.UpdateDeliveryStatus(ctx, "dl-1", "rider-1", repository.DeliveryStatusDelivered)
		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestRequestBorrow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("cost is days times daily rate", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)
		f.expectTx()
		f.borrows.EXPECT().
			LockOverlappingTx(ctx, f.tx, "item-1", start, end).
			Return(nil, nil)
		f.borrows.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, req *repository.BorrowRequest) error {
				assert.Equal(t, 3, req.TotalDays)
				assert.Equal(t, 300, req.TotalCost)
				assert.Equal(t, repository.BorrowStatusPending, req.Status)
				return nil
			})
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		req, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: start,
			EndDate:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, req.TotalDays)
		assert.Equal(t, 300, req.TotalCost)
	})

	t.Run("partial final day rounds up", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)
		f.expectTx()
		halfDayEnd := start.Add(60 * time.Hour)
		f.borrows.EXPECT().
			LockOverlappingTx(ctx, f.tx, "item-1", start, halfDayEnd).
			Return(nil, nil)
		f.borrows.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, req *repository.BorrowRequest) error {
				assert.Equal(t, 3, req.TotalDays)
				return nil
			})
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		_, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: start,
			EndDate:   halfDayEnd,
		})
		require.NoError(t, err)
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)

		_, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: end,
			EndDate:   start,
		})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("duration over the item limit is invalid", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)

		_, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 8),
		})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("overlap with an approved request is a conflict", func(t *testing.T) {
		f := newFixture(t, false)
		f.items.EXPECT().GetByID(ctx, "item-1").Return(availableItem(), nil)
		f.expectTx()
		f.borrows.EXPECT().
			LockOverlappingTx(ctx, f.tx, "item-1", start, end).
			Return([]string{"br-existing"}, nil)

		_, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: start,
			EndDate:   end,
		})
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("non-borrowable item reports not found", func(t *testing.T) {
		f := newFixture(t, false)
		item := availableItem()
		item.IsBorrowable = false
		f.items.EXPECT().GetByID(ctx, "item-1").Return(item, nil)

		_, err := f.marketplace.RequestBorrow(ctx, "borrower-1", storage.BorrowRequestInput{
			ItemID:    "item-1",
			StartDate: start,
			EndDate:   end,
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestRespondBorrow(t *testing.T) {
	ctx := context.Background()

	t.Run("approval reserves the item", func(t *testing.T) {
		f := newFixture(t, true)
		f.expectTx()
		f.borrows.EXPECT().
			RespondPendingTx(ctx, f.tx, "br-1", "seller-1", repository.BorrowStatusApproved, "ok").
			Return("item-1", nil)
		f.items.EXPECT().SetAvailabilityTx(ctx, f.tx, "item-1", false).Return(nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)
		f.cache.EXPECT().SetAvailability("item-1", false)

		assert.NoError(t, f.marketplace.RespondBorrow(ctx, "br-1", "seller-1", repository.BorrowStatusApproved, "ok"))
	})

	t.Run("rejection leaves the item alone", func(t *testing.T) {
		f := newFixture(t, true)
		f.expectTx()
		f.borrows.EXPECT().
			RespondPendingTx(ctx, f.tx, "br-1", "seller-1", repository.BorrowStatusRejected, "no").
			Return("item-1", nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)

		assert.NoError(t, f.marketplace.RespondBorrow(ctx, "br-1", "seller-1", repository.BorrowStatusRejected, "no"))
	})

	t.Run("only approved or rejected are accepted", func(t *testing.T) {
		f := newFixture(t, false)

		err := f.marketplace.RespondBorrow(ctx, "br-1", "seller-1", "maybe", "")
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("already resolved request reports not found", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.borrows.EXPECT().
			RespondPendingTx(ctx, f.tx, "br-1", "seller-1", repository.BorrowStatusApproved, "").
			Return("", repository.ErrObjectNotFound)

		err := f.marketplace.RespondBorrow(ctx, "br-1", "seller-1", repository.BorrowStatusApproved, "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestStartBorrow(t *testing.T) {
	ctx := context.Background()

	t.Run("activation records the before condition", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.borrows.EXPECT().MarkActiveTx(ctx, f.tx, "br-1", "seller-1").Return(nil)
		f.conditions.EXPECT().
			CreateTx(ctx, f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, c *repository.ItemCondition) error {
				assert.Equal(t, "br-1", c.BorrowRequestID)
				assert.Equal(t, "good", c.ConditionBefore)
				assert.JSONEq(t, `["a.jpg"]`, string(c.ImagesBefore))
				return nil
			})
		f.tx.EXPECT().Commit(ctx).Return(nil)

		assert.NoError(t, f.marketplace.StartBorrow(ctx, "br-1", "seller-1", "good", []string{"a.jpg"}))
	})

	t.Run("request not approved reports not found", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.borrows.EXPECT().
			MarkActiveTx(ctx, f.tx, "br-1", "seller-1").
			Return(repository.ErrObjectNotFound)

		err := f.marketplace.StartBorrow(ctx, "br-1", "seller-1", "good", nil)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestReturnBorrow(t *testing.T) {
	ctx := context.Background()

	t.Run("return closes the loan and frees the item", func(t *testing.T) {
		f := newFixture(t, true)
		f.expectTx()
		f.borrows.EXPECT().
			MarkReturnedTx(ctx, f.tx, "br-1", "seller-1").
			Return("item-1", nil)
		f.conditions.EXPECT().
			CompleteTx(ctx, f.tx, "br-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, _ string, upd *storage.ConditionReturn) error {
				assert.Equal(t, "scratched", upd.ConditionAfter)
				assert.True(t, upd.DamageReported)
				assert.Equal(t, 50, upd.RefundAmount)
				return nil
			})
		f.items.EXPECT().SetAvailabilityTx(ctx, f.tx, "item-1", true).Return(nil)
		f.outbox.EXPECT().CreateTx(ctx, f.tx, gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(ctx).Return(nil)
		f.cache.EXPECT().SetAvailability("item-1", true)

		err := f.marketplace.ReturnBorrow(ctx, "br-1", "seller-1", storage.ReturnBorrowInput{
			ConditionAfter:    "scratched",
			DamageReported:    true,
			DamageDescription: "corner dent",
			RefundAmount:      50,
		})
		assert.NoError(t, err)
	})

	t.Run("inactive request reports not found", func(t *testing.T) {
		f := newFixture(t, false)
		f.expectTx()
		f.borrows.EXPECT().
			MarkReturnedTx(ctx, f.tx, "br-1", "seller-1").
			Return("", repository.ErrObjectNotFound)

		err := f.marketplace.ReturnBorrow(ctx, "br-1", "seller-1", storage.ReturnBorrowInput{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("warm cache serves the listing", func(t *testing.T) {
		f := newFixture(t, true)
		f.cache.EXPECT().Warm().Return(true)
		f.cache.EXPECT().GetAll().Return([]*repository.Item{availableItem()})

		items, err := f.marketplace.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "item-1", items[0].ID)
	})

	t.Run("cold cache falls back to the store", func(t *testing.T) {
		f := newFixture(t, true)
		f.cache.EXPECT().Warm().Return(false)
		f.items.EXPECT().GetAvailable(ctx).Return([]*repository.Item{availableItem()}, nil)

		items, err := f.marketplace.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("new items start available and cached", func(t *testing.T) {
		f := newFixture(t, true)
		f.items.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, item *repository.Item) error {
				assert.True(t, item.IsAvailable)
				assert.Equal(t, "seller-1", item.SellerID)
				return nil
			})
		f.cache.EXPECT().Set(gomock.Any())

		item, err := f.marketplace.CreateItem(ctx, "seller-1", storage.ItemInput{
			Title: "Bike pump",
			Price: 40,
		})
		require.NoError(t, err)
		assert.True(t, item.IsAvailable)
	})

	t.Run("title is required", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.marketplace.CreateItem(ctx, "seller-1", storage.ItemInput{Price: 40})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})
}

func TestGetOrderVisibility(t *testing.T) {
	ctx := context.Background()
	order := &repository.Order{ID: "order-1", BuyerID: "buyer-1", SellerID: "seller-1"}

	t.Run("parties see the order", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)

		got, err := f.marketplace.GetOrder(ctx, "order-1", "seller-1")
		require.NoError(t, err)
		assert.Equal(t, "order-1", got.ID)
	})

	t.Run("strangers see not found, not forbidden", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)

		_, err := f.marketplace.GetOrder(ctx, "order-1", "rider-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
