package order

import (
	"context"
	"testing"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/notification"
	"HomeChef-Backend/pkg/push/pushtest"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	repo     OrderRepository
	service  OrderService
	gateway  *pushtest.Recorder
	chef     entities.User
	customer entities.User
}

func ptr[T any](v T) *T { return &v }

func seedUser(t *testing.T, db *gorm.DB, name, userType string) entities.User {
	t.Helper()
	u := entities.User{FirstName: name, Email: name + "@example.com", UserType: userType}
	if userType == domain.RoleChef {
		u.CurrentLat = ptr(-6.2088)
		u.CurrentLng = ptr(106.8456)
	}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&entities.Device{UserID: u.ID, RegistrationID: "tok-" + name, Platform: "ios", Model: "x"}).Error)
	return u
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.New(t)
	gw := pushtest.NewRecorder()
	userRepo := user.NewUserRepository(db)
	repo := NewOrderRepository(db)
	svc := NewOrderService(
		repo,
		review.NewReviewRepository(db),
		userRepo,
		notification.NewNotificationService(notification.NewNotificationRepository(db), userRepo, gw),
	)
	return fixture{
		db:       db,
		repo:     repo,
		service:  svc,
		gateway:  gw,
		chef:     seedUser(t, db, "chef", domain.RoleChef),
		customer: seedUser(t, db, "customer", domain.RoleCustomer),
	}
}

func (f fixture) createOrder(t *testing.T) domain.OrderResponse {
	t.Helper()
	res, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ToID:          f.chef.ID.String(),
		OrderType:     domain.OrderTypeDelivery,
		Amount:        ptr(20.0),
		DeliveryFee:   ptr(3.0),
		ServiceFee:    ptr(1.0),
		CartItems:     []domain.CartItemRequest{{DishID: "dish-1", Name: "Rendang", Quantity: 2, Price: 10}},
		Address:       "Jl. Sudirman 1",
		PaymentMethod: "cash",
		Lat:           ptr(-6.9175),
		Lng:           ptr(107.6191),
	}, f.customer.ID.String())
	require.NoError(t, err)
	return res
}

func (f fixture) move(t *testing.T, orderID string, statuses ...string) {
	t.Helper()
	for _, status := range statuses {
		_, err := f.service.UpdateOrderStatus(context.Background(), orderID, domain.UpdateOrderStatusRequest{Status: status}, f.chef.ID.String())
		require.NoError(t, err, status)
	}
}

func TestOrderLifecycleScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createOrder(t)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, 24.0, created.TotalAmount)
	assert.Len(t, created.OrderNo, 8)
	require.Len(t, created.CartItems, 1)
	assert.Equal(t, 20.0, created.CartItems[0].Total)

	sent := f.gateway.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Order Received", sent[0].Msg.Title)
	assert.Equal(t, []string{"tok-chef"}, sent[0].Tokens)

	f.move(t, created.ID, domain.OrderStatusAccepted, domain.OrderStatusProcessing, domain.OrderStatusCompleted)

	details, err := f.service.GetOrderDetails(ctx, created.ID, f.customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, details.Status)
	assert.Equal(t, 24.0, details.TotalAmount)
	assert.False(t, details.HasReview)
	require.NotNil(t, details.Distance)
	assert.InDelta(t, 116, *details.Distance, 3)
	require.Len(t, details.History, 3)
	assert.Equal(t, domain.OrderStatusPending, details.History[0].FromStatus)
	assert.Equal(t, domain.OrderStatusCompleted, details.History[2].Status)

	var chef entities.User
	require.NoError(t, f.db.First(&chef, "id = ?", f.chef.ID).Error)
	assert.Equal(t, 23.0, chef.Balance)

	rv, err := f.service.AddReview(ctx, created.ID, domain.AddReviewRequest{Rating: 5, Detail: "great", DishID: ""}, f.customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 5, rv.Rating)
	assert.Equal(t, f.chef.ID.String(), rv.RestID)

	_, err = f.service.AddReview(ctx, created.ID, domain.AddReviewRequest{Rating: 4}, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var reviews int64
	f.db.Model(&entities.Review{}).Where("order_id = ?", created.ID).Count(&reviews)
	assert.Equal(t, int64(1), reviews)

	details, err = f.service.GetOrderDetails(ctx, created.ID, f.chef.ID.String())
	require.NoError(t, err)
	assert.True(t, details.HasReview)
}

func TestUpdateOrderStatusNotifiesCustomer(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)

	res, err := f.service.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: domain.OrderStatusAccepted}, f.chef.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, res.PreviousStatus)
	assert.Equal(t, []string{domain.OrderStatusProcessing, domain.OrderStatusCancelled}, res.NextStatuses)

	sent := f.gateway.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"tok-customer"}, sent[1].Tokens)
	assert.Equal(t, domain.OrderStatusAccepted, sent[1].Msg.Data["status"])

	var rows int64
	f.db.Model(&entities.Notification{}).Where("user_id = ?", f.customer.ID).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateOrderStatusSurvivesPushFailure(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	f.gateway.Err = assert.AnError

	_, err := f.service.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: domain.OrderStatusAccepted}, f.chef.ID.String())
	require.NoError(t, err)

	var stored entities.Order
	require.NoError(t, f.db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, domain.OrderStatusAccepted, stored.Status)
}

func TestOnlyOrderChefCanChangeStatus(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	other := seedUser(t, f.db, "otherchef", domain.RoleChef)

	for _, actor := range []entities.User{f.customer, other} {
		_, err := f.service.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: domain.OrderStatusAccepted}, actor.ID.String())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestClosedOrderRejectsTransitions(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	f.move(t, created.ID, domain.OrderStatusAccepted, domain.OrderStatusCancelled)

	for _, status := range []string{domain.OrderStatusCancelled, domain.OrderStatusAccepted, domain.OrderStatusCompleted} {
		_, err := f.service.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: status}, f.chef.ID.String())
		assert.ErrorIs(t, err, domain.ErrOrderClosed)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	}

	var chef entities.User
	require.NoError(t, f.db.First(&chef, "id = ?", f.chef.ID).Error)
	assert.Equal(t, 0.0, chef.Balance)
}

func TestStatusMovesOutsideLifecycleTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createOrder(t)

	path := []string{
		domain.OrderStatusProcessing,
		domain.OrderStatusRejected,
		domain.OrderStatusAccepted,
		domain.OrderStatusCompleted,
	}
	f.move(t, created.ID, path...)

	var stored entities.Order
	require.NoError(t, f.db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, domain.OrderStatusCompleted, stored.Status)

	var history []entities.OrderHistory
	require.NoError(t, f.db.Where("order_id = ?", created.ID).Find(&history).Error)
	moves := map[string]string{}
	for _, h := range history {
		moves[h.FromStatus] = h.Status
	}
	assert.Equal(t, map[string]string{
		domain.OrderStatusPending:    domain.OrderStatusProcessing,
		domain.OrderStatusProcessing: domain.OrderStatusRejected,
		domain.OrderStatusRejected:   domain.OrderStatusAccepted,
		domain.OrderStatusAccepted:   domain.OrderStatusCompleted,
	}, moves)

	var chef entities.User
	require.NoError(t, f.db.First(&chef, "id = ?", f.chef.ID).Error)
	assert.Equal(t, 23.0, chef.Balance)

	_, err := f.service.UpdateOrderStatus(ctx, created.ID, domain.UpdateOrderStatusRequest{Status: domain.OrderStatusCancelled}, f.chef.ID.String())
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestStaleStatusUpdateIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createOrder(t)

	stale, err := f.repo.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)

	f.move(t, created.ID, domain.OrderStatusAccepted)

	updated, err := f.repo.UpdateStatus(ctx, stale, domain.OrderStatusRejected)
	require.NoError(t, err)
	assert.False(t, updated)

	var stored entities.Order
	require.NoError(t, f.db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, domain.OrderStatusAccepted, stored.Status)
}

func TestReviewRequiresCompletedOrder(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)

	_, err := f.service.AddReview(context.Background(), created.ID, domain.AddReviewRequest{Rating: 5}, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrOrderNotCompleted)
}

func TestReviewDishMustBeInCart(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	f.move(t, created.ID, domain.OrderStatusAccepted, domain.OrderStatusProcessing, domain.OrderStatusCompleted)

	_, err := f.service.AddReview(context.Background(), created.ID, domain.AddReviewRequest{
		Rating: 3,
		DishID: "6f1c1c2e-8d9a-4f4b-9a53-1f0e1b6d2a11",
	}, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrReviewDishNotInOrder)
}

func TestOrderDetailsForbiddenForOutsiders(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t)
	outsider := seedUser(t, f.db, "outsider", domain.RoleCustomer)

	_, err := f.service.GetOrderDetails(context.Background(), created.ID, outsider.ID.String())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateOrderUnknownChef(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ToID:        f.customer.ID.String(),
		OrderType:   domain.OrderTypeTakeaway,
		Amount:      ptr(10.0),
		DeliveryFee: ptr(0.0),
		ServiceFee:  ptr(0.0),
		CartItems:   []domain.CartItemRequest{{DishID: "d", Name: "n", Quantity: 1, Price: 10}},
		Lat:         ptr(0.0),
		Lng:         ptr(0.0),
	}, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderListsForCustomerAndChef(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.createOrder(t)
	f.createOrder(t)
	f.move(t, first.ID, domain.OrderStatusAccepted)

	mine, err := f.service.GetOrders(ctx, domain.GetOrdersRequest{}, f.customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Pagination.Total)
	require.NotNil(t, mine.Orders[0].Chef)
	require.NotNil(t, mine.Orders[0].Chef.Rating)
	assert.Equal(t, 0.0, *mine.Orders[0].Chef.Rating)

	accepted, err := f.service.GetChefOrders(ctx, domain.GetOrdersRequest{Status: domain.OrderStatusAccepted}, f.chef.ID.String())
	require.NoError(t, err)
	require.Len(t, accepted.Orders, 1)
	assert.Equal(t, first.ID, accepted.Orders[0].ID)

	_, err = f.service.GetChefOrders(ctx, domain.GetOrdersRequest{}, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrOnlyChef)
}
