package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/pkg/notification"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error)
		GetOrders(ctx context.Context, req domain.GetOrdersRequest, userID string) (domain.OrderListResponse, error)
		GetOrderDetails(ctx context.Context, orderID string, userID string) (domain.OrderDetailsResponse, error)
		GetChefOrders(ctx context.Context, req domain.GetOrdersRequest, chefID string) (domain.OrderListResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest, chefID string) (domain.OrderStatusResponse, error)
		AddReview(ctx context.Context, orderID string, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error)
	}

	orderService struct {
		orderRepository     OrderRepository
		reviewRepository    review.ReviewRepository
		userRepository      user.UserRepository
		notificationService notification.NotificationService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	reviewRepository review.ReviewRepository,
	userRepository user.UserRepository,
	notificationService notification.NotificationService,
) OrderService {
	return &orderService{
		orderRepository:     orderRepository,
		reviewRepository:    reviewRepository,
		userRepository:      userRepository,
		notificationService: notificationService,
	}
}

func newOrderNo() string {
	return fmt.Sprintf("%08d", rand.IntN(90000000)+10000000)
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error) {
	customerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}
	if len(req.CartItems) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyCart
	}

	chef, err := s.userRepository.GetUserByID(ctx, req.ToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrChefNotFound
		}
		return domain.OrderResponse{}, err
	}
	if !chef.IsChef() {
		return domain.OrderResponse{}, domain.ErrChefNotFound
	}

	items := make([]entities.CartItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, entities.CartItem{
			DishID:   item.DishID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price * float64(item.Quantity),
			Image:    item.Image,
		})
	}

	order := entities.Order{
		OrderNo:       newOrderNo(),
		OrderType:     req.OrderType,
		UserID:        customerID,
		ToID:          chef.ID,
		Amount:        *req.Amount,
		DeliveryFee:   *req.DeliveryFee,
		ServiceFee:    *req.ServiceFee,
		CartItems:     items,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		TxnID:         req.TxnID,
		Lat:           *req.Lat,
		Lng:           *req.Lng,
		ChefLat:       chef.CurrentLat,
		ChefLng:       chef.CurrentLng,
		Status:        domain.OrderStatusPending,
	}
	if err := s.orderRepository.CreateOrder(ctx, &order); err != nil {
		return domain.OrderResponse{}, err
	}

	s.notificationService.Notify(ctx, domain.NotifyRequest{
		RecipientID: chef.ID.String(),
		Audience:    domain.AudienceChef,
		OrderID:     order.ID.String(),
		Title:       "New Order Received",
		Body:        fmt.Sprintf("You have received a new order #%s", order.OrderNo),
		Type:        domain.NotificationTypeOrder,
		Persist:     true,
	})

	order.Chef = chef
	return domain.NewOrderResponse(order), nil
}

func (s *orderService) GetOrders(ctx context.Context, req domain.GetOrdersRequest, userID string) (domain.OrderListResponse, error) {
	return s.list(ctx, Filter{Column: "user_id", UserID: userID, Status: req.Status, Sort: req.Sort}, req.PaginationRequest)
}

func (s *orderService) GetChefOrders(ctx context.Context, req domain.GetOrdersRequest, chefID string) (domain.OrderListResponse, error) {
	chef, err := s.userRepository.GetUserByID(ctx, chefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderListResponse{}, domain.ErrUserNotFound
		}
		return domain.OrderListResponse{}, err
	}
	if !chef.IsChef() {
		return domain.OrderListResponse{}, domain.ErrOnlyChef
	}
	return s.list(ctx, Filter{Column: "to_id", UserID: chefID, Status: req.Status, Sort: req.Sort}, req.PaginationRequest)
}

func (s *orderService) list(ctx context.Context, f Filter, page domain.PaginationRequest) (domain.OrderListResponse, error) {
	f.Page = page.Normalize(10, 100)

	orders, total, err := s.orderRepository.GetOrders(ctx, f)
	if err != nil {
		return domain.OrderListResponse{}, err
	}

	chefIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		chefIDs = append(chefIDs, o.ToID.String())
	}
	ratings, err := s.reviewRepository.GetChefAverages(ctx, chefIDs)
	if err != nil {
		return domain.OrderListResponse{}, err
	}

	res := domain.OrderListResponse{
		Orders:     make([]domain.OrderResponse, 0, len(orders)),
		Pagination: domain.NewPaginationResponse(f.Page, total),
	}
	for _, o := range orders {
		item := domain.NewOrderResponse(o)
		if item.Chef != nil {
			avg := ratings[o.ToID.String()]
			item.Chef.Rating = &avg.Rating
			item.Chef.ReviewsCount = &avg.Count
		}
		res.Orders = append(res.Orders, item)
	}
	return res, nil
}

func (s *orderService) getOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, domain.ErrParseUUID
	}
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderDetails(ctx context.Context, orderID string, userID string) (domain.OrderDetailsResponse, error) {
	principal, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderDetailsResponse{}, domain.ErrParseUUID
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderDetailsResponse{}, err
	}
	if !order.IsParticipant(principal) {
		return domain.OrderDetailsResponse{}, domain.ErrNotOrderParticipant
	}

	res := domain.OrderDetailsResponse{
		OrderResponse: domain.NewOrderResponse(*order),
		History:       []domain.OrderHistory{},
	}

	if order.ChefLat != nil && order.ChefLng != nil {
		d := review.Round(utils.HaversineKm(order.Lat, order.Lng, *order.ChefLat, *order.ChefLng), 2)
		res.Distance = &d
	}

	rv, err := s.reviewRepository.GetReviewByOrder(ctx, orderID, order.UserID.String())
	switch {
	case err == nil:
		r := domain.NewReviewResponse(*rv)
		res.Review = &r
		res.HasReview = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.OrderDetailsResponse{}, err
	}

	history, err := s.orderRepository.GetHistory(ctx, orderID)
	if err != nil {
		return domain.OrderDetailsResponse{}, err
	}
	for _, h := range history {
		res.History = append(res.History, domain.OrderHistory{
			FromStatus: h.FromStatus,
			Status:     h.Status,
			ChangedBy:  h.ChangedBy.String(),
			CreatedAt:  h.CreatedAt,
		})
	}
	return res, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest, chefID string) (domain.OrderStatusResponse, error) {
	actor, err := uuid.Parse(chefID)
	if err != nil {
		return domain.OrderStatusResponse{}, domain.ErrParseUUID
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderStatusResponse{}, err
	}
	if order.ToID != actor {
		return domain.OrderStatusResponse{}, domain.ErrNotOrderChef
	}
	if err := CanTransition(order.Status, req.Status); err != nil {
		return domain.OrderStatusResponse{}, err
	}

	updated, err := s.orderRepository.UpdateStatus(ctx, order, req.Status)
	if err != nil {
		return domain.OrderStatusResponse{}, err
	}
	if !updated {
		return domain.OrderStatusResponse{}, domain.ErrOrderStatusConflict
	}

	log := utils.Log.WithFields(map[string]any{"order_id": orderID, "status": req.Status})

	history := &entities.OrderHistory{
		OrderID:    order.ID,
		FromStatus: order.Status,
		Status:     req.Status,
		ChangedBy:  actor,
	}
	if err := s.orderRepository.CreateHistory(ctx, history); err != nil {
		log.WithError(err).Error("failed to record order history")
	}

	s.notificationService.Notify(ctx, domain.NotifyRequest{
		RecipientID: order.UserID.String(),
		Audience:    domain.AudienceCustomer,
		OrderID:     orderID,
		Title:       "Order " + req.Status,
		Body:        fmt.Sprintf("Your order #%s has been %s", order.OrderNo, req.Status),
		Type:        domain.NotificationTypeOrder,
		Data:        map[string]string{"status": req.Status},
		Persist:     true,
	})

	return domain.OrderStatusResponse{
		ID:             orderID,
		PreviousStatus: order.Status,
		Status:         req.Status,
		NextStatuses:   NextStatuses(req.Status),
	}, nil
}

func (s *orderService) AddReview(ctx context.Context, orderID string, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error) {
	customerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if order.UserID != customerID {
		return domain.ReviewResponse{}, domain.ErrNotOrderParticipant
	}
	if order.Status != domain.OrderStatusCompleted {
		return domain.ReviewResponse{}, domain.ErrOrderNotCompleted
	}

	exists, err := s.reviewRepository.ExistsForOrder(ctx, orderID, userID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if exists {
		return domain.ReviewResponse{}, domain.ErrReviewAlreadyExists
	}

	rv := entities.Review{
		OrderID: order.ID,
		UserID:  customerID,
		RestID:  order.ToID,
		Rating:  req.Rating,
		Detail:  req.Detail,
		Gallery: req.Gallery,
	}
	if req.DishID != "" {
		dishID, err := uuid.Parse(req.DishID)
		if err != nil {
			return domain.ReviewResponse{}, domain.ErrParseUUID
		}
		if !cartContains(order.CartItems, req.DishID) {
			return domain.ReviewResponse{}, domain.ErrReviewDishNotInOrder
		}
		rv.DishID = &dishID
	}

	if err := s.reviewRepository.CreateReview(ctx, &rv); err != nil {
		// the unique (order_id, user_id) index catches a concurrent duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ReviewResponse{}, domain.ErrReviewAlreadyExists
		}
		return domain.ReviewResponse{}, err
	}

	s.notificationService.Notify(ctx, domain.NotifyRequest{
		RecipientID: order.ToID.String(),
		Audience:    domain.AudienceChef,
		OrderID:     orderID,
		Title:       "New Review",
		Body:        fmt.Sprintf("Order #%s received a %d star review", order.OrderNo, req.Rating),
		Type:        domain.NotificationTypeOrder,
		Persist:     true,
	})

	return domain.NewReviewResponse(rv), nil
}

func cartContains(items []entities.CartItem, dishID string) bool {
	for _, item := range items {
		if item.DishID == dishID {
			return true
		}
	}
	return false
}
