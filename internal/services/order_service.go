package services

import (
	"encoding/json"
	"errors"
	"log"

	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderItemRequest is one requested product within an order.
type OrderItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// CreateOrderRequest is the input to the order-creation workflow. Duplicate
// product ids are not deduplicated; each entry is processed independently.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Products   []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	customerRepo repositories.CustomerRepository
	events       EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, customerRepo repositories.CustomerRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		events:       events,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder validates the request, persists a new order, and decrements
// product stock by the requested quantities.
//
// The order insert and the stock update are two independent repository calls
// with no shared transaction: if the stock update fails after the order was
// persisted, the order exists with stale inventory. Quantity checks compare
// each requested entry against the quantity fetched at the start of the
// call, so duplicate ids in one request are each checked (and decremented)
// against that original value, and concurrent requests for the same product
// are not coordinated.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	ids := make([]string, len(req.Products))
	for i, p := range req.Products {
		ids[i] = p.ID
	}

	existing, err := s.productRepo.GetAllByID(ids)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrNoProductsFound
	}

	existingByID := make(map[string]models.Product, len(existing))
	for _, p := range existing {
		existingByID[p.ID] = p
	}

	var missing []string
	for _, p := range req.Products {
		if _, ok := existingByID[p.ID]; !ok {
			missing = append(missing, p.ID)
		}
	}
	if len(missing) > 0 {
		return nil, &ProductsNotFoundError{IDs: missing}
	}

	var insufficient []string
	for _, p := range req.Products {
		if existingByID[p.ID].Quantity < p.Quantity {
			insufficient = append(insufficient, p.ID)
		}
	}
	if len(insufficient) > 0 {
		return nil, &InsufficientQuantityError{IDs: insufficient}
	}

	items := make([]models.OrderItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = models.OrderItem{
			ProductID: p.ID,
			Price:     existingByID[p.ID].Price,
			Quantity:  p.Quantity,
		}
	}

	newOrder := &models.Order{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		Customer:   *customer,
		Items:      items,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, err
	}

	updates := make([]repositories.ProductQuantityUpdate, len(req.Products))
	for i, p := range req.Products {
		updates[i] = repositories.ProductQuantityUpdate{
			ID:       p.ID,
			Quantity: existingByID[p.ID].Quantity - p.Quantity,
		}
	}
	if _, err := s.productRepo.UpdateQuantities(updates); err != nil {
		return nil, err
	}

	s.publishOrderCreated(newOrder)

	return newOrder, nil
}

// publishOrderCreated emits an order.created event. Publishing is
// best-effort: a broker failure is logged and never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.events == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID":    order.ID,
		"customerID": order.CustomerID,
		"items":      order.Items,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order to JSON: %v", err)
		return
	}
	if err := s.events.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order created event for order %s", order.ID)
	}
}
