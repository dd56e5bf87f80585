package models

import "time"

// Projections are the explicit response shapes of the API. Each endpoint
// picks one instead of serializing whatever relationships happen to be
// loaded on the entity.

const dateLayout = "2006-01-02"

// CustomerView is the flat customer shape used in every response.
type CustomerView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Nationality string `json:"nationality"`
}

// OrderView is the flat order shape shared by the nested projections.
type OrderView struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Date       string `json:"date"`
	State      string `json:"state"`
}

// ItemView is the flat item shape.
type ItemView struct {
	ID      uint    `json:"id"`
	OrderID uint    `json:"order_id"`
	Width   float64 `json:"width"`
	Length  float64 `json:"length"`
}

// OrderWithCustomer is the order shape returned by create, list and
// transition: the order plus its owning customer.
type OrderWithCustomer struct {
	OrderView
	Customer CustomerView `json:"customer"`
}

// OrderWithItems is the order detail shape: the order plus its items,
// without the customer.
type OrderWithItems struct {
	OrderView
	Items []ItemView `json:"items"`
}

// CustomerWithOrders is the customer list shape: the customer plus every
// order and each order's items.
type CustomerWithOrders struct {
	CustomerView
	Orders []OrderWithItems `json:"orders"`
}

// ItemWithOrder is the item creation shape: the item plus its order and
// that order's customer.
type ItemWithOrder struct {
	ItemView
	Order OrderWithCustomer `json:"order"`
}

func formatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// NewCustomerView projects a customer without its orders.
func NewCustomerView(c Customer) CustomerView {
	return CustomerView{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Nationality: c.Nationality,
	}
}

// NewOrderView projects an order without any of its relationships.
func NewOrderView(o Order) OrderView {
	return OrderView{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Date:       formatDate(o.Date),
		State:      o.State,
	}
}

// NewItemView projects an item without its order.
func NewItemView(i Item) ItemView {
	return ItemView{
		ID:      i.ID,
		OrderID: i.OrderID,
		Width:   i.Width,
		Length:  i.Length,
	}
}

// NewOrderWithCustomer projects an order together with its loaded customer.
func NewOrderWithCustomer(o Order) OrderWithCustomer {
	return OrderWithCustomer{
		OrderView: NewOrderView(o),
		Customer:  NewCustomerView(o.Customer),
	}
}

// NewOrderWithItems projects an order together with its loaded items.
func NewOrderWithItems(o Order) OrderWithItems {
	items := make([]ItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, NewItemView(item))
	}
	return OrderWithItems{
		OrderView: NewOrderView(o),
		Items:     items,
	}
}

// NewCustomerWithOrders projects a customer together with its loaded
// orders and their items.
func NewCustomerWithOrders(c Customer) CustomerWithOrders {
	orders := make([]OrderWithItems, 0, len(c.Orders))
	for _, o := range c.Orders {
		orders = append(orders, NewOrderWithItems(o))
	}
	return CustomerWithOrders{
		CustomerView: NewCustomerView(c),
		Orders:       orders,
	}
}

// NewItemWithOrder projects an item together with its loaded order and
// that order's customer.
func NewItemWithOrder(i Item) ItemWithOrder {
	return ItemWithOrder{
		ItemView: NewItemView(i),
		Order:    NewOrderWithCustomer(i.Order),
	}
}
