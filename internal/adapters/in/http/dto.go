package http

import (
	"time"

	"opsconsole/internal/core/application/usecases/queries"
)

// Request bodies.

// AddressRequest is a postal address in a request body.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// CustomerRequest is the customer snapshot in an order creation request.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderItemRequest is one line item in an order creation request.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// billingAddress defaults to the shipping address when omitted.
type CreateOrderRequest struct {
	Customer        CustomerRequest    `json:"customer"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
	BillingAddress  *AddressRequest    `json:"billingAddress,omitempty"`
	Items           []OrderItemRequest `json:"items"`
	Notes           string             `json:"notes"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:id.
// Absent fields are left unchanged.
type UpdateOrderRequest struct {
	CustomerName    *string         `json:"customerName,omitempty"`
	CustomerEmail   *string         `json:"customerEmail,omitempty"`
	CustomerPhone   *string         `json:"customerPhone,omitempty"`
	ShippingAddress *AddressRequest `json:"shippingAddress,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserRequest is the body of PATCH /api/v1/users/:id.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// UpdateUserPasswordRequest is the body of PUT /api/v1/users/:id/password.
type UpdateUserPasswordRequest struct {
	Password string `json:"password"`
}

// PostChatMessageRequest is the body of POST /api/v1/assistant/messages.
// An empty conversationId starts a new thread.
type PostChatMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

// Response bodies.

// Address is a postal address in a response.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem is one line item in an order detail response.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// OrderSummary is one row of the order listing, line items included.
type OrderSummary struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	ItemCount     int         `json:"itemCount"`
	Total         float64     `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// PageMeta is pagination metadata accompanying every listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// OrderListResponse is the body of GET /api/v1/orders.
type OrderListResponse struct {
	Data []OrderSummary `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// OrderDetail is the body of single-order responses.
type OrderDetail struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	OwnerID         string      `json:"ownerId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Discount        float64     `json:"discount"`
	Tax             float64     `json:"tax"`
	ShippingFee     float64     `json:"shippingFee"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// User is one account in a response.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse is the body of GET /api/v1/users.
type UserListResponse struct {
	Data []User   `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ConversationSummary is one thread in the conversation listing.
type ConversationSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"messageCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Message is one entry in a conversation detail response.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationDetail is the body of single-conversation responses.
type ConversationDetail struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Mapping from query responses.

func toAddress(a queries.AddressResponse) Address {
	return Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toOrderItems(items []queries.OrderItemResponse) []OrderItem {
	converted := make([]OrderItem, len(items))
	for i, item := range items {
		converted[i] = OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	return converted
}

func toOrderDetail(r queries.GetOrderQueryResponse) OrderDetail {
	items := toOrderItems(r.Items)

	return OrderDetail{
		ID:              r.ID,
		OrderNumber:     r.OrderNumber,
		OwnerID:         r.OwnerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: toAddress(r.ShippingAddress),
		BillingAddress:  toAddress(r.BillingAddress),
		Items:           items,
		Subtotal:        r.Subtotal,
		Discount:        r.Discount,
		Tax:             r.Tax,
		ShippingFee:     r.ShippingFee,
		Total:           r.Total,
		Status:          r.Status,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toOrderListResponse(r queries.GetOrdersQueryResponse) OrderListResponse {
	data := make([]OrderSummary, len(r.Orders))
	for i, o := range r.Orders {
		data[i] = OrderSummary{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			Status:        o.Status,
			Items:         toOrderItems(o.Items),
			ItemCount:     o.ItemCount,
			Total:         o.Total,
			CreatedAt:     o.CreatedAt,
		}
	}

	return OrderListResponse{
		Data: data,
		Meta: PageMeta{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}

func toUser(r queries.UserResponse) User {
	return User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toUserListResponse(r queries.GetUsersQueryResponse) UserListResponse {
	data := make([]User, len(r.Users))
	for i, u := range r.Users {
		data[i] = toUser(u)
	}

	return UserListResponse{
		Data: data,
		Meta: PageMeta{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}

func toConversationDetail(r queries.GetConversationQueryResponse) ConversationDetail {
	messages := make([]Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = Message{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}

	return ConversationDetail{
		ID:        r.ID,
		Title:     r.Title,
		Messages:  messages,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
