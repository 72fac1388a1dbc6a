// Package http exposes the console over an echo HTTP server.
// Handlers are thin: they parse the request, construct a command or query,
// delegate to the use case, and translate the result to JSON.
package http

import (
	"net/http"

	"opsconsole/internal/core/application/usecases/commands"
	"opsconsole/internal/core/application/usecases/queries"
	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	createUserHandler         commands.CreateUserCommandHandler
	updateUserHandler         commands.UpdateUserCommandHandler
	deleteUserHandler         commands.DeleteUserCommandHandler
	updateUserPasswordHandler commands.UpdateUserPasswordCommandHandler
	postChatMessageHandler    commands.PostChatMessageCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getUsersHandler         queries.GetUsersQueryHandler
	getUserHandler          queries.GetUserQueryHandler
	getConversationsHandler queries.GetConversationsQueryHandler
	getConversationHandler  queries.GetConversationQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	updateUserHandler commands.UpdateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	updateUserPasswordHandler commands.UpdateUserPasswordCommandHandler,
	postChatMessageHandler commands.PostChatMessageCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getConversationsHandler queries.GetConversationsQueryHandler,
	getConversationHandler queries.GetConversationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		createUserHandler:         createUserHandler,
		updateUserHandler:         updateUserHandler,
		deleteUserHandler:         deleteUserHandler,
		updateUserPasswordHandler: updateUserPasswordHandler,
		postChatMessageHandler:    postChatMessageHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getUsersHandler:           getUsersHandler,
		getUserHandler:            getUserHandler,
		getConversationsHandler:   getConversationsHandler,
		getConversationHandler:    getConversationHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// under /api/v1 requires a valid bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", CallerMiddleware(jwtSecret))

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/users", s.GetUsers)
	api.POST("/users", s.CreateUser)
	api.GET("/users/:userId", s.GetUser)
	api.PATCH("/users/:userId", s.UpdateUser)
	api.PUT("/users/:userId/password", s.UpdateUserPassword)
	api.DELETE("/users/:userId", s.DeleteUser)

	api.GET("/assistant/conversations", s.GetConversations)
	api.GET("/assistant/conversations/:conversationId", s.GetConversation)
	api.POST("/assistant/messages", s.PostChatMessage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - the paged order listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	params, err := parseOrderListParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrdersQuery(
		callerFrom(ctx),
		params.status,
		params.search,
		params.createdFrom,
		params.createdTo,
		params.sortField,
		params.sortDescending,
		params.page,
		params.limit,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(response))
}

// CreateOrder handles POST /api/v1/orders - creates an order owned by the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customer, err := order.NewCustomer(request.Customer.Name, request.Customer.Email, request.Customer.Phone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shipping, err := newAddress(request.ShippingAddress)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var billing *order.Address
	if request.BillingAddress != nil {
		address, addrErr := newAddress(*request.BillingAddress)
		if addrErr != nil {
			return badRequest(ctx, addrErr.Error())
		}
		billing = &address
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, line := range request.Items {
		item, itemErr := order.NewItem(line.ProductID, line.Name, line.Quantity, line.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewTokenID(kernel.OrderPrefix)
	caller := callerFrom(ctx)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, caller.ID, customer, shipping, billing, items, request.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrderDetail(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.TokenIDFromString(kernel.OrderPrefix, ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.respondOrderDetail(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId - edits order content.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.TokenIDFromString(kernel.OrderPrefix, ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	update := order.DetailsUpdate{
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		Notes:         request.Notes,
	}
	if request.ShippingAddress != nil {
		address, addrErr := newAddress(*request.ShippingAddress)
		if addrErr != nil {
			return badRequest(ctx, addrErr.Error())
		}
		update.ShippingAddress = &address
	}

	cmd, err := commands.NewUpdateOrderCommand(callerFrom(ctx), orderID, update)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrderDetail(ctx, http.StatusOK, orderID)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.TokenIDFromString(kernel.OrderPrefix, ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(callerFrom(ctx), orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrderDetail(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.TokenIDFromString(kernel.OrderPrefix, ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(callerFrom(ctx), orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/v1/users - the paged account listing (admin only).
func (s *Server) GetUsers(ctx echo.Context) error {
	role := user.RoleUnknown
	if raw := ctx.QueryParam("role"); raw != "" {
		parsed, err := user.ParseRole(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		role = parsed
	}

	status := user.AccountUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := user.ParseAccountStatus(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		status = parsed
	}

	page, limit, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetUsersQuery(
		callerFrom(ctx), role, status, ctx.QueryParam("search"), page, limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserListResponse(response))
}

// CreateUser handles POST /api/v1/users - creates an account (admin only).
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(request.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	status := user.AccountActive
	if request.Status != "" {
		status, err = user.ParseAccountStatus(request.Status)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(
		callerFrom(ctx), userID, request.Email, request.Name, request.Password, role, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondUser(ctx, http.StatusCreated, userID)
}

// GetUser handles GET /api/v1/users/:userId.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	return s.respondUser(ctx, http.StatusOK, userID)
}

// UpdateUser handles PATCH /api/v1/users/:userId (admin only).
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	var request UpdateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	update := user.ProfileUpdate{
		Name:  request.Name,
		Email: request.Email,
	}
	if request.Role != nil {
		role, roleErr := user.ParseRole(*request.Role)
		if roleErr != nil {
			return badRequest(ctx, roleErr.Error())
		}
		update.Role = &role
	}
	if request.Status != nil {
		status, statusErr := user.ParseAccountStatus(*request.Status)
		if statusErr != nil {
			return badRequest(ctx, statusErr.Error())
		}
		update.Status = &status
	}

	cmd, err := commands.NewUpdateUserCommand(callerFrom(ctx), userID, update)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondUser(ctx, http.StatusOK, userID)
}

// UpdateUserPassword handles PUT /api/v1/users/:userId/password.
func (s *Server) UpdateUserPassword(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	var request UpdateUserPasswordRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateUserPasswordCommand(callerFrom(ctx), userID, request.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateUserPasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:userId (admin only).
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDeleteUserCommand(callerFrom(ctx), userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetConversations handles GET /api/v1/assistant/conversations.
func (s *Server) GetConversations(ctx echo.Context) error {
	query, err := queries.NewGetConversationsQuery(callerFrom(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getConversationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ConversationSummary, len(rows))
	for i, row := range rows {
		response[i] = ConversationSummary{
			ID:           row.ID,
			Title:        row.Title,
			MessageCount: row.MessageCount,
			UpdatedAt:    row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetConversation handles GET /api/v1/assistant/conversations/:conversationId.
func (s *Server) GetConversation(ctx echo.Context) error {
	conversationID, err := kernel.TokenIDFromString(
		kernel.ConversationPrefix, ctx.Param("conversationId"))
	if err != nil {
		return badRequest(ctx, "invalid conversation id")
	}

	return s.respondConversationDetail(ctx, http.StatusOK, conversationID)
}

// PostChatMessage handles POST /api/v1/assistant/messages. An empty
// conversationId in the body starts a new thread.
func (s *Server) PostChatMessage(ctx echo.Context) error {
	var request PostChatMessageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	caller := callerFrom(ctx)

	var cmd commands.PostChatMessageCommand
	var conversationID kernel.TokenID
	var err error
	created := request.ConversationID == ""
	if created {
		conversationID = kernel.NewTokenID(kernel.ConversationPrefix)
		cmd, err = commands.NewStartConversationCommand(caller, conversationID, request.Message)
	} else {
		conversationID, err = kernel.TokenIDFromString(
			kernel.ConversationPrefix, request.ConversationID)
		if err != nil {
			return badRequest(ctx, "invalid conversation id")
		}
		cmd, err = commands.NewPostChatMessageCommand(caller, conversationID, request.Message)
	}
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.postChatMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return s.respondConversationDetail(ctx, status, conversationID)
}

func (s *Server) respondOrderDetail(ctx echo.Context, status int, orderID kernel.TokenID) error {
	query, err := queries.NewGetOrderQuery(callerFrom(ctx), orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toOrderDetail(response))
}

func (s *Server) respondUser(ctx echo.Context, status int, userID kernel.UUID) error {
	query, err := queries.NewGetUserQuery(callerFrom(ctx), userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toUser(response))
}

func (s *Server) respondConversationDetail(
	ctx echo.Context, status int, conversationID kernel.TokenID,
) error {
	query, err := queries.NewGetConversationQuery(callerFrom(ctx), conversationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getConversationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toConversationDetail(response))
}

func newAddress(request AddressRequest) (order.Address, error) {
	return order.NewAddress(
		request.Street, request.City, request.State, request.ZipCode, request.Country)
}
