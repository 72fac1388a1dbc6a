package cmd

import (
	httpadapter "opsconsole/internal/adapters/in/http"
	"opsconsole/internal/adapters/out/crypto"
	"opsconsole/internal/adapters/out/postgres"
	"opsconsole/internal/core/application/usecases/commands"
	"opsconsole/internal/core/application/usecases/queries"
	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/jobs"

	"log/slog"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. All dependency
// construction for the application happens here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    order.PricingConfig
	policy     services.AccessPolicy
	responder  *chat.CannedResponder
	hasher     *crypto.BcryptPasswordHasher
}

// NewCompositionRoot creates the application object graph from configuration.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	pricing := order.DefaultPricingConfig()
	if configs.TaxRate > 0 {
		pricing.TaxRate = configs.TaxRate
	}
	if configs.ShippingFee > 0 {
		pricing.ShippingFee = configs.ShippingFee
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
		policy:     services.NewAccessPolicy(),
		responder:  chat.NewCannedResponder(),
		hasher:     crypto.NewBcryptPasswordHasher(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f, c.policy, c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateUserPasswordCommandHandler() commands.UpdateUserPasswordCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserPasswordCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreatePostChatMessageCommandHandler() commands.PostChatMessageCommandHandler {
	var f commands.ChatUoWFactory = FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostChatMessageCommandHandler(f, c.responder)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationsQueryHandler() queries.GetConversationsQueryHandler {
	return queries.NewGetConversationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationQueryHandler() queries.GetConversationQueryHandler {
	return queries.NewGetConversationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersReportQueryHandler() queries.GetPendingOrdersReportQueryHandler {
	return queries.NewGetPendingOrdersReportQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo-facing server from all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCreateUserCommandHandler(),
		c.CreateUpdateUserCommandHandler(),
		c.CreateDeleteUserCommandHandler(),
		c.CreateUpdateUserPasswordCommandHandler(),
		c.CreatePostChatMessageCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUsersQueryHandler(),
		c.CreateGetUserQueryHandler(),
		c.CreateGetConversationsQueryHandler(),
		c.CreateGetConversationQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingOrdersReportQueryHandler(), logger)
}

// FuncOrderUoWFactory adapts a plain function to the order unit-of-work
// factory interface consumed by the order command handlers.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create invokes the wrapped function to open a fresh unit of work.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUserUoWFactory adapts a plain function to the user unit-of-work
// factory interface consumed by the user command handlers.
type FuncUserUoWFactory func() commands.UserUoW

// Create invokes the wrapped function to open a fresh unit of work.
func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncChatUoWFactory adapts a plain function to the chat unit-of-work
// factory interface consumed by the chat command handlers.
type FuncChatUoWFactory func() commands.ChatUoW

// Create invokes the wrapped function to open a fresh unit of work.
func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}
