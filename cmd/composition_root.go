package cmd

import (
	"context"
	"log/slog"

	"github.com/Tilak2001/Anandicecream/internal/adapters/out/auth"
	"github.com/Tilak2001/Anandicecream/internal/adapters/out/pdf"
	"github.com/Tilak2001/Anandicecream/internal/adapters/out/postgres"
	"github.com/Tilak2001/Anandicecream/internal/adapters/out/smtp"
	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/queries"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
	"github.com/Tilak2001/Anandicecream/internal/jobs"
	"github.com/Tilak2001/Anandicecream/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependency
// decisions live here so the rest of the code only sees ports.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	dispatcher    *notifications.Dispatcher
	authenticator *auth.FixedCredentialAuthenticator
	logger        *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and an open
// database handle. The returned root owns the notification dispatcher; call
// Dispatcher().Start and Stop around the server lifetime.
func NewCompositionRoot(
	configs Config, gormDB *gorm.DB, logger *slog.Logger,
) (CompositionRoot, error) {
	mailer, err := smtp.NewMailer(smtp.Config{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUsername,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	renderer := pdf.NewRenderer()
	dispatcher := notifications.NewDispatcher(mailer, renderer, renderer, notifications.Config{
		OperatorEmail: configs.OperatorEmail,
		SendTimeout:   configs.NotificationSendTimeout,
		QueueSize:     configs.NotificationQueueSize,
	}, logger)

	authenticator := auth.NewFixedCredentialAuthenticator(auth.Config{
		Username:   configs.AdminUsername,
		Password:   configs.AdminPassword,
		SessionTTL: configs.AdminSessionTTL,
	})

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher:    dispatcher,
		authenticator: authenticator,
		logger:        logger,
	}, nil
}

// Dispatcher exposes the notification dispatcher for lifecycle control.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

// Authenticator exposes the admin authenticator for the HTTP adapter.
func (c *CompositionRoot) Authenticator() ports.Authenticator {
	return c.authenticator
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs against the dispatcher.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

// CreateStorePinger returns the health check dependency for the HTTP server.
func (c *CompositionRoot) CreateStorePinger() DBPinger {
	return DBPinger{db: c.gormDB}
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// DBPinger checks database reachability for the health endpoint.
type DBPinger struct {
	db *gorm.DB
}

func (p DBPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
