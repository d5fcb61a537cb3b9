package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), validCustomer(t), validItems(t),
		decimal.NewFromInt(300), "aGVsbG8=", time.Time{})
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.Accept())
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing, order.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderConfirmed", ctx, existing).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	confirmed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, confirmed)
	assert.Equal(t, order.StatusConfirmed, confirmed.Status())
	assert.Equal(t, order.PaymentVerified, confirmed.PaymentStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly
	h := commands.NewAcceptOrderCommandHandler(new(MockOrderUoWFactory), new(MockNotifier))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewOrderID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "OrderConfirmed", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyTransitioned(t *testing.T) {
	ctx := t.Context()
	existing := confirmedOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "OrderConfirmed", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_LostUpdateRace(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing, order.StatusPending).
			Return(errs.NewConflictError("status", existing.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	notifier.AssertNotCalled(t, "OrderConfirmed", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing, order.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "OrderConfirmed", mock.Anything, mock.Anything)
}
