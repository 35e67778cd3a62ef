package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// Bundle is the committed result of a checkout.
type Bundle struct {
	ID     kernel.UUID
	Orders []*order.Order
	Grant  *prize.Grant
}

// CheckoutCommandHandler creates every child order of a bundle and redeems the
// grant in a single transaction bounded by a timeout.
//
// Failure semantics:
//   - input and grant problems found before anything is written come back as
//     validation, authorization or conflict errors
//   - any failure once writing has started, including the timeout, rolls the
//     whole bundle back and is reported as one errs.BundleRollbackError
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	splitter   services.BundleSplitter
	timeout    time.Duration
}

func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	splitter services.BundleSplitter,
	timeout time.Duration,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, splitter: splitter, timeout: timeout}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*Bundle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Actor().Role() != kernel.RoleCustomer {
		return nil, errs.NewForbiddenError(cmd.Actor().String(), "check out")
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	grant, err := h.loadGrant(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	plan, err := h.splitter.Plan(cmd.Lines(), grant)
	if err != nil {
		return nil, err
	}
	if grant != nil && !plan.GrantApplicable {
		return nil, errs.NewValueIsInvalidErrorWithCause("grant", services.ErrGrantIsNotApplicable)
	}

	bundle, err := h.write(ctx, uow, cmd, plan, grant)
	if err != nil {
		return nil, errs.NewBundleRollbackError(cmd.BundleID().String(), err)
	}

	return bundle, nil
}

func (h CheckoutCommandHandler) loadGrant(ctx context.Context, uow CheckoutUoW, cmd CheckoutCommand) (*prize.Grant, error) {
	grantID := cmd.GrantID()
	if grantID == nil {
		return nil, nil
	}

	grant, err := uow.GrantRepository().Get(ctx, *grantID)
	if err != nil {
		return nil, err
	}
	if !grant.BelongsTo(cmd.Actor().ID()) {
		return nil, errs.NewForbiddenError(cmd.Actor().String(), "spend grant "+grantID.String())
	}
	if grant.IsRedeemed() {
		return nil, errs.NewConflictError("prize grant", "redeemed", "redeem")
	}

	return grant, nil
}

func (h CheckoutCommandHandler) write(
	ctx context.Context,
	uow CheckoutUoW,
	cmd CheckoutCommand,
	plan services.BundlePlan,
	grant *prize.Grant,
) (*Bundle, error) {
	now := time.Now()
	bundleID := cmd.BundleID()
	customerID := cmd.Actor().ID()
	orderRepo := uow.OrderRepository()

	bundle := &Bundle{ID: bundleID, Grant: grant}

	for _, planned := range plan.Orders {
		providerID := planned.ProviderID
		draft := order.Draft{
			CustomerID:        &customerID,
			ProviderID:        &providerID,
			BundleID:          &bundleID,
			Contact:           cmd.Contact(),
			Items:             planned.Items,
			DeliveryFee:       planned.DeliveryFee,
			DeliveryFeeWaived: planned.DeliveryFeeWaived,
			Discount:          planned.Discount,
			Origin:            order.OriginCustomerChannel,
			Notes:             cmd.Notes(),
		}
		if planned.GrantApplied {
			grantID := grant.ID()
			draft.GrantID = &grantID
		}

		o, err := order.NewOrder(kernel.NewUUID(), draft, now)
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		bundle.Orders = append(bundle.Orders, o)
	}

	if grant != nil {
		if err := grant.Redeem(bundleID, now); err != nil {
			return nil, err
		}
		if err := uow.GrantRepository().Redeem(ctx, grant); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return bundle, nil
}
