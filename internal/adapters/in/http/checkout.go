package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/metrics"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// QuoteCheckout handles POST /api/v1/checkout/quote. Nothing is written.
func (s *Server) QuoteCheckout(c echo.Context) error {
	var body Cart
	if err := bind(c, &body); err != nil {
		return err
	}

	lines, err := body.cartLines()
	if err != nil {
		return err
	}

	query, err := queries.NewQuoteQuery(actorFrom(c), lines, body.GrantID)
	if err != nil {
		return err
	}

	quote, err := s.handlers.Quote.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quoteFromReadModel(quote))
}

// Checkout handles POST /api/v1/checkout. Either the whole bundle is created
// or nothing is.
func (s *Server) Checkout(c echo.Context) error {
	var body Checkout
	if err := bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(actorFrom(c), kernel.NewUUID(), commands.CheckoutInput{
		Lines:   body.lineInputs(),
		Contact: body.Contact.input(),
		GrantID: body.GrantID,
		Notes:   body.Notes,
	})
	if err != nil {
		s.recorder.CheckoutFinished(metrics.ResultRejected)
		return err
	}

	bundle, err := s.handlers.Checkout.Handle(c.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrBundleRolledBack):
		s.recorder.CheckoutFinished(metrics.ResultRolledBack)
		s.logger.WarnContext(c.Request().Context(), "Checkout rolled back", "bundle", cmd.BundleID().String(), "error", err)
		return err
	case err != nil:
		s.recorder.CheckoutFinished(metrics.ResultRejected)
		return err
	}

	s.recorder.CheckoutFinished(metrics.ResultOK)
	return c.JSON(http.StatusCreated, bundleFromDomain(bundle))
}
