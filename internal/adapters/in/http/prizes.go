package http

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/metrics"

	"github.com/labstack/echo/v4"
)

// ListPrizes handles GET /api/v1/prizes. Owners see inactive rows too.
func (s *Server) ListPrizes(c echo.Context) error {
	query, err := queries.NewListPrizesQuery(actorFrom(c))
	if err != nil {
		return err
	}

	prizes, err := s.handlers.ListPrizes.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Prize, 0, len(prizes))
	for _, p := range prizes {
		response = append(response, prizeFromReadModel(p))
	}
	return c.JSON(http.StatusOK, response)
}

// CreatePrize handles POST /api/v1/prizes.
func (s *Server) CreatePrize(c echo.Context) error {
	var body NewPrize
	if err := bind(c, &body); err != nil {
		return err
	}

	def, err := body.definition()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePrizeCommand(actorFrom(c), kernel.NewUUID(), def, body.Weight, body.Color)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreatePrize.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, prizeFromDomain(created))
}

// UpdatePrize handles PATCH /api/v1/prizes/:id, including (de)activation.
func (s *Server) UpdatePrize(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body PrizePatch
	if err = bind(c, &body); err != nil {
		return err
	}
	in, err := body.input()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePrizeCommand(actorFrom(c), id, in)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdatePrize.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prizeFromDomain(updated))
}

// SpinPrize handles POST /api/v1/prizes/spin.
func (s *Server) SpinPrize(c echo.Context) error {
	cmd, err := commands.NewSpinPrizeCommand(actorFrom(c), kernel.NewUUID())
	if err != nil {
		return err
	}

	grant, err := s.handlers.SpinPrize.Handle(c.Request().Context(), cmd)
	switch {
	case errors.Is(err, prize.ErrNoPrizesConfigured):
		s.recorder.SpinFinished(metrics.ResultEmpty)
		return err
	case err != nil:
		s.recorder.SpinFinished(metrics.ResultFailed)
		return err
	}

	s.recorder.SpinFinished(metrics.ResultOK)
	return c.JSON(http.StatusCreated, grantFromDomain(grant))
}

// ListPrizeGrants handles GET /api/v1/prizes/grants?unredeemed=true.
func (s *Server) ListPrizeGrants(c echo.Context) error {
	unredeemed := false
	if raw := c.QueryParam("unredeemed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unredeemed must be true or false")
		}
		unredeemed = v
	}

	query, err := queries.NewListPrizeGrantsQuery(actorFrom(c), unredeemed)
	if err != nil {
		return err
	}

	grants, err := s.handlers.ListPrizeGrants.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Grant, 0, len(grants))
	for _, g := range grants {
		response = append(response, grantFromReadModel(g))
	}
	return c.JSON(http.StatusOK, response)
}
