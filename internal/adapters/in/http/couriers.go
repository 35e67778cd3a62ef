package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListCouriers handles GET /api/v1/couriers?available=true|false&scope=manage.
// The manage scope includes unavailable team members for registry screens.
func (s *Server) ListCouriers(c echo.Context) error {
	var available *bool
	if raw := c.QueryParam("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available must be true or false")
		}
		available = &v
	}

	query, err := queries.NewListCouriersQuery(actorFrom(c), available, c.QueryParam("scope") == "manage")
	if err != nil {
		return err
	}

	couriers, err := s.handlers.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Courier, 0, len(couriers))
	for _, courier := range couriers {
		response = append(response, courierFromReadModel(courier))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var body NewCourier
	if err := bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(actorFrom(c), kernel.NewUUID(), body.Name, body.Phone, body.SupervisorIDs)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, courierFromDomain(created))
}

// DeleteCourier handles DELETE /api/v1/couriers/:id (soft delete).
func (s *Server) DeleteCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCourierCommand(actorFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddSupervisor handles PUT /api/v1/couriers/:id/supervisors/:supervisorId.
func (s *Server) AddSupervisor(c echo.Context) error {
	return s.setAssignment(c, commands.AssignmentAdd)
}

// RemoveSupervisor handles DELETE /api/v1/couriers/:id/supervisors/:supervisorId.
func (s *Server) RemoveSupervisor(c echo.Context) error {
	return s.setAssignment(c, commands.AssignmentRemove)
}

func (s *Server) setAssignment(c echo.Context, action commands.AssignmentAction) error {
	courierID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	supervisorID, err := pathUUID(c, "supervisorId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetAssignmentCommand(actorFrom(c), courierID, supervisorID, action)
	if err != nil {
		return err
	}
	if err = s.handlers.SetAssignment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetAvailability handles PUT /api/v1/couriers/:id/availability.
func (s *Server) SetAvailability(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body Availability
	if err = bind(c, &body); err != nil {
		return err
	}
	if body.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "available is required")
	}

	cmd, err := commands.NewSetAvailabilityCommand(actorFrom(c), id, *body.Available)
	if err != nil {
		return err
	}
	if err = s.handlers.SetAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}
