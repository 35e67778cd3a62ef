package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders?view=active|history|pool.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFrom(c), services.OrderView(c.QueryParam("view")))
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromReadModel(o))
}

// CreateOrder handles POST /api/v1/orders (manual orders).
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(c), kernel.NewUUID(), commands.CreateOrderInput{
		Contact:     body.Contact.input(),
		Items:       itemInputs(body.Items),
		DeliveryFee: body.DeliveryFee,
		CustomerID:  body.CustomerID,
		ProviderID:  body.ProviderID,
		CourierID:   body.CourierID,
		Notes:       body.Notes,
	})
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderFromDomain(created))
}

// UpdateOrder handles PATCH /api/v1/orders/:id. A courier here only reassigns a
// dispatched order; pending orders are dispatched through AssignCourier.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body OrderPatch
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(actorFrom(c), id, body.input())
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actorFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body Assignment
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(actorFrom(c), id, body.CourierID)
	if err != nil {
		return err
	}

	assigned, err := s.handlers.AssignCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(assigned))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body StatusChange
	if err = bind(c, &body); err != nil {
		return err
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actorFrom(c), id, status)
	if err != nil {
		return err
	}

	changed, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(changed))
}
