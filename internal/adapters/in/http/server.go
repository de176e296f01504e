package http

import (
	"errors"
	"net/http"
	"strconv"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/application/usecases/queries"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service. The service
// trusts them as-is.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server wires HTTP routes to application use cases. It owns no business
// logic: it parses requests, resolves the acting user from the trusted
// identity headers and translates application errors to status codes.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	provideQuoteHandler       commands.ProvideQuoteCommandHandler
	decideQuoteHandler        commands.DecideQuoteCommandHandler
	requestCustomQuoteHandler commands.RequestCustomQuoteCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	createLabServiceHandler   commands.CreateLabServiceCommandHandler
	updateLabServiceHandler   commands.UpdateLabServiceCommandHandler

	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getOrderStatsHandler  queries.GetOrderStatsQueryHandler
	getLabServicesHandler queries.GetLabServicesQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	provideQuoteHandler commands.ProvideQuoteCommandHandler,
	decideQuoteHandler commands.DecideQuoteCommandHandler,
	requestCustomQuoteHandler commands.RequestCustomQuoteCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createLabServiceHandler commands.CreateLabServiceCommandHandler,
	updateLabServiceHandler commands.UpdateLabServiceCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getLabServicesHandler queries.GetLabServicesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		provideQuoteHandler:       provideQuoteHandler,
		decideQuoteHandler:        decideQuoteHandler,
		requestCustomQuoteHandler: requestCustomQuoteHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		createLabServiceHandler:   createLabServiceHandler,
		updateLabServiceHandler:   updateLabServiceHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getOrderStatsHandler:      getOrderStatsHandler,
		getLabServicesHandler:     getLabServicesHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/stats", s.GetOrderStats)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/quote", s.ProvideQuote)
	v1.POST("/orders/:id/approve-quote", s.DecideQuote)
	v1.POST("/orders/:id/request-custom-quote", s.RequestCustomQuote)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.GET("/services", s.GetLabServices)
	v1.POST("/services", s.CreateLabService)
	v1.PATCH("/services/:id", s.UpdateLabService)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serviceID, err := kernel.UUIDFromString(body.ServiceID.String())
	if err != nil {
		return badRequest(ctx, "invalid serviceId")
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor,
		serviceID,
		body.SampleDescription,
		body.SpecialInstructions,
		order.ClientDetails{
			Name:         body.ClientDetails.Name,
			Email:        body.ClientDetails.Email,
			Phone:        body.ClientDetails.Phone,
			Organization: body.ClientDetails.Organization,
			Address:      body.ClientDetails.Address,
		},
		body.RequestCustomQuote,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid status filter")
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:          o.ID.Bytes(),
			Status:      o.Status.String(),
			ServiceName: o.ServiceName,
			LabName:     o.LabName,
			QuotedPrice: o.QuotedPrice,
			QuotedAt:    o.QuotedAt,
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		ID:                      found.ID.Bytes(),
		Status:                  found.Status.String(),
		ServiceName:             found.ServiceName,
		LabName:                 found.LabName,
		SampleDescription:       found.SampleDescription,
		SpecialInstructions:     found.SpecialInstructions,
		QuotedPrice:             found.QuotedPrice,
		QuotedAt:                found.QuotedAt,
		QuoteNotes:              found.QuoteNotes,
		EstimatedTurnaroundDays: found.EstimatedTurnaroundDays,
		QuoteRejectedReason:     found.QuoteRejectedReason,
		QuoteApprovedAt:         found.QuoteApprovedAt,
		QuoteRejectedAt:         found.QuoteRejectedAt,
		AcknowledgedAt:          found.AcknowledgedAt,
		CompletedAt:             found.CompletedAt,
		CreatedAt:               found.CreatedAt,
	})
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOrderStatsQuery(actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, OrderStatsResponse{
		Total:    stats.Total,
		ByStatus: byStatus,
	})
}

// ProvideQuote handles POST /api/v1/orders/:id/quote.
func (s *Server) ProvideQuote(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body ProvideQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewProvideQuoteCommand(
		actor, orderID, body.Price, body.QuoteNotes, body.EstimatedTurnaroundDays)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.provideQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DecideQuote handles POST /api/v1/orders/:id/approve-quote.
func (s *Server) DecideQuote(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body DecideQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDecideQuoteCommand(actor, orderID, body.Approved, body.RejectionReason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.decideQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// RequestCustomQuote handles POST /api/v1/orders/:id/request-custom-quote.
func (s *Server) RequestCustomQuote(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body RequestCustomQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestCustomQuoteCommand(actor, orderID, body.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.requestCustomQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body UpdateOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, newStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetLabServices handles GET /api/v1/services. The endpoint is public: no
// identity headers are required to browse the catalog.
func (s *Server) GetLabServices(ctx echo.Context) error {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "invalid page")
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "invalid pageSize")
		}
		pageSize = parsed
	}

	query, err := queries.NewGetLabServicesQuery(ctx.QueryParam("category"), page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	services, err := s.getLabServicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]LabServiceListItemResponse, len(services))
	for i, svc := range services {
		response[i] = LabServiceListItemResponse{
			ID:             svc.ID.Bytes(),
			LabName:        svc.LabName,
			Name:           svc.Name,
			Description:    svc.Description,
			Category:       svc.Category,
			PricingMode:    svc.PricingMode.String(),
			PricePerUnit:   svc.PricePerUnit,
			UnitType:       svc.UnitType,
			TurnaroundDays: svc.TurnaroundDays,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateLabService handles POST /api/v1/services.
func (s *Server) CreateLabService(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body CreateLabServiceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	labID, err := kernel.UUIDFromString(body.LabID.String())
	if err != nil {
		return badRequest(ctx, "invalid labId")
	}

	pricingMode, err := labservice.PricingModeFromString(body.PricingMode)
	if err != nil {
		return badRequest(ctx, "invalid pricingMode")
	}

	cmd, err := commands.NewCreateLabServiceCommand(
		actor,
		labID,
		body.Name,
		body.Description,
		body.Category,
		pricingMode,
		body.PricePerUnit,
		body.TurnaroundDays,
		body.SampleRequirements,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createLabServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, labServiceToResponse(created))
}

// UpdateLabService handles PATCH /api/v1/services/:id.
func (s *Server) UpdateLabService(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	serviceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid service id")
	}

	var body UpdateLabServiceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var pricingMode *labservice.PricingMode
	if body.PricingMode != nil {
		parsed, err := labservice.PricingModeFromString(*body.PricingMode)
		if err != nil {
			return badRequest(ctx, "invalid pricingMode")
		}
		pricingMode = &parsed
	}

	cmd, err := commands.NewUpdateLabServiceCommand(
		actor,
		serviceID,
		body.Name,
		body.Description,
		pricingMode,
		body.PricePerUnit,
		body.TurnaroundDays,
		body.SampleRequirements,
		body.Active,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateLabServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, labServiceToResponse(updated))
}

// actorFromRequest resolves the acting user from the identity headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role)
}

func orderToResponse(o *order.Order) OrderResponse {
	response := OrderResponse{
		ID:                  o.ID().Bytes(),
		ClientID:            o.ClientID().Bytes(),
		LabID:               o.LabID().Bytes(),
		ServiceID:           o.ServiceID().Bytes(),
		Status:              o.Status().String(),
		SampleDescription:   o.SampleDescription(),
		SpecialInstructions: o.SpecialInstructions(),
		ClientDetails: ClientDetailsBody{
			Name:         o.ClientDetails().Name,
			Email:        o.ClientDetails().Email,
			Phone:        o.ClientDetails().Phone,
			Organization: o.ClientDetails().Organization,
			Address:      o.ClientDetails().Address,
		},
		QuotedAt:                o.QuotedAt(),
		QuoteNotes:              o.QuoteNotes(),
		EstimatedTurnaroundDays: o.EstimatedTurnaroundDays(),
		QuoteRejectedReason:     o.QuoteRejectedReason(),
		QuoteApprovedAt:         o.QuoteApprovedAt(),
		QuoteRejectedAt:         o.QuoteRejectedAt(),
		AcknowledgedAt:          o.AcknowledgedAt(),
		CompletedAt:             o.CompletedAt(),
	}

	if price := o.QuotedPrice(); price != nil {
		d := price.Decimal()
		response.QuotedPrice = &d
	}

	return response
}

func labServiceToResponse(svc *labservice.LabService) LabServiceResponse {
	response := LabServiceResponse{
		ID:                 svc.ID().Bytes(),
		LabID:              svc.LabID().Bytes(),
		Name:               svc.Name(),
		Description:        svc.Description(),
		Category:           svc.Category(),
		PricingMode:        svc.PricingMode().String(),
		UnitType:           svc.UnitType(),
		TurnaroundDays:     svc.TurnaroundDays(),
		SampleRequirements: svc.SampleRequirements(),
		Active:             svc.IsActive(),
	}

	if price := svc.PricePerUnit(); price != nil {
		d := price.Decimal()
		response.PricePerUnit = &d
	}

	return response
}

// problem maps an application error to an HTTP response. Validation errors
// surface as 400, authorization as 403, missing or foreign objects as 404 and
// concurrent-modification conflicts as 409.
func problem(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return respondError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return respondError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func unauthorized(ctx echo.Context) error {
	return respondError(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
}

func badRequest(ctx echo.Context, message string) error {
	return respondError(ctx, http.StatusBadRequest, message)
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
