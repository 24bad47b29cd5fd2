// Package http exposes the admin console API over Echo.
// Payload shapes follow the legacy dashboard contract: Mongo-style "_id"
// identifiers, customer details expanded under "userId", and a
// {success, data|message} envelope on every response.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodadmin/internal/core/application/usecases/commands"
	"foodadmin/internal/core/application/usecases/queries"
	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"
	"foodadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	setOrderStatusHandler      commands.SetOrderStatusCommandHandler
	requestCancellationHandler commands.RequestCancellationCommandHandler
	decideCancellationHandler  commands.DecideCancellationCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	createCustomerHandler      commands.CreateCustomerCommandHandler

	// Query handlers
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler
	getAllOrdersHandler            queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	requestCancellationHandler commands.RequestCancellationCommandHandler,
	decideCancellationHandler commands.DecideCancellationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		setOrderStatusHandler:          setOrderStatusHandler,
		requestCancellationHandler:     requestCancellationHandler,
		decideCancellationHandler:      decideCancellationHandler,
		createOrderHandler:             createOrderHandler,
		createCustomerHandler:          createCustomerHandler,
		getPendingCancellationsHandler: getPendingCancellationsHandler,
		getAllOrdersHandler:            getAllOrdersHandler,
	}
}

// RegisterRoutes mounts the admin console API under /api/order.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/order")
	api.GET("/cancellation-requests", s.GetCancellationRequests)
	api.POST("/handle-cancellation", s.HandleCancellation)
	api.POST("/status", s.SetOrderStatus)
	api.GET("/list", s.GetOrders)
	api.POST("/request-cancellation", s.RequestCancellation)
	api.POST("/create", s.CreateOrder)

	e.POST("/api/user/create", s.CreateCustomer)
}

// Envelope shapes of the legacy dashboard contract.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// userResponse expands the ordering customer under the legacy "userId" key.
type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type itemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type addressResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type cancellationResponse struct {
	Reason        string     `json:"reason"`
	RequestedAt   time.Time  `json:"requestedAt"`
	Status        string     `json:"status"`
	AdminResponse string     `json:"adminResponse,omitempty"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty"`
}

type orderResponse struct {
	ID                  string                `json:"_id"`
	UserID              userResponse          `json:"userId"`
	Items               []itemResponse        `json:"items"`
	Amount              int64                 `json:"amount"`
	Address             *addressResponse      `json:"address,omitempty"`
	Status              string                `json:"status"`
	CreatedAt           *time.Time            `json:"createdAt,omitempty"`
	CancellationRequest *cancellationResponse `json:"cancellationRequest,omitempty"`
}

type setStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type handleCancellationRequest struct {
	OrderID       string  `json:"orderId"`
	Action        string  `json:"action"`
	AdminResponse *string `json:"adminResponse"`
}

type requestCancellationRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

type createOrderRequest struct {
	UserID  string          `json:"userId"`
	Items   []itemResponse  `json:"items"`
	Amount  int64           `json:"amount"`
	Address addressResponse `json:"address"`
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// GetCancellationRequests handles GET /api/order/cancellation-requests.
// Returns the arbitration backlog, oldest request first.
func (s *Server) GetCancellationRequests(ctx echo.Context) error {
	query := queries.NewGetPendingCancellationsQuery()

	requests, err := s.getPendingCancellationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]orderResponse, len(requests))
	for i, request := range requests {
		requestedAt := request.RequestedAt
		response[i] = orderResponse{
			ID: request.OrderID.String(),
			UserID: userResponse{
				Name:  request.Customer.Name,
				Email: request.Customer.Email,
				Phone: request.Customer.Phone,
			},
			Items:  itemResponses(request.Items),
			Amount: request.Amount,
			Status: request.Status,
			CancellationRequest: &cancellationResponse{
				Reason:      request.Reason,
				RequestedAt: requestedAt,
				Status:      "Pending",
			},
		}
	}

	return ctx.JSON(http.StatusOK, dataResponse{Success: true, Data: response})
}

// HandleCancellation handles POST /api/order/handle-cancellation.
// Applies the admin's approve/reject decision to a pending request.
func (s *Server) HandleCancellation(ctx echo.Context) error {
	var body handleCancellationRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	decision, err := order.DecisionFromAction(body.Action)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var adminResponse string
	if body.AdminResponse != nil {
		adminResponse = *body.AdminResponse
	}

	cmd, err := commands.NewDecideCancellationCommand(orderID, decision, adminResponse)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.decideCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Cancellation request " + decision.String(),
	})
}

// SetOrderStatus handles POST /api/order/status.
// Moves an order along the fulfillment pipeline.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	var body setStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Order status updated to " + status.String(),
	})
}

// GetOrders handles GET /api/order/list - the full admin order listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		createdAt := o.CreatedAt
		resp := orderResponse{
			ID: o.ID.String(),
			UserID: userResponse{
				Name:  o.Customer.Name,
				Email: o.Customer.Email,
				Phone: o.Customer.Phone,
			},
			Items:  itemResponses(o.Items),
			Amount: o.Amount,
			Address: &addressResponse{
				Name:    o.Address.Name,
				Phone:   o.Address.Phone,
				Street:  o.Address.Street,
				City:    o.Address.City,
				State:   o.Address.State,
				ZipCode: o.Address.ZipCode,
			},
			Status:    o.Status,
			CreatedAt: &createdAt,
		}

		if o.Cancellation != nil {
			resp.CancellationRequest = &cancellationResponse{
				Reason:        o.Cancellation.Reason,
				RequestedAt:   o.Cancellation.RequestedAt,
				Status:        o.Cancellation.Decision,
				AdminResponse: o.Cancellation.AdminResponse,
				RespondedAt:   o.Cancellation.DecidedAt,
			}
		}

		response[i] = resp
	}

	return ctx.JSON(http.StatusOK, dataResponse{Success: true, Data: response})
}

// RequestCancellation handles POST /api/order/request-cancellation.
// The customer-side entry point: files a pending cancellation request.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	var body requestCancellationRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRequestCancellationCommand(orderID, body.Reason)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Cancellation request submitted",
	})
}

// CreateOrder handles POST /api/order/create - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, line := range body.Items {
		item, itemErr := order.NewItem(line.Name, line.Quantity)
		if itemErr != nil {
			return s.errorResponse(ctx, itemErr)
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		body.Address.Name,
		body.Address.Phone,
		body.Address.Street,
		body.Address.City,
		body.Address.State,
		body.Address.ZipCode,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, body.Amount, address)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataResponse{
		Success: true,
		Data:    map[string]string{"_id": orderID.String()},
	})
}

// CreateCustomer handles POST /api/user/create - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body createCustomerRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(customerID, body.Name, body.Email, body.Phone)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataResponse{
		Success: true,
		Data:    map[string]string{"_id": customerID.String()},
	})
}

func itemResponses(items []queries.ItemResponse) []itemResponse {
	result := make([]itemResponse, len(items))
	for i, item := range items {
		result[i] = itemResponse{Name: item.Name, Quantity: item.Quantity}
	}
	return result
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, messageResponse{
		Success: false,
		Message: message,
	})
}

// errorResponse maps domain and infrastructure errors onto the legacy envelope.
// Business rule violations are 400, unknown orders 404, lost version races 409,
// anything else 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), messageResponse{
		Success: false,
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, order.ErrIllegalStatusTransition),
		errors.Is(err, order.ErrPendingCancellationConflict),
		errors.Is(err, order.ErrCancellationNotAllowed),
		errors.Is(err, order.ErrDuplicateCancellationRequest),
		errors.Is(err, order.ErrNoPendingCancellationRequest),
		errors.Is(err, order.ErrInvalidCancellationDecision),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrReasonIsRequired),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, commands.ErrAmountIsInvalid),
		errors.Is(err, commands.ErrNameIsRequired),
		errors.Is(err, commands.ErrEmailIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
