package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"petshop/internal/models"
)

// Adapter maps the declared tool schemas onto the pet shop REST API.
// Every operation performs exactly one HTTP call and downgrades every
// failure into a structured Result, so the orchestrating LLM always
// receives a parseable payload instead of a raised error.
type Adapter struct {
	baseURL  string
	client   *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAdapter creates an Adapter targeting the API at baseURL.
func NewAdapter(baseURL string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{},
		validate: validator.New(),
		logger:   logger,
	}
}

// Result is the uniform tool outcome shape returned to the LLM.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// BrowsePetsInput are the structured arguments of the browse_pets tool.
type BrowsePetsInput struct {
	PetType      string   `json:"pet_type" validate:"omitempty,oneof=dog cat bird fish rabbit hamster"`
	MaxPrice     *float64 `json:"max_price" validate:"omitempty,gt=0"`
	MinAgeMonths *int     `json:"min_age_months" validate:"omitempty,gte=0"`
	MaxAgeMonths *int     `json:"max_age_months" validate:"omitempty,gte=0"`
}

// PlaceOrderInput are the structured arguments of the place_order tool.
type PlaceOrderInput struct {
	CustomerName    string   `json:"customer_name" validate:"required,min=1"`
	CustomerEmail   string   `json:"customer_email" validate:"required,email"`
	CustomerPhone   string   `json:"customer_phone" validate:"required,min=1"`
	DeliveryAddress string   `json:"delivery_address" validate:"required,min=5"`
	PetIDs          []string `json:"pet_ids" validate:"required,min=1,dive,required"`
}

// CheckOrderStatusInput are the structured arguments of the
// check_order_status tool.
type CheckOrderStatusInput struct {
	OrderID string `json:"order_id" validate:"required"`
}

// Dispatch routes a named tool call with raw JSON arguments (the shape
// produced by LLM function calling) to the matching operation.
func (a *Adapter) Dispatch(ctx context.Context, name string, args json.RawMessage) Result {
	switch name {
	case ToolBrowsePets:
		var input BrowsePetsInput
		if err := json.Unmarshal(args, &input); err != nil {
			return failure("Invalid arguments for browse_pets: " + err.Error())
		}
		return a.BrowsePets(ctx, input)
	case ToolPlaceOrder:
		var input PlaceOrderInput
		if err := json.Unmarshal(args, &input); err != nil {
			return failure("Invalid arguments for place_order: " + err.Error())
		}
		return a.PlaceOrder(ctx, input)
	case ToolCheckOrderStatus:
		var input CheckOrderStatusInput
		if err := json.Unmarshal(args, &input); err != nil {
			return failure("Invalid arguments for check_order_status: " + err.Error())
		}
		return a.CheckOrderStatus(ctx, input)
	default:
		return failure(fmt.Sprintf("Unknown tool %q", name))
	}
}

// BrowsePets lists pets matching the given filters.
func (a *Adapter) BrowsePets(ctx context.Context, input BrowsePetsInput) Result {
	if err := a.validate.Struct(input); err != nil {
		return failure("Invalid browse_pets arguments: " + err.Error())
	}

	params := url.Values{}
	params.Set("available_only", "true")
	if input.PetType != "" {
		params.Set("pet_type", strings.ToLower(input.PetType))
	}
	if input.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*input.MaxPrice, 'f', -1, 64))
	}
	if input.MinAgeMonths != nil {
		params.Set("min_age_months", strconv.Itoa(*input.MinAgeMonths))
	}
	if input.MaxAgeMonths != nil {
		params.Set("max_age_months", strconv.Itoa(*input.MaxAgeMonths))
	}

	var pets []models.Pet
	if result, ok := a.doJSON(ctx, http.MethodGet, "/pets?"+params.Encode(), nil, &pets); !ok {
		return result
	}

	message := fmt.Sprintf("Found %d pet(s) matching your criteria.", len(pets))
	if len(pets) == 0 {
		message = "No pets found matching your criteria. Try adjusting your filters."
	} else if input.PetType != "" {
		message += fmt.Sprintf(" (Type: %s)", input.PetType)
	}

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"pets":  pets,
			"total": len(pets),
		},
	}
}

// PlaceOrder creates an order for the given pets.
func (a *Adapter) PlaceOrder(ctx context.Context, input PlaceOrderInput) Result {
	if err := a.validate.Struct(input); err != nil {
		return failure("Invalid place_order arguments: " + err.Error())
	}

	var order models.Order
	if result, ok := a.doJSON(ctx, http.MethodPost, "/orders", input, &order); !ok {
		result.Message = "Failed to place order: " + result.Message
		return result
	}

	message := fmt.Sprintf(
		"Order confirmed! Order ID: %s\nTotal: $%.2f for %d pet(s)\nDelivery to: %s\nYou will receive a confirmation email at %s",
		order.ID, order.TotalAmount, len(order.Items), input.DeliveryAddress, input.CustomerEmail)

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"order_id":     order.ID,
			"total_amount": order.TotalAmount,
			"status":       order.Status,
		},
	}
}

// statusMessages maps an order status to the human-readable line shown to
// the customer.
var statusMessages = map[models.OrderStatus]string{
	models.OrderStatusPending:   "Your order is pending confirmation",
	models.OrderStatusConfirmed: "Your order has been confirmed and is being prepared",
	models.OrderStatusShipped:   "Your order has been shipped and is on the way",
	models.OrderStatusDelivered: "Your order has been delivered",
	models.OrderStatusCancelled: "Your order has been cancelled",
}

// CheckOrderStatus reports the current state of an existing order.
func (a *Adapter) CheckOrderStatus(ctx context.Context, input CheckOrderStatusInput) Result {
	if err := a.validate.Struct(input); err != nil {
		return failure("Invalid check_order_status arguments: " + err.Error())
	}

	var order models.Order
	if result, ok := a.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(input.OrderID), nil, &order); !ok {
		if strings.Contains(result.Message, "not found") {
			result.Message = fmt.Sprintf("Order %s not found. Please check the order ID and try again.", input.OrderID)
		}
		return result
	}

	statusMsg, ok := statusMessages[order.Status]
	if !ok {
		statusMsg = "Status: " + string(order.Status)
	}
	message := fmt.Sprintf(
		"Order Status for %s:\n%s\nCustomer: %s\nItems: %d pet(s)\nTotal: $%.2f",
		order.ID, statusMsg, order.Customer.Name, len(order.Items), order.TotalAmount)

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"status":       order.Status,
			"items":        order.Items,
			"total_amount": order.TotalAmount,
		},
	}
}

// doJSON performs one HTTP round trip against the API, decoding a 2xx
// body into out. On any failure it returns (failure result, false); the
// result's message carries the server's message when one was sent.
func (a *Adapter) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) (Result, bool) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure("Failed to encode request: " + err.Error()), false
		}
		reqBody = strings.NewReader(string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return failure("Failed to build request: " + err.Error()), false
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("tool call request failed", zap.String("path", path), zap.Error(err))
		return failure("Pet shop service is unreachable: " + err.Error()), false
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("Failed to read response: " + err.Error()), false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return failure(apiErr.Message), false
		}
		return failure(fmt.Sprintf("request failed with status %d", resp.StatusCode)), false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return failure("Failed to decode response: " + err.Error()), false
	}
	return Result{}, true
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}
