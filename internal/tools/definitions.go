package tools

// Tool names as declared to the orchestrating LLM.
const (
	ToolBrowsePets       = "browse_pets"
	ToolPlaceOrder       = "place_order"
	ToolCheckOrderStatus = "check_order_status"
)

// Definition is a tool declaration in the function-calling shape hosted
// LLM APIs expect.
type Definition struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef declares a callable function and its JSON-schema parameters.
type FunctionDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Definitions returns the three tool schemas handed to the LLM.
func Definitions() []Definition {
	return []Definition{
		{
			Type: "function",
			Function: FunctionDef{
				Name:        ToolBrowsePets,
				Description: "Browse available pets in the pet shop. Can filter by pet type, price range, and age range. Returns a list of pets matching the criteria.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"pet_type": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"dog", "cat", "bird", "fish", "rabbit", "hamster"},
							"description": "Filter by type of pet",
						},
						"max_price": map[string]interface{}{
							"type":        "number",
							"description": "Maximum price in USD",
						},
						"min_age_months": map[string]interface{}{
							"type":        "integer",
							"description": "Minimum age in months",
						},
						"max_age_months": map[string]interface{}{
							"type":        "integer",
							"description": "Maximum age in months",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: FunctionDef{
				Name:        ToolPlaceOrder,
				Description: "Place an order for one or more pets. Requires customer information and list of pet IDs to purchase. Returns order confirmation with order ID.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"customer_name": map[string]interface{}{
							"type":        "string",
							"description": "Customer's full name",
						},
						"customer_email": map[string]interface{}{
							"type":        "string",
							"description": "Customer's email address",
						},
						"customer_phone": map[string]interface{}{
							"type":        "string",
							"description": "Customer's phone number",
						},
						"delivery_address": map[string]interface{}{
							"type":        "string",
							"description": "Full delivery address including street, city, state, and zip code",
						},
						"pet_ids": map[string]interface{}{
							"type":        "array",
							"items":       map[string]interface{}{"type": "string"},
							"description": "List of pet IDs to order (e.g., ['pet001', 'pet002'])",
						},
					},
					"required": []string{"customer_name", "customer_email", "customer_phone", "delivery_address", "pet_ids"},
				},
			},
		},
		{
			Type: "function",
			Function: FunctionDef{
				Name:        ToolCheckOrderStatus,
				Description: "Check the current status of an existing order using the order ID. Returns order status, customer info, and tracking information.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"order_id": map[string]interface{}{
							"type":        "string",
							"description": "The order ID to check (format: ORD-XXXXXXXX)",
						},
					},
					"required": []string{"order_id"},
				},
			},
		},
	}
}
