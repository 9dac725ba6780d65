// Command demo walks the three pet shop tools against a running API,
// printing the structured results an orchestrating LLM would receive.
// Start the server first, then: go run ./cmd/demo
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/viper"

	"petshop/internal/tools"
)

func apiBaseURL() string {
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.AutomaticEnv()
	return viper.GetString("API_BASE_URL")
}

func main() {
	adapter := tools.NewAdapter(apiBaseURL(), nil)
	ctx := context.Background()

	fmt.Println("=== Tool definitions handed to the LLM ===")
	defs, err := json.MarshalIndent(tools.Definitions(), "", "  ")
	if err != nil {
		log.Fatalf("marshaling tool definitions: %v", err)
	}
	fmt.Println(string(defs))

	fmt.Println("\n=== browse_pets: all available pets ===")
	printResult(adapter.BrowsePets(ctx, tools.BrowsePetsInput{}))

	fmt.Println("\n=== browse_pets: dogs under $1000 ===")
	maxPrice := 1000.0
	printResult(adapter.BrowsePets(ctx, tools.BrowsePetsInput{PetType: "dog", MaxPrice: &maxPrice}))

	fmt.Println("\n=== browse_pets: invalid pet type is rejected locally ===")
	printResult(adapter.BrowsePets(ctx, tools.BrowsePetsInput{PetType: "dragon"}))

	fmt.Println("\n=== place_order: pet003 ===")
	orderResult := adapter.PlaceOrder(ctx, tools.PlaceOrderInput{
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		CustomerPhone:   "555-0123",
		DeliveryAddress: "123 Main St, City, ST 12345",
		PetIDs:          []string{"pet003"},
	})
	printResult(orderResult)

	if orderResult.Success {
		orderID, _ := orderResult.Data["order_id"].(string)
		fmt.Println("\n=== check_order_status via Dispatch (raw LLM arguments) ===")
		args, _ := json.Marshal(map[string]string{"order_id": orderID})
		printResult(adapter.Dispatch(ctx, tools.ToolCheckOrderStatus, args))
	}

	fmt.Println("\n=== check_order_status: unknown order ===")
	printResult(adapter.CheckOrderStatus(ctx, tools.CheckOrderStatusInput{OrderID: "ORD-DOESNOTX"}))
}

func printResult(r tools.Result) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		log.Printf("marshaling result: %v", err)
		return
	}
	fmt.Println(string(out))
}
