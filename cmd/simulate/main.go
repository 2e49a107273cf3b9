package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/pkg/dialog"
	"catalog-assistant-be/pkg/gateway"
)

// fixtureGateway serves a canned catalog so the dialog flow can be exercised
// without a running backend.
type fixtureGateway struct{}

func (fixtureGateway) ListOfferings(_ context.Context) ([]gateway.Offering, error) {
	return []gateway.Offering{
		{ID: "off-1", Name: "Laptop Pro 15", Description: "15 inch developer laptop", Price: 1899, Category: "Hardware", Status: "published"},
		{ID: "off-2", Name: "Laptop Air 13", Description: "Lightweight 13 inch laptop", Price: 1199, Category: "Hardware", Status: "published"},
		{ID: "off-3", Name: "Desk Lamp", Description: "Adjustable LED desk lamp", Price: 49, Category: "Office", Status: "published"},
	}, nil
}

func (g fixtureGateway) GetOffering(ctx context.Context, id string) (*gateway.Offering, error) {
	offerings, _ := g.ListOfferings(ctx)
	for i := range offerings {
		if offerings[i].ID == id {
			return &offerings[i], nil
		}
	}
	return nil, fmt.Errorf("offering %s not found", id)
}

func (fixtureGateway) ListOrders(_ context.Context) ([]gateway.Order, error) {
	return []gateway.Order{
		{ID: "ord-1", Number: "ORD0001", Status: "shipped", Total: 1899},
		{ID: "ord-2", Number: "ORD0002", Status: "processing", Total: 49},
	}, nil
}

func (fixtureGateway) ListUsers(_ context.Context) ([]gateway.User, error) {
	return []gateway.User{{ID: "usr-1", Name: "Demo User", Email: "demo@example.com"}}, nil
}

func printReply(msg *dialog.Message) {
	color.Green("AGENT: %s", msg.Text)
	for _, item := range msg.Items {
		color.Yellow("  [%s] %s  (%s)", item.ID, item.Name, item.Description)
	}
	for _, opt := range msg.Options {
		color.Yellow("  -> %s  (type: %s)", opt.Label, opt.Value)
	}
}

func main() {
	color.Cyan("🚀 Catalog Assistant Simulator")
	color.Cyan("Type an option value (products, orders, payment, an item id, ...) or 'exit'.\n")

	engine := dialog.NewEngine(fixtureGateway{}, logger.NewNopLogger(), 5*time.Second, 200)
	session := dialog.NewSession(dialog.ModeGuided)

	printReply(engine.Greeting(session))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nUSER: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		start := time.Now()
		reply, err := engine.Handle(context.Background(), session, input)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		printReply(reply)
		color.Cyan("  (stage: %s, %v)", session.Stage, time.Since(start).Round(time.Millisecond))
	}
}
