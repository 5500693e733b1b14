package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"invprime/internal/api"
)

func (a *app) cmdInventory(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl inventory <list|add|update|issue|delete>")
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		a.inventoryList()
	case "add":
		a.inventoryAdd(args[1:])
	case "update":
		a.inventoryUpdate(args[1:])
	case "issue":
		a.inventoryIssue(args[1:])
	case "delete":
		a.inventoryDelete(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown inventory subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func (a *app) inventoryList() {
	a.requireSession()
	items, err := a.client.InventoryList(a.ctx)
	if err != nil {
		fail(err)
	}
	if len(items) == 0 {
		fmt.Println("No inventory found")
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-5s %-12s %-28s %-14s %6s %6s %6s", "ID", "CODE", "NAME", "STATUS", "TOTAL", "AVAIL", "ISSUED")))
	for _, it := range items {
		fmt.Printf("%-5d %-12s %-28s %-14s %6d %6d %6d\n",
			it.ID, it.ItemCode, truncate(it.ItemName, 28), it.Status,
			it.TotalQuantity, it.AvailableQuantity, it.IssuedQuantity)
	}
}

func (a *app) inventoryAdd(args []string) {
	fs := pflag.NewFlagSet("inventory add", pflag.ExitOnError)
	code := fs.String("code", "", "item code")
	name := fs.String("name", "", "item name")
	category := fs.String("category", "", "category")
	brand := fs.String("brand", "", "brand")
	model := fs.String("model", "", "model")
	description := fs.String("description", "", "description")
	quantity := fs.Int("quantity", 0, "total quantity")
	minStock := fs.Int("min-stock", 0, "minimum stock level")
	purchaseDate := fs.String("purchase-date", "", "purchase date (YYYY-MM-DD)")
	price := fs.Float64("price", 0, "purchase price per item")
	vendor := fs.String("vendor", "", "vendor name")
	fs.Parse(args)

	a.requireSession()
	if *code == "" || *name == "" || *quantity <= 0 {
		fmt.Fprintln(os.Stderr, "error: --code, --name and a positive --quantity are required")
		os.Exit(1)
	}

	resp, err := a.client.AddInventory(a.ctx, api.AddInventoryRequest{
		ItemCode:             *code,
		ItemName:             *name,
		Category:             *category,
		Brand:                *brand,
		Model:                *model,
		Description:          *description,
		TotalQuantity:        *quantity,
		MinimumStockLevel:    *minStock,
		PurchaseDate:         *purchaseDate,
		PurchasePricePerItem: *price,
		VendorName:           *vendor,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s (item %d)\n", resp.Message, resp.InventoryID)
}

func (a *app) inventoryUpdate(args []string) {
	fs := pflag.NewFlagSet("inventory update", pflag.ExitOnError)
	id := fs.Int("id", 0, "inventory id")
	name := fs.String("name", "", "new item name")
	description := fs.String("description", "", "new description")
	quantity := fs.Int("quantity", -1, "new total quantity")
	minStock := fs.Int("min-stock", -1, "new minimum stock level")
	vendor := fs.String("vendor", "", "new vendor name")
	fs.Parse(args)

	a.requireSession()
	if *id == 0 {
		fmt.Fprintln(os.Stderr, "error: --id is required")
		os.Exit(1)
	}
	req := api.UpdateInventoryRequest{
		ID:          *id,
		ItemName:    *name,
		Description: *description,
		VendorName:  *vendor,
	}
	if *quantity >= 0 {
		req.TotalQuantity = quantity
	}
	if *minStock >= 0 {
		req.MinimumStockLevel = minStock
	}
	resp, err := a.client.UpdateInventory(a.ctx, req)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s (item %d: %d total, %d available, %s)\n",
		resp.Message, resp.InventoryID, resp.TotalQuantity, resp.AvailableQuantity, resp.Status)
}

func (a *app) inventoryIssue(args []string) {
	fs := pflag.NewFlagSet("inventory issue", pflag.ExitOnError)
	item := fs.Int("item", 0, "inventory id")
	employee := fs.Int("employee", 0, "employee id receiving the stock")
	quantity := fs.Int("quantity", 1, "quantity to issue")
	fs.Parse(args)

	userID, _ := a.requireSession()
	if *item == 0 || *employee == 0 {
		fmt.Fprintln(os.Stderr, "error: --item and --employee are required")
		os.Exit(1)
	}

	resp, err := a.client.IssueInventory(a.ctx, api.IssueInventoryRequest{
		InventoryID:    *item,
		EmployeeID:     *employee,
		IssuedByID:     userID,
		QuantityIssued: *quantity,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s (asset %d, %d remaining)\n", resp.Message, resp.AssetID, resp.RemainingQuantity)
}

func (a *app) inventoryDelete(args []string) {
	fs := pflag.NewFlagSet("inventory delete", pflag.ExitOnError)
	id := fs.Int("id", 0, "inventory id")
	fs.Parse(args)

	a.requireSession()
	if *id == 0 {
		fmt.Fprintln(os.Stderr, "error: --id is required")
		os.Exit(1)
	}
	resp, err := a.client.DeleteInventory(a.ctx, *id)
	if err != nil {
		fail(err)
	}
	fmt.Println(resp.Message)
}

func (a *app) cmdAssets(args []string) {
	fs := pflag.NewFlagSet("assets", pflag.ExitOnError)
	employee := fs.Int("employee", 0, "show assets issued to this employee")
	inventory := fs.Int("inventory", 0, "show assets issued from this inventory item")
	id := fs.Int("id", 0, "show one asset by id")
	fs.Parse(args)

	userID, role := a.requireSession()

	switch {
	case *id != 0:
		asset, err := a.client.AssetDetailByID(a.ctx, *id)
		if err != nil {
			fail(err)
		}
		printAssets([]api.AssetDetail{*asset})
	case *inventory != 0:
		resp, err := a.client.InventoryAssets(a.ctx, *inventory)
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s (%s): %d issued\n", resp.InventoryName, resp.InventoryCode, resp.TotalIssued)
		printAssets(resp.Assets)
	case *employee != 0, role == "EMPLOYEE" || role == "FINANCE":
		target := *employee
		if target == 0 {
			target = userID
		}
		resp, err := a.client.EmployeeAssets(a.ctx, target)
		if err != nil {
			fail(err)
		}
		printAssets(resp.Assets)
	default:
		resp, err := a.client.AllAssets(a.ctx)
		if err != nil {
			fail(err)
		}
		printAssets(resp.Assets)
	}
}

func printAssets(assets []api.AssetDetail) {
	if len(assets) == 0 {
		fmt.Println("No assets found")
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-5s %-24s %-20s %4s %-10s %s", "ID", "ITEM", "EMPLOYEE", "QTY", "STATUS", "ISSUED")))
	for _, a := range assets {
		fmt.Printf("%-5d %-24s %-20s %4d %-10s %s\n",
			a.ID, truncate(a.InventoryName, 24), truncate(a.EmployeeName, 20),
			a.QuantityIssued, a.Status, a.QuantityIssuedDate)
	}
}
