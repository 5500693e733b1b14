package api

import (
	"context"
	"fmt"
)

func (c *Client) InventoryList(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	if err := c.get(ctx, TagInventory, "/inventory/list/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddInventory(ctx context.Context, req AddInventoryRequest) (*AddInventoryResponse, error) {
	var out AddInventoryResponse
	if err := c.send(ctx, "POST", "/inventory/add/", req, &out, TagInventory); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInventory(ctx context.Context, req UpdateInventoryRequest) (*UpdateInventoryResponse, error) {
	var out UpdateInventoryResponse
	if err := c.send(ctx, "PUT", "/inventory/update/", req, &out, TagInventory); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInventory(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	req := struct {
		ID int `json:"id"`
	}{ID: id}
	if err := c.send(ctx, "DELETE", "/inventory/delete/", req, &out, TagInventory); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueInventory hands stock to an employee. It touches both the item
// counts and the asset register, so both tags drop.
func (c *Client) IssueInventory(ctx context.Context, req IssueInventoryRequest) (*IssueInventoryResponse, error) {
	var out IssueInventoryResponse
	if err := c.send(ctx, "POST", "/inventory/issue/", req, &out, TagInventory, TagAssets); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllAssets(ctx context.Context) (*AssetsResponse, error) {
	var out AssetsResponse
	if err := c.get(ctx, TagAssets, "/inventory/assets/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EmployeeAssets(ctx context.Context, employeeID int) (*EmployeeAssetsResponse, error) {
	var out EmployeeAssetsResponse
	path := fmt.Sprintf("/inventory/assets/employee/%d/", employeeID)
	if err := c.get(ctx, TagAssets, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InventoryAssets(ctx context.Context, inventoryID int) (*InventoryAssetsResponse, error) {
	var out InventoryAssetsResponse
	path := fmt.Sprintf("/inventory/assets/inventory/%d/", inventoryID)
	if err := c.get(ctx, TagAssets, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssetDetailByID(ctx context.Context, assetID int) (*AssetDetail, error) {
	var out AssetDetail
	path := fmt.Sprintf("/inventory/assets/%d/", assetID)
	if err := c.get(ctx, TagAssets, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
