package stub

import (
	"errors"
	"fmt"

	"invprime/internal/api"
)

var errItemNotFound = errors.New("inventory item not found")

// stockStatus derives the item status from its counts.
func stockStatus(item *api.InventoryItem) string {
	switch {
	case item.AvailableQuantity <= 0:
		return "OUT_OF_STOCK"
	case item.AvailableQuantity <= item.MinimumStockLevel:
		return "LOW_STOCK"
	default:
		return "AVAILABLE"
	}
}

func (s *Store) addInventory(req api.AddInventoryRequest) *api.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &api.InventoryItem{
		ID:                   s.nextItem,
		ItemCode:             req.ItemCode,
		ItemName:             req.ItemName,
		Category:             req.Category,
		Brand:                req.Brand,
		Model:                req.Model,
		Description:          req.Description,
		TotalQuantity:        req.TotalQuantity,
		AvailableQuantity:    req.TotalQuantity,
		MinimumStockLevel:    req.MinimumStockLevel,
		PurchaseDate:         req.PurchaseDate,
		PurchasePricePerItem: fmt.Sprintf("%.2f", req.PurchasePricePerItem),
		VendorName:           req.VendorName,
		CreatedAt:            now(),
		UpdatedAt:            now(),
	}
	s.nextItem++
	item.Status = stockStatus(item)
	s.inventory[item.ID] = item
	return item
}

func (s *Store) updateInventory(req api.UpdateInventoryRequest) (*api.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.inventory[req.ID]
	if !ok {
		return nil, errItemNotFound
	}
	if req.ItemCode != "" {
		item.ItemCode = req.ItemCode
	}
	if req.ItemName != "" {
		item.ItemName = req.ItemName
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Brand != "" {
		item.Brand = req.Brand
	}
	if req.Model != "" {
		item.Model = req.Model
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.TotalQuantity != nil {
		delta := *req.TotalQuantity - item.TotalQuantity
		item.TotalQuantity = *req.TotalQuantity
		item.AvailableQuantity += delta
		if item.AvailableQuantity < 0 {
			item.AvailableQuantity = 0
		}
	}
	if req.MinimumStockLevel != nil {
		item.MinimumStockLevel = *req.MinimumStockLevel
	}
	if req.PurchaseDate != "" {
		item.PurchaseDate = req.PurchaseDate
	}
	if req.PurchasePricePerItem != nil {
		item.PurchasePricePerItem = fmt.Sprintf("%.2f", *req.PurchasePricePerItem)
	}
	if req.VendorName != "" {
		item.VendorName = req.VendorName
	}
	item.Status = stockStatus(item)
	item.UpdatedAt = now()
	return item, nil
}

func (s *Store) deleteInventory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[id]; !ok {
		return errItemNotFound
	}
	delete(s.inventory, id)
	return nil
}

func (s *Store) inventoryList() []api.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.InventoryItem
	for i := 1; i < s.nextItem; i++ {
		if item, ok := s.inventory[i]; ok {
			out = append(out, *item)
		}
	}
	return out
}

func (s *Store) issueInventory(req api.IssueInventoryRequest) (*api.AssetDetail, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory[req.InventoryID]
	if !ok {
		return nil, 0, errItemNotFound
	}
	if req.QuantityIssued <= 0 {
		return nil, 0, errors.New("quantity_issued must be positive")
	}
	if item.AvailableQuantity < req.QuantityIssued {
		return nil, 0, fmt.Errorf("only %d of %s available", item.AvailableQuantity, item.ItemName)
	}
	emp, ok := s.users[req.EmployeeID]
	if !ok {
		return nil, 0, errors.New("employee not found")
	}

	item.AvailableQuantity -= req.QuantityIssued
	item.IssuedQuantity += req.QuantityIssued
	item.Status = stockStatus(item)
	item.UpdatedAt = now()

	a := &api.AssetDetail{
		ID:                 s.nextAsset,
		InventoryID:        item.ID,
		InventoryName:      item.ItemName,
		InventoryCode:      item.ItemCode,
		Brand:              item.Brand,
		Model:              item.Model,
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		EmployeeEmail:      emp.Email,
		QuantityIssued:     req.QuantityIssued,
		QuantityIssuedDate: now(),
		Status:             "ISSUED",
		IssuedByID:         req.IssuedByID,
		CreatedAt:          now(),
		UpdatedAt:          now(),
	}
	if issuer, ok := s.users[req.IssuedByID]; ok {
		a.IssuedByName = issuer.Name
	}
	s.nextAsset++
	s.assets[a.ID] = a
	return a, item.AvailableQuantity, nil
}

// assetsWhere returns assets matching the filter in id order.
func (s *Store) assetsWhere(keep func(*api.AssetDetail) bool) []api.AssetDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.AssetDetail
	for i := 1; i < s.nextAsset; i++ {
		a, ok := s.assets[i]
		if !ok || !keep(a) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

func (s *Store) asset(id int) (*api.AssetDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}
