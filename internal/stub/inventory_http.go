package stub

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"invprime/internal/api"
	"invprime/internal/utils"
)

type inventoryHTTP struct {
	store *Store
}

func newInventoryHTTP(s *Store) *inventoryHTTP {
	return &inventoryHTTP{store: s}
}

// GET /api/inventory/list/
func (h *inventoryHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := h.store.inventoryList()
		if items == nil {
			items = []api.InventoryItem{}
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// POST /api/inventory/add/
func (h *inventoryHTTP) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.AddInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.ItemCode == "" || in.ItemName == "" || in.TotalQuantity <= 0 {
			utils.Error(w, http.StatusBadRequest, "item_code, item_name and a positive total_quantity are required")
			return
		}
		item := h.store.addInventory(in)
		utils.JSON(w, http.StatusCreated, api.AddInventoryResponse{
			Message:     "Inventory added",
			InventoryID: item.ID,
		})
	}
}

// PUT /api/inventory/update/
func (h *inventoryHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.UpdateInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		item, err := h.store.updateInventory(in)
		if err != nil {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, api.UpdateInventoryResponse{
			Message:           "Inventory updated",
			InventoryID:       item.ID,
			TotalQuantity:     item.TotalQuantity,
			AvailableQuantity: item.AvailableQuantity,
			IssuedQuantity:    item.IssuedQuantity,
			Status:            item.Status,
		})
	}
}

// DELETE /api/inventory/delete/
func (h *inventoryHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := h.store.deleteInventory(in.ID); err != nil {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, api.MessageResponse{Message: "Inventory deleted"})
	}
}

// POST /api/inventory/issue/
func (h *inventoryHTTP) Issue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.IssueInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		asset, remaining, err := h.store.issueInventory(in)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, api.IssueInventoryResponse{
			Message:           "Inventory issued",
			AssetID:           asset.ID,
			RemainingQuantity: remaining,
		})
	}
}

// GET /api/inventory/assets/
func (h *inventoryHTTP) Assets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets := h.store.assetsWhere(func(*api.AssetDetail) bool { return true })
		if assets == nil {
			assets = []api.AssetDetail{}
		}
		utils.JSON(w, http.StatusOK, api.AssetsResponse{
			TotalAssets: len(assets),
			Assets:      assets,
		})
	}
}

// GET /api/inventory/assets/employee/{employeeID}/
func (h *inventoryHTTP) EmployeeAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid employee id")
			return
		}
		assets := h.store.assetsWhere(func(a *api.AssetDetail) bool { return a.EmployeeID == id })
		if assets == nil {
			assets = []api.AssetDetail{}
		}
		out := api.EmployeeAssetsResponse{
			EmployeeID:  id,
			TotalAssets: len(assets),
			Assets:      assets,
		}
		h.store.mu.Lock()
		if u, ok := h.store.users[id]; ok {
			out.EmployeeName = u.Name
			out.EmployeeEmail = u.Email
		}
		h.store.mu.Unlock()
		utils.JSON(w, http.StatusOK, out)
	}
}

// GET /api/inventory/assets/inventory/{inventoryID}/
func (h *inventoryHTTP) InventoryAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "inventoryID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid inventory id")
			return
		}
		assets := h.store.assetsWhere(func(a *api.AssetDetail) bool { return a.InventoryID == id })
		if assets == nil {
			assets = []api.AssetDetail{}
		}
		out := api.InventoryAssetsResponse{
			InventoryID: id,
			TotalAssets: len(assets),
			Assets:      assets,
		}
		h.store.mu.Lock()
		if item, ok := h.store.inventory[id]; ok {
			out.InventoryName = item.ItemName
			out.InventoryCode = item.ItemCode
			out.TotalIssued = item.IssuedQuantity
		}
		h.store.mu.Unlock()
		utils.JSON(w, http.StatusOK, out)
	}
}

// GET /api/inventory/assets/{assetID}/
func (h *inventoryHTTP) AssetDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "assetID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid asset id")
			return
		}
		a, ok := h.store.asset(id)
		if !ok {
			utils.Error(w, http.StatusNotFound, "asset not found")
			return
		}
		utils.JSON(w, http.StatusOK, a)
	}
}
