package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/inventory"
	"github.com/osse101/JoyasAPI_Go/internal/logger"
)

// URLParamItemID is the chi route parameter of the item link target
const URLParamItemID = "id"

// HandleListItems serves one sorted page of the inventory wrapped in link descriptors
// @Summary List inventory
// @Description Returns a page of items as name/href links with the page's item count and stock total
// @Tags inventory
// @Produce json
// @Param limits query int false "Page size" default(10) minimum(1)
// @Param page query int false "Page number, pages below 1 read the first page" default(1)
// @Param order_by query string false "Sort as <column>_<ASC|DESC>" default(precio_DESC)
// @Success 200 {object} domain.ListingEnvelope
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /items [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := bindListingQuery(r)
		if err != nil {
			respondInvalidInput(w, r, err)
			return
		}

		env, err := svc.ListItems(r.Context(), q)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		respondJSON(w, http.StatusOK, env)
	}
}

// HandleFilterItems serves every item matching the present filters, as raw rows
// @Summary Filter inventory
// @Description Returns the matching rows unshaped. Price bounds are exclusive; absent or empty filters impose no constraint.
// @Tags inventory
// @Produce json
// @Param precioMin query int false "Price strictly greater than"
// @Param precioMax query int false "Price strictly less than"
// @Param categoria query string false "Exact category"
// @Param metal query string false "Exact metal"
// @Success 200 {array} domain.InventoryItem
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /items/filter [get]
func HandleFilterItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := bindFilterQuery(r)
		if err != nil {
			respondInvalidInput(w, r, err)
			return
		}

		items, err := svc.FilterItems(r.Context(), f)
		if err != nil {
			respondServiceError(w, r, "Filter items", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Filtered inventory", "filters", f.PresentCount(), "rows", len(items))
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem serves the row an item link points at
// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} StatusResponse
// @Failure 404 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /items/item/{id} [get]
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, URLParamItemID)
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondInvalidInput(w, r, domain.InvalidInputf(ErrMsgNotAnInteger, URLParamItemID, raw))
			return
		}
		if id < 1 {
			respondInvalidInput(w, r, domain.InvalidInputf(ErrMsgNotPositive, URLParamItemID, id))
			return
		}

		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}
