package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/query"
)

// Query parameter names
const (
	ParamLimits    = "limits"
	ParamPage      = "page"
	ParamOrderBy   = "order_by"
	ParamPrecioMin = "precioMin"
	ParamPrecioMax = "precioMax"
	ParamCategoria = "categoria"
	ParamMetal     = "metal"
)

// ListItemsRequest is the bound query string of GET /items
type ListItemsRequest struct {
	Limits  int    `query:"limits" validate:"min=1"`
	Page    int    `query:"page"`
	OrderBy string `query:"order_by" validate:"required,sortspec"`
}

// FilterItemsRequest is the bound query string of GET /items/filter.
// A nil field was absent or empty in the request.
type FilterItemsRequest struct {
	PrecioMin *int    `query:"precioMin"`
	PrecioMax *int    `query:"precioMax"`
	Categoria *string `query:"categoria"`
	Metal     *string `query:"metal"`
}

// GetOptionalQueryParam returns the parameter value, or defaultValue when it is missing or empty
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntQueryParam parses an optional integer parameter.
// A present but malformed value is domain.ErrInvalidInput, never coerced.
func getIntQueryParam(r *http.Request, paramName string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidInputf(ErrMsgNotAnInteger, paramName, raw)
	}
	return v, nil
}

func getOptionalIntQueryParam(r *http.Request, paramName string) (*int, error) {
	if r.URL.Query().Get(paramName) == "" {
		return nil, nil
	}
	v, err := getIntQueryParam(r, paramName, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func getOptionalStringQueryParam(r *http.Request, paramName string) *string {
	v := r.URL.Query().Get(paramName)
	if v == "" {
		return nil
	}
	return &v
}

// bindListingQuery reads limits, page and order_by with their defaults
func bindListingQuery(r *http.Request) (domain.ListingQuery, error) {
	req := ListItemsRequest{
		OrderBy: GetOptionalQueryParam(r, ParamOrderBy, domain.DefaultOrderBy),
	}

	var err error
	if req.Limits, err = getIntQueryParam(r, ParamLimits, domain.DefaultLimit); err != nil {
		return domain.ListingQuery{}, err
	}
	if req.Page, err = getIntQueryParam(r, ParamPage, domain.DefaultPage); err != nil {
		return domain.ListingQuery{}, err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		return domain.ListingQuery{}, err
	}
	if err := query.ValidatePage(req.Limits, req.Page); err != nil {
		return domain.ListingQuery{}, err
	}

	sort, err := query.ParseSort(req.OrderBy)
	if err != nil {
		return domain.ListingQuery{}, err
	}

	return domain.ListingQuery{Limit: req.Limits, Page: req.Page, Sort: sort}, nil
}

// bindFilterQuery reads the optional filter parameters; empty values count as absent
func bindFilterQuery(r *http.Request) (domain.FilterQuery, error) {
	var (
		req FilterItemsRequest
		err error
	)
	if req.PrecioMin, err = getOptionalIntQueryParam(r, ParamPrecioMin); err != nil {
		return domain.FilterQuery{}, err
	}
	if req.PrecioMax, err = getOptionalIntQueryParam(r, ParamPrecioMax); err != nil {
		return domain.FilterQuery{}, err
	}
	req.Categoria = getOptionalStringQueryParam(r, ParamCategoria)
	req.Metal = getOptionalStringQueryParam(r, ParamMetal)

	return domain.FilterQuery{
		MinPrice: req.PrecioMin,
		MaxPrice: req.PrecioMax,
		Category: req.Categoria,
		Metal:    req.Metal,
	}, nil
}
