package http

import (
	"errors"
	"strconv"
	"time"

	"opsconsole/internal/core/application/usecases/queries"
	"opsconsole/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

var (
	errInvalidPage    = errors.New("page must be a positive integer")
	errInvalidLimit   = errors.New("limit must be a positive integer")
	errInvalidDate    = errors.New("dates must be RFC 3339 timestamps or YYYY-MM-DD")
	errInvalidSortBy  = errors.New("sortBy must be one of createdAt, total, status, orderNumber")
	errInvalidSortDir = errors.New("sortDir must be asc or desc")
)

type orderListParams struct {
	status         order.Status
	search         string
	createdFrom    *time.Time
	createdTo      *time.Time
	sortField      queries.OrderSortField
	sortDescending bool
	page           int
	limit          int
}

func parseOrderListParams(ctx echo.Context) (orderListParams, error) {
	params := orderListParams{
		status:         order.Unknown,
		search:         ctx.QueryParam("search"),
		sortField:      queries.OrderSortByCreatedAt,
		sortDescending: true,
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return orderListParams{}, err
		}
		params.status = status
	}

	var err error
	if params.createdFrom, err = parseDateParam(ctx.QueryParam("startDate"), false); err != nil {
		return orderListParams{}, err
	}
	if params.createdTo, err = parseDateParam(ctx.QueryParam("endDate"), true); err != nil {
		return orderListParams{}, err
	}

	switch ctx.QueryParam("sortBy") {
	case "", "createdAt":
		params.sortField = queries.OrderSortByCreatedAt
	case "total":
		params.sortField = queries.OrderSortByTotal
	case "status":
		params.sortField = queries.OrderSortByStatus
	case "orderNumber":
		params.sortField = queries.OrderSortByOrderNumber
	default:
		return orderListParams{}, errInvalidSortBy
	}

	switch ctx.QueryParam("sortDir") {
	case "", "desc":
		params.sortDescending = true
	case "asc":
		params.sortDescending = false
	default:
		return orderListParams{}, errInvalidSortDir
	}

	if params.page, params.limit, err = parsePagination(ctx); err != nil {
		return orderListParams{}, err
	}

	return params, nil
}

// parsePagination reads page and limit query parameters. Absent values
// fall through as page 1 / limit 0, letting the query apply its defaults.
func parsePagination(ctx echo.Context) (page, limit int, err error) {
	page = 1
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, errInvalidPage
		}
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, errInvalidLimit
		}
	}

	return page, limit, nil
}

// parseDateParam accepts RFC 3339 timestamps or bare dates. A bare end
// date is widened to the end of that day so the bound stays inclusive.
func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errInvalidDate
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}
