package api

import (
	"errors"

	drepo "SentientToken/internal/domain/repository"
	xhttp "SentientToken/pkg/http"
)

// mapUpstreamError translates the market-data error taxonomy for the
// listing path: timeout becomes 408, a non-2xx upstream reply keeps its
// status, anything else is a 500.
func mapUpstreamError(err error, detail string) *xhttp.AppError {
	var statusErr *drepo.UpstreamStatusError
	switch {
	case errors.Is(err, drepo.ErrUpstreamTimeout):
		return xhttp.TimeoutError("Request timeout").WithError(err)
	case errors.As(err, &statusErr):
		return xhttp.UpstreamError(detail, statusErr.Status).WithError(err)
	default:
		return xhttp.InternalErrorf("Error fetching crypto data: %v", err)
	}
}

// mapDetailError translates errors for the coin-detail path: any non-2xx
// upstream reply is a plain 404, anything else a 500.
func mapDetailError(err error) *xhttp.AppError {
	var statusErr *drepo.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return xhttp.NotFoundError("Cryptocurrency not found").WithError(err)
	}
	return xhttp.InternalError(err.Error())
}

// mapChartError mirrors mapDetailError for the chart path.
func mapChartError(err error) *xhttp.AppError {
	var statusErr *drepo.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return xhttp.NotFoundError("Chart data not found").WithError(err)
	}
	return xhttp.InternalError(err.Error())
}
