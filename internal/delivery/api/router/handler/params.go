// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"ecovis/config"
	domainerrors "ecovis/internal/domain/errors"
	"ecovis/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

const (
	fallbackPageLimit    = 10
	fallbackMaxPageLimit = 100
)

// bindAndValidate decodes the request into input and runs its validate tags.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return c.Validate(input)
}

// pathID reads a positive integer path parameter. label names the resource in the error message.
func pathID(c echo.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithMessage("Invalid " + label + " ID")
	}

	return id, nil
}

// queryInt returns the non-negative integer query parameter, or fallback when it is missing or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

// Paginator turns limit/offset query parameters into a repository.Page.
type Paginator struct {
	defaultLimit int
	maxLimit     int
}

// NewPaginator reads the page bounds from config.
func NewPaginator(cfg *config.Config) *Paginator {
	paginator := &Paginator{defaultLimit: fallbackPageLimit, maxLimit: fallbackMaxPageLimit}
	if cfg == nil || cfg.Pagination == nil {
		return paginator
	}

	if cfg.Pagination.DefaultLimit > 0 {
		paginator.defaultLimit = cfg.Pagination.DefaultLimit
	}
	if cfg.Pagination.MaxLimit > 0 {
		paginator.maxLimit = cfg.Pagination.MaxLimit
	}

	return paginator
}

// Page falls back to the default limit for a missing or zero limit and caps it at the maximum.
func (p *Paginator) Page(c echo.Context) repository.Page {
	limit := queryInt(c, "limit", p.defaultLimit)
	if limit == 0 {
		limit = p.defaultLimit
	}

	return repository.Page{
		Limit:  min(limit, p.maxLimit),
		Offset: queryInt(c, "offset", 0),
	}
}
