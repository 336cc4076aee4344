// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package resource provides the list, get, create, patch, replace and delete
// handlers shared by every device and event collection.
package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// Service is the storage behind one collection.
type Service[T any, I any, P any, F any] interface {
	List(ctx context.Context, f F, page query.Page) ([]T, int, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Patch(ctx context.Context, id int64, in P) (*T, error)
	Replace(ctx context.Context, id int64, in I) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Names are the display names used in response messages.
type Names struct {
	// Singular, e.g. "Controller".
	Singular string
	// Plural, e.g. "Controllers".
	Plural string
}

// Handler serves one collection.
type Handler[T any, I any, P any, F any] struct {
	names   Names
	service Service[T, I, P, F]
	// Detail loads a single item. Defaults to Service.Get; the filter bound
	// from the query string lets a collection honour options such as
	// nested expansion.
	Detail func(ctx context.Context, id int64, f F) (*T, error)
}

// New creates a Handler over service.
func New[T any, I any, P any, F any](
	names Names,
	service Service[T, I, P, F],
) *Handler[T, I, P, F] {
	return &Handler[T, I, P, F]{
		names:   names,
		service: service,
		Detail: func(ctx context.Context, id int64, _ F) (*T, error) {
			return service.Get(ctx, id)
		},
	}
}

// Register mounts the handlers on g under prefix, e.g. "/controllers".
func (h *Handler[T, I, P, F]) Register(
	g *echo.Group,
	prefix string,
) {
	g.GET(prefix, h.List)
	g.POST(prefix, h.Create)
	g.GET(prefix+"/:id", h.Get)
	g.PATCH(prefix+"/:id", h.Patch)
	g.PUT(prefix+"/:id", h.Replace)
	g.DELETE(prefix+"/:id", h.Delete)
}

// List handles GET <prefix>.
func (h *Handler[T, I, P, F]) List(
	c echo.Context,
) error {
	page, err := common.ParsePage(c)
	if err != nil {
		return err
	}

	var f F
	if err := common.BindQuery(c, &f); err != nil {
		return err
	}

	items, total, err := h.service.List(c.Request().Context(), f, page)
	if err != nil {
		return err
	}

	return common.RespondList(
		c,
		fmt.Sprintf("%s retrieved successfully", h.names.Plural),
		items,
		page,
		total,
	)
}

// Get handles GET <prefix>/:id.
func (h *Handler[T, I, P, F]) Get(
	c echo.Context,
) error {
	id, err := common.ParseID(c, h.names.Singular)
	if err != nil {
		return err
	}

	var f F
	if err := common.BindQuery(c, &f); err != nil {
		return err
	}

	item, err := h.Detail(c.Request().Context(), id, f)
	if err != nil {
		return err
	}

	return common.Respond(
		c,
		http.StatusOK,
		fmt.Sprintf("%s retrieved successfully", h.names.Singular),
		item,
	)
}

// Create handles POST <prefix>.
func (h *Handler[T, I, P, F]) Create(
	c echo.Context,
) error {
	var in I
	if err := common.BindBody(c, &in); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return common.Respond(
		c,
		http.StatusCreated,
		fmt.Sprintf("%s created successfully", h.names.Singular),
		item,
	)
}

// Patch handles PATCH <prefix>/:id.
func (h *Handler[T, I, P, F]) Patch(
	c echo.Context,
) error {
	id, err := common.ParseID(c, h.names.Singular)
	if err != nil {
		return err
	}

	var in P
	if err := common.BindBody(c, &in); err != nil {
		return err
	}

	item, err := h.service.Patch(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	return common.Respond(
		c,
		http.StatusOK,
		fmt.Sprintf("%s updated successfully", h.names.Singular),
		item,
	)
}

// Replace handles PUT <prefix>/:id.
func (h *Handler[T, I, P, F]) Replace(
	c echo.Context,
) error {
	id, err := common.ParseID(c, h.names.Singular)
	if err != nil {
		return err
	}

	var in I
	if err := common.BindBody(c, &in); err != nil {
		return err
	}

	item, err := h.service.Replace(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	return common.Respond(
		c,
		http.StatusOK,
		fmt.Sprintf("%s replaced successfully", h.names.Singular),
		item,
	)
}

// Delete handles DELETE <prefix>/:id.
func (h *Handler[T, I, P, F]) Delete(
	c echo.Context,
) error {
	id, err := common.ParseID(c, h.names.Singular)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return common.Respond(
		c,
		http.StatusOK,
		fmt.Sprintf("%s deleted successfully", h.names.Singular),
		map[string]int64{"id": id},
	)
}

