package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
)

const invalidCategoryID = "Invalid category ID"

// CategoriesHandler serves /api/v1/categories.
type CategoriesHandler struct {
	Categories *service.CategoryService
}

// decodeCategory reads and validates a {name} body. The name is trimmed
// before the length check.
func decodeCategory(r *http.Request) (string, error) {
	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return "", err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := httpx.Validate(&req); err != nil {
		return "", err
	}
	return req.Name, nil
}

// HandleList returns one page of the caller's categories.
//
//	@Summary	List categories
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	minimum(1)	default(1)
//	@Param		limit		query		int		false	"Page size"		minimum(1)	maximum(100)	default(10)
//	@Param		search		query		string	false	"Case-insensitive name search"
//	@Param		sortBy		query		string	false	"Sort column"		Enums(createdAt, name)
//	@Param		sortOrder	query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success	200			{object}	httpx.Envelope{data=domain.Page[domain.Category]}	"Categories fetched successfully"
//	@Router		/api/v1/categories [get]
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := parseCategoryFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.Categories.List(r.Context(), id.UserID, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Categories fetched successfully", page)
}

// HandleCreate adds a category.
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		categoryRequest							true	"New category"
//	@Success	201		{object}	httpx.Envelope{data=domain.Category}	"Category created successfully"
//	@Failure	409		{object}	httpx.Envelope							"Category with this name already exists"
//	@Router		/api/v1/categories [post]
func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	name, err := decodeCategory(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Categories.Create(r.Context(), id.UserID, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, "Category created successfully", c)
}

// HandleGet returns a single category.
//
//	@Summary	Get a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string									true	"Category ID"	format(uuid)
//	@Success	200	{object}	httpx.Envelope{data=domain.Category}	"Category fetched successfully"
//	@Failure	404	{object}	httpx.Envelope							"Category not found"
//	@Router		/api/v1/categories/{id} [get]
func (h *CategoriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	catID, err := pathID(r, invalidCategoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Categories.Get(r.Context(), id.UserID, catID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Category fetched successfully", c)
}

// HandleUpdate renames a category.
//
//	@Summary	Rename a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string									true	"Category ID"	format(uuid)
//	@Param		body	body		categoryRequest							true	"New name"
//	@Success	200		{object}	httpx.Envelope{data=domain.Category}	"Category updated successfully"
//	@Failure	404		{object}	httpx.Envelope							"Category not found"
//	@Failure	409		{object}	httpx.Envelope							"Category with this name already exists"
//	@Router		/api/v1/categories/{id} [put]
func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	catID, err := pathID(r, invalidCategoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	name, err := decodeCategory(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Categories.Rename(r.Context(), id.UserID, catID, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Category updated successfully", c)
}

// HandleDelete removes a category. Its todos keep existing without one.
//
//	@Summary	Delete a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string									true	"Category ID"	format(uuid)
//	@Success	200	{object}	httpx.Envelope{data=domain.Category}	"Category deleted successfully"
//	@Failure	404	{object}	httpx.Envelope							"Category not found"
//	@Router		/api/v1/categories/{id} [delete]
func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	catID, err := pathID(r, invalidCategoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Categories.Delete(r.Context(), id.UserID, catID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, "Category deleted successfully", c)
}
