package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for the category taxonomy.
type CategoryHandler struct {
	taxonomy ports.TaxonomyService
}

func NewCategoryHandler(taxonomy ports.TaxonomyService) *CategoryHandler {
	return &CategoryHandler{taxonomy: taxonomy}
}

type addCategoryRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Icon  string `json:"icono"`
	Color string `json:"color"`
}

type addCategoryResponse struct {
	Category domain.Category `json:"category"`
}

// Get handles GET /v1/categories.
//
// @Summary      Get the session user's taxonomy
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Taxonomy
// @Failure      401  {object}  map[string]string
// @Router       /v1/categories [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	taxonomy, err := h.taxonomy.CategoriesFor(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxonomy)
}

// Replace handles PUT /v1/categories, overwriting the taxonomy wholesale.
//
// @Summary      Replace the session user's taxonomy
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Taxonomy  true  "Full taxonomy"
// @Success      200   {object}  domain.Taxonomy
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/categories [put]
func (h *CategoryHandler) Replace(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var taxonomy domain.Taxonomy
	if err := c.Bind(&taxonomy); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.taxonomy.ReplaceCategories(c.Request().Context(), session, taxonomy); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxonomy)
}

// Add handles POST /v1/categories/:kind where kind is gastos or ingresos.
//
// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string              true  "gastos or ingresos"
// @Param        body  body      addCategoryRequest  true  "Category details"
// @Success      201   {object}  addCategoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/categories/{kind} [post]
func (h *CategoryHandler) Add(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	kind := domain.CategoryKind(c.Param("kind"))
	if kind != domain.KindExpense && kind != domain.KindIncome {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "kind must be gastos or ingresos"})
	}

	var req addCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.taxonomy.AddCategory(c.Request().Context(), session, kind, ports.AddCategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, addCategoryResponse{Category: *category})
}
