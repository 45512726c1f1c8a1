package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
//	@Summary		Create a product (Admin)
//	@Description	Adds a batik to the catalog.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Admin key is required"
//	@Failure		403		{object}	response.ErrorResponse		"Invalid admin key"
//	@Failure		409		{object}	response.ErrorResponse		"Slug already exists"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		AdminKey
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("slug", req.Slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product id"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetProductBySlug godoc
//	@Summary		Get a product by slug
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string					true	"Product slug"
//	@Success		200		{object}	models.Product			"Product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/slug/{slug} [get]
func (h *ProductHandler) GetProductBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, appErrors.BadRequestError("Product slug is required"))
			return
		}

		product, err := h.productService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product (Admin)
//	@Description	Partially updates a catalog entry. Omitted fields keep their value.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Product updated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Invalid admin key"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		AdminKey
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input", slog.Int64("productId", id))
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Filters by category, price and a search over name, motif and artisan. Sorted by sales unless sort says otherwise.
//	@Tags			Products
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Param			category	query		string												false	"Motif category"							Enums(klasik, modern, kontemporer)
//	@Param			priceRange	query		string												false	"Preset price bracket"						Enums(all, under-1m, 1m-2m, above-2m)
//	@Param			minPrice	query		int													false	"Lowest price, inclusive"
//	@Param			maxPrice	query		int													false	"Highest price, inclusive"
//	@Param			q			query		string												false	"Search text"
//	@Param			sort		query		string												false	"Sort order (default: popular)"				Enums(popular, price-low, price-high, rating)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Products"
//	@Failure		400			{object}	response.ErrorResponse								"Invalid filter"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		filter, err := h.parseFilter(r)
		if err != nil {
			logger.Warn("Invalid product filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *ProductHandler) parseFilter(r *http.Request) (*models.ProductFilter, error) {
	q := r.URL.Query()

	filter := &models.ProductFilter{
		Category: q.Get("category"),
		Search:   strings.TrimSpace(q.Get("q")),
		Sort:     q.Get("sort"),
	}

	if filter.Category == "all" {
		filter.Category = ""
	}

	if !filter.ApplyPriceRange(q.Get("priceRange")) {
		return nil, appErrors.BadRequestError("Invalid priceRange")
	}

	for name, dest := range map[string]*int64{"minPrice": &filter.MinPrice, "maxPrice": &filter.MaxPrice} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}

		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return nil, appErrors.BadRequestError("Invalid " + name)
		}
		*dest = v
	}

	if err := utils.ValidateStruct(h.validator, filter); err != nil {
		return nil, appErrors.ValidationError("Invalid product filter").WithError(err)
	}

	return filter, nil
}
