package handlers

import (
	"net/http"
	"strconv"

	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/repositories"
	"ticket-commerce-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// maxImageSize caps product image uploads at 5 MB
const maxImageSize = 5 << 20

// ProductHandler handles merchandise catalog requests
type ProductHandler struct {
	productRepo *repositories.ProductRepository
	storage     services.StorageService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productRepo *repositories.ProductRepository, storage services.StorageService) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		storage:     storage,
	}
}

// Create creates a new product (admin)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProductCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	product, err := h.productRepo.Create(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, product)
}

// Get returns one product by id
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, product)
}

// listResult pairs a page of results with the total match count
type listResult struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

// List returns sellable products with search, sort and pagination
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll returns every product regardless of sellability (admin)
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, sellOnly bool) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(query.Get("items_per_page"))
	if perPage <= 0 {
		perPage = 10
	}

	filters := repositories.ProductSearchFilters{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		SellOnly: sellOnly,
		SortBy:   query.Get("sort_by"),
		SortDesc: query.Get("sort_order") != "asc",
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}

	products, total, err := h.productRepo.Search(filters)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, listResult{Data: products, Total: total})
}

// Update updates an existing product (admin)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.ProductUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	product, err := h.productRepo.Update(id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, product)
}

// UploadImage stores a product image and records its public URL (admin)
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, models.ErrInvalidInput)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respondError(w, models.ErrInvalidInput)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, models.ErrInvalidInput)
		return
	}
	defer file.Close()

	key := services.ObjectKey("products", header.Filename)
	url, err := h.storage.Upload(r.Context(), key, file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.productRepo.Update(id, &models.ProductUpdateRequest{
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		ImageURL:    url,
		Sell:        product.Sell,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, updated)
}

// Delete deletes a product (admin)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.productRepo.Delete(id); err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, "")
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, models.ErrInvalidInput
	}
	return id, nil
}
