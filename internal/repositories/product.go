package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ticket-commerce-platform/internal/models"
)

// ProductRepository handles merchandise catalog data operations
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductSearchFilters represents filters for product listing
type ProductSearchFilters struct {
	Category string // Filter by category
	Search   string // Match against name and description
	SellOnly bool   // Only products currently for sale
	SortBy   string // "created_at", "name", "price"
	SortDesc bool   // Sort in descending order
	Limit    int    // Number of results to return
	Offset   int    // Number of results to skip
}

// Create creates a new product
func (r *ProductRepository) Create(req *models.ProductCreateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO products (name, price, description, category, image_url, sell, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, name, price, description, category, image_url, sell, created_at, updated_at`

	product := &models.Product{}
	err := r.db.QueryRow(
		query,
		req.Name,
		req.Price,
		req.Description,
		req.Category,
		req.ImageURL,
		req.Sell,
		time.Now(),
	).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&product.Sell,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	query := `
		SELECT id, name, price, description, category, image_url, sell, created_at, updated_at
		FROM products
		WHERE id = $1`

	product := &models.Product{}
	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&product.Sell,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Update updates an existing product
func (r *ProductRepository) Update(id int, req *models.ProductUpdateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4, category = $5, image_url = $6, sell = $7, updated_at = $8
		WHERE id = $1
		RETURNING id, name, price, description, category, image_url, sell, created_at, updated_at`

	product := &models.Product{}
	err := r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Price,
		req.Description,
		req.Category,
		req.ImageURL,
		req.Sell,
		time.Now(),
	).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&product.Sell,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Search retrieves products matching the given filters along with the total
// count of matching rows.
func (r *ProductRepository) Search(filters ProductSearchFilters) ([]*models.Product, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.SellOnly {
		conditions = append(conditions, "sell = TRUE")
	}

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filters.Category)
		argIndex++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortBy := "created_at"
	switch filters.SortBy {
	case "name", "price", "created_at":
		sortBy = filters.SortBy
	}

	sortOrder := "ASC"
	if filters.SortDesc {
		sortOrder = "DESC"
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT id, name, price, description, category, image_url, sell, created_at, updated_at
		FROM products
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`, whereClause, sortBy, sortOrder, argIndex, argIndex+1)
	args = append(args, limit, filters.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Category,
			&product.ImageURL,
			&product.Sell,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, total, rows.Err()
}

// Delete deletes a product
func (r *ProductRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrProductNotFound
	}

	return nil
}
