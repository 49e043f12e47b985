package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-commerce-platform/internal/middleware"
	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCartRepo is a minimal in-memory services.CartRepository for handler tests
type memCartRepo struct {
	merch  map[int]map[int]int
	ticket map[int]map[int]models.TicketCartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{
		merch:  make(map[int]map[int]int),
		ticket: make(map[int]map[int]models.TicketCartItem),
	}
}

func (m *memCartRepo) GetMerchItem(userID, productID int) (*models.MerchCartItem, error) {
	quantity, ok := m.merch[userID][productID]
	if !ok {
		return nil, nil
	}
	return &models.MerchCartItem{ProductID: productID, Quantity: quantity}, nil
}

func (m *memCartRepo) InsertMerchItem(userID, productID, quantity int) error {
	if m.merch[userID] == nil {
		m.merch[userID] = make(map[int]int)
	}
	m.merch[userID][productID] = quantity
	return nil
}

func (m *memCartRepo) UpdateMerchItemQuantity(userID, productID, quantity int) error {
	m.merch[userID][productID] = quantity
	return nil
}

func (m *memCartRepo) DeleteMerchItem(userID, productID int) error {
	delete(m.merch[userID], productID)
	return nil
}

func (m *memCartRepo) GetMerchItems(userID int) ([]models.MerchCartItem, error) {
	var items []models.MerchCartItem
	for productID, quantity := range m.merch[userID] {
		items = append(items, models.MerchCartItem{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}

func (m *memCartRepo) GetMerchLines(userID int) ([]models.MerchCartLine, error) {
	items, _ := m.GetMerchItems(userID)
	lines := make([]models.MerchCartLine, len(items))
	for i, item := range items {
		lines[i] = models.MerchCartLine{Product: models.Product{ID: item.ProductID}, Quantity: item.Quantity}
	}
	return lines, nil
}

func (m *memCartRepo) GetMerchTotal(userID int) (int, error) {
	total := 0
	for _, quantity := range m.merch[userID] {
		total += quantity
	}
	return total, nil
}

func (m *memCartRepo) GetTicketItem(userID, ticketID int) (*models.TicketCartItem, error) {
	item, ok := m.ticket[userID][ticketID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *memCartRepo) InsertTicketItem(userID, ticketID, quantity int, seatInfo []string) error {
	if m.ticket[userID] == nil {
		m.ticket[userID] = make(map[int]models.TicketCartItem)
	}
	m.ticket[userID][ticketID] = models.TicketCartItem{TicketID: ticketID, Quantity: quantity, SeatInfo: seatInfo}
	return nil
}

func (m *memCartRepo) UpdateTicketItemQuantity(userID, ticketID, quantity int) error {
	item := m.ticket[userID][ticketID]
	item.Quantity = quantity
	m.ticket[userID][ticketID] = item
	return nil
}

func (m *memCartRepo) DeleteTicketItem(userID, ticketID int) error {
	delete(m.ticket[userID], ticketID)
	return nil
}

func (m *memCartRepo) GetTicketItems(userID int) ([]models.TicketCartItem, error) {
	var items []models.TicketCartItem
	for _, item := range m.ticket[userID] {
		items = append(items, item)
	}
	return items, nil
}

func (m *memCartRepo) GetTicketLines(userID int) ([]models.TicketCartLine, error) {
	items, _ := m.GetTicketItems(userID)
	lines := make([]models.TicketCartLine, len(items))
	for i, item := range items {
		lines[i] = models.TicketCartLine{Ticket: models.Ticket{ID: item.TicketID}, Quantity: item.Quantity, SeatInfo: item.SeatInfo}
	}
	return lines, nil
}

func (m *memCartRepo) GetTicketTotal(userID int) (int, error) {
	total := 0
	for _, item := range m.ticket[userID] {
		total += item.Quantity
	}
	return total, nil
}

// memProductReader resolves products from a fixed map
type memProductReader struct {
	products map[int]*models.Product
}

func (m *memProductReader) GetByID(id int) (*models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return product, nil
}

// memTicketReader resolves tickets from a fixed map
type memTicketReader struct {
	tickets map[int]*models.Ticket
}

func (m *memTicketReader) GetByID(id int) (*models.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, models.ErrTicketNotFound
	}
	return ticket, nil
}

// allowAllValidator authenticates every request as the same user
type allowAllValidator struct {
	user *models.User
}

func (v *allowAllValidator) ValidateToken(token string) (*models.User, error) {
	return v.user, nil
}

func newCartRouter() http.Handler {
	cartRepo := newMemCartRepo()
	products := &memProductReader{products: map[int]*models.Product{
		1: {ID: 1, Name: "Tour Shirt", Price: 2500, Sell: true},
	}}
	tickets := &memTicketReader{tickets: map[int]*models.Ticket{
		10: {ID: 10, SessionID: 1, Name: "Front Row", Price: 5000},
	}}

	cartService := services.NewCartService(cartRepo, products, tickets, services.NewLockRegistry())
	handler := NewCartHandler(cartService)

	auth := middleware.NewAuthMiddleware(&allowAllValidator{
		user: &models.User{ID: 1, Account: "alice01", Role: models.RoleUser},
	})

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Patch("/carts/merch", handler.EditMerchCart)
		r.Get("/carts/merch", handler.GetMerchCart)
		r.Patch("/carts/tickets", handler.EditTicketCart)
		r.Get("/carts/tickets", handler.GetTicketCart)
		r.Get("/carts/total", handler.GetTotals)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) (int, Response) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec.Code, envelope
}

func TestCartHandler_EditMerchCart(t *testing.T) {
	router := newCartRouter()

	status, body := doJSON(t, router, http.MethodPatch, "/carts/merch", editMerchRequest{ProductID: 1, Quantity: 3})
	assert.Equal(t, http.StatusOK, status)
	require.True(t, body.Success)
	assert.Equal(t, float64(3), body.Result)

	status, body = doJSON(t, router, http.MethodPatch, "/carts/merch", editMerchRequest{ProductID: 1, Quantity: -1})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body.Result)

	status, body = doJSON(t, router, http.MethodPatch, "/carts/merch", editMerchRequest{ProductID: 99, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
}

func TestCartHandler_EditTicketCart(t *testing.T) {
	router := newCartRouter()

	status, body := doJSON(t, router, http.MethodPatch, "/carts/tickets", editTicketRequest{TicketID: 10, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)

	status, body = doJSON(t, router, http.MethodPatch, "/carts/tickets", editTicketRequest{TicketID: 10, Quantity: 2, SeatInfo: []string{"A1", "A2"}})
	assert.Equal(t, http.StatusOK, status)
	require.True(t, body.Success)
	assert.Equal(t, float64(2), body.Result)
}

func TestCartHandler_GetTotals(t *testing.T) {
	router := newCartRouter()

	_, _ = doJSON(t, router, http.MethodPatch, "/carts/merch", editMerchRequest{ProductID: 1, Quantity: 2})
	_, _ = doJSON(t, router, http.MethodPatch, "/carts/tickets", editTicketRequest{TicketID: 10, Quantity: 3, SeatInfo: []string{"A1", "A2", "A3"}})

	status, body := doJSON(t, router, http.MethodGet, "/carts/total", nil)
	assert.Equal(t, http.StatusOK, status)
	require.True(t, body.Success)

	totals, ok := body.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), totals["merch_total"])
	assert.Equal(t, float64(3), totals["ticket_total"])
}

func TestCartHandler_GetMerchCart(t *testing.T) {
	router := newCartRouter()

	_, _ = doJSON(t, router, http.MethodPatch, "/carts/merch", editMerchRequest{ProductID: 1, Quantity: 2})

	status, body := doJSON(t, router, http.MethodGet, "/carts/merch", nil)
	assert.Equal(t, http.StatusOK, status)
	require.True(t, body.Success)

	lines, ok := body.Result.([]interface{})
	require.True(t, ok)
	assert.Len(t, lines, 1)
}
