package services

import (
	"sync"

	"ticket-commerce-platform/internal/models"
)

// fakeCartRepo is an in-memory CartRepository. A single mutex guards both
// line collections so it behaves like the row-level consistency the real
// database gives.
type fakeCartRepo struct {
	mu     sync.Mutex
	merch  map[int]map[int]int                   // userID -> productID -> quantity
	ticket map[int]map[int]models.TicketCartItem // userID -> ticketID -> item
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		merch:  make(map[int]map[int]int),
		ticket: make(map[int]map[int]models.TicketCartItem),
	}
}

func (f *fakeCartRepo) GetMerchItem(userID, productID int) (*models.MerchCartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	quantity, ok := f.merch[userID][productID]
	if !ok {
		return nil, nil
	}
	return &models.MerchCartItem{ProductID: productID, Quantity: quantity}, nil
}

func (f *fakeCartRepo) InsertMerchItem(userID, productID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.merch[userID] == nil {
		f.merch[userID] = make(map[int]int)
	}
	f.merch[userID][productID] = quantity
	return nil
}

func (f *fakeCartRepo) UpdateMerchItemQuantity(userID, productID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.merch[userID][productID] = quantity
	return nil
}

func (f *fakeCartRepo) DeleteMerchItem(userID, productID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.merch[userID], productID)
	return nil
}

func (f *fakeCartRepo) GetMerchItems(userID int) ([]models.MerchCartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.MerchCartItem, 0, len(f.merch[userID]))
	for productID, quantity := range f.merch[userID] {
		items = append(items, models.MerchCartItem{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}

func (f *fakeCartRepo) GetMerchLines(userID int) ([]models.MerchCartLine, error) {
	items, _ := f.GetMerchItems(userID)
	lines := make([]models.MerchCartLine, len(items))
	for i, item := range items {
		lines[i] = models.MerchCartLine{
			Product:  models.Product{ID: item.ProductID},
			Quantity: item.Quantity,
		}
	}
	return lines, nil
}

func (f *fakeCartRepo) GetMerchTotal(userID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, quantity := range f.merch[userID] {
		total += quantity
	}
	return total, nil
}

func (f *fakeCartRepo) GetTicketItem(userID, ticketID int) (*models.TicketCartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.ticket[userID][ticketID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeCartRepo) InsertTicketItem(userID, ticketID, quantity int, seatInfo []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ticket[userID] == nil {
		f.ticket[userID] = make(map[int]models.TicketCartItem)
	}
	f.ticket[userID][ticketID] = models.TicketCartItem{
		TicketID: ticketID,
		Quantity: quantity,
		SeatInfo: seatInfo,
	}
	return nil
}

func (f *fakeCartRepo) UpdateTicketItemQuantity(userID, ticketID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.ticket[userID][ticketID]
	item.Quantity = quantity
	f.ticket[userID][ticketID] = item
	return nil
}

func (f *fakeCartRepo) DeleteTicketItem(userID, ticketID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ticket[userID], ticketID)
	return nil
}

func (f *fakeCartRepo) GetTicketItems(userID int) ([]models.TicketCartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.TicketCartItem, 0, len(f.ticket[userID]))
	for _, item := range f.ticket[userID] {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeCartRepo) GetTicketLines(userID int) ([]models.TicketCartLine, error) {
	items, _ := f.GetTicketItems(userID)
	lines := make([]models.TicketCartLine, len(items))
	for i, item := range items {
		lines[i] = models.TicketCartLine{
			Ticket:   models.Ticket{ID: item.TicketID},
			Quantity: item.Quantity,
			SeatInfo: item.SeatInfo,
		}
	}
	return lines, nil
}

func (f *fakeCartRepo) GetTicketTotal(userID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, item := range f.ticket[userID] {
		total += item.Quantity
	}
	return total, nil
}

// fakeProductReader resolves products from a fixed map
type fakeProductReader struct {
	products map[int]*models.Product
}

func (f *fakeProductReader) GetByID(id int) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return product, nil
}

// fakeTicketReader resolves tickets from a fixed map
type fakeTicketReader struct {
	tickets map[int]*models.Ticket
}

func (f *fakeTicketReader) GetByID(id int) (*models.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, models.ErrTicketNotFound
	}
	return ticket, nil
}

// fakeOrderRepo stores orders in memory. CreateFromCart clears the source
// cart under the same mutex acquisition that records the order, mirroring
// the single transaction the real repository uses.
type fakeOrderRepo struct {
	mu     sync.Mutex
	carts  *fakeCartRepo
	orders []*models.Order
	nextID int
}

func newFakeOrderRepo(carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{carts: carts, nextID: 1}
}

func (f *fakeOrderRepo) CreateFromCart(order *models.Order, kind models.CartKind) (*models.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	order.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, order)

	f.carts.mu.Lock()
	if kind == models.CartMerch {
		delete(f.carts.merch, order.UserID)
	} else {
		delete(f.carts.ticket, order.UserID)
	}
	f.carts.mu.Unlock()

	return order, nil
}

func (f *fakeOrderRepo) GetByID(id int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

func (f *fakeOrderRepo) GetByUser(userID int, kind models.CartKind) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Order
	for _, order := range f.orders {
		if order.UserID != userID {
			continue
		}
		if kind == models.CartMerch && len(order.MerchLines) > 0 {
			result = append(result, order)
		}
		if kind == models.CartTicket && len(order.TicketLines) > 0 {
			result = append(result, order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) GetAllWithOwner(kind models.CartKind) ([]*models.OrderWithOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.OrderWithOwner
	for _, order := range f.orders {
		if kind == models.CartMerch && len(order.MerchLines) == 0 {
			continue
		}
		if kind == models.CartTicket && len(order.TicketLines) == 0 {
			continue
		}
		result = append(result, &models.OrderWithOwner{Order: *order})
	}
	return result, nil
}

// fakeUserRepo is an in-memory UserRepository keyed by account name
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int]*models.User
	tokens map[int]map[string]bool
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[int]*models.User),
		tokens: make(map[int]map[string]bool),
		nextID: 1,
	}
}

func (f *fakeUserRepo) Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Account == req.Account || user.Email == req.Email {
			return nil, models.ErrDuplicateEntry
		}
	}
	user := &models.User{
		ID:           f.nextID,
		Account:      req.Account,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	f.users[user.ID] = user
	f.nextID++
	return user, nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByAccount(account string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Account == account {
			return user, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) AddToken(userID int, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokens[userID] == nil {
		f.tokens[userID] = make(map[string]bool)
	}
	f.tokens[userID][token] = true
	return nil
}

func (f *fakeUserRepo) RemoveToken(userID int, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens[userID], token)
	return nil
}

func (f *fakeUserRepo) ReplaceToken(userID int, oldToken, newToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tokens[userID][oldToken] {
		return models.ErrUnauthorized
	}
	delete(f.tokens[userID], oldToken)
	f.tokens[userID][newToken] = true
	return nil
}

func (f *fakeUserRepo) HasToken(userID int, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[userID][token], nil
}

// fakeTicketRedeemer flips tickets to used with the same conditional
// semantics as the real UPDATE ... WHERE used = FALSE
type fakeTicketRedeemer struct {
	mu   sync.Mutex
	used map[int]bool
	// known tickets; redeeming an unknown id fails the same way as a used one
	known map[int]bool
}

func newFakeTicketRedeemer(ids ...int) *fakeTicketRedeemer {
	known := make(map[int]bool)
	for _, id := range ids {
		known[id] = true
	}
	return &fakeTicketRedeemer{used: make(map[int]bool), known: known}
}

func (f *fakeTicketRedeemer) Redeem(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.known[id] || f.used[id] {
		return models.ErrTicketUnavailable
	}
	f.used[id] = true
	return nil
}
