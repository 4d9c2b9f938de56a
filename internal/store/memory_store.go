package store

import (
	"strings"
	"sync"

	"craftlink/pkg/domain"
)

// MemoryStore keeps all records in-process. It backs tests and mirrors the
// GORM store's semantics, including insertion-order listings and the
// cross-table email check.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID uint

	customers      map[uint]domain.Customer
	customerOrder  []uint
	craftsmen      map[uint]domain.Craftsman
	craftsmanOrder []uint

	services  map[uint][]domain.CraftsmanService // keyed by craftsman ID
	portfolio map[uint][]domain.PortfolioItem
	reviews   map[uint][]domain.Review
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:    1,
		customers: make(map[uint]domain.Customer),
		craftsmen: make(map[uint]domain.Craftsman),
		services:  make(map[uint][]domain.CraftsmanService),
		portfolio: make(map[uint][]domain.PortfolioItem),
		reviews:   make(map[uint][]domain.Review),
	}
}

func (m *MemoryStore) allocID() uint {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemoryStore) emailTaken(email string) bool {
	for _, c := range m.customers {
		if strings.EqualFold(c.Email, email) {
			return true
		}
	}
	for _, c := range m.craftsmen {
		if strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// CreateCustomer inserts a customer, enforcing email uniqueness across kinds.
func (m *MemoryStore) CreateCustomer(c domain.Customer) (domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(c.Email) {
		return domain.Customer{}, ErrEmailExists
	}
	c.ID = m.allocID()
	m.customers[c.ID] = c
	m.customerOrder = append(m.customerOrder, c.ID)
	return c, nil
}

// CreateCraftsman inserts a craftsman, enforcing email uniqueness across kinds.
func (m *MemoryStore) CreateCraftsman(c domain.Craftsman) (domain.Craftsman, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(c.Email) {
		return domain.Craftsman{}, ErrEmailExists
	}
	c.ID = m.allocID()
	m.craftsmen[c.ID] = c
	m.craftsmanOrder = append(m.craftsmanOrder, c.ID)
	return c, nil
}

// GetCustomerByEmail looks up a customer by email.
func (m *MemoryStore) GetCustomerByEmail(email string) (domain.Customer, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.customerOrder {
		if c, ok := m.customers[id]; ok && strings.EqualFold(c.Email, email) {
			return c, true, nil
		}
	}
	return domain.Customer{}, false, nil
}

// GetCustomerByID returns a customer by ID.
func (m *MemoryStore) GetCustomerByID(id uint) (domain.Customer, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.customers[id]
	return c, ok, nil
}

// GetCraftsmanByEmail looks up a craftsman by email.
func (m *MemoryStore) GetCraftsmanByEmail(email string) (domain.Craftsman, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.craftsmanOrder {
		if c, ok := m.craftsmen[id]; ok && strings.EqualFold(c.Email, email) {
			return c, true, nil
		}
	}
	return domain.Craftsman{}, false, nil
}

// GetCraftsmanByID returns a craftsman by ID.
func (m *MemoryStore) GetCraftsmanByID(id uint) (domain.Craftsman, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.craftsmen[id]
	return c, ok, nil
}

// ListCraftsmen returns craftsmen in insertion order, optionally filtered.
func (m *MemoryStore) ListCraftsmen(filter CraftsmanFilter) ([]domain.Craftsman, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Craftsman, 0, len(m.craftsmanOrder))
	for _, id := range m.craftsmanOrder {
		c, ok := m.craftsmen[id]
		if !ok {
			continue
		}
		if filter.ServiceType != "" && c.ServiceType != filter.ServiceType {
			continue
		}
		if filter.Location != "" && !strings.Contains(c.Location, filter.Location) {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

// CraftsmanCount returns the number of craftsman records.
func (m *MemoryStore) CraftsmanCount() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.craftsmen)), nil
}

// DeleteCraftsman removes a craftsman and all its owned records.
func (m *MemoryStore) DeleteCraftsman(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.craftsmen, id)
	delete(m.services, id)
	delete(m.portfolio, id)
	delete(m.reviews, id)
	for i, oid := range m.craftsmanOrder {
		if oid == id {
			m.craftsmanOrder = append(m.craftsmanOrder[:i], m.craftsmanOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetAccountByEmail resolves the email against both record kinds,
// customer first.
func (m *MemoryStore) GetAccountByEmail(email string) (Account, bool, error) {
	customer, found, err := m.GetCustomerByEmail(email)
	if err != nil {
		return Account{}, false, err
	}
	if found {
		return Account{Role: domain.RoleCustomer, Customer: &customer}, true, nil
	}
	craftsman, found, err := m.GetCraftsmanByEmail(email)
	if err != nil {
		return Account{}, false, err
	}
	if found {
		return Account{Role: domain.RoleCraftsman, Craftsman: &craftsman}, true, nil
	}
	return Account{}, false, nil
}

// HasEmail reports whether the email exists in either identity table.
func (m *MemoryStore) HasEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.emailTaken(email), nil
}

// GetCraftsmanAttachments returns owned records in insertion order.
func (m *MemoryStore) GetCraftsmanAttachments(id uint) (domain.Attachments, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	att := domain.Attachments{
		Services:  []domain.CraftsmanService{},
		Portfolio: []domain.PortfolioItem{},
		Reviews:   []domain.Review{},
	}
	att.Services = append(att.Services, m.services[id]...)
	att.Portfolio = append(att.Portfolio, m.portfolio[id]...)
	att.Reviews = append(att.Reviews, m.reviews[id]...)
	return att, nil
}

// AddService records a service offering for a craftsman.
func (m *MemoryStore) AddService(s domain.CraftsmanService) (domain.CraftsmanService, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.allocID()
	m.services[s.CraftsmanID] = append(m.services[s.CraftsmanID], s)
	return s, nil
}

// AddPortfolioItem records a portfolio item for a craftsman.
func (m *MemoryStore) AddPortfolioItem(p domain.PortfolioItem) (domain.PortfolioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.allocID()
	m.portfolio[p.CraftsmanID] = append(m.portfolio[p.CraftsmanID], p)
	return p, nil
}

// AddReview records a review for a craftsman.
func (m *MemoryStore) AddReview(r domain.Review) (domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.allocID()
	m.reviews[r.CraftsmanID] = append(m.reviews[r.CraftsmanID], r)
	return r, nil
}
