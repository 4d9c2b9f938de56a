package store

import (
	"errors"

	"craftlink/pkg/domain"
)

// ErrEmailExists is returned when an email is already registered in either
// identity table. Constraint violations from the database backstop are
// translated to this error as well.
var ErrEmailExists = errors.New("Email already exists")

// CraftsmanFilter narrows craftsman listings. Zero values mean no filtering.
type CraftsmanFilter struct {
	ServiceType string
	Location    string // substring match
}

// Account is the role-tagged result of the union email lookup. Exactly one
// of Customer/Craftsman is set; the customer table wins on a probe order tie.
type Account struct {
	Role      domain.Role
	Customer  *domain.Customer
	Craftsman *domain.Craftsman
}

// SubjectID returns the ID of whichever record is set.
func (a Account) SubjectID() uint {
	if a.Customer != nil {
		return a.Customer.ID
	}
	if a.Craftsman != nil {
		return a.Craftsman.ID
	}
	return 0
}

// Store defines persistence operations for customers, craftsmen, and the
// records a craftsman owns.
type Store interface {
	// customers
	CreateCustomer(c domain.Customer) (domain.Customer, error)
	GetCustomerByEmail(email string) (domain.Customer, bool, error)
	GetCustomerByID(id uint) (domain.Customer, bool, error)

	// craftsmen
	CreateCraftsman(c domain.Craftsman) (domain.Craftsman, error)
	GetCraftsmanByEmail(email string) (domain.Craftsman, bool, error)
	GetCraftsmanByID(id uint) (domain.Craftsman, bool, error)
	ListCraftsmen(filter CraftsmanFilter) ([]domain.Craftsman, error)
	CraftsmanCount() (int64, error)
	DeleteCraftsman(id uint) error

	// union lookups across both identity tables
	GetAccountByEmail(email string) (Account, bool, error)
	HasEmail(email string) (bool, error)

	// attachments
	GetCraftsmanAttachments(id uint) (domain.Attachments, error)
	AddService(s domain.CraftsmanService) (domain.CraftsmanService, error)
	AddPortfolioItem(p domain.PortfolioItem) (domain.PortfolioItem, error)
	AddReview(r domain.Review) (domain.Review, error)
}
