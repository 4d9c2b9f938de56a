package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"craftlink/internal/store"
	"craftlink/internal/token"
	"craftlink/pkg/domain"
)

// Config wires required dependencies for the core application.
type Config struct {
	Store store.Store
	Codec *token.Codec
}

// App is the core application service wiring together storage and token logic.
type App struct {
	store store.Store
	codec *token.Codec
}

// New constructs the application. Store and Codec are required.
func New(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Codec == nil {
		return nil, errors.New("token codec is required")
	}
	return &App{store: cfg.Store, codec: cfg.Codec}, nil
}

// RegisterRequest carries role selector plus role-appropriate fields.
// Description, experience_years, price_range, and availability are optional
// and default to empty/zero.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	UserType        string `json:"user_type"`
	Phone           string `json:"phone"`
	ServiceType     string `json:"service_type"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	ExperienceYears int    `json:"experience_years"`
	PriceRange      string `json:"price_range"`
	Availability    string `json:"availability"`
}

// LoginRequest carries login credentials. The password is required to be
// present but is never verified (see Login).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the outcome of registration or login: the matched record,
// its role, and a fresh token. Exactly one of Customer/Craftsman is set.
type AuthResult struct {
	Role      domain.Role
	Token     string
	Customer  *domain.Customer
	Craftsman *domain.Craftsman
}

// CraftsmanProfile is the composed craftsman view returned by Profile.
// Reviews are intentionally not embedded here; they are exposed through the
// craftsman detail endpoint instead.
type CraftsmanProfile struct {
	domain.Craftsman
	Services  []domain.CraftsmanService `json:"services"`
	Portfolio []domain.PortfolioItem    `json:"portfolio"`
}

// Profile is the role-dispatched view of the token's subject.
type Profile struct {
	Role      domain.Role
	Customer  *domain.Customer
	Craftsman *CraftsmanProfile
}

// CraftsmanDetail is the full public view of one craftsman with all
// owned records embedded.
type CraftsmanDetail struct {
	domain.Craftsman
	Services  []domain.CraftsmanService `json:"services"`
	Portfolio []domain.PortfolioItem    `json:"portfolio"`
	Reviews   []domain.Review           `json:"reviews"`
}

// Register validates the payload, enforces email uniqueness across both
// record kinds, persists exactly one row, and issues a token for it.
func (a *App) Register(req RegisterRequest) (AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"user_type", req.UserType},
	} {
		if f.value == "" {
			return AuthResult{}, &MissingFieldError{Field: f.name}
		}
	}
	role, ok := domain.ParseRole(req.UserType)
	if !ok {
		return AuthResult{}, ErrInvalidUserType
	}
	exists, err := a.store.HasEmail(req.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return AuthResult{}, ErrEmailExists
	}

	// The password is hashed at rest but never checked by Login.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()

	if role == domain.RoleCustomer {
		created, err := a.store.CreateCustomer(domain.Customer{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			CreatedAt:    now,
		})
		if err != nil {
			return AuthResult{}, err
		}
		signed, err := a.codec.Issue(created.ID, domain.RoleCustomer)
		if err != nil {
			return AuthResult{}, err
		}
		return AuthResult{Role: domain.RoleCustomer, Token: signed, Customer: &created}, nil
	}

	for _, f := range []struct{ name, value string }{
		{"phone", req.Phone},
		{"service_type", req.ServiceType},
		{"location", req.Location},
	} {
		if strings.TrimSpace(f.value) == "" {
			return AuthResult{}, &MissingFieldError{Field: f.name, CraftsmanField: true}
		}
	}
	created, err := a.store.CreateCraftsman(domain.Craftsman{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    string(passwordHash),
		Phone:           req.Phone,
		ServiceType:     req.ServiceType,
		Location:        req.Location,
		Description:     req.Description,
		ExperienceYears: req.ExperienceYears,
		PriceRange:      req.PriceRange,
		Availability:    req.Availability,
		IsVerified:      false, // craftsmen require manual verification
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return AuthResult{}, err
	}
	signed, err := a.codec.Issue(created.ID, domain.RoleCraftsman)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Role: domain.RoleCraftsman, Token: signed, Craftsman: &created}, nil
}

// Login issues a token for the account matching the email. The customer
// table is probed first and wins if the email were ever present in both.
// The password is required in the request but never verified against any
// stored credential; any caller knowing a registered email gets a session.
func (a *App) Login(req LoginRequest) (AuthResult, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		return AuthResult{}, &MissingFieldError{Field: "email"}
	}
	if req.Password == "" {
		return AuthResult{}, &MissingFieldError{Field: "password"}
	}

	account, found, err := a.store.GetAccountByEmail(req.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("fetch account: %w", err)
	}
	if !found {
		return AuthResult{}, ErrInvalidCredentials
	}
	signed, err := a.codec.Issue(account.SubjectID(), account.Role)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Role:      account.Role,
		Token:     signed,
		Customer:  account.Customer,
		Craftsman: account.Craftsman,
	}, nil
}

// VerifyToken decodes and validates a raw token.
func (a *App) VerifyToken(raw string) (token.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return token.Claims{}, ErrTokenRequired
	}
	return a.codec.Verify(raw)
}

// Profile resolves the token's subject and returns the role-appropriate view.
// Craftsman profiles embed services and portfolio; reviews stay in the store.
func (a *App) Profile(raw string) (Profile, error) {
	claims, err := a.codec.Verify(raw)
	if err != nil {
		return Profile{}, err
	}

	if claims.UserType == domain.RoleCustomer {
		customer, found, err := a.store.GetCustomerByID(claims.UserID)
		if err != nil {
			return Profile{}, fmt.Errorf("fetch customer: %w", err)
		}
		if !found {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{Role: domain.RoleCustomer, Customer: &customer}, nil
	}

	craftsman, found, err := a.store.GetCraftsmanByID(claims.UserID)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch craftsman: %w", err)
	}
	if !found {
		return Profile{}, ErrProfileNotFound
	}
	att, err := a.store.GetCraftsmanAttachments(craftsman.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch attachments: %w", err)
	}
	return Profile{
		Role: domain.RoleCraftsman,
		Craftsman: &CraftsmanProfile{
			Craftsman: craftsman,
			Services:  att.Services,
			Portfolio: att.Portfolio,
		},
	}, nil
}

// ListCraftsmen returns craftsmen in insertion order, optionally filtered.
func (a *App) ListCraftsmen(filter store.CraftsmanFilter) ([]domain.Craftsman, error) {
	return a.store.ListCraftsmen(filter)
}

// GetCraftsman returns one craftsman with services, portfolio, and reviews.
func (a *App) GetCraftsman(id uint) (CraftsmanDetail, error) {
	craftsman, found, err := a.store.GetCraftsmanByID(id)
	if err != nil {
		return CraftsmanDetail{}, fmt.Errorf("fetch craftsman: %w", err)
	}
	if !found {
		return CraftsmanDetail{}, ErrProfileNotFound
	}
	att, err := a.store.GetCraftsmanAttachments(id)
	if err != nil {
		return CraftsmanDetail{}, fmt.Errorf("fetch attachments: %w", err)
	}
	return CraftsmanDetail{
		Craftsman: craftsman,
		Services:  att.Services,
		Portfolio: att.Portfolio,
		Reviews:   att.Reviews,
	}, nil
}
