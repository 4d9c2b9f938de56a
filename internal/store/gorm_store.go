package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"craftlink/pkg/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&CustomerModel{},
		&CraftsmanModel{},
		&CraftsmanServiceModel{},
		&PortfolioItemModel{},
		&ReviewModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// CreateCustomer inserts a customer. The union email check and the insert run
// in one transaction; the unique index is the backstop for racing inserts.
func (s *GormStore) CreateCustomer(c domain.Customer) (domain.Customer, error) {
	model := customerToModel(c)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := hasEmail(tx, c.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailExists
		}
		return tx.Create(&model).Error
	})
	if err != nil {
		return domain.Customer{}, translateDuplicate(err)
	}
	return customerFromModel(model), nil
}

// CreateCraftsman inserts a craftsman under the same uniqueness discipline.
func (s *GormStore) CreateCraftsman(c domain.Craftsman) (domain.Craftsman, error) {
	model := craftsmanToModel(c)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := hasEmail(tx, c.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailExists
		}
		return tx.Create(&model).Error
	})
	if err != nil {
		return domain.Craftsman{}, translateDuplicate(err)
	}
	return craftsmanFromModel(model), nil
}

// GetCustomerByEmail looks up a customer by email.
func (s *GormStore) GetCustomerByEmail(email string) (domain.Customer, bool, error) {
	var model CustomerModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, false, nil
		}
		return domain.Customer{}, false, err
	}
	return customerFromModel(model), true, nil
}

// GetCustomerByID returns a customer by ID.
func (s *GormStore) GetCustomerByID(id uint) (domain.Customer, bool, error) {
	var model CustomerModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, false, nil
		}
		return domain.Customer{}, false, err
	}
	return customerFromModel(model), true, nil
}

// GetCraftsmanByEmail looks up a craftsman by email.
func (s *GormStore) GetCraftsmanByEmail(email string) (domain.Craftsman, bool, error) {
	var model CraftsmanModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Craftsman{}, false, nil
		}
		return domain.Craftsman{}, false, err
	}
	return craftsmanFromModel(model), true, nil
}

// GetCraftsmanByID returns a craftsman by ID.
func (s *GormStore) GetCraftsmanByID(id uint) (domain.Craftsman, bool, error) {
	var model CraftsmanModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Craftsman{}, false, nil
		}
		return domain.Craftsman{}, false, err
	}
	return craftsmanFromModel(model), true, nil
}

// ListCraftsmen returns craftsmen in insertion order, optionally filtered.
func (s *GormStore) ListCraftsmen(filter CraftsmanFilter) ([]domain.Craftsman, error) {
	tx := s.db.Order("id ASC")
	if filter.ServiceType != "" {
		tx = tx.Where("service_type = ?", filter.ServiceType)
	}
	if filter.Location != "" {
		tx = tx.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	var models []CraftsmanModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Craftsman, 0, len(models))
	for _, m := range models {
		res = append(res, craftsmanFromModel(m))
	}
	return res, nil
}

// CraftsmanCount returns the number of craftsman rows.
func (s *GormStore) CraftsmanCount() (int64, error) {
	var count int64
	if err := s.db.Model(&CraftsmanModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCraftsman removes a craftsman and all its owned records.
func (s *GormStore) DeleteCraftsman(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CraftsmanServiceModel{}, "craftsman_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&PortfolioItemModel{}, "craftsman_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ReviewModel{}, "craftsman_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&CraftsmanModel{}, "id = ?", id).Error
	})
}

// GetAccountByEmail resolves the email against both identity tables,
// customer first.
func (s *GormStore) GetAccountByEmail(email string) (Account, bool, error) {
	customer, found, err := s.GetCustomerByEmail(email)
	if err != nil {
		return Account{}, false, err
	}
	if found {
		return Account{Role: domain.RoleCustomer, Customer: &customer}, true, nil
	}
	craftsman, found, err := s.GetCraftsmanByEmail(email)
	if err != nil {
		return Account{}, false, err
	}
	if found {
		return Account{Role: domain.RoleCraftsman, Craftsman: &craftsman}, true, nil
	}
	return Account{}, false, nil
}

// HasEmail reports whether the email exists in either identity table.
func (s *GormStore) HasEmail(email string) (bool, error) {
	return hasEmail(s.db, email)
}

func hasEmail(tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := tx.Model(&CustomerModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := tx.Model(&CraftsmanModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCraftsmanAttachments loads services, portfolio, and reviews in insertion order.
func (s *GormStore) GetCraftsmanAttachments(id uint) (domain.Attachments, error) {
	att := domain.Attachments{
		Services:  []domain.CraftsmanService{},
		Portfolio: []domain.PortfolioItem{},
		Reviews:   []domain.Review{},
	}

	var services []CraftsmanServiceModel
	if err := s.db.Where("craftsman_id = ?", id).Order("id ASC").Find(&services).Error; err != nil {
		return domain.Attachments{}, err
	}
	for _, m := range services {
		att.Services = append(att.Services, serviceFromModel(m))
	}

	var portfolio []PortfolioItemModel
	if err := s.db.Where("craftsman_id = ?", id).Order("id ASC").Find(&portfolio).Error; err != nil {
		return domain.Attachments{}, err
	}
	for _, m := range portfolio {
		att.Portfolio = append(att.Portfolio, portfolioFromModel(m))
	}

	var reviews []ReviewModel
	if err := s.db.Where("craftsman_id = ?", id).Order("id ASC").Find(&reviews).Error; err != nil {
		return domain.Attachments{}, err
	}
	for _, m := range reviews {
		att.Reviews = append(att.Reviews, reviewFromModel(m))
	}
	return att, nil
}

// AddService records a service offering for a craftsman.
func (s *GormStore) AddService(svc domain.CraftsmanService) (domain.CraftsmanService, error) {
	model := serviceToModel(svc)
	if err := s.db.Create(&model).Error; err != nil {
		return domain.CraftsmanService{}, err
	}
	return serviceFromModel(model), nil
}

// AddPortfolioItem records a portfolio item for a craftsman.
func (s *GormStore) AddPortfolioItem(p domain.PortfolioItem) (domain.PortfolioItem, error) {
	model := portfolioToModel(p)
	if err := s.db.Create(&model).Error; err != nil {
		return domain.PortfolioItem{}, err
	}
	return portfolioFromModel(model), nil
}

// AddReview records a review for a craftsman.
func (s *GormStore) AddReview(r domain.Review) (domain.Review, error) {
	model := reviewToModel(r)
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Review{}, err
	}
	return reviewFromModel(model), nil
}

// translateDuplicate maps unique-violation failures to ErrEmailExists so a
// racing registration surfaces the same way as a caught duplicate.
func translateDuplicate(err error) error {
	if errors.Is(err, ErrEmailExists) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation &&
		strings.Contains(pgErr.ConstraintName, "email") {
		return ErrEmailExists
	}
	return err
}
