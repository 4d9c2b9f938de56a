package store

import (
	"time"

	"craftlink/pkg/domain"
)

// GORM models used for persistence.
type CustomerModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:200"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (CustomerModel) TableName() string { return "customers" }

type CraftsmanModel struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"size:100;not null"`
	Email           string    `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash    string    `gorm:"size:200"`
	Phone           string    `gorm:"size:20;not null"`
	ServiceType     string    `gorm:"size:50;not null;index"`
	Location        string    `gorm:"size:100;not null"`
	Description     string    `gorm:"type:text"`
	ExperienceYears int       `gorm:"not null;default:0"`
	Rating          float64   `gorm:"not null;default:0"`
	ReviewsCount    int       `gorm:"not null;default:0"`
	CompletedJobs   int       `gorm:"not null;default:0"`
	PriceRange      string    `gorm:"size:50"`
	Availability    string    `gorm:"size:200"`
	IsVerified      bool      `gorm:"not null;default:false"`
	ProfileImage    string    `gorm:"size:200"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	// cascade-owned records
	Services  []CraftsmanServiceModel `gorm:"foreignKey:CraftsmanID;constraint:OnDelete:CASCADE"`
	Portfolio []PortfolioItemModel    `gorm:"foreignKey:CraftsmanID;constraint:OnDelete:CASCADE"`
	Reviews   []ReviewModel           `gorm:"foreignKey:CraftsmanID;constraint:OnDelete:CASCADE"`
}

func (CraftsmanModel) TableName() string { return "craftsmen" }

type CraftsmanServiceModel struct {
	ID          uint   `gorm:"primaryKey"`
	CraftsmanID uint   `gorm:"not null;index"`
	ServiceName string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Price       string `gorm:"size:50"`
}

func (CraftsmanServiceModel) TableName() string { return "craftsman_services" }

type PortfolioItemModel struct {
	ID          uint      `gorm:"primaryKey"`
	CraftsmanID uint      `gorm:"not null;index"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"size:200"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (PortfolioItemModel) TableName() string { return "portfolio_items" }

type ReviewModel struct {
	ID           uint      `gorm:"primaryKey"`
	CraftsmanID  uint      `gorm:"not null;index"`
	CustomerName string    `gorm:"size:100;not null"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (ReviewModel) TableName() string { return "reviews" }

func customerToModel(c domain.Customer) CustomerModel {
	return CustomerModel{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
	}
}

func customerFromModel(m CustomerModel) domain.Customer {
	return domain.Customer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func craftsmanToModel(c domain.Craftsman) CraftsmanModel {
	return CraftsmanModel{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		PasswordHash:    c.PasswordHash,
		Phone:           c.Phone,
		ServiceType:     c.ServiceType,
		Location:        c.Location,
		Description:     c.Description,
		ExperienceYears: c.ExperienceYears,
		Rating:          c.Rating,
		ReviewsCount:    c.ReviewsCount,
		CompletedJobs:   c.CompletedJobs,
		PriceRange:      c.PriceRange,
		Availability:    c.Availability,
		IsVerified:      c.IsVerified,
		ProfileImage:    c.ProfileImage,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func craftsmanFromModel(m CraftsmanModel) domain.Craftsman {
	return domain.Craftsman{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Phone:           m.Phone,
		ServiceType:     m.ServiceType,
		Location:        m.Location,
		Description:     m.Description,
		ExperienceYears: m.ExperienceYears,
		Rating:          m.Rating,
		ReviewsCount:    m.ReviewsCount,
		CompletedJobs:   m.CompletedJobs,
		PriceRange:      m.PriceRange,
		Availability:    m.Availability,
		IsVerified:      m.IsVerified,
		ProfileImage:    m.ProfileImage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func serviceToModel(s domain.CraftsmanService) CraftsmanServiceModel {
	return CraftsmanServiceModel{
		ID:          s.ID,
		CraftsmanID: s.CraftsmanID,
		ServiceName: s.ServiceName,
		Description: s.Description,
		Price:       s.Price,
	}
}

func serviceFromModel(m CraftsmanServiceModel) domain.CraftsmanService {
	return domain.CraftsmanService{
		ID:          m.ID,
		CraftsmanID: m.CraftsmanID,
		ServiceName: m.ServiceName,
		Description: m.Description,
		Price:       m.Price,
	}
}

func portfolioToModel(p domain.PortfolioItem) PortfolioItemModel {
	return PortfolioItemModel{
		ID:          p.ID,
		CraftsmanID: p.CraftsmanID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func portfolioFromModel(m PortfolioItemModel) domain.PortfolioItem {
	return domain.PortfolioItem{
		ID:          m.ID,
		CraftsmanID: m.CraftsmanID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

func reviewToModel(r domain.Review) ReviewModel {
	return ReviewModel{
		ID:           r.ID,
		CraftsmanID:  r.CraftsmanID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func reviewFromModel(m ReviewModel) domain.Review {
	return domain.Review{
		ID:           m.ID,
		CraftsmanID:  m.CraftsmanID,
		CustomerName: m.CustomerName,
		Rating:       m.Rating,
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt,
	}
}
