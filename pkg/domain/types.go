package domain

import "time"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleCraftsman Role = "craftsman"
)

// ParseRole maps a raw user_type value to a Role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleCraftsman:
		return RoleCraftsman, true
	default:
		return "", false
	}
}

type Customer struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Craftsman struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Phone           string    `json:"phone"`
	ServiceType     string    `json:"service_type"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	ExperienceYears int       `json:"experience_years"`
	Rating          float64   `json:"rating"`
	ReviewsCount    int       `json:"reviews_count"`
	CompletedJobs   int       `json:"completed_jobs"`
	PriceRange      string    `json:"price_range"`
	Availability    string    `json:"availability"`
	IsVerified      bool      `json:"is_verified"`
	ProfileImage    string    `json:"profile_image"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CraftsmanService struct {
	ID          uint   `json:"id"`
	CraftsmanID uint   `json:"-"`
	ServiceName string `json:"service_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type PortfolioItem struct {
	ID          uint      `json:"id"`
	CraftsmanID uint      `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Review struct {
	ID           uint      `json:"id"`
	CraftsmanID  uint      `json:"-"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Attachments groups the records cascade-owned by a craftsman,
// each in insertion order.
type Attachments struct {
	Services  []CraftsmanService `json:"services"`
	Portfolio []PortfolioItem    `json:"portfolio"`
	Reviews   []Review           `json:"reviews"`
}
