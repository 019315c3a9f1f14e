package models

// Customer types used by the backend.
const (
	CustomerTypeIndividual = "INDIVIDUAL"
	CustomerTypeBusiness   = "BUSINESS"
)

type Customer struct {
	ID                 int        `json:"id"`
	CustomerCode       string     `json:"customer_code"`
	CustomerType       string     `json:"customer_type"`
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	FullName           string     `json:"full_name"`
	DisplayName        string     `json:"display_name"`
	IsActive           bool       `json:"is_active"`
	IsActiveCustomer   bool       `json:"is_active_customer"`
	CI                 string     `json:"ci,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Address            string     `json:"address,omitempty"`
	City               string     `json:"city,omitempty"`
	Country            string     `json:"country,omitempty"`
	BirthDate          string     `json:"birth_date,omitempty"`
	TaxID              string     `json:"tax_id,omitempty"`
	CompanyName        string     `json:"company_name,omitempty"`
	ContactPerson      string     `json:"contact_person,omitempty"`
	CreditLimit        float64    `json:"credit_limit"`
	PaymentTerms       int        `json:"payment_terms"`
	DiscountPercentage float64    `json:"discount_percentage"`
	Notes              string     `json:"notes,omitempty"`
	HasCreditAvailable bool       `json:"has_credit_available"`
	CreatedAt          string     `json:"created_at,omitempty"`
	UpdatedAt          string     `json:"updated_at,omitempty"`
	LastLogin          string     `json:"last_login,omitempty"`
	DateJoined         string     `json:"date_joined,omitempty"`
	Roles              []UserRole `json:"roles,omitempty"`
}

type CustomerCreate struct {
	Email              string   `json:"email" validate:"required,email"`
	Username           string   `json:"username" validate:"required"`
	Password           string   `json:"password" validate:"required,min=8"`
	FirstName          string   `json:"first_name" validate:"required"`
	LastName           string   `json:"last_name" validate:"required"`
	CustomerType       string   `json:"customer_type" validate:"required,oneof=INDIVIDUAL BUSINESS"`
	CI                 string   `json:"ci,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Address            string   `json:"address,omitempty"`
	City               string   `json:"city,omitempty"`
	Country            string   `json:"country,omitempty"`
	TaxID              string   `json:"tax_id,omitempty"`
	CompanyName        string   `json:"company_name,omitempty"`
	ContactPerson      string   `json:"contact_person,omitempty"`
	CreditLimit        *float64 `json:"credit_limit,omitempty" validate:"omitempty,gte=0"`
	PaymentTerms       *int     `json:"payment_terms,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes              string   `json:"notes,omitempty"`
}

type CustomerUpdate struct {
	FirstName          *string  `json:"first_name,omitempty"`
	LastName           *string  `json:"last_name,omitempty"`
	CI                 *string  `json:"ci,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Address            *string  `json:"address,omitempty"`
	City               *string  `json:"city,omitempty"`
	Country            *string  `json:"country,omitempty"`
	TaxID              *string  `json:"tax_id,omitempty"`
	CompanyName        *string  `json:"company_name,omitempty"`
	ContactPerson      *string  `json:"contact_person,omitempty"`
	CreditLimit        *float64 `json:"credit_limit,omitempty" validate:"omitempty,gte=0"`
	PaymentTerms       *int     `json:"payment_terms,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes              *string  `json:"notes,omitempty"`
	IsActiveCustomer   *bool    `json:"is_active_customer,omitempty"`
}

// CustomerFilters narrows customer list requests. Zero values mean "not set".
type CustomerFilters struct {
	Search           string
	IsActive         *bool
	IsActiveCustomer *bool
	CustomerType     string
	Page             int
	PageSize         int
}
