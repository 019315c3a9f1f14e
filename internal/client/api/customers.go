package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// CustomerService wraps the /customers collection.
type CustomerService struct {
	c *Client
}

func NewCustomerService(c *Client) *CustomerService {
	return &CustomerService{c: c}
}

// List returns a page of customers matching the filters.
func (s *CustomerService) List(ctx context.Context, filters models.CustomerFilters) (*models.Page[models.Customer], error) {
	q := url.Values{}
	strParam(q, "search", filters.Search)
	boolParam(q, "is_active", filters.IsActive)
	boolParam(q, "is_active_customer", filters.IsActiveCustomer)
	strParam(q, "customer_type", filters.CustomerType)
	intParam(q, "page", filters.Page)
	intParam(q, "page_size", filters.PageSize)

	var page models.Page[models.Customer]
	if err := s.c.get(ctx, "/customers/", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.get(ctx, fmt.Sprintf("/customers/%d/", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Create(ctx context.Context, in models.CustomerCreate) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.post(ctx, "/customers/", in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int, in models.CustomerUpdate) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.put(ctx, fmt.Sprintf("/customers/%d/", id), in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Patch(ctx context.Context, id int, in models.CustomerUpdate) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.patch(ctx, fmt.Sprintf("/customers/%d/", id), in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/customers/%d/", id))
}

// SetActive toggles the is_active_customer flag.
func (s *CustomerService) SetActive(ctx context.Context, id int, active bool) (*models.Customer, error) {
	return s.Patch(ctx, id, models.CustomerUpdate{IsActiveCustomer: &active})
}

// MyProfile returns the customer profile of the logged-in customer user.
func (s *CustomerService) MyProfile(ctx context.Context) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.get(ctx, "/customers/me/", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateMyProfile patches the customer profile of the logged-in customer user.
func (s *CustomerService) UpdateMyProfile(ctx context.Context, in models.CustomerUpdate) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.patch(ctx, "/customers/me/update/", in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
