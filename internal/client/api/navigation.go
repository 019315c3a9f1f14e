package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// NavigationService wraps the /navigation/categories and
// /navigation/functions collections. Both return bare arrays.
type NavigationService struct {
	c *Client
}

func NewNavigationService(c *Client) *NavigationService {
	return &NavigationService{c: c}
}

// Categories lists navigation categories, optionally only active ones.
func (s *NavigationService) Categories(ctx context.Context, isActive *bool) ([]models.Category, error) {
	q := url.Values{}
	boolParam(q, "is_active", isActive)

	var cats []models.Category
	if err := s.c.get(ctx, "/navigation/categories/", q, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *NavigationService) Category(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	if err := s.c.get(ctx, fmt.Sprintf("/navigation/categories/%d/", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CategoryFunctions returns the functions belonging to a category.
func (s *NavigationService) CategoryFunctions(ctx context.Context, id int) ([]models.Function, error) {
	var fns []models.Function
	if err := s.c.get(ctx, fmt.Sprintf("/navigation/categories/%d/functions/", id), nil, &fns); err != nil {
		return nil, err
	}
	return fns, nil
}

func (s *NavigationService) CreateCategory(ctx context.Context, in models.CategoryCreate) (*models.Category, error) {
	var c models.Category
	if err := s.c.post(ctx, "/navigation/categories/", in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *NavigationService) PatchCategory(ctx context.Context, id int, in models.CategoryUpdate) (*models.Category, error) {
	var c models.Category
	if err := s.c.patch(ctx, fmt.Sprintf("/navigation/categories/%d/", id), in, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *NavigationService) DeleteCategory(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/navigation/categories/%d/", id))
}

// ReorderCategories applies new positions to several categories at once.
func (s *NavigationService) ReorderCategories(ctx context.Context, reorders []models.CategoryReorder) (*models.ReorderResult, error) {
	body := struct {
		Categories []models.CategoryReorder `json:"categories"`
	}{Categories: reorders}

	var res models.ReorderResult
	if err := s.c.post(ctx, "/navigation/categories/reorder/", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Functions lists all functions flat.
func (s *NavigationService) Functions(ctx context.Context) ([]models.Function, error) {
	var fns []models.Function
	if err := s.c.get(ctx, "/navigation/functions/", nil, &fns); err != nil {
		return nil, err
	}
	return fns, nil
}

// FunctionTree lists functions nested by parent.
func (s *NavigationService) FunctionTree(ctx context.Context) ([]models.Function, error) {
	var fns []models.Function
	if err := s.c.get(ctx, "/navigation/functions/tree/", nil, &fns); err != nil {
		return nil, err
	}
	return fns, nil
}

func (s *NavigationService) Function(ctx context.Context, id int) (*models.Function, error) {
	var f models.Function
	if err := s.c.get(ctx, fmt.Sprintf("/navigation/functions/%d/", id), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *NavigationService) CreateFunction(ctx context.Context, in models.FunctionCreate) (*models.Function, error) {
	var f models.Function
	if err := s.c.post(ctx, "/navigation/functions/", in, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *NavigationService) PatchFunction(ctx context.Context, id int, in models.FunctionUpdate) (*models.Function, error) {
	var f models.Function
	if err := s.c.patch(ctx, fmt.Sprintf("/navigation/functions/%d/", id), in, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *NavigationService) DeleteFunction(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/navigation/functions/%d/", id))
}
