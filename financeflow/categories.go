package financeflow

import (
	"context"
	"net/http"
)

// CategoryInput is the payload for creating or updating a main category.
type CategoryInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

// SubcategoryInput is the payload for creating or updating a subcategory.
type SubcategoryInput struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

// ListCategories retrieves all main categories with their subcategories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var envelope struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epCategories, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Categories, nil
}

// CreateCategory creates a new main category.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	var envelope struct {
		Category Category `json:"category"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epCategories, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Category, nil
}

// UpdateCategory replaces the fields of an existing main category.
func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*Category, error) {
	var envelope struct {
		Category Category `json:"category"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPut, path: epCategory(id), body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Category, nil
}

// DeleteCategory removes a main category and its subcategories.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epCategory(id)})
}

// CreateSubcategory creates a subcategory under an existing main category.
func (c *Client) CreateSubcategory(ctx context.Context, input SubcategoryInput) (*Subcategory, error) {
	var envelope struct {
		Subcategory Subcategory `json:"subcategory"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epSubcategories, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Subcategory, nil
}

// UpdateSubcategory renames or moves an existing subcategory.
func (c *Client) UpdateSubcategory(ctx context.Context, id string, input SubcategoryInput) (*Subcategory, error) {
	var envelope struct {
		Subcategory Subcategory `json:"subcategory"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPut, path: epSubcategory(id), body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Subcategory, nil
}

// DeleteSubcategory removes a subcategory.
func (c *Client) DeleteSubcategory(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epSubcategory(id)})
}
