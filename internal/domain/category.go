package domain

import (
	"fmt"
	"strings"
)

// Category classifies tasks. Two categories are the same category when
// their names are equal.
type Category struct {
	Name string `json:"name"`
}

// NewCategory creates a Category from the given name.
// Surrounding whitespace is removed before validation.
func NewCategory(name string) (Category, error) {
	c := Category{Name: strings.TrimSpace(name)}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// Validate checks that the category has a name.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyCategoryName)
	}
	return nil
}

// String returns the category name.
func (c Category) String() string {
	return c.Name
}
