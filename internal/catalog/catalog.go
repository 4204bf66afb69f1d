// Package catalog is the static product list shown in the storefront.
package catalog

import (
	"go.uber.org/fx"

	"maison/internal/structs"
)

var Module = fx.Provide(New)

const imageBase = "https://cdn.poehali.dev/projects/783165fc-2771-4037-aad5-40200d4e8e1f/files/"

var products = []structs.Product{
	{
		ID:       1,
		Name:     "Кожаная сумка Premium",
		Price:    45000,
		Category: "accessories",
		Image:    imageBase + "47696c94-918b-4d5b-a260-5cd6a16b4b76.jpg",
		Sizes:    []string{"One Size"},
	},
	{
		ID:       2,
		Name:     "Шёлковое платье",
		Price:    89000,
		Category: "clothing",
		Image:    imageBase + "0776c7de-3b5c-48df-b40b-8fcef6ce91fe.jpg",
		Sizes:    []string{"XS", "S", "M", "L"},
	},
	{
		ID:       3,
		Name:     "Ювелирное колье",
		Price:    125000,
		Category: "jewelry",
		Image:    imageBase + "b6bf3159-49c5-419b-97ec-a482cfa79626.jpg",
		Sizes:    []string{"One Size"},
	},
}

var categories = []structs.Category{
	{ID: structs.CategoryAll, Name: "Все товары"},
	{ID: "clothing", Name: "Одежда"},
	{ID: "accessories", Name: "Аксессуары"},
	{ID: "jewelry", Name: "Украшения"},
}

type Service interface {
	All() []structs.Product
	ByID(id int64) (structs.Product, error)
	Filter(category string) []structs.Product
	Categories() []structs.Category
	HasCategory(id string) bool
}

type service struct {
	products   []structs.Product
	categories []structs.Category
}

func New() Service {
	return &service{products: products, categories: categories}
}

// NewWith builds a catalog over an arbitrary product list.
func NewWith(list []structs.Product) Service {
	return &service{products: list, categories: categories}
}

func (s *service) All() []structs.Product {
	return clone(s.products)
}

func (s *service) ByID(id int64) (structs.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return structs.Product{}, structs.ErrNotFound
}

// Filter keeps catalog order. "all" and the empty string match everything.
func (s *service) Filter(category string) []structs.Product {
	if category == "" || category == structs.CategoryAll {
		return s.All()
	}

	list := make([]structs.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			list = append(list, p)
		}
	}
	return list
}

func (s *service) Categories() []structs.Category {
	out := make([]structs.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *service) HasCategory(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func clone(list []structs.Product) []structs.Product {
	out := make([]structs.Product, len(list))
	copy(out, list)
	return out
}
