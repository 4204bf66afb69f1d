// Package view keeps the presentation state of the storefront: the active
// section, the category filter, the dialog flags and pending toasts.
package view

import (
	"sync"

	"go.uber.org/fx"

	"maison/internal/catalog"
	"maison/internal/structs"
	"maison/internal/texts"
	"maison/pkg/config"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

type Section string

const (
	SectionHome     Section = "home"
	SectionCatalog  Section = "catalog"
	SectionAbout    Section = "about"
	SectionDelivery Section = "delivery"
	SectionContacts Section = "contacts"
)

var Sections = []Section{SectionHome, SectionCatalog, SectionAbout, SectionDelivery, SectionContacts}

const toastLimit = 5

type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}

type State struct {
	Section      Section `json:"section"`
	Category     string  `json:"category"`
	AuthOpen     bool    `json:"auth_open"`
	CheckoutOpen bool    `json:"checkout_open"`
	Toasts       []Toast `json:"toasts"`
}

type Params struct {
	fx.In
	Config  config.IConfig
	Catalog catalog.Service
}

type Controller struct {
	mu      sync.Mutex
	catalog catalog.Service
	state   State
	lang    utils.Lang
}

func New(p Params) *Controller {
	return &Controller{
		catalog: p.Catalog,
		state:   State{Section: SectionHome, Category: structs.CategoryAll},
		lang:    texts.Lang(p.Config),
	}
}

func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

func (c *Controller) Show(section Section) error {
	if _, ok := ParseSection(string(section)); !ok {
		return structs.Invalid("section", texts.Get(c.lang, texts.Error))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Section = section
	return nil
}

func (c *Controller) SelectCategory(id string) error {
	if !c.catalog.HasCategory(id) {
		return structs.Invalid("category", texts.Get(c.lang, texts.Error))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Category = id
	return nil
}

// VisibleProducts applies the selected category to the catalog.
func (c *Controller) VisibleProducts() []structs.Product {
	c.mu.Lock()
	category := c.state.Category
	c.mu.Unlock()

	return c.catalog.Filter(category)
}

func (c *Controller) OpenAuth()      { c.setAuth(true) }
func (c *Controller) CloseAuth()     { c.setAuth(false) }
func (c *Controller) OpenCheckout()  { c.setCheckout(true) }
func (c *Controller) CloseCheckout() { c.setCheckout(false) }

func (c *Controller) setAuth(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AuthOpen = open
}

func (c *Controller) setCheckout(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CheckoutOpen = open
}

// Toast queues a notification. Only the newest toastLimit are kept.
func (c *Controller) Toast(t Toast) {
	if t.Variant == "" {
		t.Variant = structs.VariantDefault
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Toasts = append(c.state.Toasts, t)
	if n := len(c.state.Toasts); n > toastLimit {
		c.state.Toasts = append([]Toast(nil), c.state.Toasts[n-toastLimit:]...)
	}
}

func (c *Controller) Success(title, description string) {
	c.Toast(Toast{Title: title, Description: description, Variant: structs.VariantDefault})
}

func (c *Controller) Failure(title, description string) {
	c.Toast(Toast{Title: title, Description: description, Variant: structs.VariantDestructive})
}

// DrainToasts returns the queued toasts and empties the queue.
func (c *Controller) DrainToasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.state.Toasts
	c.state.Toasts = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}

// Snapshot copies the current state without draining toasts.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.Toasts = append([]Toast{}, c.state.Toasts...)
	return st
}
