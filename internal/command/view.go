package command

import (
	"context"

	"maison/internal/structs"
	"maison/internal/texts"
	"maison/internal/view"
)

func viewToast(title string) view.Toast {
	return view.Toast{Title: title, Variant: structs.VariantDefault}
}

type ShowSectionCommand struct {
	Section view.Section
}

func (c *ShowSectionCommand) Name() string { return "view.section" }

func (c *ShowSectionCommand) Execute(_ context.Context, env *Env) error {
	if err := env.View.Show(c.Section); err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}
	return nil
}

type SelectCategoryCommand struct {
	Category string
	Result   []structs.Product
}

func (c *SelectCategoryCommand) Name() string { return "view.category" }

func (c *SelectCategoryCommand) Execute(_ context.Context, env *Env) error {
	if err := env.View.SelectCategory(c.Category); err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}
	c.Result = env.View.VisibleProducts()
	return nil
}

const (
	DialogAuth     = "auth"
	DialogCheckout = "checkout"
)

type DialogCommand struct {
	Dialog string
	Open   bool
}

func (c *DialogCommand) Name() string { return "view.dialog" }

func (c *DialogCommand) Execute(_ context.Context, env *Env) error {
	switch {
	case c.Dialog == DialogAuth && c.Open:
		env.View.OpenAuth()
	case c.Dialog == DialogAuth:
		env.View.CloseAuth()
	case c.Dialog == DialogCheckout && c.Open:
		env.View.OpenCheckout()
	case c.Dialog == DialogCheckout:
		env.View.CloseCheckout()
	default:
		return env.fail(env.text(texts.Error), "", structs.Invalid("dialog", env.text(texts.Error)))
	}
	return nil
}

type Snapshot struct {
	View     view.State        `json:"view"`
	Cart     structs.CartInfo  `json:"cart"`
	User     *structs.User     `json:"user"`
	Products []structs.Product `json:"products"`
}

// SnapshotCommand reads the whole client state. With Drain set the pending
// toasts are handed over and removed from the queue.
type SnapshotCommand struct {
	Drain  bool
	Result Snapshot
}

func (c *SnapshotCommand) Name() string { return "view.snapshot" }

func (c *SnapshotCommand) Concurrent() bool { return !c.Drain }

func (c *SnapshotCommand) Execute(ctx context.Context, env *Env) error {
	st := env.View.Snapshot()
	if c.Drain {
		st.Toasts = env.View.DrainToasts()
	}

	c.Result = Snapshot{
		View:     st,
		Cart:     env.Cart.Info(),
		Products: env.View.VisibleProducts(),
	}
	if user, ok := env.Session.CurrentUser(ctx); ok {
		c.Result.User = &user
	}
	return nil
}
