package command

import (
	"context"

	"maison/internal/structs"
	"maison/internal/texts"
)

type AddToCartCommand struct {
	ProductID int64
	Result    structs.CartInfo
}

func (c *AddToCartCommand) Name() string { return "cart.add" }

func (c *AddToCartCommand) Execute(_ context.Context, env *Env) error {
	product, err := env.Catalog.ByID(c.ProductID)
	if err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}

	env.Cart.AddItem(product)
	c.Result = env.Cart.Info()
	return nil
}

type SetQuantityCommand struct {
	ProductID int64
	Quantity  int64
	Result    structs.CartInfo
}

func (c *SetQuantityCommand) Name() string { return "cart.set_quantity" }

func (c *SetQuantityCommand) Execute(_ context.Context, env *Env) error {
	if err := env.Cart.SetQuantity(c.ProductID, c.Quantity); err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}
	c.Result = env.Cart.Info()
	return nil
}

type RemoveFromCartCommand struct {
	ProductID int64
	Result    structs.CartInfo
}

func (c *RemoveFromCartCommand) Name() string { return "cart.remove" }

func (c *RemoveFromCartCommand) Execute(_ context.Context, env *Env) error {
	env.Cart.RemoveItem(c.ProductID)
	c.Result = env.Cart.Info()
	return nil
}

type CheckoutCommand struct {
	Request structs.CheckoutRequest
	Result  structs.OrderReceipt
}

func (c *CheckoutCommand) Name() string { return "checkout" }

func (c *CheckoutCommand) Execute(ctx context.Context, env *Env) error {
	receipt, err := env.Checkout.Checkout(ctx, env.Cart, c.Request)
	if err != nil {
		if isAuthErr(err) {
			env.View.OpenAuth()
			env.View.Toast(viewToast(env.text(texts.LoginToCheckout)))
			return err
		}
		return env.fail(env.text(texts.CheckoutFailed), describe(err, ""), err)
	}

	c.Result = receipt
	env.View.CloseCheckout()
	env.View.Success(env.text(texts.OrderPlaced), env.text(texts.OrderPlacedHint))
	return nil
}
