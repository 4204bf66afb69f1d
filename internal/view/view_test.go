package view

import (
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison/internal/catalog"
	"maison/internal/structs"
	"maison/pkg/config"
)

func newController() *Controller {
	return New(Params{Config: config.New(viper.New()), Catalog: catalog.New()})
}

func TestDefaults(t *testing.T) {
	c := newController()

	st := c.Snapshot()
	assert.Equal(t, SectionHome, st.Section)
	assert.Equal(t, structs.CategoryAll, st.Category)
	assert.False(t, st.AuthOpen)
	assert.False(t, st.CheckoutOpen)
	assert.Empty(t, st.Toasts)
	assert.Len(t, c.VisibleProducts(), 3)
}

func TestShow(t *testing.T) {
	c := newController()

	require.NoError(t, c.Show(SectionDelivery))
	assert.Equal(t, SectionDelivery, c.Snapshot().Section)

	err := c.Show(Section("checkout"))
	assert.ErrorIs(t, err, structs.ErrValidation)
	assert.Equal(t, SectionDelivery, c.Snapshot().Section)
}

func TestSelectCategory(t *testing.T) {
	c := newController()

	require.NoError(t, c.SelectCategory("jewelry"))
	visible := c.VisibleProducts()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(3), visible[0].ID)

	assert.ErrorIs(t, c.SelectCategory("shoes"), structs.ErrValidation)
	assert.Equal(t, "jewelry", c.Snapshot().Category)
}

func TestFlags(t *testing.T) {
	c := newController()

	c.OpenAuth()
	c.OpenCheckout()
	st := c.Snapshot()
	assert.True(t, st.AuthOpen)
	assert.True(t, st.CheckoutOpen)

	c.CloseAuth()
	c.CloseCheckout()
	st = c.Snapshot()
	assert.False(t, st.AuthOpen)
	assert.False(t, st.CheckoutOpen)
}

func TestToasts(t *testing.T) {
	c := newController()

	c.Success("Заказ оформлен!", "Мы свяжемся с вами в ближайшее время")
	c.Failure("Ошибка оформления", "")
	assert.Len(t, c.Snapshot().Toasts, 2)

	toasts := c.DrainToasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, structs.VariantDefault, toasts[0].Variant)
	assert.Equal(t, structs.VariantDestructive, toasts[1].Variant)
	assert.Empty(t, c.DrainToasts())
}

func TestToastsBounded(t *testing.T) {
	c := newController()

	for i := 0; i < toastLimit+3; i++ {
		c.Toast(Toast{Title: fmt.Sprint(i)})
	}

	toasts := c.DrainToasts()
	require.Len(t, toasts, toastLimit)
	assert.Equal(t, "3", toasts[0].Title)
	assert.Equal(t, fmt.Sprint(toastLimit+2), toasts[toastLimit-1].Title)
}
