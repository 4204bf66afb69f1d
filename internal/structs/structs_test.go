package structs

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		got, err := ParseOrderStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseOrderStatus("lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderStatusLabels(t *testing.T) {
	assert.Equal(t, "Доставлен", OrderStatusDelivered.Label())
	assert.Equal(t, VariantDestructive, OrderStatusCancelled.Variant())

	unknown := OrderStatus("lost")
	assert.False(t, unknown.Valid())
	assert.Equal(t, OrderStatusPending.Label(), unknown.Label())
	assert.Equal(t, OrderStatusPending.Variant(), unknown.Variant())
}

func TestOrderStatusActive(t *testing.T) {
	active := map[OrderStatus]bool{
		OrderStatusPending:    true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    true,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  false,
	}
	for s, want := range active {
		assert.Equal(t, want, s.Active(), s)
	}
}

func TestRoleDecodesIntoClosedSet(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"email":"a@b.c","role":"admin"}`), &u))
	assert.True(t, u.IsAdmin())

	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"email":"a@b.c","role":"manager"}`), &u))
	assert.Equal(t, RoleCustomer, u.Role)
}

func TestUserDisplayName(t *testing.T) {
	name := "Anna"
	assert.Equal(t, "Anna", User{Email: "a@b.c", FullName: &name}.DisplayName())
	assert.Equal(t, "a@b.c", User{Email: "a@b.c"}.DisplayName())
}

func TestErrorTaxonomy(t *testing.T) {
	remote := fmt.Errorf("login: %w", &RemoteError{Service: "auth", Op: "login", Status: 401, Message: "Invalid credentials"})
	assert.ErrorIs(t, remote, ErrRemote)
	assert.Equal(t, "Invalid credentials", Message(remote))

	invalid := Invalid("email", "Введите email")
	assert.ErrorIs(t, invalid, ErrValidation)
	assert.Equal(t, "Введите email", Message(invalid))

	assert.Equal(t, "forbidden", Message(ErrForbidden))
	assert.False(t, errors.Is(ErrForbidden, ErrRemote))
}

func TestOrderItemDecodesListingColumns(t *testing.T) {
	var item OrderItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"product_name":"Шёлковое платье","product_price":89000,"quantity":2,"selected_size":"S"}`), &item))

	assert.Equal(t, "Шёлковое платье", item.DisplayName())
	assert.Equal(t, int64(89000), item.UnitPrice())
}

func TestAmountDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{`45000`, 45000},
		{`"45000.00"`, 45000},
		{`"89000.5"`, 89001},
		{`12.4`, 12},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(tc.in), &a), tc.in)
		assert.Equal(t, tc.want, a, tc.in)
	}

	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))

	out, err := json.Marshal(OrderItem{ID: 1, Price: 45000, Quantity: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"price":45000,"quantity":1}`, string(out))
}
