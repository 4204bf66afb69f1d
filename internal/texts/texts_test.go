package texts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"maison/pkg/utils"
)

func TestEveryKeyHasRussian(t *testing.T) {
	for key, lang := range MapText {
		assert.NotEmpty(t, lang.RU, key)
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, "Заказ оформлен!", Get(utils.RU, OrderPlaced))
	assert.Equal(t, "Order placed!", Get(utils.EN, OrderPlaced))
	assert.Empty(t, Get(utils.RU, "missing"))
}
