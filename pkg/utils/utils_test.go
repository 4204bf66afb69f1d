package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFPrice(t *testing.T) {
	assert.Equal(t, "0 ₽", FPrice(0))
	assert.Equal(t, "45 000 ₽", FPrice(45000))
	assert.Equal(t, "134 000 ₽", FPrice(134000))
	assert.Equal(t, "1 250 000 ₽", FPrice(1250000))
}

func TestStrEmpty(t *testing.T) {
	assert.True(t, StrEmpty("   "))
	assert.False(t, StrEmpty(" a "))
}

func TestLanguage(t *testing.T) {
	l := Language{RU: "Корзина", EN: "Cart"}
	assert.Equal(t, "Cart", l.By(EN))
	assert.Equal(t, "Корзина", l.By(RU))
	assert.Equal(t, "Корзина", Language{RU: "Корзина"}.By(EN))

	lang, ok := ParseLang("EN")
	assert.True(t, ok)
	assert.Equal(t, EN, lang)
	_, ok = ParseLang("uz")
	assert.False(t, ok)
	_, ok = ParseLang("")
	assert.False(t, ok)

	lang, ok = ParseLang("en-US")
	assert.True(t, ok)
	assert.Equal(t, EN, lang)
	lang, ok = ParseLang("ru_RU")
	assert.True(t, ok)
	assert.Equal(t, RU, lang)
}

func TestGenKSUIDIsUnique(t *testing.T) {
	assert.NotEqual(t, GenKSUID(), GenKSUID())
}
