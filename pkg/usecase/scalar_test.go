package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/usecase"
)

func TestParseNumber(t *testing.T) {
	t.Run("numeric passthrough", func(t *testing.T) {
		n, ok := usecase.ParseNumber(float64(5000))
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(5000)
	})

	t.Run("plain string", func(t *testing.T) {
		n, ok := usecase.ParseNumber("1200")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(1200)
	})

	t.Run("space-grouped decimal comma", func(t *testing.T) {
		n, ok := usecase.ParseNumber("5 000,50")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(5000.5)
	})

	t.Run("thousands comma with currency prefix", func(t *testing.T) {
		n, ok := usecase.ParseNumber("$1,200")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(1200)
	})

	t.Run("currency suffix", func(t *testing.T) {
		n, ok := usecase.ParseNumber("5 000₽")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(5000)
	})

	t.Run("both separators", func(t *testing.T) {
		n, ok := usecase.ParseNumber("1.234,56")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(1234.56)

		n, ok = usecase.ParseNumber("1,234.56")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(1234.56)
	})

	t.Run("no digits", func(t *testing.T) {
		_, ok := usecase.ParseNumber("free")
		gt.Bool(t, ok).False()
	})

	t.Run("unsupported types", func(t *testing.T) {
		_, ok := usecase.ParseNumber(nil)
		gt.Bool(t, ok).False()
		_, ok = usecase.ParseNumber(true)
		gt.Bool(t, ok).False()
	})
}

func TestParseInt(t *testing.T) {
	t.Run("truncates toward zero", func(t *testing.T) {
		n, ok := usecase.ParseInt("15.9")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(15)
	})

	t.Run("string day", func(t *testing.T) {
		n, ok := usecase.ParseInt("31")
		gt.Bool(t, ok).True()
		gt.Value(t, n).Equal(31)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := usecase.ParseInt(nil)
		gt.Bool(t, ok).False()
	})
}

func TestParseString(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		s, ok := usecase.ParseString("  hello  ")
		gt.Bool(t, ok).True()
		gt.Value(t, s).Equal("hello")
	})

	t.Run("no coercion from numbers", func(t *testing.T) {
		_, ok := usecase.ParseString(float64(42))
		gt.Bool(t, ok).False()
	})

	t.Run("blank is absent", func(t *testing.T) {
		_, ok := usecase.ParseString("   ")
		gt.Bool(t, ok).False()
	})
}
