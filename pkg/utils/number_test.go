package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		raw      string
	}{
		{name: "Ausente vale zero", input: nil, expected: 0, raw: ""},
		{name: "Número passa direto", input: 1250.75, expected: 1250.75, raw: "1250.75"},
		{name: "String com ponto", input: "150.50", expected: 150.50, raw: "150.50"},
		{name: "String com vírgula brasileira", input: "150,50", expected: 150.50, raw: "150,50"},
		{name: "String com espaços é aparada", input: "  99,9  ", expected: 99.9, raw: "99,9"},
		{name: "Texto livre vale zero preservando o bruto", input: "a combinar", expected: 0, raw: "a combinar"},
		{name: "NaN vale zero", input: math.NaN(), expected: 0, raw: "NaN"},
		{name: "Inteiro é promovido", input: 200, expected: 200, raw: "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, raw := FlexFloat(tt.input)

			assert.Equal(t, tt.expected, parsed)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
		ok       bool
	}{
		{name: "Ausente não é interpretável", input: nil, expected: 0, ok: false},
		{name: "Float do decoder JSON é truncado", input: float64(3), expected: 3, ok: true},
		{name: "String numérica", input: "5", expected: 5, ok: true},
		{name: "String não numérica", input: "primeira", expected: 0, ok: false},
		{name: "Inteiro nativo", input: 7, expected: 7, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := FlexInt(tt.input)

			assert.Equal(t, tt.expected, parsed)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "Ausente vira vazio", input: nil, expected: ""},
		{name: "String passa direto", input: "Maria", expected: "Maria"},
		{name: "ID numérico inteiro sem casa decimal", input: float64(12345), expected: "12345"},
		{name: "Número fracionário mantém as casas", input: 12.5, expected: "12.5"},
		{name: "Booleano é formatado", input: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlexString(tt.input))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name     string
		paid     int
		total    int
		expected int
	}{
		{name: "Sem parcelas vale zero, nunca divide por zero", paid: 0, total: 0, expected: 0},
		{name: "Dois terços arredonda para 67", paid: 2, total: 3, expected: 67},
		{name: "Um terço arredonda para 33", paid: 1, total: 3, expected: 33},
		{name: "Tudo pago vale 100", paid: 4, total: 4, expected: 100},
		{name: "Metade vale 50", paid: 1, total: 2, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundPercent(tt.paid, tt.total))
		})
	}
}
