package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSaleID gera um identificador de venda no formato gravado na planilha
// (ex.: "VND-X7K2QZ8M"). As listagens exibem apenas o segmento final.
func NewSaleID() (string, error) {
	id, err := gonanoid.Generate(characters, 8)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("VND-%s", id), nil
}
