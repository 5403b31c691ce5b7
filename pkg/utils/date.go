package utils

import (
	"strings"
	"time"
)

// Formatos de data observados nas planilhas: ISO (serialização do Apps
// Script), data simples e o formato brasileiro de digitação manual.
var flexDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// FlexDate tenta interpretar um valor de data da planilha. Quando o parse
// falha, retorna nil e o valor bruto verbatim: a exibição degrada para a
// string original em vez de perder informação.
func FlexDate(value any) (parsed *time.Time, raw string) {
	if t, ok := value.(time.Time); ok {
		return &t, t.Format(time.RFC3339)
	}

	raw = strings.TrimSpace(FlexString(value))
	if raw == "" {
		return nil, ""
	}

	for _, layout := range flexDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, raw
		}
	}

	return nil, raw
}
