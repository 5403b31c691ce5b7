package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FlexFloat interpreta um valor numérico vindo da planilha, que pode chegar
// como número, string ou ausente. Valores inválidos valem 0 para fins de
// agregação; o valor bruto é preservado para exibição.
func FlexFloat(value any) (parsed float64, raw string) {
	switch v := value.(type) {
	case nil:
		return 0, ""
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Sprintf("%v", v)
		}
		return v, strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return float64(v), strconv.FormatFloat(float64(v), 'f', -1, 64)
	case int:
		return float64(v), strconv.Itoa(v)
	case int64:
		return float64(v), strconv.FormatInt(v, 10)
	case string:
		raw = strings.TrimSpace(v)
		normalized := strings.ReplaceAll(raw, ",", ".")
		parsed, err := strconv.ParseFloat(normalized, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, raw
		}
		return parsed, raw
	default:
		return 0, fmt.Sprintf("%v", v)
	}
}

// FlexInt interpreta um inteiro tolerando número, string ou ausência.
// O segundo retorno indica se o valor era interpretável.
func FlexInt(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// FlexString converte qualquer valor da planilha para string. IDs numéricos
// chegam como float64 do decoder JSON e são formatados sem casa decimal.
func FlexString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RoundPercent calcula o percentual arredondado de paid sobre total,
// devolvendo 0 quando não há parcelas (nunca divide por zero)
func RoundPercent(paid, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(paid) / float64(total) * 100))
}
