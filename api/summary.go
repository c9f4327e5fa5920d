package api

import (
	"math"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/hrinvest/carteira"
)

// The summary endpoint is allowed to compute only part of its fields, and
// historically shipped numbers both as JSON numbers and as strings. Rather
// than a strict struct, each field is plucked independently off the untyped
// payload: whatever is absent or not coercible to a finite number stays nil
// and the metrics engine derives it locally.

func decodeSummary(jobj any) *carteira.Summary {
	if jobj == nil {
		return nil
	}
	s := &carteira.Summary{
		TotalInvested:      number(jobj, "$.totalValor"),
		AverageMonthlyRate: number(jobj, "$.mediaRent"),
		FutureProfit:       number(jobj, "$.lucroFuturo"),
		FutureRedemption:   number(jobj, "$.resgateFuturo"),
		MonthlyProfit:      number(jobj, "$.lucroMensal"),
		DailyProfit:        number(jobj, "$.lucroHoje"),
		Bars:               bars(jobj),
	}
	if n := number(jobj, "$.contratosAtivos"); n != nil {
		count := int(*n)
		s.ActiveContracts = &count
	}
	return s
}

// number extracts one finite numeric field, or nil.
func number(jobj any, path string) *float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	v, ok := coerce(jval)
	if !ok {
		return nil
	}
	return &v
}

// bars extracts the monthly series, coercing each value and defaulting it
// to 0. A missing or malformed series is nil, never an error.
func bars(jobj any) []carteira.Bar {
	jval, err := jsonpath.Get("$.bars", jobj)
	if err != nil {
		return nil
	}
	list, ok := jval.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]carteira.Bar, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := entry["label"].(string)
		value, ok := coerce(entry["value"])
		if !ok {
			value = 0
		}
		out = append(out, carteira.Bar{Label: label, Value: value})
	}
	return out
}

// coerce turns a loose JSON value into a finite float64.
func coerce(jval any) (float64, bool) {
	var v float64
	switch x := jval.(type) {
	case float64:
		v = x
	case int:
		v = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
