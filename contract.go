package carteira

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/hrinvest/carteira/date"
)

// Status is the lifecycle state of a contract as the API speaks it.
type Status string

const (
	StatusOpen   Status = "ABERTO"
	StatusClosed Status = "FINALIZADO"
)

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusClosed:
		return "Finalizado"
	default:
		return "Aberto"
	}
}

// Kind classifies a contract as an asset or a liability. Display only, it
// plays no role in the metrics math.
type Kind string

const (
	KindAsset     Kind = "ATIVO"
	KindLiability Kind = "PASSIVO"
)

// Product is the contract's product category. Display only.
type Product string

const (
	ProductPrecatorio Product = "PRECATORIO"
	ProductRPV        Product = "RPV"
)

// Contract is a financial commitment between the brokerage and a client:
// a principal, a monthly rentability rate, and a date span.
//
// Dates are kept as the raw wire strings; the API is known to ship absent or
// malformed dates, and which computations tolerate that differs per use.
// Resolution happens in StartDate, EndDate and Maturity.
type Contract struct {
	ID             int64
	ClientID       int64
	Title          string
	PrincipalValue float64
	MonthlyRate    float64
	InvestmentDate string
	MaturityDate   string
	CreatedAt      string
	Status         Status
	Kind           Kind
	Product        Product
}

// UnmarshalJSON decodes a contract from the API wire format (Portuguese
// keys). Numeric fields tolerate strings and null, coercing to 0; the
// creation timestamp accepts both createdAt and created_at.
func (c *Contract) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID             flexNumber `json:"id"`
		ClientID       flexNumber `json:"clienteId"`
		Title          string     `json:"titulo"`
		Value          flexNumber `json:"valor"`
		Rate           flexNumber `json:"rentabilidade"`
		InvestmentDate string     `json:"dataInvestimento"`
		MaturityDate   string     `json:"dataRecebimento"`
		CreatedAt      string     `json:"createdAt"`
		CreatedAtSnake string     `json:"created_at"`
		Status         string     `json:"status"`
		Kind           string     `json:"tipo"`
		Product        string     `json:"produto"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	created := raw.CreatedAt
	if created == "" {
		created = raw.CreatedAtSnake
	}
	*c = Contract{
		ID:             int64(raw.ID),
		ClientID:       int64(raw.ClientID),
		Title:          raw.Title,
		PrincipalValue: float64(raw.Value),
		MonthlyRate:    float64(raw.Rate),
		InvestmentDate: raw.InvestmentDate,
		MaturityDate:   raw.MaturityDate,
		CreatedAt:      created,
		Status:         Status(raw.Status),
		Kind:           Kind(raw.Kind),
		Product:        Product(raw.Product),
	}
	return nil
}

// StartDate resolves the date the contract's life begins: the investment
// date, or the creation timestamp when no investment date was recorded.
// There is deliberately no second chance: when the resolved string does not
// parse, the contract is simply skipped in date-dependent computations.
func (c Contract) StartDate() (date.Date, bool) {
	return parseRaw(c.InvestmentDate, c.CreatedAt)
}

// EndDate resolves the date the contract's life ends: the maturity date,
// falling back to the investment date, falling back to the creation
// timestamp.
func (c Contract) EndDate() (date.Date, bool) {
	return parseRaw(c.MaturityDate, c.InvestmentDate, c.CreatedAt)
}

// Maturity parses the maturity date alone. Open-ended contracts have none.
func (c Contract) Maturity() (date.Date, bool) {
	return parseRaw(c.MaturityDate)
}

// parseRaw picks the first non-empty candidate and parses it. A candidate
// that is present but malformed fails the resolution rather than trying the
// next one.
func parseRaw(candidates ...string) (date.Date, bool) {
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		d, err := date.Parse(raw)
		if err != nil {
			return date.Date{}, false
		}
		return d, true
	}
	return date.Date{}, false
}

// ResolveStatus returns the contract's status at the given instant. An
// explicit recognized status always wins; otherwise the contract is
// FINALIZADO iff its maturity date parses and lies strictly before now.
//
// The result is a function of wall-clock time: the same contract flips from
// ABERTO to FINALIZADO as now crosses the maturity instant. Callers pass now
// explicitly so that this stays testable.
func (c Contract) ResolveStatus(now time.Time) Status {
	switch c.Status {
	case StatusOpen, StatusClosed:
		return c.Status
	}
	if m, ok := c.Maturity(); ok && m.Time().Before(now) {
		return StatusClosed
	}
	return StatusOpen
}

// ProjectedProfit returns the profit the contract yields over its whole
// investment span: principal × rate × number of months between investment
// and maturity, both ends counted. It is absent when either date is missing
// or malformed.
func (c Contract) ProjectedProfit() (float64, bool) {
	start, ok := parseRaw(c.InvestmentDate)
	if !ok {
		return 0, false
	}
	end, ok := parseRaw(c.MaturityDate)
	if !ok {
		return 0, false
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		months = 1
	}
	return c.PrincipalValue * (c.MonthlyRate / 100) * float64(months), true
}

// flexNumber decodes loose wire numbers: JSON numbers, numeric strings, null
// and anything unparseable all land on a usable value (0 in the worst case).
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexNumber(v)
	return nil
}
