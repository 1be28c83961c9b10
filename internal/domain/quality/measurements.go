package quality

import "github.com/shopspring/decimal"

// Measurements are the dimensional readings taken on the lot sample.
// Every field is optional.
type Measurements struct {
	Weight   *decimal.Decimal
	Diameter *decimal.Decimal
	Height   *decimal.Decimal
	Width    *decimal.Decimal
	Extra    map[string]any
}

func (m Measurements) clone() Measurements {
	out := m
	if m.Extra != nil {
		out.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
