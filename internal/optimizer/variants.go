// Package optimizer is the model-formulation and result-extraction core.
// It validates a problem document, builds the abstract linear model for it,
// and maps a solved model back to domain terms. The package holds no state;
// every function is safe for concurrent use.
package optimizer

// Variant selects how a problem document is interpreted. The basic variant
// rejects demand constraints instead of silently dropping them; the
// demand-constrained variant is a strict superset.
type Variant struct {
	Name        string
	AllowDemand bool
}

var variants = []Variant{
	{Name: "basic", AllowDemand: false},
	{Name: "demand-constrained", AllowDemand: true},
}

// Variants lists the registered variant names in registration order.
func Variants() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

func VariantByName(name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
