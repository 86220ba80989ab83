package prompt

import (
	_ "embed"
	"strings"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

var (
	//go:embed template/product.txt
	productRaw string

	//go:embed template/customer.txt
	customerRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Product  string
	Customer string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Product:  strings.TrimSpace(productRaw),
		Customer: strings.TrimSpace(customerRaw),
	}
}

// For returns the intent prompt for a domain, or "" for an unknown domain.
func (p PromptSet) For(d contractx.Domain) string {
	switch d.Noun {
	case "product":
		return p.Product
	case "customer":
		return p.Customer
	default:
		return ""
	}
}
