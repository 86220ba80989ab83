package contract

import "fmt"

// Domain describes everything that differs between the two agents: naming,
// the secondary column, the routing keyword, and the served port. Both agents
// run the exact same code over one of these descriptors.
type Domain struct {
	AgentName   string
	Description string
	Version     string
	Label       string // capitalized noun for user-facing messages
	Noun        string // "product"
	Plural      string // "products"
	Secondary   string // optional column: "description" or "email"
	Keyword     string // router classification keyword
	Table       string
	Port        int

	SkillID          string
	SkillName        string
	SkillDescription string
	SkillExamples    []string
}

func ProductDomain() Domain {
	return Domain{
		AgentName:   "ProductAgent",
		Description: "Manages product database operations using natural language",
		Version:     "1.2.0",
		Label:       "Product",
		Noun:        "product",
		Plural:      "products",
		Secondary:   "description",
		Keyword:     "product",
		Table:       "products",
		Port:        5001,

		SkillID:          "manage_products",
		SkillName:        "Product Management",
		SkillDescription: "Add, list, delete, and update products using natural language",
		SkillExamples: []string{
			"Add iPhone to products",
			"Add a Yoga Mat with description Eco-friendly",
			"List all products",
			"Show me all items",
			"Delete product ID:1",
			"Remove product 2",
			"Update product 3 name to 'Super Phone'",
			"Update product 4 description to 'Limited edition'",
			"Update product 5 name to 'Ultra Laptop' and description to '2025 model'",
		},
	}
}

func CustomerDomain() Domain {
	return Domain{
		AgentName:   "CustomerAgent",
		Description: "Manages customer database operations using natural language",
		Version:     "1.2.0",
		Label:       "Customer",
		Noun:        "customer",
		Plural:      "customers",
		Secondary:   "email",
		Keyword:     "customer",
		Table:       "customers",
		Port:        5002,

		SkillID:          "manage_customers",
		SkillName:        "Customer Management",
		SkillDescription: "Add, list, delete, and update customers using natural language",
		SkillExamples: []string{
			"Add Rahul to customers",
			"Add Priya with email priya@example.com",
			"List all customers",
			"Show me all customers",
			"Delete customer ID:1",
			"Remove customer 2",
			"Update customer 3 name to 'Rahul Sharma'",
			"Update customer 4 email to 'new.email@example.com'",
			"Update customer 5 name to 'Arjun Patel' and email to 'arjun@patel.com'",
		},
	}
}

// IntentFor returns the wire intent name for a command kind, e.g. CommandAdd
// in the product domain is "add_product".
func (d Domain) IntentFor(kind CommandKind) string {
	switch kind {
	case CommandAdd:
		return "add_" + d.Noun
	case CommandList:
		return "list_" + d.Plural
	case CommandDelete:
		return "delete_" + d.Noun
	case CommandUpdate:
		return "update_" + d.Noun
	default:
		return "unknown"
	}
}

// KindForIntent maps a model-reported intent name back into the closed set.
// Anything outside the domain's four intents is CommandUnknown.
func (d Domain) KindForIntent(intent string) CommandKind {
	switch intent {
	case d.IntentFor(CommandAdd):
		return CommandAdd
	case d.IntentFor(CommandList):
		return CommandList
	case d.IntentFor(CommandDelete):
		return CommandDelete
	case d.IntentFor(CommandUpdate):
		return CommandUpdate
	default:
		return CommandUnknown
	}
}

func (d Domain) Validate() error {
	if d.AgentName == "" || d.Noun == "" || d.Plural == "" || d.Secondary == "" || d.Table == "" {
		return fmt.Errorf("%w: incomplete domain descriptor", ErrValidation)
	}
	return nil
}
