package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Intent is one parsed line. For "use" the held item is Args[0] and the
// thing it is used on is Target.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Target     string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext lists the names in scope for entity resolution.
type ParseContext struct {
	Inventory  []string
	Nearby     []string
	Exits      []string
	LastEntity string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
	// Reversed marks verbs written target first, tool second: "cut rope
	// with knife".
	Reversed bool
}
