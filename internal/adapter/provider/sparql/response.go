package sparql

// Results is a decoded application/sparql-results+json document.
type Results struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// Binding maps a variable name to its bound RDF term. Unbound variables are absent.
type Binding map[string]Term

// Term is one RDF term in a result row.
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Value returns the lexical value bound to name, or "" when unbound.
func (b Binding) Value(name string) string {
	return b[name].Value
}

// Rows returns the result bindings.
func (r *Results) Rows() []Binding {
	return r.Results.Bindings
}
