package harvest

// SKOS property harvested into a term field.
type skosField struct {
	Var  string
	URI  string
	Term string
}

const skosNS = "http://www.w3.org/2004/02/skos/core#"

var knownFields = []skosField{
	{Var: "prefLabel", URI: skosNS + "prefLabel", Term: "skos:prefLabel"},
	{Var: "altLabel", URI: skosNS + "altLabel", Term: "skos:altLabel"},
	{Var: "definition", URI: skosNS + "definition", Term: "skos:definition"},
	{Var: "notation", URI: skosNS + "notation", Term: "skos:notation"},
	{Var: "scopeNote", URI: skosNS + "scopeNote", Term: "skos:scopeNote"},
	{Var: "broader", URI: skosNS + "broader", Term: "skos:broader"},
	{Var: "narrower", URI: skosNS + "narrower", Term: "skos:narrower"},
	{Var: "related", URI: skosNS + "related", Term: "skos:related"},
}

// DefaultFields are harvested when none are configured.
var DefaultFields = []string{"prefLabel", "altLabel", "definition"}

// resolveFields maps configured names onto known SKOS fields, preserving order
// and skipping duplicates. Unknown names are returned separately.
func resolveFields(names []string) (fields []skosField, unknown []string) {
	if len(names) == 0 {
		names = DefaultFields
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		found := false
		for _, f := range knownFields {
			if f.Var == n {
				fields = append(fields, f)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, n)
		}
	}
	return fields, unknown
}
