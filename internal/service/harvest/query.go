package harvest

import (
	"fmt"
	"regexp"
	"strings"
)

var collectionURIRe = regexp.MustCompile(`^https?://[^\s<>"{}|\\^` + "`" + `]+$`)

// ValidCollectionURI reports whether uri is an absolute http(s) IRI that can be
// embedded in a SPARQL query.
func ValidCollectionURI(uri string) bool {
	return collectionURIRe.MatchString(uri)
}

func countQuery(collection string) string {
	return fmt.Sprintf(`PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT (COUNT(DISTINCT ?concept) AS ?count)
WHERE {
  <%s> skos:member ?concept .
}`, collection)
}

// pageQuery selects one page of concepts with their field values. Paging is
// done on concepts so a concept's values never straddle two pages.
func pageQuery(collection string, fields []skosField, limit, offset int) string {
	var b strings.Builder
	b.WriteString("PREFIX skos: <http://www.w3.org/2004/02/skos/core#>\n")
	b.WriteString("SELECT ?concept")
	for _, f := range fields {
		b.WriteString(" ?" + f.Var)
	}
	b.WriteString("\nWHERE {\n")
	fmt.Fprintf(&b, "  {\n    SELECT DISTINCT ?concept WHERE { <%s> skos:member ?concept . }\n", collection)
	fmt.Fprintf(&b, "    ORDER BY ?concept\n    LIMIT %d\n    OFFSET %d\n  }\n", limit, offset)
	for _, f := range fields {
		fmt.Fprintf(&b, "  OPTIONAL { ?concept %s ?%s }\n", f.Term, f.Var)
	}
	b.WriteString("}\nORDER BY ?concept")
	return b.String()
}
