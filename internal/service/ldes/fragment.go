package ldes

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const latestFile = "latest.ttl"

var fragmentTmpl = template.Must(template.New("fragment").Funcs(template.FuncMap{
	"literal": turtleLiteral,
}).Parse(`@prefix ldes: <https://w3id.org/ldes#> .
@prefix tree: <https://w3id.org/tree#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix skos: <http://www.w3.org/2004/02/skos/core#> .

<{{.StreamURI}}> a ldes:EventStream ;
    ldes:timestampPath dcterms:modified ;
    ldes:versionOfPath dcterms:isVersionOf ;
    tree:view <{{.FragmentURI}}> .

<{{.FragmentURI}}> a tree:Node ;
    tree:relation [
        a tree:GreaterThanOrEqualToRelation ;
        tree:path dcterms:modified ;
        tree:value "{{.NextTime}}"^^xsd:dateTime ;
        tree:node <{{.NextURI}}>
    ] .
{{range .Members}}
<{{$.StreamURI}}> tree:member <{{.VersionURI}}> .

<{{.VersionURI}}> a skos:Concept ;
    dcterms:isVersionOf <{{.Concept}}> ;
    dcterms:modified "{{.Modified}}"^^xsd:dateTime{{range .Fields}}{{$uri := .URI}}{{range .Values}} ;
    <{{$uri}}> {{literal .Value .Language}}{{end}}{{end}} .
{{end}}`))

type fragmentData struct {
	StreamURI   string
	FragmentURI string
	NextURI     string
	NextTime    string
	Members     []member
}

type member struct {
	VersionURI string
	Concept    string
	Modified   string
	modifiedAt time.Time
	Fields     []field
}

type field struct {
	URI    string
	Values []value
}

type value struct {
	Value    string
	Language string
}

// groupMembers folds translation rows into one member per term, keeping the
// first-seen order of terms and fields.
func groupMembers(rows []domain.LDESTranslation) []member {
	var members []member
	byTerm := make(map[string]int)

	for _, r := range rows {
		i, ok := byTerm[r.TermURI]
		if !ok {
			i = len(members)
			byTerm[r.TermURI] = i
			members = append(members, member{Concept: r.TermURI, modifiedAt: r.ModifiedAt})
		}
		m := &members[i]
		if r.ModifiedAt.After(m.modifiedAt) {
			m.modifiedAt = r.ModifiedAt
		}

		fi := -1
		for j := range m.Fields {
			if m.Fields[j].URI == r.FieldURI {
				fi = j
				break
			}
		}
		if fi < 0 {
			m.Fields = append(m.Fields, field{URI: r.FieldURI})
			fi = len(m.Fields) - 1
		}
		m.Fields[fi].Values = append(m.Fields[fi].Values, value{Value: r.Value, Language: r.Language})
	}

	for i := range members {
		members[i].Modified = formatTime(members[i].modifiedAt)
	}
	return members
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

var turtleEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// turtleLiteral renders a language-tagged Turtle string literal.
func turtleLiteral(v, lang string) string {
	lit := `"` + turtleEscaper.Replace(v) + `"`
	if lang != "" {
		lit += "@" + lang
	}
	return lit
}

func dirFor(base string, sourceID uuid.UUID) string {
	return filepath.Join(base, sourceID.String())
}

var modifiedRe = regexp.MustCompile(`dcterms:modified\s+"([^"]+)"\^\^xsd:dateTime`)

// latestModified returns the newest dcterms:modified value in a fragment, or
// nil when the file does not exist or carries no timestamps.
func latestModified(path string) (*time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var latest *time.Time
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		m := modifiedRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, m[1])
		if err != nil {
			continue
		}
		if latest == nil || t.After(*latest) {
			latest = &t
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return latest, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fragment-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
