package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/adapter/provider/sparql"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// Result summarises one harvest run.
type Result struct {
	SourceID       uuid.UUID `json:"source_id"`
	Members        int       `json:"members"`
	Terms          int       `json:"terms"`
	FieldsInserted int       `json:"fields_inserted"`
	Pages          int       `json:"pages"`
	Duration       string    `json:"duration"`
}

// Harvest pulls every member concept of the source's collection and stores
// its configured SKOS fields. Existing field values are left untouched, so
// re-running a harvest only adds what is new.
func (s *Service) Harvest(ctx context.Context, sourceID uuid.UUID) (*Result, error) {
	start := time.Now()

	src, err := s.terms.GetSource(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("harvest.Harvest: %w", err)
	}
	if src.Kind != domain.SourceKindSPARQL {
		return nil, domain.NewValidationError("kind", "source is not a sparql source")
	}
	if !ValidCollectionURI(src.CollectionURI) {
		return nil, domain.NewValidationError("collection_uri", "must be an http(s) URI")
	}

	members, err := s.countMembers(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("harvest.Harvest: %w", err)
	}

	s.log.InfoContext(ctx, "harvest started",
		slog.String("source_id", src.ID.String()),
		slog.String("collection", src.CollectionURI),
		slog.Int("members", members),
	)

	res := &Result{SourceID: src.ID, Members: members}
	for offset := 0; offset < members; offset += s.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("harvest.Harvest: %w", err)
		}

		q := pageQuery(src.CollectionURI, s.fields, s.batchSize, offset)
		page, err := s.sparql.Select(ctx, src.Endpoint, q)
		if err != nil {
			return nil, fmt.Errorf("harvest.Harvest: page at offset %d: %w", offset, err)
		}
		rows := page.Rows()
		if len(rows) == 0 {
			break
		}

		terms, inserted, err := s.storePage(ctx, src.ID, rows)
		if err != nil {
			return nil, fmt.Errorf("harvest.Harvest: %w", err)
		}
		res.Pages++
		res.Terms += terms
		res.FieldsInserted += inserted

		s.log.DebugContext(ctx, "harvest page stored",
			slog.String("source_id", src.ID.String()),
			slog.Int("offset", offset),
			slog.Int("terms", terms),
			slog.Int("fields_inserted", inserted),
		)
	}

	if err := s.terms.MarkSourceSynced(ctx, src.ID); err != nil {
		return nil, fmt.Errorf("harvest.Harvest: %w", err)
	}

	res.Duration = time.Since(start).Round(time.Millisecond).String()
	s.log.InfoContext(ctx, "harvest finished",
		slog.String("source_id", src.ID.String()),
		slog.Int("terms", res.Terms),
		slog.Int("fields_inserted", res.FieldsInserted),
		slog.String("duration", res.Duration),
	)
	return res, nil
}

func (s *Service) countMembers(ctx context.Context, src *domain.Source) (int, error) {
	out, err := s.sparql.Select(ctx, src.Endpoint, countQuery(src.CollectionURI))
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	rows := out.Rows()
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(rows[0].Value("count"))
	if err != nil {
		return 0, fmt.Errorf("count members: invalid count %q", rows[0].Value("count"))
	}
	return n, nil
}

// storePage upserts the page's terms and inserts their field values. A concept
// spans several rows when a field has multiple values.
func (s *Service) storePage(ctx context.Context, sourceID uuid.UUID, rows []sparql.Binding) (terms, inserted int, err error) {
	termIDs := make(map[string]uuid.UUID)
	seen := make(map[string]bool)

	for _, row := range rows {
		uri := row.Value("concept")
		if uri == "" {
			continue
		}
		termID, ok := termIDs[uri]
		if !ok {
			termID, err = s.terms.UpsertTerm(ctx, uri, sourceID)
			if err != nil {
				return 0, 0, fmt.Errorf("upsert term %s: %w", uri, err)
			}
			termIDs[uri] = termID
		}

		for _, f := range s.fields {
			v := row.Value(f.Var)
			if v == "" {
				continue
			}
			key := uri + "\x00" + f.URI + "\x00" + v
			if seen[key] {
				continue
			}
			seen[key] = true

			ok, err := s.terms.InsertField(ctx, domain.TermField{
				TermID:        termID,
				FieldURI:      f.URI,
				FieldTerm:     f.Term,
				OriginalValue: v,
			})
			if err != nil {
				return 0, 0, fmt.Errorf("insert field %s of %s: %w", f.Term, uri, err)
			}
			if ok {
				inserted++
			}
		}
	}
	return len(termIDs), inserted, nil
}
