// Package reference stores source metadata attached to arguments and
// definitions. It is used by the argument and definition repositories inside
// their own write paths, so it exposes functions over a Querier, not a Repo.
package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

const columns = `id, argument_id, definition_id, type, title, url, author, notes, created_at`

// Owner selects which parent column a batch of references hangs off.
type Owner string

const (
	OwnerArgument   Owner = "argument_id"
	OwnerDefinition Owner = "definition_id"
)

// Insert writes refs in a single statement. Each ref must already carry its
// ID and exactly one owner id.
func Insert(ctx context.Context, q postgres.Querier, refs []domain.Reference) error {
	if len(refs) == 0 {
		return nil
	}

	query := postgres.Builder().
		Insert("source_references").
		Columns("id", "argument_id", "definition_id", "type", "title", "url", "author", "notes", "created_at")
	for _, ref := range refs {
		query = query.Values(ref.ID, ref.ArgumentID, ref.DefinitionID, string(ref.Type), ref.Title,
			ref.URL, ref.Author, ref.Notes, ref.CreatedAt)
	}

	if _, err := postgres.Exec(ctx, q, query); err != nil {
		return postgres.MapError(err, "references of", ownerID(refs[0]))
	}
	return nil
}

// ListByOwners returns the references of the given owners grouped by owner id.
func ListByOwners(ctx context.Context, q postgres.Querier, owner Owner, ids []uuid.UUID) (map[uuid.UUID][]domain.Reference, error) {
	out := make(map[uuid.UUID][]domain.Reference, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := postgres.Builder().
		Select(columns).
		From("source_references").
		Where(squirrel.Eq{string(owner): ids}).
		OrderBy("created_at ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list references by %s: %w", owner, err)
	}

	for _, r := range rows {
		ref := r.toDomain()
		key := ownerID(ref)
		out[key] = append(out[key], ref)
	}
	return out, nil
}

func ownerID(ref domain.Reference) uuid.UUID {
	if ref.ArgumentID != nil {
		return *ref.ArgumentID
	}
	if ref.DefinitionID != nil {
		return *ref.DefinitionID
	}
	return uuid.Nil
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	ArgumentID   *uuid.UUID `db:"argument_id"`
	DefinitionID *uuid.UUID `db:"definition_id"`
	Type         string     `db:"type"`
	Title        string     `db:"title"`
	URL          *string    `db:"url"`
	Author       *string    `db:"author"`
	Notes        *string    `db:"notes"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Reference {
	return domain.Reference{
		ID:           r.ID,
		ArgumentID:   r.ArgumentID,
		DefinitionID: r.DefinitionID,
		Type:         domain.ReferenceType(r.Type),
		Title:        r.Title,
		URL:          r.URL,
		Author:       r.Author,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}
