package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrCorruptChain is returned when supersession links form a cycle or a fork.
var ErrCorruptChain = newError(ErrInvalidState, CodeInvalidState, "definition chain is corrupt")

// DefinitionArena indexes the definitions of one debate by id. Supersession
// links are followed as id lookups into the arena.
type DefinitionArena struct {
	byID        map[uuid.UUID]*Definition
	predecessor map[uuid.UUID]uuid.UUID
}

// NewDefinitionArena builds an arena. It fails with ErrCorruptChain if two
// definitions name the same successor.
func NewDefinitionArena(defs []Definition) (*DefinitionArena, error) {
	a := &DefinitionArena{
		byID:        make(map[uuid.UUID]*Definition, len(defs)),
		predecessor: make(map[uuid.UUID]uuid.UUID, len(defs)),
	}
	for i := range defs {
		a.byID[defs[i].ID] = &defs[i]
	}
	for i := range defs {
		next := defs[i].SupersededByID
		if next == nil {
			continue
		}
		if *next == defs[i].ID {
			return nil, ErrCorruptChain.WithMessage("definition %s supersedes itself", defs[i].ID)
		}
		if prev, dup := a.predecessor[*next]; dup {
			return nil, ErrCorruptChain.WithMessage("definition %s superseded by both %s and %s", *next, prev, defs[i].ID)
		}
		a.predecessor[*next] = defs[i].ID
	}
	return a, nil
}

// Get returns the definition with the given id.
func (a *DefinitionArena) Get(id uuid.UUID) (*Definition, bool) {
	d, ok := a.byID[id]
	return d, ok
}

// Predecessor returns the definition that id replaced, if any.
func (a *DefinitionArena) Predecessor(id uuid.UUID) (*Definition, bool) {
	prevID, ok := a.predecessor[id]
	if !ok {
		return nil, false
	}
	return a.Get(prevID)
}

// Chain returns every version linked to id, oldest first.
func (a *DefinitionArena) Chain(id uuid.UUID) ([]Definition, error) {
	if _, ok := a.byID[id]; !ok {
		return nil, ErrDefinitionNotFound
	}

	root := id
	seen := map[uuid.UUID]struct{}{id: {}}
	for {
		prev, ok := a.predecessor[root]
		if !ok {
			break
		}
		if _, loop := seen[prev]; loop {
			return nil, ErrCorruptChain.WithMessage("cycle through definition %s", prev)
		}
		seen[prev] = struct{}{}
		root = prev
	}

	var chain []Definition
	visited := make(map[uuid.UUID]struct{})
	for cur := &root; cur != nil; {
		if _, loop := visited[*cur]; loop {
			return nil, ErrCorruptChain.WithMessage("cycle through definition %s", *cur)
		}
		visited[*cur] = struct{}{}

		d, ok := a.byID[*cur]
		if !ok {
			return nil, fmt.Errorf("successor %s missing from arena: %w", *cur, ErrCorruptChain)
		}
		chain = append(chain, *d)
		cur = d.SupersededByID
	}
	return chain, nil
}

// Head returns the newest version of the chain containing id.
func (a *DefinitionArena) Head(id uuid.UUID) (*Definition, error) {
	chain, err := a.Chain(id)
	if err != nil {
		return nil, err
	}
	head := chain[len(chain)-1]
	return &head, nil
}
