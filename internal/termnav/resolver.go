package termnav

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvariant marks a broken internal contract, such as the selection UI
// returning an index outside the option list.
var ErrInvariant = errors.New("invariant violation")

// Confirmer asks the user a yes/no question about finalizing on path.
type Confirmer interface {
	Confirm(ctx context.Context, path string) (bool, error)
}

// Resolver turns a chosen list position into a navigation action.
type Resolver struct {
	confirm Confirmer
	force   bool
}

// NewResolver creates a resolver. With force set the confirmer is never
// called.
func NewResolver(confirm Confirmer, force bool) *Resolver {
	return &Resolver{confirm: confirm, force: force}
}

// Resolve maps the user's choice to an action. ok is false when the user
// cancelled the selection UI.
func (r *Resolver) Resolve(ctx context.Context, s *Session, opts OptionList, chosen int, ok bool) (Action, error) {
	if !ok {
		return Action{Kind: ActionCancel}, nil
	}
	if chosen < 0 || chosen >= opts.Len() {
		return Action{}, fmt.Errorf("%w: selection index %d outside %d options", ErrInvariant, chosen, opts.Len())
	}

	switch chosen {
	case 0:
		// Choosing "." at the launch directory does nothing.
		if s.AtOrigin() {
			return Action{Kind: ActionNoOp}, nil
		}
		if r.force {
			return Action{Kind: ActionFinalize}, nil
		}
		yes, err := r.confirm.Confirm(ctx, s.Current())
		if err != nil {
			return Action{}, fmt.Errorf("confirm %s: %w", s.Current(), err)
		}
		if yes {
			return Action{Kind: ActionFinalize}, nil
		}
		return Action{Kind: ActionNoOp}, nil
	case 1:
		return Action{Kind: ActionAscend}, nil
	}

	name := opts.Labels[chosen]
	if opts.Indexed {
		name = stripIndexPrefix(name)
	}
	if name == "" {
		return Action{}, fmt.Errorf("%w: empty directory name at index %d", ErrInvariant, chosen)
	}
	return Action{Kind: ActionDescend, Name: name}, nil
}
