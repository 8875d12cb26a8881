package cart

import (
	"context"
	"fmt"

	"artisty/internal/domain"
	cartrepo "artisty/internal/repository/cart"
)

// Ledger is the in-memory cart for one device. Mutations keep at most one
// line per artwork id and never leave a line at quantity 0.
type Ledger struct {
	lines []domain.CartLine
}

func NewLedger(lines []domain.CartLine) *Ledger {
	return &Ledger{lines: lines}
}

// Add increments the line for the artwork, creating it at quantity 1 when the
// artwork is not in the cart yet.
func (l *Ledger) Add(art domain.Artwork) {
	for i := range l.lines {
		if l.lines[i].Artwork.ID == art.ID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, domain.CartLine{Artwork: art, Quantity: 1})
}

// DecrementOrRemove lowers the line's quantity by 1, removing the line when
// it would reach 0. Returns false when the artwork is not in the cart.
func (l *Ledger) DecrementOrRemove(artworkID int) bool {
	for i := range l.lines {
		if l.lines[i].Artwork.ID != artworkID {
			continue
		}
		if l.lines[i].Quantity > 1 {
			l.lines[i].Quantity--
		} else {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		}
		return true
	}
	return false
}

// QuantityOf returns 0 when the artwork is not in the cart.
func (l *Ledger) QuantityOf(artworkID int) int {
	for _, line := range l.lines {
		if line.Artwork.ID == artworkID {
			return line.Quantity
		}
	}
	return 0
}

// TotalUniqueLines is the number of distinct artworks in the cart.
func (l *Ledger) TotalUniqueLines() int {
	return len(l.lines)
}

// TotalQuantity is the sum of all line quantities.
func (l *Ledger) TotalQuantity() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity over all lines.
func (l *Ledger) TotalPrice() float64 {
	total := 0.0
	for _, line := range l.lines {
		total += domain.UnitPrice(line.Artwork.ID) * float64(line.Quantity)
	}
	return total
}

// Lines returns a copy of the cart contents.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

type store interface {
	Load(ctx context.Context, cartID string) ([]domain.CartLine, error)
	Save(ctx context.Context, cartID string, lines []domain.CartLine) error
	Delete(ctx context.Context, cartID string) error
}

// Service rehydrates a device's ledger before every operation and writes the
// whole ledger back after every mutation.
type Service struct {
	store store
}

func New(store cartrepo.Repository) *Service {
	return &Service{store: store}
}

// Get loads the ledger for the device. An absent key yields an empty ledger,
// not an error.
func (s *Service) Get(ctx context.Context, cartID string) (*Ledger, error) {
	lines, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return NewLedger(lines), nil
}

// Add puts one more of the artwork into the cart and persists the result.
func (s *Service) Add(ctx context.Context, cartID string, art domain.Artwork) (*Ledger, error) {
	ledger, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	ledger.Add(art)
	if err := s.store.Save(ctx, cartID, ledger.lines); err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}
	return ledger, nil
}

// Remove decrements or deletes the artwork's line and persists the result.
// The bool reports whether the artwork was in the cart.
func (s *Service) Remove(ctx context.Context, cartID string, artworkID int) (*Ledger, bool, error) {
	ledger, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, false, err
	}
	found := ledger.DecrementOrRemove(artworkID)
	if !found {
		return ledger, false, nil
	}
	if err := s.store.Save(ctx, cartID, ledger.lines); err != nil {
		return nil, false, fmt.Errorf("save ledger: %w", err)
	}
	return ledger, true, nil
}

// Clear drops the device's stored ledger entirely.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	return nil
}
