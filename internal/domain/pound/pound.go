package pound

import (
	"errors"
	"fmt"

	"beagle-pound/internal/domain/beagles"
)

var (
	ErrInvalidPosition = errors.New("invalid kennel position")
)

// Pound es la perrera: una lista ordenada de beagles.
// El orden importa (Swap) pero no hay invariante de orden.
// Nombres duplicados se permiten; las búsquedas devuelven el primero.
type Pound struct {
	kennels []beagles.Beagle
}

func New() *Pound {
	return &Pound{
		kennels: make([]beagles.Beagle, 0),
	}
}

// Add agrega el beagle al final.
func (p *Pound) Add(b beagles.Beagle) {
	p.kennels = append(p.kennels, b)
}

// Remove saca el primer beagle con ese nombre (match exacto) y lo devuelve.
// Si no existe, la perrera queda igual y ok=false.
func (p *Pound) Remove(name string) (beagles.Beagle, bool) {
	i, ok := p.FindByName(name)
	if !ok {
		return beagles.Beagle{}, false
	}

	removed := p.kennels[i]
	p.kennels = append(p.kennels[:i], p.kennels[i+1:]...)
	return removed, true
}

func (p *Pound) FindByName(name string) (int, bool) {
	for i, b := range p.kennels {
		if b.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (p *Pound) FeedAll(amount uint8) {
	for i := range p.kennels {
		p.kennels[i].Feed(amount)
	}
}

// Swap intercambia los beagles de dos kennels.
// Posiciones fuera de rango devuelven ErrInvalidPosition sin tocar nada.
func (p *Pound) Swap(pos1, pos2 int) error {
	n := len(p.kennels)
	if pos1 < 0 || pos1 >= n || pos2 < 0 || pos2 >= n {
		return fmt.Errorf("%w: swap(%d, %d) with %d kennels", ErrInvalidPosition, pos1, pos2, n)
	}
	p.kennels[pos1], p.kennels[pos2] = p.kennels[pos2], p.kennels[pos1]
	return nil
}

// Kennels devuelve una copia; modificarla no afecta la perrera.
func (p *Pound) Kennels() []beagles.Beagle {
	out := make([]beagles.Beagle, len(p.kennels))
	copy(out, p.kennels)
	return out
}

func (p *Pound) Len() int { return len(p.kennels) }
