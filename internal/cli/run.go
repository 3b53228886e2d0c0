package cli

import (
	"errors"
	"fmt"
	"io"

	"beagle-pound/internal/domain/beagles"
	"beagle-pound/internal/domain/pound"
	"beagle-pound/internal/platform/logger"
	"beagle-pound/internal/platform/prompt"
	"beagle-pound/internal/platform/render"
)

var (
	ErrBeagleNotFound = errors.New("beagle not found")
)

const (
	feedAmount  uint8 = 3
	removedName       = "Dog2"
	swapFirst         = "Dog1"
	swapSecond        = "Dog3"
)

func seedBeagles() []beagles.Beagle {
	return []beagles.Beagle{
		{Name: "Dog1", Age: 6, Sex: beagles.SexMale, HungerPoints: 10, MaxHungerPoints: 20},
		{Name: "Dog2", Age: 8, Sex: beagles.SexFemale, HungerPoints: 8, MaxHungerPoints: 18},
		{Name: "Dog3", Age: 1, Sex: beagles.SexMale, HungerPoints: 2, MaxHungerPoints: 8},
	}
}

// Run ejecuta la sesión completa: crea un beagle por stdin, siembra la
// perrera y aplica remove -> feed all -> swap, imprimiendo el estado
// después de cada paso.
func Run(in io.Reader, out io.Writer, log logger.Logger) error {
	p := prompt.New(in, out)
	kennels := pound.New()

	b, err := readBeagle(p)
	if err != nil {
		log.Error("interactive input rejected", map[string]any{"error": err.Error()})
		return err
	}
	kennels.Add(b)
	log.Info("beagle added", map[string]any{"name": b.Name, "kennel": kennels.Len() - 1})

	for _, seed := range seedBeagles() {
		kennels.Add(seed)
	}
	log.Debug("pound seeded", map[string]any{"kennels": kennels.Len()})

	if err := printPound(out, kennels); err != nil {
		return err
	}

	// not found no es fatal: se ignora como en el flujo de referencia
	if _, ok := kennels.Remove(removedName); !ok {
		log.Warn("beagle not found on remove", map[string]any{"name": removedName})
	}
	kennels.FeedAll(feedAmount)
	log.Info("pound fed", map[string]any{"amount": feedAmount, "kennels": kennels.Len()})

	if err := printPound(out, kennels); err != nil {
		return err
	}

	i, err := findKennel(kennels, swapFirst)
	if err != nil {
		return err
	}
	j, err := findKennel(kennels, swapSecond)
	if err != nil {
		return err
	}
	if err := kennels.Swap(i, j); err != nil {
		log.Error("swap failed", map[string]any{"pos1": i, "pos2": j, "error": err.Error()})
		return err
	}
	log.Info("kennels swapped", map[string]any{"pos1": i, "pos2": j})

	return printPound(out, kennels)
}

func findKennel(p *pound.Pound, name string) (int, error) {
	i, ok := p.FindByName(name)
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrBeagleNotFound, name)
	}
	return i, nil
}

func printPound(out io.Writer, p *pound.Pound) error {
	// separa el documento del último prompt o del documento anterior
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return render.Pound(out, p)
}
