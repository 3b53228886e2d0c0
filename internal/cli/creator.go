package cli

import (
	"beagle-pound/internal/domain/beagles"
	"beagle-pound/internal/platform/prompt"
)

const creatorHeader = "== Interactive Beagle Creator =="

// readBeagle pide los cinco campos en orden. Cualquier entrada inválida
// corta el flujo interactivo y se devuelve tal cual al caller.
func readBeagle(p *prompt.Prompter) (beagles.Beagle, error) {
	if err := p.Header(creatorHeader); err != nil {
		return beagles.Beagle{}, err
	}

	name, err := p.Line("name")
	if err != nil {
		return beagles.Beagle{}, err
	}

	age, err := p.Uint8("age")
	if err != nil {
		return beagles.Beagle{}, err
	}

	rawSex, err := p.Line("sex")
	if err != nil {
		return beagles.Beagle{}, err
	}
	sex, err := beagles.ParseSex(rawSex)
	if err != nil {
		return beagles.Beagle{}, &prompt.FieldError{Field: "sex", Input: rawSex, Err: err}
	}

	hunger, err := p.Uint8("current hunger")
	if err != nil {
		return beagles.Beagle{}, err
	}

	maxHunger, err := p.Uint8("max hunger")
	if err != nil {
		return beagles.Beagle{}, err
	}

	return beagles.Beagle{
		Name:            name,
		Age:             age,
		Sex:             sex,
		HungerPoints:    hunger,
		MaxHungerPoints: maxHunger,
	}, nil
}
