package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"beagle-pound/internal/domain/beagles"
	"beagle-pound/internal/domain/pound"
)

// Vista serializable de la perrera (Pound no expone sus campos).
type poundView struct {
	Kennels []beagles.Beagle `yaml:"kennels"`
}

type document struct {
	Pound poundView `yaml:"pound"`
}

// Pound escribe el estado completo de la perrera como YAML legible.
// Es salida de diagnóstico; el formato no es un contrato.
func Pound(w io.Writer, p *pound.Pound) error {
	doc := document{Pound: poundView{Kennels: p.Kennels()}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return fmt.Errorf("render pound: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render pound: %w", err)
	}
	return nil
}
