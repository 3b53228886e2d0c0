package beagles

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSex = errors.New("invalid sex. must be one of: male, female")
)

// Sex define el sexo del beagle.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex normaliza (trim + lower) y valida el sexo ingresado por el usuario.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", ErrInvalidSex
	}
}

// Beagle representa un perro alojado en la perrera.
// Todos los campos se completan al construirlo; solo Feed lo muta.
type Beagle struct {
	Name string `yaml:"name"`
	Age  uint8  `yaml:"age"`
	Sex  Sex    `yaml:"sex"`

	HungerPoints    uint8 `yaml:"hunger_points"`
	MaxHungerPoints uint8 `yaml:"max_hunger_points"`
}

// Feed suma amount al hambre actual, saturando en MaxHungerPoints.
func (b *Beagle) Feed(amount uint8) {
	// uint16 para que la suma no desborde antes de comparar
	sum := uint16(b.HungerPoints) + uint16(amount)
	if sum > uint16(b.MaxHungerPoints) {
		b.HungerPoints = b.MaxHungerPoints
		return
	}
	b.HungerPoints = uint8(sum)
}
