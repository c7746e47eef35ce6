package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSource = "default.yaml"
	schemaUrl     = "https://battleship-sim.local/scenario.schema.json"
)

var (
	//go:embed default.yaml
	defaultScenario []byte

	//go:embed scenario.schema.json
	schemaJSON []byte

	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

type ShipSpec struct {
	Name        string         `yaml:"name"`
	Row         int            `yaml:"row"`
	Col         int            `yaml:"col"`
	Length      *int           `yaml:"length,omitempty"`
	Orientation mb.Orientation `yaml:"orientation"`
}

type SkillSpec struct {
	Name string      `yaml:"name,omitempty"`
	Kind mb.MaskKind `yaml:"kind"`
	Row  int         `yaml:"row"`
	Col  int         `yaml:"col"`
}

// Scenario is the list of placement and skill requests
// fed to a simulation.
type Scenario struct {
	Source     string      `yaml:"-"`
	GridSize   int         `yaml:"grid_size"`
	ShipLength int         `yaml:"ship_length"`
	ShipSpecs  []ShipSpec  `yaml:"ships"`
	SkillSpecs []SkillSpec `yaml:"skills"`
}

func Default() (Scenario, error) {
	return Parse(defaultScenario, DefaultSource)
}

func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	return Parse(raw, path)
}

// Parse validates raw against the embedded schema before decoding it.
func Parse(raw []byte, source string) (Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", source, err)
	}
	if err := Validate(doc); err != nil {
		return Scenario{}, cerr.ErrScenarioInvalid(source, err)
	}

	s := Scenario{
		Source:     source,
		GridSize:   mb.DefaultGridSize,
		ShipLength: mb.DefaultShipLength,
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", source, err)
	}

	return s, nil
}

// Validate checks a decoded YAML or JSON document against the scenario schema.
func Validate(doc any) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// Round trip through JSON so YAML ints and maps reach
	// the validator as json.Number and map[string]any.
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var normalized any
	if err := dec.Decode(&normalized); err != nil {
		return err
	}

	return schema.Validate(normalized)
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaUrl, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaUrl)
	})
	return compiledSchema, compileErr
}

func (s Scenario) lengthOf(sh ShipSpec) int {
	if sh.Length != nil {
		return *sh.Length
	}
	return s.ShipLength
}

func (s Scenario) Ships() []mb.Ship {
	ships := make([]mb.Ship, 0, len(s.ShipSpecs))
	for _, sh := range s.ShipSpecs {
		ships = append(ships, mb.NewShip(sh.Name, mb.NewCoordinates(sh.Row, sh.Col), sh.Orientation, s.lengthOf(sh)))
	}
	return ships
}

func (s Scenario) Skills() []mb.Skill {
	skills := make([]mb.Skill, 0, len(s.SkillSpecs))
	for _, sk := range s.SkillSpecs {
		skills = append(skills, mb.NewSkill(sk.Name, sk.Kind, mb.NewCoordinates(sk.Row, sk.Col)))
	}
	return skills
}
