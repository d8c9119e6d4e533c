// Package scenario runs scripted user flows against the console page objects
package scenario

import (
	"fmt"
	"io"

	"streampark_e2e/application/pages"
	"streampark_e2e/domain/entities"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load - decodes a YAML scenario and checks every step has what it needs
func Load(r io.Reader) (entities.Scenario, error) {
	var sc entities.Scenario

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return entities.Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := Validate(sc); err != nil {
		return entities.Scenario{}, err
	}
	return sc, nil
}

// LoadFile - loads a scenario from path on fs
func LoadFile(fs afero.Fs, path string) (entities.Scenario, error) {
	f, err := fs.Open(path)
	if err != nil {
		return entities.Scenario{}, err
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return entities.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate - checks a scenario before any browser work starts
func Validate(sc entities.Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}

	for i, step := range sc.Steps {
		switch step.Action {
		case entities.ActionNavigate:
			if step.URL == "" {
				return fmt.Errorf("step %d: url parameter is required for navigate action", i+1)
			}
		case entities.ActionAddApplication:
			if step.Application == nil {
				return fmt.Errorf("step %d: application parameter is required for add_application action", i+1)
			}
			if err := pages.CheckRoute(*step.Application); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		case entities.ActionCancelApplication:
		default:
			return fmt.Errorf("step %d: %w", i+1, &entities.UnsupportedVariantError{Kind: "scenario action", Value: string(step.Action)})
		}
	}
	return nil
}
