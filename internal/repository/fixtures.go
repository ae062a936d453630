package repository

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"homecatalog/internal/model"
)

//go:embed data/homes.yaml data/manufacturers.yaml
var fixtures embed.FS

type homesFile struct {
	Version string              `yaml:"version"`
	Homes   []model.HomeListing `yaml:"homes"`
}

type manufacturersFile struct {
	Manufacturers []model.Manufacturer `yaml:"manufacturers"`
}

// LoadEmbedded builds a store from the fixtures compiled into the binary
func LoadEmbedded() (*Store, error) {
	homesYAML, err := fixtures.ReadFile("data/homes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read homes fixture: %w", err)
	}
	manufYAML, err := fixtures.ReadFile("data/manufacturers.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read manufacturers fixture: %w", err)
	}
	return LoadFixtures(homesYAML, manufYAML)
}

// LoadFixtures decodes YAML fixture documents into a store
func LoadFixtures(homesYAML, manufacturersYAML []byte) (*Store, error) {
	var hf homesFile
	if err := yaml.Unmarshal(homesYAML, &hf); err != nil {
		return nil, fmt.Errorf("failed to decode homes fixture: %w", err)
	}
	if hf.Version == "" {
		return nil, fmt.Errorf("homes fixture has no version")
	}

	manufacturers, err := decodeManufacturers(manufacturersYAML)
	if err != nil {
		return nil, err
	}

	return NewStore(hf.Version, hf.Homes, manufacturers)
}

// EmbeddedManufacturers returns the manufacturer directory compiled into
// the binary
func EmbeddedManufacturers() ([]model.Manufacturer, error) {
	data, err := fixtures.ReadFile("data/manufacturers.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read manufacturers fixture: %w", err)
	}
	return decodeManufacturers(data)
}

func decodeManufacturers(data []byte) ([]model.Manufacturer, error) {
	var mf manufacturersFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to decode manufacturers fixture: %w", err)
	}
	return mf.Manufacturers, nil
}
