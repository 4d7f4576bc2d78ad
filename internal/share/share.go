// Package share reads and writes templates as standalone YAML files, so a
// pack template or a curated essentials set can be handed to another device
// without any sync machinery.
package share

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"packlist/internal/essentials"
	"packlist/internal/pack"
)

// packTemplateFile is the YAML form of a pack template.
type packTemplateFile struct {
	Kind   string         `yaml:"kind"` // always "pack-template"
	Name   string         `yaml:"name"`
	Season string         `yaml:"season,omitempty"`
	Items  []packItemYAML `yaml:"items"`
}

type packItemYAML struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	CategoryID string   `yaml:"category,omitempty"`
	Quantity   int      `yaml:"qty"`
	Note       string   `yaml:"note,omitempty"`
	Weight     *float64 `yaml:"weight,omitempty"` // kg per piece
}

// essentialsTemplateFile is the YAML form of an essentials template.
type essentialsTemplateFile struct {
	Kind        string          `yaml:"kind"` // always "essentials-template"
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Essentials  []essentialYAML `yaml:"essentials"`
}

type essentialYAML struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	CategoryID   string   `yaml:"category,omitempty"`
	Required     bool     `yaml:"required"`
	Seasons      []string `yaml:"seasons"`
	TripTypes    []string `yaml:"trip_types"`
	Priority     string   `yaml:"priority"`
	Alternatives []string `yaml:"alternatives,omitempty"`
}

const (
	kindPackTemplate       = "pack-template"
	kindEssentialsTemplate = "essentials-template"
)

// ExportPackTemplate renders a pack template as YAML.
func ExportPackTemplate(tpl pack.PackTemplate) ([]byte, error) {
	file := packTemplateFile{
		Kind:   kindPackTemplate,
		Name:   tpl.Name,
		Season: string(tpl.Season),
		Items:  make([]packItemYAML, len(tpl.Items)),
	}
	for i, it := range tpl.Items {
		file.Items[i] = packItemYAML{
			ID:         it.ID,
			Name:       it.Name,
			CategoryID: it.CategoryID,
			Quantity:   it.Quantity,
			Note:       it.Note,
			Weight:     it.WeightPerUnit,
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("encoding pack template: %w", err)
	}
	return data, nil
}

// ImportPackTemplate parses a YAML pack template. The returned template has
// no id or creation time; the pack store assigns those on import.
func ImportPackTemplate(data []byte) (pack.PackTemplate, error) {
	var file packTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return pack.PackTemplate{}, fmt.Errorf("decoding pack template: %w", err)
	}
	if file.Kind != kindPackTemplate {
		return pack.PackTemplate{}, fmt.Errorf("not a pack template file (kind %q)", file.Kind)
	}
	if file.Name == "" {
		return pack.PackTemplate{}, fmt.Errorf("pack template has no name")
	}

	tpl := pack.PackTemplate{
		Name:   file.Name,
		Season: pack.Season(file.Season),
		Items:  make([]pack.PackItem, len(file.Items)),
	}
	for i, it := range file.Items {
		tpl.Items[i] = pack.PackItem{
			ID:            it.ID,
			Name:          it.Name,
			CategoryID:    it.CategoryID,
			Quantity:      it.Quantity,
			Note:          it.Note,
			WeightPerUnit: it.Weight,
		}
	}
	return tpl, nil
}

// ExportEssentialsTemplate renders an essentials template as YAML.
func ExportEssentialsTemplate(tpl essentials.Template) ([]byte, error) {
	file := essentialsTemplateFile{
		Kind:        kindEssentialsTemplate,
		Name:        tpl.Name,
		Description: tpl.Description,
		Essentials:  make([]essentialYAML, len(tpl.Essentials)),
	}
	for i, e := range tpl.Essentials {
		file.Essentials[i] = essentialYAML{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			CategoryID:   e.CategoryID,
			Required:     e.IsRequired,
			Seasons:      e.Seasons.Tags(),
			TripTypes:    e.TripTypes.Tags(),
			Priority:     string(e.Priority),
			Alternatives: e.Alternatives,
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("encoding essentials template: %w", err)
	}
	return data, nil
}

// ImportEssentialsTemplate parses a YAML essentials template. The returned
// template has no id or creation time; the essentials store assigns those.
func ImportEssentialsTemplate(data []byte) (essentials.Template, error) {
	var file essentialsTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return essentials.Template{}, fmt.Errorf("decoding essentials template: %w", err)
	}
	if file.Kind != kindEssentialsTemplate {
		return essentials.Template{}, fmt.Errorf("not an essentials template file (kind %q)", file.Kind)
	}
	if file.Name == "" {
		return essentials.Template{}, fmt.Errorf("essentials template has no name")
	}

	tpl := essentials.Template{
		Name:        file.Name,
		Description: file.Description,
		Essentials:  make([]essentials.TravelEssential, len(file.Essentials)),
	}
	for i, e := range file.Essentials {
		tpl.Essentials[i] = essentials.TravelEssential{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			CategoryID:   e.CategoryID,
			IsRequired:   e.Required,
			Seasons:      essentials.SeasonScopeFromTags(e.Seasons),
			TripTypes:    essentials.TripScopeFromTags(e.TripTypes),
			Priority:     essentials.Priority(e.Priority),
			Alternatives: e.Alternatives,
		}
	}
	return tpl, nil
}
