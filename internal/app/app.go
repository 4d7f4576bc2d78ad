package app

import (
	"fmt"
	"os"

	"packlist/internal/config"
	"packlist/internal/encryption"
	"packlist/internal/essentials"
	"packlist/internal/ident"
	"packlist/internal/pack"
	"packlist/internal/record"
	"packlist/internal/search"
	"packlist/internal/share"
)

// App is the application layer between the CLI and the domain stores. It
// constructs all dependencies from config and manages their lifecycle on
// Close. The stores themselves are exposed directly; App adds only the
// cross-cutting operations that span both engines or touch the filesystem.
type App struct {
	cfg     *config.Config
	records record.Store
	logFile *os.File

	Pack       *pack.Store
	Essentials *essentials.Store
}

// New creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "AddToPack"); it tags
// every log line. passphrase unlocks the encryption key when the configured
// key file is passphrase-protected; pass "" otherwise.
// The caller must call Close when done.
func New(cfg *config.Config, operation string, passphrase string) (*App, error) {
	records, err := record.NewStoreFromConfig(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("creating record store: %w", err)
	}

	if cfg.Encryption.Enabled {
		cipher, err := encryption.Open(cfg.Encryption.KeyPath, passphrase)
		if err != nil {
			records.Close()
			return nil, fmt.Errorf("opening encryption key: %w", err)
		}
		records = record.NewEncryptedStore(records, cipher)
	}

	logger, logFile, err := newLogger(cfg.LogDir, operation)
	if err != nil {
		records.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	adapter := &slogAdapter{l: logger}
	clock := ident.RealClock{}
	idgen := ident.UUIDGenerator{}

	return &App{
		cfg:        cfg,
		records:    records,
		logFile:    logFile,
		Pack:       pack.NewStore(records, clock, idgen, adapter),
		Essentials: essentials.NewStore(records, clock, idgen, adapter),
	}, nil
}

// Close releases the record store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.records.Close(); err != nil {
		firstErr = fmt.Errorf("closing record store: %w", err)
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}
	return firstErr
}

// CheckPack reconciles the current pack against the essentials catalog for
// the given trip context. This is the only place the two engines meet: the
// pack's items are narrowed to the plain shape the reconciliation takes.
func (a *App) CheckPack(season essentials.Season, trip essentials.TripType) []essentials.MissingEssential {
	items := a.Pack.Items()
	packed := make([]essentials.PackedItem, len(items))
	for i, it := range items {
		packed[i] = essentials.PackedItem{Name: it.Name, CategoryID: it.CategoryID}
	}
	return a.Essentials.CheckMissing(packed, season, trip)
}

// SearchItems fuzzy-searches the current pack's items.
func (a *App) SearchItems(query string) []pack.PackItem {
	return search.Items(query, a.Pack.Items())
}

// SearchEssentials fuzzy-searches the full essentials catalog.
func (a *App) SearchEssentials(query string) []essentials.TravelEssential {
	return search.Essentials(query, a.Essentials.Essentials())
}

// ExportPackTemplate writes a saved pack template to path as YAML.
func (a *App) ExportPackTemplate(templateID, path string) error {
	for _, tpl := range a.Pack.Templates() {
		if tpl.ID != templateID {
			continue
		}
		data, err := share.ExportPackTemplate(tpl)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing template file: %w", err)
		}
		return nil
	}
	return fmt.Errorf("no pack template with id %s", templateID)
}

// ImportPackTemplate reads a YAML pack template from path and adds it to the
// saved templates.
func (a *App) ImportPackTemplate(path string) (pack.PackTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pack.PackTemplate{}, fmt.Errorf("reading template file: %w", err)
	}
	tpl, err := share.ImportPackTemplate(data)
	if err != nil {
		return pack.PackTemplate{}, err
	}
	return a.Pack.ImportTemplate(tpl.Name, tpl.Season, tpl.Items), nil
}

// ExportEssentialsTemplate writes an essentials template to path as YAML.
func (a *App) ExportEssentialsTemplate(templateID, path string) error {
	for _, tpl := range a.Essentials.Templates() {
		if tpl.ID != templateID {
			continue
		}
		data, err := share.ExportEssentialsTemplate(tpl)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing template file: %w", err)
		}
		return nil
	}
	return fmt.Errorf("no essentials template with id %s", templateID)
}

// ImportEssentialsTemplate reads a YAML essentials template from path and
// adds it to the template list.
func (a *App) ImportEssentialsTemplate(path string) (essentials.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return essentials.Template{}, fmt.Errorf("reading template file: %w", err)
	}
	tpl, err := share.ImportEssentialsTemplate(data)
	if err != nil {
		return essentials.Template{}, err
	}
	return a.Essentials.AddTemplate(tpl.Name, tpl.Description, tpl.Essentials), nil
}
