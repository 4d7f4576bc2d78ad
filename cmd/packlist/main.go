package main

import (
	"fmt"
	"os"
	"path/filepath"

	"packlist/internal/app"
	"packlist/internal/config"
	"packlist/internal/encryption"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "AddToPack").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	passphrase := ""
	if cfg.Encryption.Enabled {
		needed, err := encryption.KeyNeedsPassphrase(cfg.Encryption.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("checking encryption key: %w", err)
		}
		if needed {
			passphrase, err = promptPassphrase("Passphrase: ")
			if err != nil {
				return nil, err
			}
		}
	}

	a, err := app.New(cfg, operation, passphrase)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptPassphrase reads a passphrase from the terminal without echo.
func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pw), nil
}

var rootCmd = &cobra.Command{
	Use:   "packlist",
	Short: "Personal closet and trip-packing tool",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitEncrypt bool
var configInitStorage string

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new device ID
		deviceID := uuid.New().String()

		cfg := config.NewConfig(deviceID, defaults["base_dir"])
		if configInitStorage != "" {
			cfg.Storage.Type = configInitStorage
			if configInitStorage == "sqlite" {
				cfg.Storage.DBPath = filepath.Join(defaults["base_dir"], "packlist.db")
			}
		}

		if configInitEncrypt {
			passphrase, err := promptPassphrase("New key passphrase (empty for none): ")
			if err != nil {
				return err
			}
			if passphrase != "" {
				confirm, err := promptPassphrase("Confirm passphrase: ")
				if err != nil {
					return err
				}
				if confirm != passphrase {
					return fmt.Errorf("passphrases do not match")
				}
			}
			if err := encryption.Setup(cfg.Encryption.KeyPath, passphrase); err != nil {
				return fmt.Errorf("setting up encryption: %w", err)
			}
			cfg.Encryption.Enabled = true
		}

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Device ID: %s\n", deviceID)
		fmt.Printf("Base Dir:  %s\n", defaults["base_dir"])
		if configInitEncrypt {
			fmt.Printf("Encryption key: %s\n", cfg.Encryption.KeyPath)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Device ID: %s\n", cfg.DeviceID)
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Storage:   %s\n", cfg.Storage.Type)
		fmt.Printf("Encrypted: %v\n", cfg.Encryption.Enabled)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitEncrypt, "encrypt", false, "encrypt persisted records with a local age key")
	configInitCmd.Flags().StringVar(&configInitStorage, "storage", "", "storage backend: memory, filesystem or sqlite")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
