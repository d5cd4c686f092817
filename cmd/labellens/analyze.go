package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/types"
)

var (
	analyzeText      string
	analyzeFile      string
	analyzeProfile   string
	analyzeDB        string
	analyzePrimary   string
	analyzeSecondary string
	analyzeLimit     int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score label text and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readLabel(analyzeText, analyzeFile)
		if err != nil {
			return err
		}
		profile, err := loadProfile(analyzeProfile)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		result := service.Evaluate(c, text, profile)
		if analyzeDB != "" && (analyzePrimary != "" || analyzeSecondary != "") {
			if err := attachAlternatives(cmd.Context(), result); err != nil {
				return err
			}
		}

		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal analysis json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Label text")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Read label text from a file")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Preference profile YAML (defaults to the anonymous profile)")
	analyzeCmd.Flags().StringVar(&analyzeDB, "db", "", "SQLite product catalog for alternatives")
	analyzeCmd.Flags().StringVar(&analyzePrimary, "primary", "", "Primary category of the product")
	analyzeCmd.Flags().StringVar(&analyzeSecondary, "secondary", "", "Secondary category of the product")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", alternatives.DefaultBound, "Maximum number of alternatives")
	rootCmd.AddCommand(analyzeCmd)
}

func readLabel(text, path string) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		text = string(b)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("label text is required (--text or --file)")
	}
	return text, nil
}

// loadProfile overlays the YAML file onto the default profile, so a file only
// needs the settings that differ.
func loadProfile(path string) (types.PreferenceProfile, error) {
	profile := types.DefaultProfile()
	if path == "" {
		return profile, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return profile, err
	}
	if err := yaml.Unmarshal(b, &profile); err != nil {
		return profile, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := service.ValidateProfileKeys(profile); err != nil {
		return profile, err
	}
	return profile.Normalize(), nil
}

func attachAlternatives(ctx context.Context, result *types.AnalysisResult) error {
	tax := taxonomy.Default()
	primary := analyzePrimary
	if primary == "" {
		p, ok := tax.PrimaryOf(analyzeSecondary)
		if !ok {
			return fmt.Errorf("unknown secondary category %q", analyzeSecondary)
		}
		primary = p
	}

	db, err := gorm.Open(sqlite.Open(analyzeDB), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("open catalog %s: %w", analyzeDB, err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return err
	}

	resolver := alternatives.NewResolver(catalog.NewGormStore(db), tax, 0)
	set, err := resolver.Resolve(ctx, alternatives.Request{
		Primary:   primary,
		Secondary: analyzeSecondary,
		Baseline:  result.RiskScore,
		Bound:     analyzeLimit,
	})
	if err != nil {
		return err
	}
	result.Category = types.CategoryResolution{Primary: primary, Secondary: analyzeSecondary}
	result.Alternatives = set
	return nil
}
