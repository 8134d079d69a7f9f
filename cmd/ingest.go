package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomecano/cv-matcher/internal/ingestion"
	logutil "github.com/gomecano/cv-matcher/internal/logger"
	"github.com/gomecano/cv-matcher/internal/reader"
	"github.com/gomecano/cv-matcher/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultInputDir  = "data/cvs"
	defaultOutputDir = "data/profiles"
	excerptLogLimit  = 120
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract structured profiles from CV documents into JSON records",
	Run: func(cmd *cobra.Command, _ []string) {
		ingest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringP("input-dir", "i", "", "directory with CV documents (pdf, docx, txt)")
	ingestCmd.Flags().StringP("output-dir", "o", "", "directory for extracted profile JSON records")

	viper.BindPFlag("ingest.input-dir", ingestCmd.Flags().Lookup("input-dir"))
	viper.BindPFlag("ingest.output-dir", ingestCmd.Flags().Lookup("output-dir"))
}

// ingest runs the batch extraction pipeline: documents in, profile records out.
func ingest(_ *cobra.Command) {
	logger, err := logutil.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	if _, err := getConfig(); err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	inputDir := viper.GetString("ingest.input-dir")
	if inputDir == "" {
		inputDir = defaultInputDir
	}
	outputDir := viper.GetString("ingest.output-dir")
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	logger.Info("starting the ingestion",
		zap.String("version", version),
		zap.String("input_dir", inputDir),
		zap.String("output_dir", outputDir),
	)

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		logger.Fatal("reading input directory", zap.Error(err), zap.String("dir", inputDir))
	}

	extractor := ingestion.New()

	processed := 0
	extracted := 0
	for _, entry := range entries {
		if entry.IsDir() || !reader.Supported(entry.Name()) {
			continue
		}
		processed++

		text, err := reader.FromFile(filepath.Join(inputDir, entry.Name()))
		if err != nil {
			logger.Warn("unreadable document, skipping",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			continue
		}

		profile := extractor.BuildProfile(text)
		if profile == nil {
			logger.Warn("nothing to extract, skipping", zap.String("file", entry.Name()))
			continue
		}

		// Source attribution happens here, outside the builder.
		profile.SourceFile = entry.Name()

		outPath := filepath.Join(outputDir, jsonName(entry.Name()))
		if err := store.SaveProfile(profile, outPath); err != nil {
			logger.Fatal("saving profile", zap.Error(err), zap.String("file", outPath))
		}
		extracted++

		logger.Info("profile extracted",
			zap.String("file", entry.Name()),
			zap.String("name", profile.Name),
			zap.String("city", profile.City),
			zap.Int("experience_years", profile.ExperienceYears),
			zap.Strings("skills", profile.Skills),
		)
		logger.Debug("source excerpt",
			zap.String("file", entry.Name()),
			zap.String("excerpt", logutil.TruncateForLog(profile.SourceExcerpt, excerptLogLimit)),
		)
	}

	if processed == 0 {
		logger.Info("exiting", zap.String("reason", "no supported documents found"), zap.String("dir", inputDir))
		return
	}

	logger.Info("ingestion finished",
		zap.Int("documents_processed", processed),
		zap.Int("profiles_extracted", extracted),
		zap.String("output_dir", outputDir),
	)
}

func jsonName(filename string) string {
	ext := filepath.Ext(filename)

	return strings.TrimSuffix(filename, ext) + ".json"
}
