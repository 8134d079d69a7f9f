package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gomecano/cv-matcher/internal/candidate"
	"github.com/gomecano/cv-matcher/internal/filtering"
	"github.com/gomecano/cv-matcher/internal/logger"
	"github.com/gomecano/cv-matcher/internal/scoring"
	"github.com/gomecano/cv-matcher/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptReportByCity = "Report by city"
	PromptDumpToFile   = "Dump ranking to file"
	PromptExit         = "Exit"

	defaultProfilesDir = "data/profiles"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByCity, PromptDumpToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank extracted profiles against the configured staffing request",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().BoolP("auto-approve", "y", false, "print the ranking and exit without the action prompt")
	rankCmd.Flags().StringP("profiles-dir", "p", "", "directory with extracted profile JSON records")
	rankCmd.Flags().StringP("exclude-file", "e", "", "JSON file listing source files to exclude from the ranking. Default is unset.")
	rankCmd.Flags().String("request-file", "", "JSON file with the staffing request (overrides the request from config)")

	viper.BindPFlag("rank.profiles-dir", rankCmd.Flags().Lookup("profiles-dir"))
	viper.BindPFlag("rank.exclude-file", rankCmd.Flags().Lookup("exclude-file"))
}

// rank is the main matching command of the cli.
func rank(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-matcher", zap.String("version", version))

	request, err := resolveRequest(cmd, config)
	if err != nil {
		logger.Fatal("loading the staffing request", zap.Error(err))
	}
	if request == nil {
		logger.Fatal("a staffing request is required under the request key in the configuration file or via --request-file")
	}

	if total := request.TotalWeight(); total != 100 {
		// Accepted as-is: the maximum attainable base score is rescaled.
		logger.Warn("criterion weights do not sum to 100",
			zap.Float64("total_weight", total),
		)
	}

	logger.Info("staffing request",
		zap.String("mission_id", request.MissionID),
		zap.String("target_city", request.TargetCity),
		zap.String("required_skill", request.RequiredSkill),
		zap.Int("min_experience_years", request.MinExperienceYears),
	)

	profilesDir := viper.GetString("rank.profiles-dir")
	if profilesDir == "" {
		profilesDir = defaultProfilesDir
	}

	profiles, err := store.LoadProfiles(profilesDir)
	if err != nil {
		logger.Fatal("loading profiles", zap.Error(err), zap.String("dir", profilesDir))
	}

	logger.Info("loading profiles", zap.Int("count", profiles.Len()))

	if profiles.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no profiles found"))
		return
	}

	steps := []filtering.Filter{
		filtering.NewEmptyProfile(),
		filtering.NewExcludeFile(viper.GetString("rank.exclude-file")),
	}

	filtered, err := filtering.Run(filtering.Deps{Logger: logger}, steps, profiles)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	profiles = filtered

	if profiles.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no profiles left after filters"))
		return
	}

	ranking := scoring.New(scoring.DefaultRules()).Rank(profiles, request)

	printRanking(ranking)
	printRecommendation(ranking)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, ranking); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func resolveRequest(cmd *cobra.Command, config *Config) (*candidate.Request, error) {
	requestFile := strings.TrimSpace(cmd.Flag("request-file").Value.String())
	if requestFile != "" {
		return store.LoadRequest(requestFile)
	}

	if config == nil {
		return nil, nil
	}

	return config.Request, nil
}

func handleAction(action string, logger *zap.Logger, ranking *scoring.Ranking) error {
	switch action {
	case PromptReportByCity:
		pretty, _ := json.MarshalIndent(ranking.ReportByCity(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", ranking.Len()))
		return nil
	case PromptDumpToFile:
		filename, err := ranking.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump ranking to file: %w", err)
		}
		logger.Info("dumping ranking to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printRanking(ranking *scoring.Ranking) {
	for i, c := range ranking.Items {
		fmt.Printf("\n#%d | %s | score: %.1f | %s\n", i+1, c.Name, c.Score, c.Verdict)
		fmt.Printf("   city: %s | experience: %d years | skills: %s\n",
			c.City, c.ExperienceYears, strings.Join(c.Skills, ", "))
		for _, justification := range c.Justifications {
			fmt.Printf("      - %s\n", justification)
		}
	}
}

func printRecommendation(ranking *scoring.Ranking) {
	top := ranking.Top()
	if top == nil {
		return
	}

	fmt.Println()
	if top.Verdict == scoring.VerdictNotPriority {
		fmt.Println("no candidate matches the request. Consider widening the search zone or adjusting the criteria.")
		return
	}
	fmt.Printf("recommendation: contact %s first (score %.1f)\n", top.Name, top.Score)
}
