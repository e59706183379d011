package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sidenav/app"
	"sidenav/config"
	"sidenav/inspect"
	"sidenav/log"
)

var (
	version       = "0.3.0"
	leftFlag      int
	rightFlag     int
	thresholdFlag int
	resourcesFlag string
	rootCmd       = &cobra.Command{
		Use:   "sidenav",
		Short: "sidenav - Drag the main panel aside to pick a site from the navigation panel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("sidenav needs an interactive terminal")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			// Flags override config
			flags := cmd.Flags()
			if flags.Changed("left") {
				cfg.LeftPanBound = leftFlag
			}
			if flags.Changed("right") {
				cfg.RightPanBound = rightFlag
			}
			if flags.Changed("threshold") {
				if thresholdFlag < 0 {
					return fmt.Errorf("invalid drag threshold: %d (must be >= 0)", thresholdFlag)
				}
				cfg.DragThreshold = thresholdFlag
			}
			if resourcesFlag != "" {
				info, err := os.Stat(resourcesFlag)
				if err != nil {
					return fmt.Errorf("failed to open resource directory: %w", err)
				}
				if !info.IsDir() {
					return fmt.Errorf("resource path %s is not a directory", resourcesFlag)
				}
				cfg.ResourceDir = resourcesFlag
			}

			return app.Run(ctx, cfg)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Forget the remembered panel and site",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.ResetState(); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			resourceDir, err := cfg.GetResourceDir()
			if err != nil {
				return fmt.Errorf("failed to get resource directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n", filepath.Join(configDir, config.StateFileName))
			fmt.Printf("Layouts: %s\n", resourceDir)
			fmt.Printf("Log: %s\n", log.FileName())
			fmt.Printf("Debug log (%s=1): %s\n", log.DebugEnvVar, log.DebugFileName())
			fmt.Printf("Inspect (%s=1): %s\n", inspect.EnvVar, inspect.DefaultPath())
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sidenav",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sidenav version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().IntVarP(&leftFlag, "left", "l", config.AutoBound,
		"Navigation strip, in cells, left visible while the main panel rests (-1 derives it from the terminal width)")
	rootCmd.Flags().IntVarP(&rightFlag, "right", "r", config.AutoBound,
		"Main strip, in cells, left visible while the navigation panel is open (-1 derives it from the navigation width)")
	rootCmd.Flags().IntVar(&thresholdFlag, "threshold", 1,
		"Cells the pointer may move before a press becomes a drag")
	rootCmd.Flags().StringVar(&resourcesFlag, "resources", "",
		"Directory searched for nav.yaml and main.yaml before the built-in layouts")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
