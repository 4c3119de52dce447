package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	slapstick "github.com/dmarsters/slapstick-enhancer"
	"github.com/dmarsters/slapstick-enhancer/mcpserver"
)

var (
	verbose    bool
	configPath string
	transport  string
	addr       string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slapstick-enhancer",
	Short: "Deterministic slapstick prompt enhancement, served over MCP",
	Long: `slapstick-enhancer maps creative design intent (subject type, emotional
tone, visual priorities, intensity) onto six bounded slapstick parameters and
deterministically renders enhanced and negative image prompts from static
phrase tables.

Run "serve" to expose the four enhancement tools over MCP (stdio or HTTP),
or use "enhance" and "options" directly from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the enhancement tools as an MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := mcpserver.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if transport != "" {
			cfg.Transport = transport
		}
		if addr != "" {
			cfg.Addr = addr
		}

		registry := slapstick.NewToolRegistry()
		slapstick.RegisterEnhancerTools(registry, slapstick.NewEnhancer())
		server := mcpserver.New(cfg, registry, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		switch cfg.Transport {
		case mcpserver.TransportHTTP:
			return server.ListenAndServe(ctx, cfg.Addr, cfg.Timeout())
		case mcpserver.TransportStdio:
			logger.Info("stdio transport ready")
			return server.ServeStdio(ctx, os.Stdin, os.Stdout)
		default:
			return fmt.Errorf("unknown transport %q", cfg.Transport)
		}
	},
}

var (
	subjectType string
	tone        string
	intensity   string
	priorities  []string
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [base prompt]",
	Short: "Enhance a prompt from design intent, one-shot",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enhancer := slapstick.NewEnhancer()
		result, err := enhancer.EnhanceWithIntent(strings.Join(args, " "), subjectType, tone, priorities, intensity)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List every valid design-intent value",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(slapstick.NewEnhancer().AvailableOptions())
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to JSON server config")
	serveCmd.Flags().StringVarP(&transport, "transport", "t", "", "transport override: stdio or http")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address override (http transport)")

	enhanceCmd.Flags().StringVar(&subjectType, "subject", "scene", "subject type")
	enhanceCmd.Flags().StringVar(&tone, "tone", "playful", "emotional tone")
	enhanceCmd.Flags().StringVar(&intensity, "intensity", "moderate", "intensity level")
	enhanceCmd.Flags().StringArrayVar(&priorities, "priority", nil, "visual priority to emphasize (repeatable)")

	rootCmd.AddCommand(serveCmd, enhanceCmd, optionsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
