package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd/export"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd/parse"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd/roster"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd/show"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/config"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/version"
	"github.com/spf13/cobra"
)

var ConfigPath string

var parseOpts parse.Options

var parseCmd = &cobra.Command{
	Use:   "parse [character...]",
	Short: "parse character build guides.",
	Long:  "fetch the build pages of the given characters, extract the build data and store one record per character.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := parseOpts
		opts.Characters = append(append([]string{}, opts.Characters...), args...)
		return parse.Run(cmd.Context(), ConfigPath, opts)
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "list character ids.",
	Long:  "download the characters listing page and print every character id.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return roster.Run(cmd.Context(), ConfigPath)
	},
}

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [character...]",
	Short: "print stored records.",
	Long:  "print stored records as tables, every record when no character is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return show.Run(ConfigPath, args, showJSON)
	},
}

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export [character...]",
	Short: "export stored records to xlsx.",
	Long:  "export stored records to an xlsx workbook, every record when no character is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return export.Run(ConfigPath, exportPath, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer()
	},
}

func Execute() {
	var rootCmd = &cobra.Command{
		Use:           "hsr-parser",
		Short:         "Honkai: Star Rail build guide parser for prydwen.gg",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&ConfigPath, "config", config.DefaultPath, "config file")
	rootCmd.AddCommand(parseCmd, rosterCmd, showCmd, exportCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	parseCmd.Flags().StringSliceVarP(&parseOpts.Characters, "character", "c", nil, "character id, repeatable")
	parseCmd.Flags().BoolVarP(&parseOpts.All, "all", "a", false, "process every character of the roster")
	parseCmd.Flags().StringVar(&parseOpts.FromDir, "from-dir", "", "parse saved <id>.html pages from this directory instead of the live site")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "print raw json")

	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "xlsx file, defaults to export.path")
}
