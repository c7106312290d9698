package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	qm "github.com/SamuNatsu/Quine-McCluskey-Algorithm"
	"github.com/SamuNatsu/Quine-McCluskey-Algorithm/internal/logic"
	"github.com/SamuNatsu/Quine-McCluskey-Algorithm/internal/report"
)

// progressThreshold is the variable count past which enumeration gets a
// progress bar; fewer rows finish too fast to be worth one.
const progressThreshold = 12

var (
	jsonOutput bool
	noColor    bool
	quiet      bool

	logger *zap.Logger

	errorStyle = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "qm [expression]",
	Short: "Simplify a boolean expression with the Quine-McCluskey algorithm",
	Long: `qm reads a single-line boolean expression over the variables A-Z
(postfix ' for NOT, + for OR, ^ for XOR, AND by adjacency, parentheses for
grouping) and prints its truth table, minterm list and a minimized
sum-of-products form. With no argument it prompts for one expression on
stdin.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor || jsonOutput {
			color.NoColor = true
		}
		if len(args) == 1 {
			return run(args[0])
		}
		return runPrompt()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(qm.Version())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "omit the truth table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		if logic.IsParseError(err) {
			fmt.Fprintln(os.Stderr, errorStyle.Sprintf("error: %v", err))
		} else {
			logger.Error("run failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func run(expr string) error {
	f, res, err := logic.Simplify(expr, enumerationProgress())
	if err != nil {
		return err
	}
	if jsonOutput {
		d, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(d))
		return nil
	}
	fmt.Print(report.Render(f, res, report.Options{Table: !quiet}))
	return nil
}

// runPrompt reads a single expression from stdin and processes it.
func runPrompt() error {
	fmt.Print("Input expression: ")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return sc.Err()
	}
	line := strings.TrimSpace(sc.Text())
	if line == "" {
		return nil
	}
	fmt.Println()
	return run(line)
}

// enumerationProgress drives a progress bar over truth-table rows once the
// domain is large enough to take noticeable time.
func enumerationProgress() logic.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if total < 1<<progressThreshold {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("enumerating"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
			)
		}
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)
		}
	}
}
