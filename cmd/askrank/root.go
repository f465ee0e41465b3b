package main

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rushteam/askrank/compare"
	"github.com/rushteam/askrank/config"
	"github.com/rushteam/askrank/core"
	"github.com/rushteam/askrank/pipeline"
	"github.com/rushteam/askrank/ranker"
)

type rootOptions struct {
	configPath  string
	input       string
	output      string
	randomize   bool
	noCache     bool
	neighbor    bool
	top         int
	logLevel    string
	metricsFile string
	preferExpr  string
	equalExpr   string
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "askrank",
		Short: "Rank a list by answering as few pairwise questions as possible",
		Long: `askrank reads a newline-separated list (from the clipboard by default),
asks which of two items you prefer until the whole list is ordered, and writes
the ranked list back, most preferred first.

Answers such as "y", "yes" or "sure" mean yes; anything else means no.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&opts.input, "input", "i", "", `read the list from a file ("-" for stdin); default is the clipboard`)
	f.StringVarP(&opts.output, "output", "o", "", `write the ranking to a file ("-" for stdout); default is the clipboard`)
	f.BoolVar(&opts.randomize, "randomize", false, "shuffle the list before asking")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not remember answers (every comparison is asked)")
	f.BoolVar(&opts.neighbor, "neighbor", false, "append a single neighbour fine-tune pass")
	f.IntVar(&opts.top, "top", 0, "keep only the N most preferred items (0 keeps all)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	f.StringVar(&opts.preferExpr, "prefer-expr", "", "answer with a CEL expression over candidate/reference instead of prompting")
	f.StringVar(&opts.equalExpr, "equal-expr", "", "CEL expression for equivalence questions (with --prefer-expr)")

	return cmd
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("randomize") {
		cfg.Randomize = opts.randomize
	}
	if flags.Changed("no-cache") {
		cfg.Caching = !opts.noCache
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}
	if opts.preferExpr != "" {
		cfg.Oracle = config.OracleConfig{
			Type:       config.OracleExpr,
			Preferred:  opts.preferExpr,
			Equivalent: opts.equalExpr,
		}
	}
	if opts.neighbor {
		cfg.AppendNode(config.NodeRerankNeighbor, nil)
	}
	if opts.top > 0 {
		cfg.AppendNode(config.NodeRerankTopN, map[string]any{"n": opts.top})
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	factory := config.DefaultFactory[string]()
	if err := factory.Validate(&cfg.Stages); err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	if cfg.Oracle.Type == config.OraclePrompt && opts.input == stdioPath {
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
			"stdin carries the answers for the prompt oracle; read the list from the clipboard or a file")
	}

	text, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}
	items := splitLines(text)
	logger.Debug("list loaded", zap.Int("items", len(items)))

	orc, err := config.BuildOracle(cfg.Oracle, stdin, cmd.ErrOrStderr(), !isTerminal(stdin))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := compare.NewMetrics()
	if err := metrics.Register(reg); err != nil {
		return err
	}

	sess, err := ranker.New(items, orc,
		ranker.WithRandomize(cfg.Randomize),
		ranker.WithCaching(cfg.Caching),
		ranker.WithLogger(logger),
		ranker.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	p, err := pipeline.BuildPipeline(&cfg.Stages, factory)
	if err != nil {
		return err
	}
	ranked, err := p.Run(cmd.Context(), sess)
	if err != nil {
		return err
	}

	if err := writeOutput(opts.output, strings.Join(ranked, "\n"), cmd.OutOrStdout()); err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
	}

	st := sess.Stats()
	logger.Info("ranking finished",
		zap.String("session", sess.ID()),
		zap.Int("items", len(ranked)),
		zap.Int("questions", st.Queries),
		zap.Int("cache_hits", st.CacheHits),
	)
	return nil
}
