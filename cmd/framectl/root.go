package main

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refframe/config"
	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/framegraph"
	"github.com/katalvlaran/refframe/log"
	"github.com/katalvlaran/refframe/matrix"
)

var exampleUsage = strings.TrimSpace(`
  framectl --config frames.yaml frames
  framectl --config frames.yaml path --from GCRF --to ITRF2008 --epoch 2024-06-01
  framectl --config frames.yaml transform --from GCRF --to STATION --epoch 2024 --pos 7e6,0,0 --vel 0,7.5e3,0
  framectl --config frames.toml graph --epoch 2024 > frames.mmd
`)

// app holds what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string
	cacheSize  int

	logger log.Logger
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "dev"
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "framectl",
		Short:         "Query a reference-frame transformation graph",
		Example:       exampleUsage,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = log.NewZerologAdapter(cmd.ErrOrStderr(), a.logLevel)
			if a.configPath == "" {
				return errors.New("--config is required")
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "frame graph definition (.yaml, .yml or .toml)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.IntVar(&a.cacheSize, "cache", 0, "path cache entries (0 disables)")

	root.AddCommand(
		newFramesCmd(a),
		newPathCmd(a),
		newTransformCmd(a),
		newGraphCmd(a),
	)

	return root
}

// graph loads the configured document into a new graph.
func (a *app) graph() (*framegraph.Graph, error) {
	doc, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	g := framegraph.New(
		framegraph.WithLogger(a.logger),
		framegraph.WithPathCache(a.cacheSize),
	)
	if err = config.Build(doc, g, config.WithLogger(a.logger)); err != nil {
		return nil, err
	}

	return g, nil
}

// epochFlag reads an --epoch value, defaulting to J2000.
func epochFlag(s string) (epoch.Epoch, error) {
	if s == "" {
		return epoch.J2000, nil
	}

	return epoch.Parse(s)
}

func vecFlag(name string, v []float64) (matrix.Vec3, error) {
	switch len(v) {
	case 0:
		return matrix.Zero, nil
	case 3:
		return matrix.Vec3{v[0], v[1], v[2]}, nil
	default:
		return matrix.Vec3{}, fmt.Errorf("--%s needs 3 components, got %d", name, len(v))
	}
}
