package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumen-ui/lumen/internal/config"
	"github.com/lumen-ui/lumen/internal/scenario"
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/reconcile"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func applyCmd() *cobra.Command {
	var (
		jsonOut bool
		devMode bool
	)

	cmd := &cobra.Command{
		Use:   "apply <scenario>",
		Short: "Run a reconciliation scenario",
		Long: `Run a reconciliation scenario against an in-memory host node and
print every mutation the reconciler performs.

A scenario file (JSON or YAML) names an element tag, the properties
to mount, an optional update pass, and properties to remove:

  tag: input
  mount:
    type: checkbox
    checked: true
  update:
    checked: false
  remove:
    - checked

Examples:
  lumen apply cases/toggle.yaml
  lumen apply cases/toggle.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args[0], jsonOut, devMode)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the mutation log as JSON")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Log property contract violations")

	return cmd
}

func runApply(path string, jsonOut, devMode bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	devMode = devMode || cfg.Dev

	path = cfg.ScenarioPath(path)
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	metrics := reconcile.NewMetrics(reconcile.WithRegistry(prometheus.NewRegistry()))
	opts := []reconcile.Option{reconcile.WithMetrics(metrics)}
	if devMode {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, reconcile.WithLogger(log), reconcile.WithDevMode(true))
	}
	r := reconcile.New(opts...)

	node := host.NewMemNode(sc.Tag)
	ctx := context.Background()

	desc := vdom.El(sc.Tag, vdom.Props(sc.Mount))
	r.MountProperties(ctx, desc, desc.Props, node, sc.Namespaced)

	if sc.Update != nil {
		next := vdom.El(sc.Tag, vdom.Props(sc.Update))
		r.UpdateProperties(ctx, next, desc.Props, next.Props, &reconcile.Target{
			Node:       node,
			Namespaced: sc.Namespaced,
			Prior:      desc,
		})
		desc = next
	}

	for _, name := range sc.Remove {
		r.RemoveProperty(name, desc.Props[name], &reconcile.Target{
			Node:       node,
			Namespaced: sc.Namespaced,
			Prior:      desc,
		})
	}

	muts := node.Mutations()
	violations := int(metrics.ContractViolations())

	if jsonOut {
		data, err := host.EncodeMutations(muts)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	success("Applied %s to <%s>: %d mutations", path, sc.Tag, len(muts))
	for _, m := range muts {
		info("%s", formatMutation(m))
	}
	if len(muts) == 0 {
		warn("No mutations recorded")
	}
	if violations > 0 {
		warn("%d malformed property values tolerated as no-ops", violations)
		info("Re-run with --dev for coded diagnostics (E001-E003)")
	}
	return nil
}

// formatMutation renders one mutation as a human-readable line.
func formatMutation(m host.Mutation) string {
	switch m.Kind {
	case host.MutRemoveAttr:
		return fmt.Sprintf("%-14s %s", m.Kind, m.Name)
	case host.MutRemoveAttrNS:
		return fmt.Sprintf("%-14s %s [%s]", m.Kind, m.Name, m.NS)
	case host.MutSetAttrNS:
		return fmt.Sprintf("%-14s %s=%q [%s]", m.Kind, m.Name, m.Value, m.NS)
	case host.MutSetCSSText, host.MutSetHTML:
		return fmt.Sprintf("%-14s %q", m.Kind, m.Value)
	default:
		return fmt.Sprintf("%-14s %s=%q", m.Kind, m.Name, m.Value)
	}
}
