package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/ctxlog"
	"github.com/vk/seedgridgo/internal/hostexec"
)

// Run executes the loaded graph the configured number of times and reports
// each instance's outputs to the application writer.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Nodes) == 0 {
		a.logger.Warn("No node instances found in graph, nothing to execute.")
		return nil
	}

	exec := hostexec.New(a.registry, a.model)
	a.logger.Info("Starting synchronous execution.", "instances", len(a.model.Nodes), "runs", appConfig.Runs)

	for run := 1; run <= appConfig.Runs; run++ {
		results, err := exec.RunOnce(ctx)
		if err != nil {
			return fmt.Errorf("run %d failed: %w", run, err)
		}
		a.report(run, results)
	}

	a.logger.Info("Execution finished.", "tracked_instances", a.tracker.Len())
	a.logger.Debug("App.Run method finished.")
	return nil
}

// report prints one run's outputs, one line per instance, using the output
// tuple names each node declares.
func (a *App) report(run int, results []hostexec.InstanceResult) {
	for _, res := range results {
		fmt.Fprintf(a.outW, "run %d  %s (%s)", run, res.ID, a.registry.DisplayName(res.TypeKey))
		if res.Skipped {
			fmt.Fprint(a.outW, "  [cached]")
		}

		def, ok := a.registry.Lookup(res.TypeKey)
		if ok {
			for i, ret := range def.Returns() {
				if i >= len(res.Result.Values) {
					break
				}
				fmt.Fprintf(a.outW, "  %s=%s", ret.Name, renderValue(res.Result.Values[i]))
			}
		}
		fmt.Fprintln(a.outW)
	}
}

// renderValue formats a cty output value for the report line.
func renderValue(v cty.Value) string {
	switch v.Type() {
	case cty.Number:
		i, _ := v.AsBigFloat().Int64()
		return strconv.FormatInt(i, 10)
	case cty.String:
		return strconv.Quote(v.AsString())
	}
	return v.GoString()
}
