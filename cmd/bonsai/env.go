package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/jongio/bonsai-core/cliout"
	"github.com/jongio/bonsai-core/clusterurl"
	"github.com/jongio/bonsai-core/env"
)

type envVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newEnvCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List cluster variables with credentials redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := g.environment()
			if err != nil {
				return err
			}
			list := clusterVars(vars, g.cfg.RedactPlaceholder)
			return cliout.Print(list, func() {
				cliout.Header("Cluster Variables")
				if len(list) == 0 {
					cliout.Info("no BONSAI_ or ELASTICSEARCH_ variables set")
					return
				}
				for _, v := range list {
					cliout.Label(v.Name, v.Value)
				}
			})
		},
	}
}

func clusterVars(vars env.Map, placeholder string) []envVar {
	filtered := env.FilterByPrefix(vars, env.ClusterPrefixes...)
	list := make([]envVar, 0, len(filtered))
	for name, value := range filtered {
		list = append(list, envVar{Name: name, Value: displayValue(name, value, placeholder)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// displayValue hides the whole value of secret-named variables and the
// userinfo of everything else.
func displayValue(name, value, placeholder string) string {
	if value != "" && env.IsSecretKey(name) {
		if placeholder == "" {
			return clusterurl.RedactedPlaceholder
		}
		return placeholder
	}
	return clusterurl.RedactWith(value, placeholder)
}
