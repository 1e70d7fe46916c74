package commands

import (
	"fmt"
	"strings"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/services/config"

	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles available in the Databricks config file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", defaultConfigPath(), "Path to the Databricks config file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	registry, err := config.NewRegistry(pc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load Databricks config %s: %w", pc.configPath, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.configPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n",
		pc.configPath,
		strings.Join(profiles, "\n"))

	return nil
}
