package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bestiary/internal/animal"
)

var facetsCmd = &cobra.Command{
	Use:   "facets [animal_name]",
	Short: "List the values a characteristic takes for the animals matching a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		key := cfg.FilterKey
		if by, _ := cmd.Flags().GetString("by"); by != "" {
			key = by
		}

		records, err := newFetcher(cfg).FetchAnimals(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		values := animal.Facets(records, key).Sorted()
		if len(values) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No %s values found.\n", key)
			return nil
		}
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(facetsCmd)

	facetsCmd.Flags().String("by", "", "Characteristic to list (default from config, skin_type)")
}
