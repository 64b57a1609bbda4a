package command

import (
	"fmt"

	"HomoCure/repositories"

	"github.com/spf13/cobra"
)

var demoTokensCmd = &cobra.Command{
	Use:   "demo-tokens",
	Short: "List the patient portal demo tokens",
	Long:  "The demo-tokens command prints every token the patient portal accepts together with the patient it unlocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		portal := repositories.NewPortalRepository()
		for _, token := range portal.Tokens() {
			patient, _ := portal.FindByToken(cmd.Context(), token)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d consultations)\n", token, patient.Name, len(patient.Consultations))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoTokensCmd)
}
