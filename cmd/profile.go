package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-tox/toxsettings/lib/identity"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage per-profile settings files",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Write a default personal settings file for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		name := args[0]
		if err := s.CreatePersonal(name); err != nil {
			return err
		}
		log.WithField("profile", name).Debug("Profile settings created")
		fmt.Fprintf(os.Stdout, "created %s.ini (profile id %08x)\n", name, identity.MakeProfileID(name))
		return nil
	},
}

var profileIDCmd = &cobra.Command{
	Use:   "id NAME",
	Short: "Print the derived 32-bit id of a profile name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%08x\n", identity.MakeProfileID(args[0]))
	},
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileIDCmd)
}
