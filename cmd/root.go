package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/settings"
	"github.com/go-tox/toxsettings/lib/util"
	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()

var (
	appDir   string
	portable bool
	password string
)

var RootCmd = &cobra.Command{
	Use:   "toxsettings",
	Short: "Inspect and maintain Tox client configuration stores",
	Long: `toxsettings works on the dual-tier configuration store of a Tox
client: the shared global settings file and the per-profile, optionally
encrypted personal files holding friends, requests and circles.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&appDir, "app-dir", "", "treat this directory as the application directory")
	RootCmd.PersistentFlags().BoolVar(&portable, "portable", false, "force portable mode (data colocated with the app dir)")
	RootCmd.PersistentFlags().StringVar(&password, "password", "", "pass phrase for encrypted profiles")

	viper.SetEnvPrefix("TOXSETTINGS")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("app_dir", RootCmd.PersistentFlags().Lookup("app-dir"))
	_ = viper.BindPFlag("portable", RootCmd.PersistentFlags().Lookup("portable"))
	_ = viper.BindPFlag("password", RootCmd.PersistentFlags().Lookup("password"))

	RootCmd.AddCommand(dumpCmd)
	RootCmd.AddCommand(profileCmd)
	RootCmd.AddCommand(syncCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// openStore builds a Settings store honoring the persistent flags and
// environment.
func openStore() (*settings.Settings, error) {
	dir := viper.GetString("app_dir")
	if dir == "" {
		dir = paths.ExecutableDir()
	}
	r := &paths.Resolver{Portable: viper.GetBool("portable"), AppDir: dir}
	if !r.Portable {
		r.Portable = paths.ProbePortable(filepath.Join(dir, settings.GlobalSettingsFile))
	}
	s, err := settings.New(settings.WithResolver(r))
	if err != nil {
		return nil, err
	}
	util.RegisterCloser(s)
	return s, nil
}
