package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/settings"
)

var dumpProfile string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the store contents as YAML",
	Long: `Loads the global tier, and the personal tier of --profile when given,
then prints the resulting state. Encrypted profiles need --password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if dumpProfile != "" {
			key, err := profileKey(s, dumpProfile, viper.GetString("password"))
			if err != nil {
				return err
			}
			s.LoadPersonal(dumpProfile, key)
		}

		out, err := yaml.Marshal(snapshot(s))
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpProfile, "profile", "", "also load this profile's personal tier")
}

// profileKey derives the pass key for an encrypted profile file, re-using
// the salt stored in its container, and verifies the pass phrase opens it.
// A nil key means the file is plaintext (or absent, in which case the load
// falls back to the shared file).
func profileKey(s *settings.Settings, profile, password string) (*crypto.PassKey, error) {
	path := filepath.Join(s.Resolver().Dir(paths.Settings), profile+".ini")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !crypto.IsEncrypted(raw) {
		return nil, nil
	}
	if password == "" {
		return nil, oops.Errorf("profile %q is encrypted, a password is required", profile)
	}
	key, err := crypto.DeriveKey(password, crypto.ExtractSalt(raw))
	if err != nil {
		return nil, err
	}
	if _, err := key.Decrypt(raw); err != nil {
		return nil, oops.Errorf("cannot decrypt profile %q: %w", profile, err)
	}
	return key, nil
}

type friendDump struct {
	PublicKey string `yaml:"publicKey"`
	Address   string `yaml:"address"`
	Alias     string `yaml:"alias,omitempty"`
	Note      string `yaml:"note,omitempty"`
	CircleID  int    `yaml:"circle"`
}

type circleDump struct {
	Name     string `yaml:"name"`
	Expanded bool   `yaml:"expanded"`
}

type requestDump struct {
	Address string `yaml:"address"`
	Message string `yaml:"message"`
	Read    bool   `yaml:"read"`
}

type storeDump struct {
	CurrentProfile   string        `yaml:"currentProfile"`
	CurrentProfileID uint32        `yaml:"currentProfileId"`
	Translation      string        `yaml:"translation"`
	Portable         bool          `yaml:"portable"`
	ProxyType        int           `yaml:"proxyType"`
	ProxyAddr        string        `yaml:"proxyAddr,omitempty"`
	ProxyPort        uint16        `yaml:"proxyPort,omitempty"`
	Friends          []friendDump  `yaml:"friends,omitempty"`
	Requests         []requestDump `yaml:"requests,omitempty"`
	Circles          []circleDump  `yaml:"circles,omitempty"`
}

func snapshot(s *settings.Settings) storeDump {
	d := storeDump{
		CurrentProfile:   s.CurrentProfile(),
		CurrentProfileID: s.CurrentProfileID(),
		Translation:      s.Translation(),
		Portable:         s.MakeToxPortable(),
		ProxyType:        int(s.ProxyType()),
		ProxyAddr:        s.ProxyAddr(),
		ProxyPort:        s.ProxyPort(),
	}
	for pk, fp := range s.Friends() {
		d.Friends = append(d.Friends, friendDump{
			PublicKey: pk.String(),
			Address:   fp.Address,
			Alias:     fp.Alias,
			Note:      fp.Note,
			CircleID:  fp.CircleID,
		})
	}
	for i := 0; i < s.FriendRequestSize(); i++ {
		req := s.FriendRequest(i)
		d.Requests = append(d.Requests, requestDump{Address: req.Address, Message: req.Message, Read: req.Read})
	}
	for _, c := range s.Circles() {
		d.Circles = append(d.Circles, circleDump{Name: c.Name, Expanded: c.Expanded})
	}
	return d
}
