package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgekit/iothub/config"
	"github.com/edgekit/iothub/logger"
	"github.com/edgekit/iothub/registry"
	"github.com/edgekit/iothub/transport"
)

var (
	configFile string
	envFile    string
	deviceID   string

	authType     string
	primaryKey   string
	secondaryKey string
	managedBy    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file")
	rootCmd.PersistentFlags().StringVar(&deviceID, "device", "", "Device id (overrides config)")

	for _, cmd := range []*cobra.Command{createCmd, updateCmd} {
		cmd.Flags().StringVar(&authType, "auth-type", registry.AuthTypeSas, "Authentication type (none, sas, selfSigned, certificateAuthority)")
		cmd.Flags().StringVar(&primaryKey, "primary-key", "", "Primary symmetric key (sas only)")
		cmd.Flags().StringVar(&secondaryKey, "secondary-key", "", "Secondary symmetric key (sas only)")
		cmd.Flags().StringVar(&managedBy, "managed-by", "", "Entity managing the module")
	}

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <module-id>",
	Short: "Create a module identity",
	Example: `  # Create a module with SAS keys assigned by the hub
  iothub-modules create edgeAgent --managed-by iotedge

  # Create a module with explicit keys
  iothub-modules create telemetry --primary-key <key> --secondary-key <key>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDeviceClient()
		if err != nil {
			return err
		}
		mod, err := dc.CreateModule(cmd.Context(), args[0], buildAuth(), managedBy)
		if err != nil {
			return describe(err)
		}
		return printJSON(mod)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <module-id>",
	Short: "Show a module identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDeviceClient()
		if err != nil {
			return err
		}
		mod, err := dc.GetModule(cmd.Context(), args[0])
		if err != nil {
			return describe(err)
		}
		return printJSON(mod)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the device's module identities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDeviceClient()
		if err != nil {
			return err
		}
		modules, err := dc.ListModules(cmd.Context())
		if err != nil {
			return describe(err)
		}
		return printJSON(modules)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <module-id>",
	Short: "Update an existing module identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDeviceClient()
		if err != nil {
			return err
		}
		mod, err := dc.UpdateModule(cmd.Context(), args[0], buildAuth(), managedBy)
		if err != nil {
			return describe(err)
		}
		return printJSON(mod)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <module-id>",
	Short: "Delete a module identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDeviceClient()
		if err != nil {
			return err
		}
		if err := dc.DeleteModule(cmd.Context(), args[0]); err != nil {
			return describe(err)
		}
		fmt.Printf("Deleted module %q from device %q\n", args[0], dc.DeviceID())
		return nil
	},
}

// newDeviceClient loads settings and wires the registry client.
func newDeviceClient() (*registry.DeviceClient, error) {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}

	var hub config.Hub
	if err := config.Load(&hub, opts...); err != nil {
		return nil, err
	}
	if deviceID != "" {
		hub.DeviceID = deviceID
	}
	if hub.DeviceID == "" {
		return nil, fmt.Errorf("a device id is required (set device_id or pass --device)")
	}

	log := logger.New(hub.Logging)

	tc, err := transport.New(hub.Transport(log))
	if err != nil {
		return nil, err
	}
	c, err := registry.New(tc, hub.APIVersion)
	if err != nil {
		return nil, err
	}
	return registry.NewDeviceClient(c, hub.DeviceID)
}

// buildAuth assembles the authentication mechanism from flags.
// Returns nil when no authentication was requested.
func buildAuth() *registry.AuthMechanism {
	if authType == "" || authType == registry.AuthTypeNone {
		return nil
	}
	auth := registry.AuthMechanism{}.WithType(authType)
	if primaryKey != "" || secondaryKey != "" {
		auth = auth.WithSymmetricKey(registry.SymmetricKey{
			PrimaryKey:   primaryKey,
			SecondaryKey: secondaryKey,
		})
	}
	return &auth
}

// describe augments transport errors with the service-supplied message.
func describe(err error) error {
	if msg := registry.RemoteMessage(err); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
