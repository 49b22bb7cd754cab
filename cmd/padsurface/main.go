// Command padsurface drives a Launchpad grid controller from the command
// line: list ports, run a surface under host control, or animate the
// virtual faders as a smoke test.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PixPMusic/padsurface/internal/config"
	"github.com/PixPMusic/padsurface/internal/launchpad"
	"github.com/PixPMusic/padsurface/internal/midi"
)

// flushInterval bounds how often the slow hardware transport is touched,
// no matter how fast state changes come in.
const flushInterval = 30 * time.Millisecond

func main() {
	root := &cobra.Command{
		Use:   "padsurface",
		Short: "Driver for Launchpad grid controllers",
	}

	var logJSON bool
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
		if logJSON {
			handler = slog.NewJSONHandler(os.Stderr, nil)
		}
		slog.SetDefault(slog.New(handler))
	}

	root.AddCommand(createPortsCmd(), createRunCmd(), createFadeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func createPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available MIDI ports",
		Run: func(_ *cobra.Command, _ []string) {
			manager := midi.NewManager()
			defer manager.Close()

			fmt.Println("Inputs:")
			for _, name := range manager.ListInPorts() {
				fmt.Println("  " + name)
			}
			fmt.Println("Outputs:")
			for _, name := range manager.ListOutPorts() {
				fmt.Println("  " + name)
			}
		},
	}
}

func createRunCmd() *cobra.Command {
	var configPath string
	var profileName string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the surface in program mode until interrupted",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := slog.Default()

			cfg, path, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			profile := cfg.CurrentProfile()
			if profileName != "" {
				if profile = cfg.FindProfile(profileName); profile == nil {
					return fmt.Errorf("profile not found: %s", profileName)
				}
			}

			manager := midi.NewManager()
			defer manager.Close()

			surface, stopListen, err := openSurface(manager, profile, logger)
			if err != nil {
				return err
			}
			if stopListen != nil {
				defer stopListen()
			}

			surface.EnterProgramMode()
			applyProfile(surface, profile)

			// Reapply colors when the config file changes on disk.
			stopWatch, err := config.Watch(path, logger, func(fresh *config.Config) {
				if p := fresh.FindProfile(profile.ID); p != nil {
					applyProfile(surface, p)
				}
			})
			if err != nil {
				logger.Warn("config watching disabled", "error", err)
			} else {
				defer stopWatch()
			}

			logger.Info("surface running", "device", profile.Name, "sku", profile.SKU)
			runFlushLoop(surface)

			surface.Shutdown()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Profile name or id to use")
	return cmd
}

func createFadeCmd() *cobra.Command {
	var configPath string
	var pan bool

	cmd := &cobra.Command{
		Use:   "fade",
		Short: "Sweep the eight virtual faders once, then restore the unit",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := slog.Default()

			cfg, _, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			profile := cfg.CurrentProfile()

			manager := midi.NewManager()
			defer manager.Close()

			surface, stopListen, err := openSurface(manager, profile, logger)
			if err != nil {
				return err
			}
			if stopListen != nil {
				defer stopListen()
			}

			surface.EnterProgramMode()
			for i := 0; i < launchpad.NumFaders; i++ {
				surface.SetupFader(i, profile.FaderColors[i], pan)
			}

			for v := 0; v <= 127; v += 4 {
				for i := 0; i < launchpad.NumFaders; i++ {
					surface.SetFaderValue(i, (v+i*16)%128)
				}
				surface.Flush()
				time.Sleep(flushInterval)
			}

			surface.Shutdown()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&pan, "pan", false, "Use the bipolar pan layout")
	return cmd
}

func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// openSurface opens the profile's ports and wires a surface to them. The
// input listener feeds inbound SysEx into the surface; missing inputs are
// tolerated since the handshake is fire-and-forget telemetry.
func openSurface(manager *midi.Manager, profile *config.Profile, logger *slog.Logger) (*launchpad.Surface, func(), error) {
	out, err := manager.OpenOutput(profile.OutPort, logger)
	if err != nil {
		return nil, nil, err
	}

	definition := launchpad.DefinitionFor(profile.SKU)
	surface := launchpad.NewSurface(definition, out, logger)

	stop, err := manager.ListenSysEx(profile.InPort, surface.HandleSysEx)
	if err != nil {
		logger.Warn("no input port, firmware handshake unavailable", "error", err)
		return surface, nil, nil
	}
	return surface, stop, nil
}

func applyProfile(surface *launchpad.Surface, profile *config.Profile) {
	for i := 0; i < launchpad.NumFaders; i++ {
		surface.SetupFader(i, profile.FaderColors[i], false)
	}
}

// runFlushLoop flushes dirty lights on a fixed cadence until SIGINT or
// SIGTERM.
func runFlushLoop(surface *launchpad.Surface) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			surface.Flush()
		case <-sig:
			return
		}
	}
}
