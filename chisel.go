//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Chisel is a small programmable text editor for the terminal.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/chisel/commander"
	"github.com/timburks/chisel/config"
	"github.com/timburks/chisel/editor"
	"github.com/timburks/chisel/mode"
	"github.com/timburks/chisel/screen"
	chisel "github.com/timburks/chisel/types"
)

var (
	cfgFile     string
	script      string
	modeName    string
	writeConfig bool
)

var rootCmd = &cobra.Command{
	Use:           "chisel [file]",
	Short:         "A programmable text editor",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/chisel/config.yaml)")
	rootCmd.Flags().StringVarP(&script, "eval", "e", "",
		"run a lisp script against the file and exit")
	rootCmd.Flags().StringVarP(&modeName, "mode", "m", "",
		"editing mode, overriding the one chosen by file name")
	rootCmd.Flags().BoolVar(&writeConfig, "write-config", false,
		"write a default config file and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if writeConfig {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		return config.WriteDefault(path)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)
	if cfg.File != "" {
		log.Printf("config %s", cfg.File)
	}

	palette, err := cfg.Palette()
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	registry := mode.NewRegistry(palette)
	cfg.Apply(registry)

	// The editor manages all text manipulation.
	e := editor.NewEditor(nil)
	e.Configure(cfg.TabWidth, cfg.UseTabs)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, registry)
	if err := c.BindGlobal(cfg.Bindings); err != nil {
		return fmt.Errorf("invalid bindings: %w", err)
	}
	// Modes are entered after the global bindings so theirs take precedence.
	if len(args) > 0 {
		if err := c.FindFile(args[0]); err != nil {
			return err
		}
	} else if modeName == "" {
		modeName = mode.Text
	}
	if modeName != "" {
		if err := c.SetMode(modeName); err != nil {
			return err
		}
	}

	if script != "" {
		// Run a script and exit.
		return c.EvalFile(script)
	}

	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()
	return loop(c, s)
}

var errTerminal = errors.New("terminal input failed")

// loop draws and handles keys until the commander stops.
func loop(c *commander.Commander, s *screen.Screen) error {
	draw := func() {
		s.Clear()
		c.Render(s)
		s.Flush()
	}
	var failed error
	live := func() chisel.Key {
		for {
			event := s.GetNextEvent()
			switch event.Type {
			case chisel.EventKey:
				return event.Key
			case chisel.EventError:
				failed = errTerminal
				return chisel.KeyUnsupported
			default:
				draw()
			}
		}
	}
	for c.IsRunning() {
		draw()
		k := c.NextKey(live)
		if failed != nil {
			log.Printf("%v", failed)
			return failed
		}
		c.ProcessKey(k)
	}
	return nil
}
