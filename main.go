// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cybrota/arbor/tree"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// ANSI colors for plain terminal output, set from the detected mode
var Green, Info, Warning, Error, Reset string

var demoKeys = []int{4, 1, 6, 0, -1, 3, 2, 5}

type globalFlags struct {
	engine string
	config string
	keys   string
}

// loadSettings resolves the config file and the engine kind
func (f *globalFlags) loadSettings() (*Config, tree.Kind) {
	configPath := f.config
	if configPath == "" {
		if p, err := getConfigPath(); err == nil {
			configPath = p
		}
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	kind, err := resolveEngine(f.engine, config)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return config, kind
}

// loadEngine builds an engine of kind preloaded with the --keys file
func (f *globalFlags) loadEngine(kind tree.Kind) tree.Engine {
	engine := newEngine(kind)
	if err := loadKeysFile(engine, f.keys); err != nil {
		log.Fatalf("Error reading keys: %v", err)
	}
	return engine
}

func (f *globalFlags) runUI() {
	config, kind := f.loadSettings()

	// bubbletea runs commands on their own goroutines
	engines := make(map[tree.Kind]tree.Engine, len(engineKinds))
	for _, k := range engineKinds {
		engines[k] = tree.NewLocked(f.loadEngine(k))
	}

	if err := runBubbleTeaApp(engines, kind, NewDiagramCache(), config); err != nil {
		log.Fatalf("Error running UI: %v", err)
	}
}

func main() {
	InitializeColors()
	Green, Info, Warning, Error, Reset = GetANSIColors()

	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing AVL and Red-Black trees in your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	flags := &globalFlags{}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the arbor UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the arbor UI: type operations and watch the tree rebalance`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			flags.runUI()
		},
	}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Numbered menu on stdin/stdout",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Menu drives one engine from a numbered menu read on stdin`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, kind := flags.loadSettings()
			engine := flags.loadEngine(kind)
			defer engine.Teardown()

			session := NewSession(engine, NewRenderer(config.Render, true), config.Search.Trace, os.Stdout)
			if err := runMenu(os.Stdin, session); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdApply = &cobra.Command{
		Use:   "apply [ops...]",
		Short: "Apply operations headless",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Apply runs +k, -k, ?k, print, preorder, inorder, height and check operations.
Put -- before the operations so that -k is not read as a flag: arbor apply -- +4 +1 -4 print`),
		Args: cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, kind := flags.loadSettings()

			ops, err := ParseOperations(args)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			if script := cmd.Flag("script").Value.String(); script != "" {
				scriptOps, err := readScriptFile(script)
				if err != nil {
					log.Fatalf("Error reading script: %v", err)
				}
				ops = append(scriptOps, ops...)
			}

			engine := flags.loadEngine(kind)
			defer engine.Teardown()

			session := NewSession(engine, NewRenderer(config.Render, true), config.Search.Trace, os.Stdout)
			if err := session.ApplyAll(ops); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	cmdApply.Flags().String("script", "", "file with operations, applied before the ones given as arguments")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert the demo sequence into both engines",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, fmt.Sprintf("Demo inserts %v into both engines and prints the resulting trees", demoKeys)),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := flags.loadSettings()
			renderer := NewRenderer(config.Render, true)

			for _, kind := range engineKinds {
				engine := newEngine(kind)
				if _, _, err := populateEngine(engine, demoKeys); err != nil {
					log.Fatalf("Error: %v", err)
				}
				fmt.Printf("%s%s%s (height %d)\n\n", Green, engineTitle(kind), Reset, engine.Height())
				fmt.Println(renderer.Render(engine.Root()))
				fmt.Printf("\npre-order: %s\n\n", joinKeys(tree.Collect(engine.PreOrder())))
				engine.Teardown()
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert and delete random keys and check the height bound",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts distinct random keys, deletes half of them and compares the height with the worst case bound`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, kind := flags.loadSettings()

			count, _ := cmd.Flags().GetInt("count")
			if count <= 0 {
				count = config.Bench.Keys
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			if !cmd.Flags().Changed("seed") {
				seed = config.Bench.Seed
			}

			kinds := engineKinds
			if cmd.Flags().Changed("engine") {
				kinds = []tree.Kind{kind}
			}

			failed := false
			for _, k := range kinds {
				res, err := runBench(k, count, seed, os.Stderr, true)
				if res != nil {
					printBenchResult(os.Stdout, res)
				}
				if err != nil {
					log.Printf("%s bench failed: %v", engineTitle(k), err)
					failed = true
				}
			}
			if failed {
				os.Exit(1)
			}
		},
	}

	cmdBench.Flags().Int("count", 0, "number of distinct keys (default from config)")
	cmdBench.Flags().Int64("seed", 1, "random seed (default from config)")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Load keys and validate the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check loads the --keys file and validates every balance and ordering property`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if flags.keys == "" {
				log.Fatalf("Error: check needs --keys")
			}
			_, kind := flags.loadSettings()
			engine := flags.loadEngine(kind)
			defer engine.Teardown()

			if err := engine.Validate(); err != nil {
				fmt.Printf("%s❌ %s: %v%s\n", Error, engineTitle(kind), err, Reset)
				os.Exit(1)
			}
			fmt.Printf("%s✅ %s: %d keys, height %d (bound %.2f)%s\n",
				Green, engineTitle(kind), engine.Len(), engine.Height(), heightBound(kind, engine.Len()), Reset)
			if bh, ok := engine.(interface{ BlackHeight() int }); ok {
				fmt.Printf("   black height %d\n", bh.BlackHeight())
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file when missing",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			configPath := flags.config
			if configPath == "" {
				p, err := getConfigPath()
				if err != nil {
					log.Fatalf("Failed to get config path: %v", err)
				}
				configPath = p
			}
			displaySettings(os.Stdout, configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print arbor version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arbor",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			flags.runUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.engine, "engine", "", "balancing engine: avl or rb (default from config)")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default ~/.arbor.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.keys, "keys", "", "file of integer keys to preload, one per line")

	rootCmd.AddCommand(cmdRun, cmdMenu, cmdApply, cmdDemo, cmdBench, cmdCheck, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
