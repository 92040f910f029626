/*
 * Copyright (c) 2026. AXIOM STUDIO AI Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package termnav

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initSubcommands registers all CLI subcommands on the root command.
func initSubcommands(root *cobra.Command) {
	root.AddCommand(initCmd())
	root.AddCommand(configCmd())
}

// --- init ---

func initCmd() *cobra.Command {
	var install string

	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Print the shell function that cds into the chosen directory",
		Long:      "Print a shell function named tn that runs termnav and cds into the directory it prints. Supported shells: " + strings.Join(SupportedShells(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: SupportedShells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if install != "" {
				changed, err := InstallShellInit(install, args[0])
				if err != nil {
					return err
				}
				if changed {
					fmt.Fprintf(cmd.ErrOrStderr(), "Added tn to %s\n", install)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s already has the termnav hook\n", install)
				}
				return nil
			}

			hook, err := ShellInit(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(hook)
			return err
		},
	}
	cmd.Flags().StringVar(&install, "install", "", "Append the function to this rc file instead of printing it")
	return cmd
}

// --- config ---

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the termnav config file",
	}
	cmd.AddCommand(configPathCmd(), configShowCmd(), configInitCmd())
	return cmd
}

func configFilePath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return ConfigPath()
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFilePath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFilePath()
			if ConfigFileExists(path) {
				return fmt.Errorf("config file %s already exists", path)
			}
			if err := SaveConfig(DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		},
	}
}
