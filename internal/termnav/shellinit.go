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
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

// shellInitFS embeds the wrapper functions that run termnav in command
// substitution and cd into its output.
//
//go:embed shellinit/*
var shellInitFS embed.FS

// shellInitFile maps shell names to their embedded hook.
var shellInitFile = map[string]string{
	"bash": "bash.sh",
	"zsh":  "zsh.sh",
	"fish": "fish.fish",
}

// shellInitMarker opens the hook block in every embedded script.
const shellInitMarker = "# >>> termnav >>>"

// SupportedShells returns the shells ShellInit knows, sorted.
func SupportedShells() []string {
	shells := make([]string, 0, len(shellInitFile))
	for s := range shellInitFile {
		shells = append(shells, s)
	}
	sort.Strings(shells)
	return shells
}

// ShellInit returns the wrapper function for shell.
func ShellInit(shell string) ([]byte, error) {
	file, ok := shellInitFile[shell]
	if !ok {
		return nil, fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(SupportedShells(), ", "))
	}
	return shellInitFS.ReadFile("shellinit/" + file)
}

// InstallShellInit appends the wrapper for shell to rcPath unless the file
// already carries the hook block. It reports whether the file changed.
func InstallShellInit(rcPath, shell string) (bool, error) {
	hook, err := ShellInit(shell)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", rcPath, err)
	}
	content := string(existing)
	if strings.Contains(content, shellInitMarker) {
		return false, nil
	}

	if content != "" {
		content = strings.TrimRight(content, "\n") + "\n\n"
	}
	content += string(hook)
	if err := os.WriteFile(rcPath, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", rcPath, err)
	}
	return true, nil
}
