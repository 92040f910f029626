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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShellInit(t *testing.T) {
	for _, shell := range SupportedShells() {
		t.Run(shell, func(t *testing.T) {
			hook, err := ShellInit(shell)
			if err != nil {
				t.Fatalf("ShellInit(%q): %v", shell, err)
			}
			content := string(hook)
			if !strings.HasPrefix(content, shellInitMarker) {
				t.Errorf("expected hook to start with marker, got: %q", content)
			}
			if !strings.Contains(content, "command termnav") {
				t.Error("expected hook to call termnav")
			}
			if !strings.Contains(content, "cd -- ") {
				t.Error("expected hook to cd into the result")
			}
		})
	}
}

func TestSupportedShells(t *testing.T) {
	got := strings.Join(SupportedShells(), ",")
	if got != "bash,fish,zsh" {
		t.Errorf("SupportedShells() = %q, want bash,fish,zsh", got)
	}
}

func TestShellInit_UnknownShell(t *testing.T) {
	_, err := ShellInit("tcsh")
	if err == nil {
		t.Fatal("expected error for unknown shell")
	}
	if !strings.Contains(err.Error(), "bash, fish, zsh") {
		t.Errorf("expected supported shells in error, got: %v", err)
	}
}

func TestInstallShellInit_NewFile(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".bashrc")

	changed, err := InstallShellInit(rc, "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("expected file to change")
	}

	data, err := os.ReadFile(rc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), shellInitMarker) {
		t.Errorf("expected hook at start of new file, got: %q", data)
	}
}

func TestInstallShellInit_AppendsOnce(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	original := "export EDITOR=vim\n\n\n"
	if err := os.WriteFile(rc, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := InstallShellInit(rc, "zsh")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("expected first install to change the file")
	}

	changed, err = InstallShellInit(rc, "zsh")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("second install should leave the file alone")
	}

	data, _ := os.ReadFile(rc)
	content := string(data)
	if !strings.HasPrefix(content, "export EDITOR=vim\n\n"+shellInitMarker) {
		t.Errorf("expected user content preserved before hook, got: %q", content)
	}
	if strings.Count(content, shellInitMarker) != 1 {
		t.Errorf("expected exactly one hook block, got %d", strings.Count(content, shellInitMarker))
	}
}

func TestInstallShellInit_UnknownShell(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".cshrc")
	if _, err := InstallShellInit(rc, "csh"); err == nil {
		t.Fatal("expected error for unknown shell")
	}
	if _, err := os.Stat(rc); !os.IsNotExist(err) {
		t.Error("rc file should not be created for an unknown shell")
	}
}
