package register

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func Test_splitArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantDirectory string
		wantServer    []string
	}{
		{"Empty", nil, "", nil},
		{"DirectoryOnly", []string{"/proj"}, "/proj", nil},
		{"ForwardedOnly", []string{"--", "-root", "/pics"}, "", []string{"-root", "/pics"}},
		{"DirectoryAndForwarded", []string{"/proj", "--", "-spacing", "3"}, "/proj", []string{"-spacing", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory, serverArgs := splitArgs(tt.args)
			if directory != tt.wantDirectory {
				t.Errorf("directory = %q, want %q", directory, tt.wantDirectory)
			}
			if len(serverArgs) != len(tt.wantServer) {
				t.Fatalf("serverArgs = %v, want %v", serverArgs, tt.wantServer)
			}
			for i := range serverArgs {
				if serverArgs[i] != tt.wantServer[i] {
					t.Errorf("serverArgs[%d] = %q, want %q", i, serverArgs[i], tt.wantServer[i])
				}
			}
		})
	}
}

func Test_writeConfig_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mcp.json")

	err := writeConfig(configPath, serverEntry{Command: "/usr/local/bin/gamiphoto"})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}

	var config map[string]map[string]serverEntry
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}
	if got := config["mcpServers"][ServerName].Command; got != "/usr/local/bin/gamiphoto" {
		t.Errorf("unexpected command: %q", got)
	}
}

func Test_writeConfig_PreservesOtherServers(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mcp.json")

	existing := `{"mcpServers": {"other": {"command": "/bin/other"}}}`
	if err := os.WriteFile(configPath, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeConfig(configPath, serverEntry{Command: "/bin/gamiphoto"}); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(configPath)
	var config map[string]map[string]serverEntry
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}

	if _, ok := config["mcpServers"]["other"]; !ok {
		t.Error("expected existing server entry to survive")
	}
	if _, ok := config["mcpServers"][ServerName]; !ok {
		t.Error("expected gamiphoto entry to be added")
	}
}

func Test_writeConfig_RejectsMalformedServers(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mcp.json")

	if err := os.WriteFile(configPath, []byte(`{"mcpServers": "oops"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeConfig(configPath, serverEntry{Command: "/bin/gamiphoto"}); err == nil {
		t.Error("expected error for non-object mcpServers")
	}
}
