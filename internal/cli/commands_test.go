package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shayne-snap/llmscape/internal/catalog"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{
		"system":   true,
		"list":     true,
		"search":   true,
		"info":     true,
		"tips":     true,
		"validate": true,
		"config":   true,
	}
	cmds := rootCmd.Commands()
	if len(cmds) < len(want) {
		t.Errorf("root has %d subcommands, want at least %d", len(cmds), len(want))
	}
	got := make(map[string]bool)
	for _, c := range cmds {
		got[c.Name()] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("root missing subcommand %q", name)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"json", "cli", "no-color", "view", "config", "log-level", "version"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root missing --%s flag", name)
		}
	}
}

func TestListCmd_Flags(t *testing.T) {
	if listCmd.Flags().Lookup("category") == nil {
		t.Error("list command missing --category flag")
	}
}

// execute runs the root command with a throwaway config path and fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	globalJSON, globalCLI, globalNoColor = false, false, false
	globalView, globalLogLevel, listCategory = "", "", ""
	configForce = false
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList_LargeJSON(t *testing.T) {
	out, err := execute(t, "list", "--view", "llm", "--json")
	if err != nil {
		t.Fatalf("list err = %v", err)
	}
	var got struct {
		Landscape string `json:"landscape"`
		Entries   []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Landscape != "llm" || len(got.Entries) != 8 {
		t.Errorf("got %s with %d entries", got.Landscape, len(got.Entries))
	}
}

func TestList_CategoryRejectedOnLargeView(t *testing.T) {
	if _, err := execute(t, "list", "--view", "llm", "--category", "audio"); err == nil {
		t.Error("--category with --view llm should fail")
	}
}

func TestList_UnknownCategory(t *testing.T) {
	_, err := execute(t, "list", "--view", "slm", "--category", "video")
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestList_BadView(t *testing.T) {
	if _, err := execute(t, "list", "--view", "tiny"); err == nil {
		t.Error("unknown view should fail")
	}
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "deepseek")
	if err != nil {
		t.Fatalf("info err = %v", err)
	}
	if !strings.Contains(out, "=== DeepSeek ===") {
		t.Errorf("unexpected info output:\n%s", out)
	}
}

func TestInfo_Unknown(t *testing.T) {
	_, err := execute(t, "info", "no-such-model")
	if !errors.Is(err, errNotFound) {
		t.Errorf("err = %v, want errNotFound", err)
	}
}

func TestInfo_Ambiguous(t *testing.T) {
	out, err := execute(t, "info", "bge")
	if err != nil {
		t.Fatalf("info err = %v", err)
	}
	if !strings.Contains(out, "Multiple entries found") || !strings.Contains(out, "bge-reranker") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "search", "mistral", "--view", "llm")
	if err != nil {
		t.Fatalf("search err = %v", err)
	}
	if !strings.Contains(out, "Mistral AI") {
		t.Errorf("unexpected search output:\n%s", out)
	}
}

func TestTips(t *testing.T) {
	out, err := execute(t, "tips", "rag")
	if err != nil {
		t.Fatalf("tips err = %v", err)
	}
	if !strings.Contains(out, catalog.TipsFor(catalog.CategoryRAG).Heading) {
		t.Errorf("unexpected tips output:\n%s", out)
	}
	if strings.Contains(out, catalog.TipsFor(catalog.CategoryAudio).Heading) {
		t.Error("tips for one category should not print the others")
	}
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate")
	if err != nil {
		t.Fatalf("validate err = %v", err)
	}
	if !strings.Contains(out, "llm: 8 entries") || !strings.Contains(out, "slm: 16 entries") {
		t.Errorf("unexpected validate output:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llmscape.toml")
	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init err = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output should name the file: %s", out)
	}
	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := execute(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force err = %v", err)
	}
}

func TestConfigExample(t *testing.T) {
	out, err := execute(t, "config", "example")
	if err != nil {
		t.Fatalf("config example err = %v", err)
	}
	if !strings.Contains(out, "default_view") || !strings.Contains(out, "[log]") {
		t.Errorf("unexpected example output:\n%s", out)
	}
}
