package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()

	jsonContent := `{
		"name": "John Doe",
		"age": 30,
		"address": {
			"street": "123 Main St",
			"zip": "12345"
		},
		"phones": [
			{"type": "home", "number": "555-1234"},
			{"type": "work", "number": "555-5678"}
		],
		"active": true
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0644))

	outputFile := filepath.Join(tempDir, "output.json")

	cmd := exec.Command("go", "run", "../../main.go", "-i", jsonFile, "-o", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	flat, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	expected := `{"name":"John Doe","age":30,"address.street":"123 Main St","address.zip":"12345",` +
		`"phones[0].type":"home","phones[0].number":"555-1234",` +
		`"phones[1].type":"work","phones[1].number":"555-5678","active":true}` + "\n"
	assert.Equal(t, expected, string(flat))
	assert.Contains(t, string(output), "Flattened JSON written to")
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(`{"name": "Jane Smith", "age": 25, "active": true}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.NoError(t, err, "CLI command failed: %s", stderr.String())

	assert.Equal(t, `{"name":"Jane Smith","age":25,"active":true}`+"\n", stdout.String())
}

// TestCLI_LinesFormat tests key=value output
func TestCLI_LinesFormat(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-f", "lines")
	cmd.Stdin = strings.NewReader(`[{"id": 1}, {"id": 2.5}, {"x.y": null}]`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.Equal(t, "[0].id=1\n[1].id=2.5\n[2][\"x.y\"]=null\n", stdout.String())
}

// TestCLI_EnvFormat tests environment style output with a prefix
func TestCLI_EnvFormat(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-f", "env", "--env-prefix", "app")
	cmd.Stdin = strings.NewReader(`{"server": {"port": 8080, "hostName": "localhost"}}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.Equal(t, "APP_SERVER_PORT=8080\nAPP_SERVER_HOST_NAME=\"localhost\"\n", stdout.String())
}

// TestCLI_ConfigFile tests that a config file selects the output format
func TestCLI_ConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "jsonflat.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("output:\n  format: lines\n"), 0644))

	cmd := exec.Command("go", "run", "../../main.go", "-c", configFile)
	cmd.Stdin = strings.NewReader(`{"a": [true]}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.Equal(t, "a[0]=true\n", stdout.String())
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(`{"name": "Invalid JSON, "age": 30}`)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with invalid JSON")
	assert.Contains(t, stderr.String(), "JSON parsing error")
}

// TestCLI_ScalarRoot tests that a scalar document is rejected
func TestCLI_ScalarRoot(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(`"just a string"`)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "Flatten error: input must be a JSON object or array, got string")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader("")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr.String(), "empty input")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-v")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "jsonflat version")
}

// TestCLI_Help tests the help output
func TestCLI_Help(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--help")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	helpOutput := string(output)
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "-i, --input")
	assert.Contains(t, helpOutput, "-o, --output")
	assert.Contains(t, helpOutput, "-f, --format")
	assert.Contains(t, helpOutput, "--env-prefix")
}
