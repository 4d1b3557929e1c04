package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aalvaropc/advent/internal/domain"
)

const day1Example = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"

const day5Example = "    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n\nmove 1 from 2 to 1\nmove 3 from 1 to 3\nmove 2 from 2 to 1\nmove 1 from 1 to 2\n"

// --- parseDays ---

func TestParseDays(t *testing.T) {
	got, err := parseDays([]string{"1", "05", "day3", "Day-4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 5, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseDays = %v, want %v", got, want)
		}
	}
}

func TestParseDays_Invalid(t *testing.T) {
	for _, in := range []string{"0", "x", "day", "-3"} {
		if _, err := parseDays([]string{in}); !domain.IsKind(err, domain.KindInvalidInput) {
			t.Errorf("parseDays(%q) expected invalid_input, got %v", in, err)
		}
	}
}

// --- printRun ---

func sampleRun() domain.RunResult {
	return domain.RunResult{
		Days: []domain.DayResult{
			{
				Info: domain.NewPuzzleInfo(5, "Supply Stacks"),
				Parts: []domain.PartAnswer{
					{Part: 1, Value: "CMZ", Message: "The top crates in the supply are: CMZ."},
					{Part: 2, Value: "MCD", Message: "The top crates in the supply are: MCD."},
				},
			},
		},
	}
}

func TestPrintPrettyRun_MatchesLayout(t *testing.T) {
	var buf bytes.Buffer
	printPrettyRun(&buf, sampleRun())

	want := "Day 5: Supply Stacks\n" +
		"=== Part One ===\n" +
		"The top crates in the supply are: CMZ.\n" +
		"\n" +
		"=== Part Two ===\n" +
		"The top crates in the supply are: MCD.\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrintPrettyRun_SeparatesDays(t *testing.T) {
	run := sampleRun()
	run.Days = append(run.Days, domain.DayResult{Info: domain.NewPuzzleInfo(6, "Tuning Trouble")})

	var buf bytes.Buffer
	printPrettyRun(&buf, run)
	if !strings.Contains(buf.String(), "MCD.\n\nDay 6: Tuning Trouble\n") {
		t.Fatalf("expected blank line between days, got:\n%s", buf.String())
	}
}

func TestPrintRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printRun(&buf, sampleRun(), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	days, ok := decoded["days"].([]any)
	if !ok || len(days) != 1 {
		t.Fatalf("expected one day in JSON, got: %s", buf.String())
	}
}

func TestPrintRun_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printRun(&buf, sampleRun(), ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
	if !strings.Contains(buf.String(), "=== Part One ===") {
		t.Fatalf("expected pretty output, got:\n%s", buf.String())
	}
}

func TestPrintRun_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printRun(&buf, domain.RunResult{}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- printChecks ---

func TestPrintChecks_CountsFailures(t *testing.T) {
	results := []domain.CheckResult{
		{Day: 1, Assertions: []domain.AssertionResult{
			{Name: "part 1", Passed: true, Message: "answer 24000"},
			{Name: "part 2", Passed: false, Message: `expected "1", got "45000"`},
		}},
	}

	var buf bytes.Buffer
	if fails := printChecks(&buf, results); fails != 1 {
		t.Fatalf("expected 1 failure, got %d", fails)
	}
	out := buf.String()
	if !strings.Contains(out, "✓ day 1 part 1 — answer 24000") {
		t.Errorf("expected pass line, got:\n%s", out)
	}
	if !strings.Contains(out, "✗ day 1 part 2") {
		t.Errorf("expected fail line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 passed, 1 failed") {
		t.Errorf("expected summary, got:\n%s", out)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"solve", "check", "validate", "days", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected persistent --debug flag")
	}
}

func TestSolveCmd_Flags(t *testing.T) {
	cmd := solveCmd(&rootOptions{})
	if cmd.Name() != "solve" {
		t.Errorf("expected name=solve, got %q", cmd.Name())
	}
	for _, flag := range []string{"workspace", "input", "format", "query"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on solve command", flag)
		}
	}
}

func TestDaysCmd_HasListSubcommand(t *testing.T) {
	cmd := daysCmd(&rootOptions{})
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Use == "list" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'list' subcommand under days")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestResolveAgainst(t *testing.T) {
	if got := resolveAgainst("/ws", "answers.yaml"); got != filepath.Join("/ws", "answers.yaml") {
		t.Errorf("unexpected %q", got)
	}
	if got := resolveAgainst("/ws", "/etc/answers.yaml"); got != "/etc/answers.yaml" {
		t.Errorf("unexpected %q", got)
	}
}

// --- end to end ---

func newWorkspace(t *testing.T, inputs map[int]string) string {
	t.Helper()
	root := t.TempDir()
	for day, content := range inputs {
		p := filepath.Join(root, "days", "day-"+strconv.Itoa(day), "resources", "input")
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve_Pretty(t *testing.T) {
	root := newWorkspace(t, map[int]string{5: day5Example})

	out, err := runCLI(t, "solve", "day5", "-w", root)
	if err != nil {
		t.Fatalf("solve error: %v", err)
	}
	for _, want := range []string{"Day 5: Supply Stacks", "supply are: CMZ.", "supply are: MCD."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestSolve_Query(t *testing.T) {
	root := newWorkspace(t, map[int]string{1: day1Example})

	out, err := runCLI(t, "solve", "1", "-w", root, "--query", "$.days[0].parts[1].value")
	if err != nil {
		t.Fatalf("solve error: %v", err)
	}
	if strings.TrimSpace(out) != "45000" {
		t.Fatalf("expected 45000, got %q", out)
	}
}

func TestSolve_ExplicitInput(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "example.txt")
	if err := os.WriteFile(input, []byte(day1Example), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCLI(t, "solve", "1", "-w", root, "--input", input, "--format", "json")
	if err != nil {
		t.Fatalf("solve error: %v", err)
	}
	if !strings.Contains(out, `"value": "24000"`) {
		t.Fatalf("expected JSON answer, got:\n%s", out)
	}
}

func TestSolve_InputNeedsOneDay(t *testing.T) {
	if _, err := runCLI(t, "solve", "1", "2", "--input", "x.txt"); err == nil {
		t.Fatal("expected error when --input is used with two days")
	}
}

func TestSolve_MissingInput(t *testing.T) {
	_, err := runCLI(t, "solve", "2", "-w", t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestCheck_ReportsMismatch(t *testing.T) {
	root := newWorkspace(t, map[int]string{1: day1Example})
	answers := "answers:\n  1: { part1: \"24000\", part2: \"1\" }\n"
	if err := os.WriteFile(filepath.Join(root, "answers.yaml"), []byte(answers), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCLI(t, "check", "1", "-w", root)
	if err == nil {
		t.Fatal("expected check to fail")
	}
	if !strings.Contains(out, "1 passed, 1 failed") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCheck_Passes(t *testing.T) {
	root := newWorkspace(t, map[int]string{1: day1Example})
	answers := "answers:\n  1: { part1: \"24000\", part2: \"45000\" }\n"
	if err := os.WriteFile(filepath.Join(root, "answers.yaml"), []byte(answers), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := runCLI(t, "check", "1", "-w", root); err != nil {
		t.Fatalf("check error: %v", err)
	}
}

func TestValidate_OK(t *testing.T) {
	root := newWorkspace(t, map[int]string{1: day1Example})

	out, err := runCLI(t, "validate", "1", "-w", root)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if strings.TrimSpace(out) != "OK" {
		t.Fatalf("expected OK, got %q", out)
	}
}

func TestValidate_BadInput(t *testing.T) {
	root := newWorkspace(t, map[int]string{2: "A Y\nB W\n"})

	_, err := runCLI(t, "validate", "2", "-w", root)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestDaysList(t *testing.T) {
	root := newWorkspace(t, map[int]string{1: day1Example})

	out, err := runCLI(t, "days", "list", "-w", root)
	if err != nil {
		t.Fatalf("days list error: %v", err)
	}
	if !strings.Contains(out, "Calorie Counting") || !strings.Contains(out, "(ok)") || !strings.Contains(out, "(missing)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestInitThenSolveLayout(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "init", "--path", root)
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	if !strings.Contains(out, "Workspace initialized") {
		t.Fatalf("unexpected output %q", out)
	}
	for _, p := range []string{"advent.yaml", "answers.yaml", filepath.Join("days", "day-5", "resources")} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "advent ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
