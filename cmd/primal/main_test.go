package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/katalvlaran/primal/reduce"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFactorsPlain(t *testing.T) {
	g := NewWithT(t)

	out, _, err := runCLI(t, "factors", "--format", "plain", "24568", "0", "1", "68_549_888")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out).To(Equal("24568 = 2^3 · 37 · 83\n0 = 0\n1 = 1\n68549888 = 2^8 · 11^2 · 2213\n"))
}

func TestFactorsTable(t *testing.T) {
	g := NewWithT(t)

	out, _, err := runCLI(t, "factors", "97", "360")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(strings.ToLower(out)).To(ContainSubstring("factors"))
	g.Expect(out).To(ContainSubstring("2^3 · 3^2 · 5"))
	g.Expect(out).To(MatchRegexp(`97\s*\|\s*97\s*\|\s*true`))
	g.Expect(out).To(MatchRegexp(`360\s*\|.*\|\s*false`))
}

func TestFactorsNeedsArgument(t *testing.T) {
	g := NewWithT(t)

	_, _, err := runCLI(t, "factors")
	g.Expect(err).To(HaveOccurred())
}

func TestLCMPlain(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "pair", args: []string{"20", "75"}, want: "300\n"},
		{name: "separators", args: []string{"1_265", "1_587", "7_565"}, want: "132062205\n"},
		{name: "near max", args: []string{"10", "5", "67", "1548", "3", "568", "47"}, want: "3461002920\n"},
		{name: "zero", args: []string{"0", "5"}, want: "0\n"},
		{name: "empty", args: nil, want: "1\n"},
		{name: "wraps", args: []string{"65536", "65537"}, want: "65536\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			out, _, err := runCLI(t, append([]string{"lcm", "-f", "plain"}, tt.args...)...)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(out).To(Equal(tt.want))
		})
	}
}

func TestLCMStrictOverflow(t *testing.T) {
	g := NewWithT(t)

	_, _, err := runCLI(t, "lcm", "--strict", "65536", "65537")
	g.Expect(err).To(MatchError(reduce.ErrOverflow))
}

func TestGCF(t *testing.T) {
	g := NewWithT(t)

	out, _, err := runCLI(t, "gcf", "-f", "plain", "330", "75", "450", "225")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out).To(Equal("15\n"))

	out, _, err = runCLI(t, "gcf", "12", "15", "75")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out).To(MatchRegexp(`12, 15, 75\s*\|\s*3`))
}

func TestGCFInvalidInput(t *testing.T) {
	for _, args := range [][]string{{"gcf"}, {"gcf", "0", "5"}, {"gcf", "65", "5", "0"}} {
		g := NewWithT(t)

		_, _, err := runCLI(t, args...)
		g.Expect(err).To(MatchError(reduce.ErrInvalidInput), "args %v", args)
	}
}

func TestInvalidNumber(t *testing.T) {
	g := NewWithT(t)

	for _, arg := range []string{"abc", "4294967296", "1.5"} {
		_, _, err := runCLI(t, "lcm", arg)
		g.Expect(err).To(MatchError(ContainSubstring("invalid number")), "arg %q", arg)
	}
}

func TestDemo(t *testing.T) {
	g := NewWithT(t)

	out, _, err := runCLI(t, "demo", "--format", "plain")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out).To(Equal("3 = 3\n120\n4\n"))
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "primal.toml")
	g.Expect(os.WriteFile(path, []byte("format = \"plain\"\nstrict = true\nlog_level = \"debug\"\n"), 0o644)).To(Succeed())

	_, stderr, err := runCLI(t, "--config", path, "lcm", "65536", "65537")
	g.Expect(err).To(MatchError(reduce.ErrOverflow))
	g.Expect(stderr).To(ContainSubstring("loaded config"))
	g.Expect(stderr).To(ContainSubstring("lcm of [65536, 65537]"))

	out, _, err := runCLI(t, "--config", path, "--strict=false", "lcm", "65536", "65537")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out).To(Equal("65536\n"))
}

func TestInvalidFormatFlag(t *testing.T) {
	g := NewWithT(t)

	_, _, err := runCLI(t, "lcm", "--format", "json", "4")
	g.Expect(err).To(MatchError(ContainSubstring("format")))
}
