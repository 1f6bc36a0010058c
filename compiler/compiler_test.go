// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rw2rvc2/internal/config"
)

// scenarios mirrors spec §8's end-to-end scenario table: each asserts a
// handful of must-appear / must-not-appear substrings in the generated
// assembly, since no RISC-V toolchain runs in this test process.
var scenarios = []struct {
	name   string
	source string
	want   []string
}{
	{
		name:   "return a constant",
		source: "int main() { return 42; }",
		want:   []string{"li\tt0, 42", "mv\ta0, t0", "ret"},
	},
	{
		name:   "arithmetic precedence",
		source: "int main() { return 1 + 2 * 3; }",
		want:   []string{"mul\t", "add\t"},
	},
	{
		name:   "global variable round trip",
		source: "int counter = 3; int main() { return counter; }",
		want:   []string{"counter:\n\t.word\t3", "la\t", "lw\t"},
	},
	{
		name:   "if/else branching",
		source: "int main() { if (1) return 1; else return 0; }",
		want:   []string{"beqz\t", ".L0:", ".L1:", "j\t.L1"},
	},
	{
		name:   "function call with arguments",
		source: "int add(int a, int b) { return a + b; } int main() { return add(1, 2); }",
		want:   []string{"call\tadd", "sw\t"},
	},
	{
		name:   "left shift uses sllw",
		source: "int main() { return 1 << 3; }",
		want:   []string{"sllw\t"},
	},
	{
		// spec §8 scenario #6: recursive factorial, gated by `<=`. Checks
		// that `<=` emits the slt+xori pair and that the recursive call is
		// emitted; the operand order of the swap itself is checked by the
		// ir package's relational tests.
		name: "factorial recursion uses less-equal base case",
		source: `
			int fact(int n) {
				if (n <= 1) return 1;
				return n * fact(n - 1);
			}
			int main() { return fact(5); }
		`,
		want: []string{"slt\t", "xori\t", "call\tfact"},
	},
}

func TestCompilerEndToEndScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			asm := Run(sc.source, cfg)
			for _, substr := range sc.want {
				require.Contains(t, asm, substr)
			}
		})
	}
}
