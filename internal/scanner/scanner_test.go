package scanner

import (
	"strings"
	"testing"

	"github.com/riverfjs/danglemark-go/internal/types"
)

// TestScan_Empty 测试空字符串
func TestScan_Empty(t *testing.T) {
	unc := Scan("")
	if unc.HasUnclosed {
		t.Errorf("Scan(\"\") HasUnclosed = true, want false")
	}
}

// TestScan_NoDelimiters 测试不含分隔符的文本
func TestScan_NoDelimiters(t *testing.T) {
	unc := Scan("plain text without markers")
	if unc.HasUnclosed {
		t.Errorf("Scan() HasUnclosed = true, want false")
	}
}

// TestScan_UnclosedQuote 测试未闭合引号
func TestScan_UnclosedQuote(t *testing.T) {
	unc := Scan(`He said "hello`)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindDoubleQuote {
		t.Errorf("Scan() Kind = %v, want double_quote", unc.Kind)
	}
	if unc.Text != `"hello` {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, `"hello`)
	}
	if unc.StartIndex != 8 {
		t.Errorf("Scan() StartIndex = %d, want 8", unc.StartIndex)
	}
}

// TestScan_UnclosedAsterisk 测试未闭合星号
func TestScan_UnclosedAsterisk(t *testing.T) {
	unc := Scan("*bold text")
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindAsterisk {
		t.Errorf("Scan() Kind = %v, want asterisk", unc.Kind)
	}
	if unc.Text != "*bold text" {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, "*bold text")
	}
	if unc.StartIndex != 0 {
		t.Errorf("Scan() StartIndex = %d, want 0", unc.StartIndex)
	}
}

// TestScan_UnclosedUnderscore 测试未闭合下划线
func TestScan_UnclosedUnderscore(t *testing.T) {
	unc := Scan("some _emphasis")
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindUnderscore {
		t.Errorf("Scan() Kind = %v, want underscore", unc.Kind)
	}
	if unc.Text != "_emphasis" {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, "_emphasis")
	}
}

// TestScan_AllClosed 测试全部闭合的文本
func TestScan_AllClosed(t *testing.T) {
	unc := Scan(`"fully closed" and *also closed*`)
	if unc.HasUnclosed {
		t.Errorf("Scan() HasUnclosed = true, want false")
	}
}

// TestScan_TwoQuotes 测试两个相邻引号（良构）
func TestScan_TwoQuotes(t *testing.T) {
	unc := Scan(`""`)
	if unc.HasUnclosed {
		t.Errorf("Scan(`\"\"`) HasUnclosed = true, want false")
	}
}

// TestScan_PriorityTie 测试优先级：引号优先于星号
func TestScan_PriorityTie(t *testing.T) {
	unc := Scan(`"a*b`)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindDoubleQuote {
		t.Errorf("Scan() Kind = %v, want double_quote (quote wins the tie)", unc.Kind)
	}
	if unc.Text != `"a*b` {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, `"a*b`)
	}
}

// TestScan_PriorityAsteriskOverUnderscore 测试星号优先于下划线
func TestScan_PriorityAsteriskOverUnderscore(t *testing.T) {
	unc := Scan("*a_b")
	if unc.Kind != types.KindAsterisk {
		t.Errorf("Scan() Kind = %v, want asterisk", unc.Kind)
	}
}

// TestScan_ClosedQuoteOpenAsterisk 测试引号闭合后报告星号
func TestScan_ClosedQuoteOpenAsterisk(t *testing.T) {
	unc := Scan(`"x" *y`)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindAsterisk {
		t.Errorf("Scan() Kind = %v, want asterisk", unc.Kind)
	}
	if unc.Text != "*y" {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, "*y")
	}
}

// TestScan_Interleaved 测试交错的分隔符独立翻转
func TestScan_Interleaved(t *testing.T) {
	// 引号在位置 1 打开、位置 5 关闭；星号在位置 3 打开后未再出现
	unc := Scan(`a"b*c"d`)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Kind != types.KindAsterisk {
		t.Errorf("Scan() Kind = %v, want asterisk", unc.Kind)
	}
	if unc.StartIndex != 3 {
		t.Errorf("Scan() StartIndex = %d, want 3", unc.StartIndex)
	}
	if unc.Text != `*c"d` {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, `*c"d`)
	}
}

// TestScan_EvenCountsAlwaysClosed 测试偶数个分隔符恒为闭合
func TestScan_EvenCountsAlwaysClosed(t *testing.T) {
	inputs := []string{
		`"a" "b"`,
		"*x* *y*",
		"_m_ _n_",
		`""**__`,
		`mixed "q" and *s* and _u_ text`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			for _, kind := range types.Kinds {
				if strings.Count(input, string(kind.Char()))%2 != 0 {
					t.Fatalf("test input %q has odd count of %q", input, kind.Char())
				}
			}
			if unc := Scan(input); unc.HasUnclosed {
				t.Errorf("Scan(%q) HasUnclosed = true, want false", input)
			}
		})
	}
}

// TestScan_Idempotent 测试重复扫描结果一致
func TestScan_Idempotent(t *testing.T) {
	inputs := []string{
		``,
		`He said "hello`,
		`"a*b`,
		`clean text`,
		`*bold text`,
	}
	for _, input := range inputs {
		first := Scan(input)
		second := Scan(input)
		if first != second {
			t.Errorf("Scan(%q) not idempotent: %+v != %+v", input, first, second)
		}
	}
}

// TestScanStates_AllKinds 测试末态暴露
func TestScanStates_AllKinds(t *testing.T) {
	_, states := ScanStates(`"a*b`)
	if len(states) != 3 {
		t.Fatalf("ScanStates() returned %d states, want 3", len(states))
	}
	if !states[0].Open || states[0].StartIndex != 0 {
		t.Errorf("quote state = %+v, want open at 0", states[0])
	}
	if !states[1].Open || states[1].StartIndex != 2 {
		t.Errorf("asterisk state = %+v, want open at 2", states[1])
	}
	if states[2].Open || states[2].StartIndex != -1 {
		t.Errorf("underscore state = %+v, want closed", states[2])
	}
}

// TestScanStates_ClosedHasNoIndex 测试闭合状态清除起始位置
func TestScanStates_ClosedHasNoIndex(t *testing.T) {
	_, states := ScanStates(`"done"`)
	if states[0].Open {
		t.Errorf("quote state should be closed after pair")
	}
	if states[0].StartIndex != -1 {
		t.Errorf("closed state StartIndex = %d, want -1", states[0].StartIndex)
	}
}

// TestScan_DelimiterAtEnd 测试末尾刚打开的分隔符
func TestScan_DelimiterAtEnd(t *testing.T) {
	unc := Scan(`abc"`)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if unc.Text != `"` {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, `"`)
	}
}

// TestScan_MultibyteContent 测试多字节内容不影响字节索引
func TestScan_MultibyteContent(t *testing.T) {
	input := `你好 "世界`
	unc := Scan(input)
	if !unc.HasUnclosed {
		t.Fatal("Scan() should report unclosed delimiter")
	}
	if input[unc.StartIndex] != '"' {
		t.Errorf("StartIndex %d does not point at the quote", unc.StartIndex)
	}
	if unc.Text != `"世界` {
		t.Errorf("Scan() Text = %q, want %q", unc.Text, `"世界`)
	}
}
