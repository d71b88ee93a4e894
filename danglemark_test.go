package danglemark

import "testing"

// TestCheck_ElementTarget 测试完整单遍命中行内元素
func TestCheck_ElementTarget(t *testing.T) {
	report := Check(`He said "see *this*`)
	if !report.Unclosed.HasUnclosed {
		t.Fatal("Check() should report unclosed delimiter")
	}
	if report.Unclosed.Kind != KindDoubleQuote {
		t.Errorf("Check() Kind = %v, want double_quote", report.Unclosed.Kind)
	}
	if report.HighlightText != "see *this*" {
		t.Errorf("Check() HighlightText = %q, want %q", report.HighlightText, "see *this*")
	}
	el, ok := report.Target.(*ElementTarget)
	if !ok {
		t.Fatalf("Check() Target = %T, want *ElementTarget", report.Target)
	}
	if el.Tag != "em" {
		t.Errorf("Check() target Tag = %q, want em", el.Tag)
	}
	if el.Sub != SubQuote {
		t.Errorf("Check() target Sub = %q, want q", el.Sub)
	}
}

// TestCheck_WrapperFallback 测试完整单遍回退到包装
func TestCheck_WrapperFallback(t *testing.T) {
	report := Check(`He said "hello`)
	if !report.Unclosed.HasUnclosed {
		t.Fatal("Check() should report unclosed delimiter")
	}
	wrap, ok := report.Target.(*WrapperTarget)
	if !ok {
		t.Fatalf("Check() Target = %T, want *WrapperTarget", report.Target)
	}
	if wrap.Sub != SubQuote {
		t.Errorf("Check() wrapper Sub = %q, want q", wrap.Sub)
	}
}

// TestCheck_Closed 测试闭合消息无目标
func TestCheck_Closed(t *testing.T) {
	report := Check(`all "good" here`)
	if report.Unclosed.HasUnclosed {
		t.Error("Check() HasUnclosed = true, want false")
	}
	if report.Target != nil {
		t.Errorf("Check() Target = %+v, want nil", report.Target)
	}
}

// TestCheck_Disabled 测试 Enabled 为 false 时跳过扫描
func TestCheck_Disabled(t *testing.T) {
	cfg := *DefaultConfig()
	cfg.Enabled = false
	report := Check(`He said "hello`, WithConfig(&cfg))
	if report.Unclosed.HasUnclosed {
		t.Error("Check() with Enabled=false should not scan")
	}
	if report.Target != nil {
		t.Errorf("Check() Target = %+v, want nil", report.Target)
	}
}

// TestCheck_PlainMode 测试纯文本模式
func TestCheck_PlainMode(t *testing.T) {
	report := Check(`He said "hello`, WithMarkdown(false))
	if !report.Unclosed.HasUnclosed {
		t.Fatal("Check() should report unclosed delimiter")
	}
	if _, ok := report.Target.(*WrapperTarget); !ok {
		t.Fatalf("Check() Target = %T, want *WrapperTarget", report.Target)
	}
}

// TestCheck_Idempotent 测试重复检查结果一致
func TestCheck_Idempotent(t *testing.T) {
	text := `He said "see *this*`
	first := Check(text)
	second := Check(text)
	if first.Unclosed != second.Unclosed {
		t.Errorf("Check() Unclosed differs: %+v != %+v", first.Unclosed, second.Unclosed)
	}
	e1, ok1 := first.Target.(*ElementTarget)
	e2, ok2 := second.Target.(*ElementTarget)
	if !ok1 || !ok2 || *e1 != *e2 {
		t.Errorf("Check() Target differs: %+v != %+v", first.Target, second.Target)
	}
}

// TestClasses_Pair 测试 class 对
func TestClasses_Pair(t *testing.T) {
	target := &ElementTarget{Index: 0, Tag: "em", Sub: SubEm}
	classes := Classes(target)
	if len(classes) != 2 {
		t.Fatalf("Classes() len = %d, want 2", len(classes))
	}
	if classes[0] != MarkerClass {
		t.Errorf("Classes()[0] = %q, want %q", classes[0], MarkerClass)
	}
	if classes[1] != "dmk-em" {
		t.Errorf("Classes()[1] = %q, want dmk-em", classes[1])
	}
}

// TestClasses_Nil 测试 nil 目标无 class
func TestClasses_Nil(t *testing.T) {
	if got := Classes(nil); got != nil {
		t.Errorf("Classes(nil) = %v, want nil", got)
	}
}

// TestRemovalClasses_CoversAllSubKinds 测试清除列表覆盖全部子类
func TestRemovalClasses_CoversAllSubKinds(t *testing.T) {
	removal := RemovalClasses()
	want := map[string]bool{
		MarkerClass: false, "dmk-q": false, "dmk-em": false,
		"dmk-strong": false, "dmk-u": false,
	}
	for _, c := range removal {
		if _, ok := want[c]; !ok {
			t.Errorf("RemovalClasses() unexpected class %q", c)
		}
		want[c] = true
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("RemovalClasses() missing class %q", c)
		}
	}
}
