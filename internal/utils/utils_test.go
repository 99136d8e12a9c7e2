package utils

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatSpanishDateTime(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	ts := time.Date(2026, 3, 5, 8, 4, 9, 0, time.UTC)
	if got := FormatSpanishDateTime(ts, madrid); got != "5/3/2026, 9:04:09" {
		t.Errorf("Unexpected format %q", got)
	}

	if got := FormatSpanishDateTime(time.Time{}, madrid); got != InvalidDate {
		t.Errorf("Expected %q for zero time, got %q", InvalidDate, got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{80: "80", 85.5: "85.5", 0: "0", 91.25: "91.25"}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestFormInt(t *testing.T) {
	if FormInt(" 12 ") != 12 {
		t.Error("Expected 12")
	}
	if FormInt("") != 0 || FormInt("abc") != 0 || FormInt("-4") != 0 {
		t.Error("Invalid input should give 0")
	}
}

func TestRenderCommentTextEscapesScripts(t *testing.T) {
	out := string(RenderCommentText("hola <script>alert(1)</script> **mundo**"))
	if strings.Contains(out, "<script>") {
		t.Errorf("Script tag survived: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") || !strings.Contains(out, "**mundo**") {
		t.Errorf("Expected text to be shown as typed, got %s", out)
	}
}

func TestRenderCommentTextKeepsTypedText(t *testing.T) {
	out := string(RenderCommentText("- malo\n*genial*\n# titulo"))
	for _, want := range []string{"- malo", "*genial*", "# titulo", "<br"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %s", want, out)
		}
	}
	for _, unwanted := range []string{"<li>", "<em>", "<h1>"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("Markup %q should not be generated, got %s", unwanted, out)
		}
	}
}

func TestRenderCommentTextHardensLinks(t *testing.T) {
	out := string(RenderCommentText("mira https://example.com"))
	if !strings.Contains(out, `target="_blank"`) || !strings.Contains(out, "noopener") {
		t.Errorf("Expected hardened link, got %s", out)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c, err := NewTTLCache[string](4)
	if err != nil {
		t.Fatalf("NewTTLCache: %v", err)
	}
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v", time.Second)
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("Expected cached value, got %q %v", v, ok)
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestTTLCacheGetOrLoad(t *testing.T) {
	c, _ := NewTTLCache[int](4)
	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("answer", time.Minute, load)
		if err != nil || v != 42 {
			t.Fatalf("Unexpected result %d %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected 1 load, got %d", calls)
	}

	if _, err := c.GetOrLoad("broken", time.Minute, func() (int, error) { return 0, errors.New("down") }); err == nil {
		t.Error("Expected load error")
	}
	if _, ok := c.Get("broken"); ok {
		t.Error("Failed load must not be cached")
	}
}
