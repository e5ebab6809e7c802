package config

import (
	"reflect"
	"testing"
	"time"

	"sentilex/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.key("MAX_TEXT"); got != "CORE_API_MAX_TEXT" {
		t.Fatalf("key = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	t.Setenv("CORE_API_LEXICON_PATH", "  /etc/sentilex/lexicon.json ")
	t.Setenv("CORE_API_MAX_TEXT", "2000")
	t.Setenv("CORE_API_MAX_BATCH", "lots")
	t.Setenv("CORE_API_RATE_RPS", "12.5")
	t.Setenv("CORE_API_METRICS", "false")
	t.Setenv("CORE_API_SWAGGER", "maybe")
	t.Setenv("CORE_API_ARCHIVE_TIMEOUT", "750ms")
	t.Setenv("CORE_API_HISTORY_TTL", "soon")

	c := New().Prefix("CORE_API_")

	if got := c.MayString("LEXICON_PATH", ""); got != "/etc/sentilex/lexicon.json" {
		t.Errorf("MayString = %q", got)
	}
	if got := c.MayString("STATIC_DIR", "public"); got != "public" {
		t.Errorf("MayString default = %q", got)
	}
	if got := c.MayInt("MAX_TEXT", 5000); got != 2000 {
		t.Errorf("MayInt = %d", got)
	}
	if got := c.MayInt("MAX_BATCH", 100); got != 100 {
		t.Errorf("MayInt malformed = %d", got)
	}
	if got := c.MayFloat64("RATE_RPS", 20); got != 12.5 {
		t.Errorf("MayFloat64 = %v", got)
	}
	if got := c.MayBool("METRICS", true); got {
		t.Error("MayBool = true")
	}
	if got := c.MayBool("SWAGGER", true); !got {
		t.Error("MayBool malformed should fall back to true")
	}
	if got := c.MayDuration("ARCHIVE_TIMEOUT", time.Second); got != 750*time.Millisecond {
		t.Errorf("MayDuration = %v", got)
	}
	if got := c.MayDuration("HISTORY_TTL", time.Minute); got != time.Minute {
		t.Errorf("MayDuration malformed = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	t.Setenv("CORE_API_CORS_ORIGINS", " http://localhost:3000 ,, https://sentilex.example ")
	t.Setenv("CORE_API_BLANK", " , ,")
	c := New().Prefix("CORE_API_")

	want := []string{"http://localhost:3000", "https://sentilex.example"}
	if got := c.MayCSV("CORS_ORIGINS", nil); !reflect.DeepEqual(got, want) {
		t.Errorf("MayCSV = %v", got)
	}
	if got := c.MayCSV("BLANK", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("MayCSV blank = %v", got)
	}
	if got := c.MayCSV("UNSET", nil); got != nil {
		t.Errorf("MayCSV unset = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	t.Setenv("CORE_API_HISTORY_BACKEND", "Valkey")
	c := New().Prefix("CORE_API_")

	if got := c.MayEnum("HISTORY_BACKEND", "memory", "memory", "valkey"); got != "Valkey" {
		t.Errorf("MayEnum = %q", got)
	}
	if got := c.MayEnum("SCORING_MODE", "blended", "blended", "lexicon-only"); got != "blended" {
		t.Errorf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("UNSET", "", "a"); got != "" {
		t.Errorf("MayEnum empty default = %q", got)
	}

	t.Setenv("CORE_API_HISTORY_BACKEND", "redis")
	testkit.MustPanic(t, func() { c.MayEnum("HISTORY_BACKEND", "memory", "memory", "valkey") })
}
