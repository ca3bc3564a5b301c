package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Analysis.BulkThreshold != 5 {
		t.Fatalf("bulkThreshold = %d, want 5", cfg.Analysis.BulkThreshold)
	}
	if cfg.Analysis.UnitPrice != 1500 {
		t.Fatalf("unitPrice = %d, want 1500", cfg.Analysis.UnitPrice)
	}
	if cfg.Server.Port <= 0 {
		t.Fatalf("invalid default port %d", cfg.Server.Port)
	}
}

func TestValidBulkThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{50, true},
		{51, false},
		{-3, false},
	}
	for _, tt := range tests {
		if got := ValidBulkThreshold(tt.in); got != tt.want {
			t.Fatalf("ValidBulkThreshold(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KYOZAI_BULK_THRESHOLD", "9")
	t.Setenv("KYOZAI_PORT", "18080")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Analysis.BulkThreshold != 9 {
		t.Fatalf("bulkThreshold = %d, want 9", cfg.Analysis.BulkThreshold)
	}
	if cfg.Server.Port != 18080 {
		t.Fatalf("port = %d, want 18080", cfg.Server.Port)
	}

	// 定義域外の環境変数は無視される
	t.Setenv("KYOZAI_BULK_THRESHOLD", "99")
	cfg = DefaultConfig()
	applyEnvOverrides(cfg)
	if cfg.Analysis.BulkThreshold != 5 {
		t.Fatalf("bulkThreshold = %d, want default 5", cfg.Analysis.BulkThreshold)
	}
}
