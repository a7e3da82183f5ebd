package stealpool

import "testing"

func TestConfig_DefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Policy != WaitCurrent {
		t.Errorf("default Policy = %v, want WaitCurrent", cfg.Policy)
	}
	if cfg.QueueCapacity != minDequeCapacity {
		t.Errorf("default QueueCapacity = %d, want %d", cfg.QueueCapacity, minDequeCapacity)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfig_Validate_RejectsNegativeQueueCapacity(t *testing.T) {
	cfg := defaultConfig()
	cfg.QueueCapacity = -1
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for negative QueueCapacity")
	}
}

func TestConfig_Validate_RejectsNegativeCPU(t *testing.T) {
	cfg := defaultConfig()
	cfg.CPUAffinity = []int{0, -1}
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for negative CPU id")
	}
}

func TestOptions_ApplyOverDefaults(t *testing.T) {
	cfg := defaultConfig()
	opts := []Option{
		WithPolicy(WaitAll),
		WithQueueCapacity(64),
		WithCPUAffinity(0, 1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Policy != WaitAll {
		t.Errorf("Policy = %v, want WaitAll", cfg.Policy)
	}
	if cfg.QueueCapacity != 64 {
		t.Errorf("QueueCapacity = %d, want 64", cfg.QueueCapacity)
	}
	if len(cfg.CPUAffinity) != 2 {
		t.Errorf("CPUAffinity = %v, want length 2", cfg.CPUAffinity)
	}
}
