package config

import "testing"

func TestResolveDefaults_AutoDriver(t *testing.T) {
	c := &Config{DBDriver: "auto"}
	if err := c.ResolveDefaults(); err != nil {
		t.Fatalf("ResolveDefaults: %v", err)
	}
	if c.DBDriver != "sqlite" {
		t.Fatalf("driver = %q, want sqlite", c.DBDriver)
	}

	c = &Config{DBDriver: "auto", PostgresDSN: "postgres://localhost/assistant"}
	if err := c.ResolveDefaults(); err != nil {
		t.Fatalf("ResolveDefaults: %v", err)
	}
	if c.DBDriver != "postgres" {
		t.Fatalf("driver = %q, want postgres", c.DBDriver)
	}
}

func TestResolveDefaults_Invalid(t *testing.T) {
	if err := (&Config{DBDriver: "oracle"}).ResolveDefaults(); err == nil {
		t.Fatal("unsupported driver: want error")
	}
	if err := (&Config{DBDriver: "postgres"}).ResolveDefaults(); err == nil {
		t.Fatal("postgres without DSN: want error")
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	c := NewForTesting()
	if !c.IsTesting() || c.IsProduction() {
		t.Fatal("testing env misreported")
	}
	if c.GetHTTPAddr() != ":8080" {
		t.Fatalf("addr = %q", c.GetHTTPAddr())
	}
}
