package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded and the database is derived from the URI.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_TIMEOUT", "SEED_PARALLELISM"} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Mongo.URI != "mongodb://localhost:27017/trading_analytics_db" {
		t.Fatalf("unexpected default uri %q", AppConfig.Mongo.URI)
	}
	if AppConfig.Mongo.Database != DefaultDatabase || AppConfig.Mongo.Timeout != 10*time.Second {
		t.Fatalf("unexpected mongo defaults: %+v", AppConfig.Mongo)
	}
	if AppConfig.Seed.Count != SeedCount || AppConfig.Seed.Parallelism != 0 {
		t.Fatalf("unexpected seed defaults: %+v", AppConfig.Seed)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27018/analytics?authSource=admin")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("MONGODB_TIMEOUT", "3s")
	t.Setenv("SEED_PARALLELISM", "4")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("port override ignored: %q", AppConfig.Server.Port)
	}
	if AppConfig.Mongo.Database != "analytics" {
		t.Fatalf("expected database from uri path, got %q", AppConfig.Mongo.Database)
	}
	if AppConfig.Mongo.Timeout != 3*time.Second || AppConfig.Seed.Parallelism != 4 {
		t.Fatalf("overrides ignored: %+v %+v", AppConfig.Mongo, AppConfig.Seed)
	}
}

func TestDatabaseName(t *testing.T) {
	cases := []struct {
		name     string
		explicit string
		uri      string
		want     string
	}{
		{name: "explicit wins", explicit: "custom", uri: "mongodb://h/other", want: "custom"},
		{name: "uri path", uri: "mongodb://h:27017/trading", want: "trading"},
		{name: "no path", uri: "mongodb://h:27017", want: DefaultDatabase},
		{name: "bare slash", uri: "mongodb://h:27017/?replicaSet=rs0", want: DefaultDatabase},
		{name: "unparseable", uri: "://", want: DefaultDatabase},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := databaseName(c.explicit, c.uri); got != c.want {
				t.Fatalf("databaseName(%q, %q)=%q, want %q", c.explicit, c.uri, got, c.want)
			}
		})
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}

// TestLoadConfig_ParallelismBounds runs LoadConfig in a subprocess per value and
// expects a fatal exit only outside [0, MaxSeedParallelism].
func TestLoadConfig_ParallelismBounds(t *testing.T) {
	if v := os.Getenv("RUN_PARALLELISM_CASE"); v != "" {
		t.Setenv("SEED_PARALLELISM", v)
		LoadConfig()
		return
	}

	cases := []struct {
		value string
		fatal bool
	}{
		{value: "0"},
		{value: "20"},
		{value: "21", fatal: true},
		{value: "-1", fatal: true},
	}
	for _, c := range cases {
		t.Run("parallelism="+c.value, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run", "^TestLoadConfig_ParallelismBounds$")
			cmd.Env = append(os.Environ(), "RUN_PARALLELISM_CASE="+c.value)
			err := cmd.Run()
			if c.fatal && err == nil {
				t.Fatalf("expected fatal exit for SEED_PARALLELISM=%s", c.value)
			}
			if !c.fatal && err != nil {
				t.Fatalf("unexpected exit for SEED_PARALLELISM=%s: %v", c.value, err)
			}
		})
	}
}
