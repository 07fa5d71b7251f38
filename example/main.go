// FILE: lixenwraith/unixconfig/example/main.go
package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/unixconfig"
)

// AppConfig is the typed view of the [server] section.
type AppConfig struct {
	Host     string        `ini:"host"`
	Port     int           `ini:"port"`
	Timeout  time.Duration `ini:"timeout"`
	Backends []string      `ini:"backend"`
}

const systemConfig = `# system defaults
log_level=info

[server]
host = localhost
port = 8080
timeout = 5s
backend = 10.0.0.1
`

const userConfig = `log_level=debug

[server]
port = 9090   ; user override
backend = 10.0.0.2
not a directive
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Create a system file and a user file to layer.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating layered configuration files...")

	dir, err := os.MkdirTemp("", "unixconfig-example")
	if err != nil {
		log.Fatalf("❌ Failed to create temp dir: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(dir)
	}()

	systemPath := filepath.Join(dir, "system", "myapp.conf")
	userPath := filepath.Join(dir, "user", "myapp.conf")
	for path, content := range map[string]string{systemPath: systemConfig, userPath: userConfig} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatalf("❌ Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", path, err)
		}
	}
	log.Printf("✅ Wrote %s and %s.", systemPath, userPath)

	// =========================================================================
	// PART 2: BUILD WITH DISCOVERY
	// System directory first, user directory second; push keeps that order.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Building config from discovered files...")

	cfg, err := unixconfig.NewBuilder().
		WithWarningHandler(func(w unixconfig.Warning) {
			log.Printf("⚠️  %v", w)
		}).
		WithDiscovery(unixconfig.DiscoveryOptions{
			Name:       "myapp",
			Extensions: []string{".conf"},
			Paths:      []string{filepath.Join(dir, "system"), filepath.Join(dir, "user")},
		}).
		WithValidator(func(c *unixconfig.Config) error {
			if !c.KeyExists("server", "host") {
				return unixconfig.ErrConfigNotFound
			}
			return nil
		}).
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}

	level, _ := cfg.LastValue("", "log_level")
	port, _ := cfg.LastValue("server", "port")
	backends, _ := cfg.Values("server", "backend")
	log.Printf("✅ log_level=%s port=%s backends=%v (last wins)", level, port, backends)

	// =========================================================================
	// PART 3: TYPED VIEW AND OUTPUT
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Scanning [server] and writing the merged file...")

	var app AppConfig
	if err := cfg.Scan("server", &app); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	log.Printf("✅ %+v", app)

	mergedPath := filepath.Join(dir, "merged.conf")
	if err := cfg.WriteFile(mergedPath, " merged by example"); err != nil {
		log.Fatalf("❌ WriteFile failed: %v", err)
	}
	data, _ := os.ReadFile(mergedPath)
	log.Printf("✅ %s:\n%s", mergedPath, data)

	if err := cfg.Export(os.Stdout, unixconfig.FormatYAML); err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
}
