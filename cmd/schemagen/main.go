// Command schemagen renders portable schema-creation DDL from the registered
// model groups. For each selected dialect it writes
// ddl_<dialect>_<source>.sql into the output directory, then strips the
// drop statements the raw script opens with so the artifact can be applied
// to an empty database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"schemagen/internal/config"
	"schemagen/internal/dialect"
	"schemagen/internal/export"
	"schemagen/internal/metrics"
	"schemagen/internal/metrics/datadog"
	"schemagen/internal/metrics/prompush"
	"schemagen/internal/schema"

	// register every dialect renderer with the dialect factory.
	// flags and config select which to run but we build in support for all of them.
	_ "schemagen/internal/dialect/all"

	// register the model groups resolvable by schema source name.
	_ "schemagen/internal/models/all"
)

// main is the entry point for the schemagen binary. It resolves flags,
// environment and the optional config file, optionally initializes a metrics
// backend, and runs the export for one schema source.
func main() {
	var (
		cfgPath           string
		dialectsFlg       string
		metricsBackendFlg string
		metricsURLFlg     string
		metricsJobFlg     string
	)

	flag.StringVar(&cfgPath, "config", "", "generator config YAML path (optional)")
	flag.StringVar(&dialectsFlg, "dialects", "", "comma-separated dialects to render (default postgres,oracle,mysql)")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend to use (e.g. pushgateway, datadog, none)")
	flag.StringVar(&metricsURLFlg, "metrics-url", "", "metrics endpoint (Pushgateway base URL or DogStatsD address)")
	flag.StringVar(&metricsJobFlg, "metrics-job", "", "job name reported to the metrics backend")
	verbose := flag.Bool("v", false, "echo generated statements and enable verbose logs")

	flag.Usage = usage
	flag.Parse()

	// Optional .env so SCHEMAGEN_* settings can come from a file.
	_ = godotenv.Load()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	if cfgPath == "" {
		cfgPath = os.Getenv("SCHEMAGEN_CONFIG")
	}
	var cfg config.Config
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fatalf("%v", err)
		}

		// Validate generator config.
		issues := config.Validate(cfg)
		hasError := false
		for _, iss := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
			if iss.Severity == config.SeverityError {
				hasError = true
			}
		}
		if hasError {
			log.Printf("configuration is invalid: %v", cfgPath)
			os.Exit(1)
		}
	}

	outDir := cfg.OutputDir
	if flag.NArg() > 1 {
		outDir = flag.Arg(1)
	}

	// Decide the dialect set: flag → env → config → default.
	var names []string
	if v := pick(dialectsFlg, "SCHEMAGEN_DIALECTS", ""); v != "" {
		names = splitList(v)
	} else {
		names = cfg.Dialects
	}
	var set []dialect.Descriptor
	for _, n := range names {
		d, err := dialect.ByName(n)
		if err != nil {
			fatalf("%v", err)
		}
		set = append(set, d)
	}

	verb := *verbose || cfg.Verbose

	// Decide metrics backend: flag → env → config → default.
	backendName := pick(metricsBackendFlg, "SCHEMAGEN_METRICS_BACKEND", cfg.Metrics.Backend)
	metricsURL := pick(metricsURLFlg, "SCHEMAGEN_METRICS_URL", cfg.Metrics.URL)
	jobName := pick(metricsJobFlg, "SCHEMAGEN_METRICS_JOB", cfg.Metrics.Job)
	if jobName == "" {
		jobName = "schemagen"
	}

	switch backendName {
	case "pushgateway":
		gwURL := metricsURL
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}

		b, err := prompush.NewBackend(jobName, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: url=%v, backend=%v, job_name=%v", gwURL, backendName, jobName)
			metrics.SetBackend(b)
		}

	case "datadog":
		addr := metricsURL
		if addr == "" {
			addr = "127.0.0.1:8125"
		}

		b, err := datadog.NewBackend(datadog.Config{
			Addr:       addr,
			Namespace:  "schemagen.",
			GlobalTags: []string{"service:" + jobName},
		})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
		} else {
			log.Printf("metrics: addr=%v, backend=%v, job_name=%v", addr, backendName, jobName)
			metrics.SetBackend(b)
		}

	case "", "none":
		// metrics disabled; nop backend remains
		if verb {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}

	start := time.Now()

	sum, err := export.Run(export.Request{
		Source:        source,
		OutDir:        outDir,
		Dialects:      set,
		TypeOverrides: cfg.Overrides(),
		Verbose:       verb,
	})
	if err != nil {
		fatalf("%v", err)
	}

	// Flush before deciding the exit code; os.Exit skips deferred calls.
	if err := metrics.Flush(); err != nil {
		log.Printf("metrics: flush error: %v", err)
	}

	if verb {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
	if sum.Failed > 0 {
		os.Exit(1)
	}
}

// usage prints the command synopsis and flag defaults to stderr.
func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: schemagen [flags] <schema-source> [output-dir]\n\n")
	fmt.Fprintf(out, "Known schema sources: %s.\n\nFlags:\n", strings.Join(schema.Sources(), ", "))
	flag.PrintDefaults()
}

// pick returns the first non-empty value: the flag, then the environment
// variable, then the config file value.
func pick(flagVal, envKey, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return cfgVal
}

// splitList splits a comma-separated list, trimming blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
