package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/subtitletools/srt-translator/internal/config"
	"github.com/subtitletools/srt-translator/internal/session"
	"github.com/subtitletools/srt-translator/internal/store"
	"github.com/subtitletools/srt-translator/internal/translator"
	"github.com/subtitletools/srt-translator/pkg/log"
)

type options struct {
	inPath     string
	outPath    string
	sourceLang string
	targetLang string
	setKey     string
	showUsage  bool
}

func main() {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.inPath, "in", "", "input SRT file")
	flag.StringVar(&opts.outPath, "out", "", "output SRT file")
	flag.StringVar(&opts.sourceLang, "source", "", "source language code (empty = auto-detect)")
	flag.StringVar(&opts.targetLang, "target", "", "target language code")
	flag.StringVar(&opts.setKey, "set-key", "", "persist the DeepL API key and exit")
	flag.BoolVar(&opts.showUsage, "usage", false, "print provider-side quota usage and exit")
	flag.Parse()

	log.InitLogger(log.ParseLevel(os.Getenv("LOG_LEVEL")))

	// Fatal paths return through here so deferred closes inside run (file
	// logger, settings store) flush before the process exits.
	if err := run(opts); err != nil {
		log.Error("%v", err)
		log.Error("advice: %s", session.Advice(err))
		os.Exit(1)
	}
}

func run(opts options) error {
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		fl, err := log.InitFileLogger(logFile, log.ParseLevel(os.Getenv("LOG_LEVEL")))
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer fl.Close()
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	settings, err := store.NewSQLiteStore(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer settings.Close()

	if opts.setKey != "" {
		if err := settings.Set(store.KeyAPIKey, opts.setKey); err != nil {
			return fmt.Errorf("save API key: %w", err)
		}
		log.Info("API key saved")
		return nil
	}

	apiKey, err := resolveAPIKey(settings, cfg)
	if err != nil {
		return err
	}

	client := translator.NewDeepLClient(apiKey,
		translator.WithBaseURL(cfg.DeepL.APIURL),
		translator.WithTimeout(time.Duration(cfg.DeepL.Timeout)*time.Second),
	)

	if opts.showUsage {
		usage, err := client.Usage(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		fmt.Printf("characters used: %d / %d\n", usage.CharacterCount, usage.CharacterLimit)
		return nil
	}

	if opts.inPath == "" || opts.outPath == "" {
		flag.Usage()
		return fmt.Errorf("both -in and -out are required")
	}

	target := opts.targetLang
	if target == "" {
		target = cfg.Translate.TargetLang
	}
	source := opts.sourceLang
	if source == "" {
		source = cfg.Translate.SourceLang
	}

	raw, err := os.ReadFile(opts.inPath)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	sess := session.New(client, settings, cfg.Translate.QuotaLimit)

	if err := sess.Load(string(raw)); err != nil {
		return err
	}
	status := sess.Quota()
	log.Info("Loaded %s: %d chars against limit %d", opts.inPath, status.TotalChars, status.Limit)

	if err := sess.Translate(context.Background(), source, target); err != nil {
		return err
	}

	out, err := sess.Serialize()
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.outPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	log.Info("Wrote %s", opts.outPath)
	return nil
}

// resolveAPIKey prefers the persisted key and falls back to the
// environment; an environment key is seeded into the store so the session
// precondition check and the client agree on the credential.
func resolveAPIKey(settings *store.SQLiteStore, cfg *config.Config) (string, error) {
	key, ok, err := settings.Get(store.KeyAPIKey)
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}
	if ok && key != "" {
		return key, nil
	}

	if cfg.DeepL.APIKey != "" {
		if err := settings.Set(store.KeyAPIKey, cfg.DeepL.APIKey); err != nil {
			log.Warn("Failed to persist API key from environment: %v", err)
		}
		return cfg.DeepL.APIKey, nil
	}
	return "", nil
}
