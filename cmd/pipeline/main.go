package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-quiz/internal/config"
	"github.com/nguyentantai21042004/video-quiz/internal/fetcher"
	"github.com/nguyentantai21042004/video-quiz/internal/gemini"
	"github.com/nguyentantai21042004/video-quiz/internal/job"
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"github.com/nguyentantai21042004/video-quiz/internal/notifier"
	"github.com/nguyentantai21042004/video-quiz/internal/pipeline"
	"github.com/nguyentantai21042004/video-quiz/internal/uploader"
	"github.com/nguyentantai21042004/video-quiz/internal/watcher"
	"github.com/nguyentantai21042004/video-quiz/internal/writer"
	"github.com/nguyentantai21042004/video-quiz/pkg/executor"
)

type flags struct {
	configPath string
	envPath    string
	url        string
	questions  int
	format     string
	summary    bool
	watch      bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "config.yaml", "path to config file")
	flag.StringVar(&f.envPath, "env", ".env", "path to .env file holding the API key")
	flag.StringVar(&f.url, "url", "", "YouTube video URL (prompted when empty)")
	flag.IntVar(&f.questions, "questions", 0, "number of quiz questions (prompted when zero and -url is empty)")
	flag.StringVar(&f.format, "format", "", "output format: txt or docx (prompted when empty)")
	flag.BoolVar(&f.summary, "summary", false, "summarize the video and add a quiz with answer key")
	flag.BoolVar(&f.watch, "watch", false, "process request files dropped into the inbox directory")
	flag.Parse()
	return f
}

func main() {
	ctx := context.Background()
	f := parseFlags()

	// Load configuration
	if err := config.LoadEnv(f.envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Quiz Generator")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Max video length: %s", cfg.MaxDuration())

	if err := ensureDirectories(cfg, f.watch); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		log.Error(ctx, "Missing API key: %v", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Initialize dependencies
	svc, err := gemini.New(ctx, apiKey, cfg.Gemini.Model, log)
	if err != nil {
		log.Error(ctx, "Failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	notify := notifier.NewTerminal(os.Stderr, log)

	fetch := fetcher.New(cfg.Download.BinaryPath, cfg.Download.Format, executor.New(), log)
	upload := uploader.New(svc, uploader.Policy{
		Interval: cfg.Polling.Interval,
		Timeout:  cfg.Polling.Timeout,
	}, log)
	pipe := pipeline.New(fetch, upload, svc, log, pipeline.Options{
		DownloadDir:    cfg.Download.Dir,
		MaxDuration:    cfg.MaxDuration(),
		RequestTimeout: cfg.Gemini.RequestTimeout,
		KeepDownloads:  cfg.Download.Keep,
		OnProgress: func(ev models.ProgressEvent) {
			notify.Progress(ctx, ev)
		},
	})

	var code int
	if f.watch {
		code = runWatch(ctx, cancel, cfg, pipe, log)
	} else {
		code = runOnce(ctx, cancel, cfg, f, pipe, notify, log)
	}

	cancel()
	notify.Done()
	log.Info(ctx, "Video Quiz Generator stopped")
	os.Exit(code)
}

// runOnce handles a single URL, asking for anything the flags left out
func runOnce(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, f flags,
	pipe pipeline.Pipeline, notify notifier.Notifier, log logger.Logger) int {
	prompt := notifier.NewPrompter(os.Stdin, os.Stdout)
	interactive := f.url == ""

	videoURL := f.url
	if interactive {
		u, err := prompt.URL()
		if err != nil {
			log.Error(ctx, "Please enter a valid YouTube URL: %v", err)
			return 1
		}
		videoURL = u
	}

	questions := f.questions
	if !f.summary && questions <= 0 {
		if interactive {
			n, err := prompt.QuestionCount()
			if err != nil {
				log.Error(ctx, "Please enter a valid number of questions: %v", err)
				return 1
			}
			questions = n
		} else {
			questions = cfg.Quiz.Questions
		}
	}

	notify.LogLine(ctx, "Validating URL...")

	// Setup graceful shutdown once the prompts are answered
	sigChan := shutdownSignals()
	defer signal.Stop(sigChan)

	type outcome struct {
		result models.QuizResult
		err    error
	}
	done := make(chan outcome, 1)

	// Run the pipeline in the background so signals stay responsive
	go func() {
		var o outcome
		if f.summary {
			o.result, o.err = pipe.Summarize(ctx, videoURL)
		} else {
			o.result, o.err = pipe.Run(ctx, models.QuizRequest{VideoURL: videoURL, QuestionCount: questions})
		}
		done <- o
	}()

	var o outcome
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received, cancelling...")
		cancel()
		o = <-done
	case o = <-done:
	}
	notify.Done()

	if o.err != nil {
		if errors.Is(o.err, context.Canceled) {
			log.Info(ctx, "Cancelled")
		} else {
			log.Error(ctx, "Failed to analyze video: %v", o.err)
		}
		return 1
	}

	notify.LogLine(ctx, "Video Analysis Response:")
	notify.LogLine(ctx, o.result.Text)

	format, err := chooseFormat(f.format, cfg, interactive, prompt)
	if err != nil {
		log.Error(ctx, "Invalid output format: %v", err)
		return 1
	}

	basename := writer.DefaultBasename
	if f.summary {
		basename = "summary"
	}
	if _, err := writer.New(cfg.Paths.Output, basename, log).Save(ctx, o.result, format); err != nil {
		log.Error(ctx, "Failed to save result: %v", err)
		return 1
	}
	return 0
}

func chooseFormat(flagValue string, cfg *config.Config, interactive bool, prompt notifier.Prompter) (models.Format, error) {
	if flagValue != "" {
		return models.ParseFormat(flagValue)
	}
	if !interactive {
		return models.ParseFormat(cfg.Quiz.OutputFormat)
	}
	plain, err := prompt.ConfirmPlainText()
	if err != nil {
		return models.PlainText, err
	}
	if plain {
		return models.PlainText, nil
	}
	return models.RichDocument, nil
}

// runWatch processes inbox request files until a shutdown signal arrives
func runWatch(ctx context.Context, cancel context.CancelFunc, cfg *config.Config,
	pipe pipeline.Pipeline, log logger.Logger) int {
	sigChan := shutdownSignals()
	defer signal.Stop(sigChan)

	runner := job.New(pipe, job.Paths{
		Output:   cfg.Paths.Output,
		Archived: cfg.Paths.Archived,
	}, job.Defaults{
		Questions: cfg.Quiz.Questions,
		Format:    cfg.Quiz.OutputFormat,
	}, log)

	w, err := watcher.New(cfg.Paths.Inbox, runner.Handle, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		SettleDelay:   watcher.DefaultSettleDelay,
	})
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Watching inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		<-errChan
		return 0
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		return 1
	}
}

func shutdownSignals() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	return sigChan
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config, watch bool) error {
	dirs := []string{
		cfg.Download.Dir,
		cfg.Paths.Output,
	}
	if watch {
		dirs = append(dirs, cfg.Paths.Inbox, cfg.Paths.Archived)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
