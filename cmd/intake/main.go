package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"resume-intake/client"
	"resume-intake/domain"
	"resume-intake/fingerprint"
	"resume-intake/intake"
	"resume-intake/ui"
	"resume-intake/validation"
)

// Exit codes for the intake CLI.
const (
	exitOK         = 0
	exitRuntime    = 1
	exitConfig     = 2
	exitValidation = 3
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "intake error: %v\n", err)
	}
	os.Exit(code)
}

// run loads configuration, wires the orchestrator, and performs one
// upload session for the files named on the command line. Returning the
// exit code instead of calling os.Exit keeps defers and tests working.
func run() (int, error) {
	// 1. Configuration.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wiring.
	httpClient := &http.Client{Timeout: config.UploadTimeout}
	uploadClient := client.NewUploadClient(config.ServiceURL, httpClient, log)
	orchestrator := intake.NewOrchestrator(
		log,
		validation.NewValidator(config.ValidationConfig()),
		fingerprint.NewEngine(),
		uploadClient,
	)

	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: intake <resume-file>")
		return exitConfig, nil
	}

	// 4. Optional health probe, status display only.
	if !config.SkipHealthProbe {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		health, err := uploadClient.UploadHealth(probeCtx)
		cancel()
		if err != nil {
			log.Warn("Upload service health probe failed", "error", err)
		} else {
			ui.RenderUploadHealth(os.Stdout, health)
		}
	}

	// 5. Selection. Every named path becomes a candidate so a multi-file
	// invocation is rejected by the validator, not by the CLI.
	candidates := make([]domain.CandidateFile, 0, len(paths))
	for _, path := range paths {
		candidate, err := domain.NewCandidateFile(path)
		if err != nil {
			return exitRuntime, err
		}
		candidates = append(candidates, candidate)
	}

	verdict, err := orchestrator.Select(ctx, candidates...)
	if err != nil {
		return exitRuntime, err
	}
	ui.RenderVerdict(os.Stdout, verdict)
	if !verdict.IsValid {
		return exitValidation, nil
	}

	// 6. Give the background fingerprint a moment, for display only.
	waitForFingerprint(ctx, orchestrator, config.FingerprintWait)
	ui.RenderFingerprint(os.Stdout, orchestrator.Snapshot())

	// 7. Submission.
	receipt, err := orchestrator.Submit(ctx)
	if err != nil {
		ui.RenderFailure(os.Stdout, orchestrator.Snapshot().Failure)
		return exitRuntime, err
	}
	ui.RenderReceipt(os.Stdout, receipt)

	// 8. End the session cleanly.
	if err := orchestrator.Reset(); err != nil {
		log.Warn("Session reset failed", "error", err)
	}

	return exitOK, nil
}

// waitForFingerprint polls the snapshot until the digest resolves or the
// budget runs out. Submission never depends on the result.
func waitForFingerprint(ctx context.Context, o *intake.Orchestrator, budget time.Duration) {
	deadline := time.Now().Add(budget)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		if o.Snapshot().FingerprintStatus != intake.FingerprintComputing {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
