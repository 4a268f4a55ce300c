package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"neet-quiz/internal/adapter/oracle"
	"neet-quiz/internal/config"
	"neet-quiz/internal/dto"
	"neet-quiz/internal/logger"
	"neet-quiz/internal/service"
	"neet-quiz/internal/validation"

	"go.uber.org/zap"
)

func main() {
	subject := flag.String("subject", "", "subject applied to every -chapters entry")
	chapters := flag.String("chapters", "", "comma separated chapter list")
	jobsFile := flag.String("jobs", "", "JSON file with [{\"subject\":..., \"chapter\":...}] (overrides -subject/-chapters)")
	limit := flag.Int("limit", 0, "questions per quiz (default from config)")
	language := flag.String("language", "english", "english or hindi")
	style := flag.String("style", "", "optional style constraint")
	concurrency := flag.Int("concurrency", 2, "parallel oracle calls")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	var jobsSource io.Reader
	if *jobsFile != "" {
		f, err := os.Open(*jobsFile)
		if err != nil {
			log.Fatal("Failed to open jobs file", zap.String("path", *jobsFile), zap.Error(err))
		}
		defer f.Close()
		jobsSource = f
	}
	jobs, err := parseJobs(*subject, *chapters, jobsSource)
	if err != nil {
		log.Fatal("Invalid batch jobs", zap.Error(err))
	}

	var limitPtr *int
	if *limit != 0 {
		limitPtr = limit
	}
	template, errs := validation.NewValidator(cfg.Quiz).ValidateGenerateQuizRequest(&dto.GenerateQuizRequest{
		Subject:     jobs[0].Subject,
		Chapter:     jobs[0].Chapter,
		Limit:       limitPtr,
		Language:    *language,
		StylePrompt: *style,
	})
	if len(errs) > 0 {
		log.Fatal("Invalid generation parameters", zap.Error(errs))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quizOracle, closeOracle, err := oracle.New(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("Failed to create oracle", zap.Error(err))
	}
	defer closeOracle()

	batch := service.NewBatchService(service.NewQuizService(quizOracle, nil), template, *concurrency, log)
	results, err := batch.GenerateQuizzes(ctx, jobs)
	if err != nil {
		log.Fatal("Batch process failed", zap.Error(err))
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal("Failed to create output file", zap.String("path", *out), zap.Error(err))
		}
		defer f.Close()
		w = f
	}
	if err := writeResults(w, results); err != nil {
		log.Fatal("Failed to write results", zap.Error(err))
	}
	log.Info("Batch process completed", zap.Int("jobs", len(results)))
}

// parseJobs reads jobs from r when given, otherwise pairs subject with each chapter.
func parseJobs(subject, chapters string, r io.Reader) ([]service.BatchJob, error) {
	var jobs []service.BatchJob
	if r != nil {
		if err := json.NewDecoder(r).Decode(&jobs); err != nil {
			return nil, fmt.Errorf("failed to decode jobs: %w", err)
		}
	} else {
		for _, ch := range strings.Split(chapters, ",") {
			if ch = strings.TrimSpace(ch); ch != "" {
				jobs = append(jobs, service.BatchJob{Subject: strings.TrimSpace(subject), Chapter: ch})
			}
		}
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs given")
	}
	for i, j := range jobs {
		if strings.TrimSpace(j.Subject) == "" || strings.TrimSpace(j.Chapter) == "" {
			return nil, fmt.Errorf("job %d: subject and chapter are required", i)
		}
	}
	return jobs, nil
}

func writeResults(w io.Writer, results []service.BatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
