package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vigcrack/internal/config"
	"vigcrack/internal/cracker"
	"vigcrack/internal/domain"
	"vigcrack/internal/freq"
	"vigcrack/internal/history"
	"vigcrack/internal/kasiski"
	"vigcrack/internal/oracle"
	"vigcrack/internal/report"
	"vigcrack/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var auto bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/vigcrack/config.yaml if not provided)")
	flag.BoolVar(&auto, "auto", false, "Run without the TUI using the configured non-interactive oracle")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) > 1 {
		fmt.Println("Usage: vigcrack [--config=vigcrack.yaml] [--auto] [ciphertext.txt]")
		os.Exit(1)
	}

	if cfgPath == "" {
		cfgPath = os.Getenv("VIGCRACK_CONFIG")
	}
	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ciphertext, err := readInput(inputs)
	if err != nil {
		log.Fatalf("failed to read ciphertext: %v", err)
	}

	estimator := kasiski.New(cfg.Analysis.MaxKeyLength, cfg.Analysis.TopCandidates)
	model := freq.NewEnglishModel()
	hist := history.NewLog()
	opts := cracker.Options{
		ManualMin:    cfg.Manual.MinLength,
		ManualMax:    cfg.Manual.MaxLength,
		PreviewChars: cfg.PreviewChars,
	}

	mode := cfg.Oracle.Type
	if auto && mode == "tui" {
		mode = "auto"
	}

	switch mode {
	case "tui", "":
		runTUI(ciphertext, estimator, model, hist, opts)
	case "auto":
		rejectFirst := 0
		if cfg.Oracle.Auto != nil {
			rejectFirst = cfg.Oracle.Auto.RejectFirst
		}
		runBatch(ciphertext, estimator, model, hist, opts, oracle.AcceptAfter(rejectFirst))
	case "script":
		if cfg.Oracle.Script == nil {
			log.Fatalf("script oracle config missing")
		}
		answers := make([]bool, len(cfg.Oracle.Script.Answers))
		for i, a := range cfg.Oracle.Script.Answers {
			answers[i] = a == "y" || a == "yes" || a == "true"
		}
		runBatch(ciphertext, estimator, model, hist, opts, oracle.Scripted(answers))
	default:
		log.Fatalf("unknown oracle type: %s", cfg.Oracle.Type)
	}
}

func runTUI(ciphertext string, estimator domain.Estimator, model *freq.Model, hist *history.Log, opts cracker.Options) {
	ch := oracle.NewChannel()
	events := make(chan tea.Msg, 4)
	results := make(chan tui.Outcome, 1)

	c := cracker.New(estimator, model, ch, tui.NewReporter(events), hist, opts)
	go func() {
		res, err := c.Crack(ciphertext)
		results <- tui.Outcome{Result: res, Err: err}
	}()

	m := tui.New(ch, events, results, hist)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func runBatch(ciphertext string, estimator domain.Estimator, model *freq.Model, hist *history.Log, opts cracker.Options, orc domain.Oracle) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	c := cracker.New(estimator, model, orc, report.NewLogger(logger), hist, opts)
	res, err := c.Crack(ciphertext)
	if err != nil {
		log.Fatalf("crack failed: %v", err)
	}
	if !res.Found {
		fmt.Println("No key accepted within the candidate space.")
		os.Exit(1)
	}
	fmt.Printf("Key: %s\n\n%s\n", res.Key, res.Plaintext)
}

func readInput(inputs []string) (string, error) {
	if len(inputs) == 1 {
		data, err := os.ReadFile(inputs[0])
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}
