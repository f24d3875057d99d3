package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/cm-assistant/backend/internal/app"
	"github.com/zhouzirui/cm-assistant/backend/internal/config"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/orchestrator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] .env not loaded, using process environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	question := flag.String("q", "", "question to ask")
	lang := flag.String("lang", "English", "response language name")
	personas := flag.String("personas", "", "comma separated persona ids (default: all)")
	mode := flag.String("mode", "", "dispatch mode: individual or combined (default from DISPATCH_MODE)")
	outPath := flag.String("out", "", "write the answers to this .docx path")
	timeout := flag.Duration("timeout", 3*time.Minute, "overall deadline")

	flag.Parse()

	if strings.TrimSpace(*question) == "" {
		flag.Usage()
		log.Fatal("-q is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	components, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	query := answer.Query{
		Question: *question,
		Language: *lang,
		Personas: splitList(*personas),
	}
	if len(query.Personas) == 0 {
		query.Personas = components.Personas.IDs()
	}

	var opts []orchestrator.RunOption
	if *mode != "" {
		m, err := config.ParseDispatchMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, orchestrator.WithMode(m))
	}

	svc := components.Orchestrator
	if *outPath == "" {
		outcome, err := svc.Run(ctx, query, opts...)
		if err != nil {
			log.Fatalf("submission rejected: %v", err)
		}
		printOutcome(outcome)
		return
	}

	outcome, artifact, err := svc.Export(ctx, query, opts...)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	printOutcome(outcome)

	if err := os.WriteFile(*outPath, artifact.Data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
	log.Printf("document written to %s (%d bytes)", *outPath, len(artifact.Data))
}

func printOutcome(outcome *orchestrator.Outcome) {
	fmt.Printf("submission %s (%s, %s)\n\n", outcome.ID, outcome.Mode, outcome.Language.Name)
	for _, e := range outcome.Answers.Entries() {
		fmt.Printf("== %s ==\n%s\n", entryHeading(e), e.Text)
		if e.Failed() {
			fmt.Printf("(failed: %s %s)\n", e.Failure, e.Detail)
		}
		fmt.Println()
	}
}

func entryHeading(e answer.Entry) string {
	return persona.Persona{ID: e.PersonaID, Label: e.Label, Icon: e.Icon}.DisplayHeading()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
