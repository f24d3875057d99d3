// Package app assembles the services shared by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/zhouzirui/cm-assistant/backend/internal/config"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/ai"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/document"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/orchestrator"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/translate"
)

// Components are the long-lived services built at startup.
type Components struct {
	Personas     *persona.MemoryStore
	Languages    *language.Directory
	Orchestrator *orchestrator.Service
}

// LoadPersonas returns the registry from cfg.PersonaFile, or the built-in seed.
func LoadPersonas(cfg *config.Config) (*persona.MemoryStore, error) {
	if cfg.PersonaFile == "" {
		return persona.NewMemoryStore(persona.Seed()), nil
	}
	store, err := persona.LoadFile(cfg.PersonaFile)
	if err != nil {
		return nil, fmt.Errorf("loading personas: %w", err)
	}
	log.Printf("[app] loaded %d personas from %s", len(store.List()), cfg.PersonaFile)
	return store, nil
}

// Build wires the registries and the answer pipeline. When the model
// credential is missing, Orchestrator is nil and the error explains why.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	personas, err := LoadPersonas(cfg)
	if err != nil {
		return nil, err
	}

	languages, err := language.NewDirectory(language.Seed())
	if err != nil {
		return nil, err
	}

	c := &Components{Personas: personas, Languages: languages}

	gateway, err := ai.NewService(ctx, cfg.Model)
	if err != nil {
		return c, fmt.Errorf("initializing model gateway: %w", err)
	}

	translator := translate.NewService(translate.Options{
		BaseURL: cfg.Translate.BaseURL,
		Timeout: cfg.Translate.Timeout,
	})

	svc, err := orchestrator.NewService(orchestrator.Options{
		Personas:    personas,
		Languages:   languages,
		Gateway:     gateway,
		Translator:  translator,
		Assembler:   document.NewBuilder(),
		Mode:        cfg.Dispatch.Mode,
		Concurrency: cfg.Dispatch.Concurrency,
	})
	if err != nil {
		return c, err
	}
	c.Orchestrator = svc
	return c, nil
}
