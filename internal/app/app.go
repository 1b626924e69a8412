package app

import (
	"context"
	"fmt"

	"github.com/riskpilot/riskpilot/internal/autopopulate"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/llm"
	"github.com/riskpilot/riskpilot/internal/store"
)

// App bundles the wired services behind the CLI. Construct with New,
// release with Close.
type App struct {
	Store       *store.Store
	Assessments store.AssessmentRepo
	Events      store.EventRepo

	// Provider is nil when no LLM is configured. Everything except the
	// generative inference strategy works without one.
	Provider llm.Provider
	Engine   *autopopulate.Engine
}

// New opens the store at dbPath and wires the services. A missing LLM
// configuration is not an error; the returned App simply runs without
// the generative strategy.
func New(ctx context.Context, dbPath string) (*App, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("question catalog: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := &App{
		Store:       st,
		Assessments: st.AssessmentRepo(),
		Events:      st.EventRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, a.Events)
	if err == nil {
		a.Provider = provider
	}
	a.Engine = autopopulate.NewEngine(a.Provider)

	return a, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}
