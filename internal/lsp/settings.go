package lsp

import (
	"encoding/json"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/dialect"
	"cglogic/internal/driver"
	"cglogic/internal/project"
)

// lspSettings: секция "cglogic" в настройках клиента.
type lspSettings struct {
	Cglogic struct {
		Notation       *string `json:"notation"`
		Validate       *bool   `json:"validate"`
		MaxDiagnostics *int    `json:"maxDiagnostics"`
	} `json:"cglogic"`
}

// loadProjectConfig reads cglogic.toml above the workspace root. A broken
// file is logged and the current options are kept.
func (s *Server) loadProjectConfig(root string) {
	cfg, err := project.Discover(root)
	if err != nil {
		s.log.Errorf("config: %s", err)
		return
	}
	opts := driver.OptionsFromConfig(cfg)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Notation = opts.Notation
	s.opts.Validate = opts.Validate
	s.opts.MaxDiagnostics = opts.MaxDiagnostics
	if cfg.Path != "" {
		s.log.Infof("using %s", cfg.Path)
	}
}

func (s *Server) didChangeConfiguration(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	s.applySettings(params.Settings)
	// перепроверяем открытые документы с новыми настройками
	s.mu.Lock()
	docs := make([]*document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	s.mu.Unlock()
	for _, doc := range docs {
		next := *doc
		s.refresh(ctx, &next)
	}
	return nil
}

// applySettings accepts the decoded JSON value sent by the client
// (initializationOptions or workspace/didChangeConfiguration).
func (s *Server) applySettings(raw any) {
	if raw == nil {
		return
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warningf("settings: %s", err)
		return
	}
	c := settings.Cglogic
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Notation != nil {
		n, _ := dialect.ParseNotation(*c.Notation)
		s.opts.Notation = n
	}
	if c.Validate != nil {
		s.opts.Validate = *c.Validate
	}
	if c.MaxDiagnostics != nil && *c.MaxDiagnostics >= 0 {
		s.opts.MaxDiagnostics = *c.MaxDiagnostics
	}
}
