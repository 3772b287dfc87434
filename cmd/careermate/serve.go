package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jsexpertdev/ostad-ai-agent/internal/classifier"
	"github.com/jsexpertdev/ostad-ai-agent/internal/config"
	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/llm"
	"github.com/jsexpertdev/ostad-ai-agent/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the chat, skills, jobs and health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	kb := knowledge.New()

	// No API key means rule-based classification only; the server still
	// answers every query.
	opts := []classifier.Option{classifier.WithTimeout(cfg.ClassifierTimeout)}
	if cfg.GeminiAPIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.ClassifierModel != "" {
			llmConfig = llmConfig.WithModel(llm.TierLite, cfg.ClassifierModel)
		}
		client, err := llm.NewClient(context.Background(), llmConfig, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing LLM client: %v", err)
			}
		}()
		opts = append(opts, classifier.WithClient(client))
	} else {
		log.Println("GEMINI_API_KEY not set; using rule-based classification only")
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		KB:         kb,
		Classifier: classifier.New(kb, opts...),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
