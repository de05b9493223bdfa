package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"rag-assistant/internal/assistant"
	"rag-assistant/internal/chunker"
	"rag-assistant/internal/config"
	"rag-assistant/internal/domain"
	"rag-assistant/internal/embedding/hashing"
	"rag-assistant/internal/embedding/openai"
	"rag-assistant/internal/llm"
	"rag-assistant/internal/loader"
	"rag-assistant/internal/summarizer"
	"rag-assistant/internal/tui"
	"rag-assistant/internal/vectorstore/memory"
	"rag-assistant/internal/vectorstore/sqlite"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		dataDir string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/rag-assistant/config.yaml if not provided)")
	flag.StringVar(&dataDir, "data", "", "Directory of documents to ingest (overrides config)")
	flag.Parse()

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
	if dataDir != "" {
		cfg.Loader.DataDir = dataDir
	}

	ctx := context.Background()

	// LLM provider selection happens once, up front; without a credential
	// there is nothing useful to run.
	client, err := llm.FromEnv(ctx, time.Duration(cfg.LLM.TimeoutSecs)*time.Second)
	if err != nil {
		log.Fatalf("llm init failed: %v", err)
	}
	fmt.Printf("Using %s model: %s\n", client.Name(), client.Model())

	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "hashing", "":
		emb = hashing.NewEmbedder(cfg.Embedder.Hashing.Dimension)
	case "openai":
		oc, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = oc
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var store domain.VectorStore
	switch cfg.Store.Type {
	case "sqlite", "":
		s, err := sqlite.Open(cfg.Store.SQLite.Path, cfg.Store.Collection)
		if err != nil {
			log.Fatalf("vector store init failed: %v", err)
		}
		store = s
	case "memory":
		store = memory.NewStore()
	default:
		log.Fatalf("unknown vector store: %s", cfg.Store.Type)
	}
	defer store.Close()

	svc := assistant.New(
		chunker.NewRecursiveChunker(cfg.Chunker.ChunkSize, cfg.Chunker.ChunkOverlap),
		emb,
		store,
		client,
	)

	docs, err := loader.Load(cfg.Loader.DataDir)
	if err != nil {
		log.Fatalf("loading documents failed: %v", err)
	}
	fmt.Printf("Loaded %d documents from %s\n", len(docs), cfg.Loader.DataDir)

	added, err := svc.AddDocuments(ctx, docs)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("counting records failed: %v", err)
	}

	summary := corpusSummary(docs)
	header := fmt.Sprintf("%d documents, %d new chunks, %d stored. %s", len(docs), added, total, summary)

	m := tui.New(svc, header, client.Name(), cfg.Retrieval.TopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

func corpusSummary(docs []domain.Document) string {
	if len(docs) == 0 {
		return "No documents ingested."
	}
	var all []byte
	for _, d := range docs {
		all = append(all, d.Content...)
		all = append(all, '\n')
	}
	sum := summarizer.NewFrequencySummarizer()
	text, err := sum.Summarize(string(all), 2)
	if err != nil || text == "" {
		return ""
	}
	return text
}
