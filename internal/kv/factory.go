package kv

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	ModeMemory   = "memory"
	ModeFile     = "file"
	ModePostgres = "postgres"
	ModeAuto     = "auto"
)

// NewFromMode builds the backend selected by mode.
// auto: postgres when databaseURL is set, otherwise file when dataDir is
// set, otherwise memory.
func NewFromMode(ctx context.Context, mode, databaseURL, dataDir string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeMemory, "":
		log.Println("kv: using in-memory backend (data is not persisted)")
		return NewMemory(), nil

	case ModeFile:
		log.Printf("kv: using file backend dir=%s", dataDir)
		return NewFile(dataDir)

	case ModePostgres:
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("kv: KV_MODE=postgres but DATABASE_URL is empty")
		}
		log.Println("kv: using postgres backend")
		return NewPostgres(ctx, databaseURL)

	case ModeAuto:
		if strings.TrimSpace(databaseURL) != "" {
			backend, err := NewPostgres(ctx, databaseURL)
			if err != nil {
				log.Printf("kv: postgres connection failed: %v", err)
				log.Println("kv: falling back to in-memory backend")
				return NewMemory(), nil
			}
			log.Println("kv: using postgres backend")
			return backend, nil
		}
		if strings.TrimSpace(dataDir) != "" {
			log.Printf("kv: using file backend dir=%s", dataDir)
			return NewFile(dataDir)
		}
		log.Println("kv: using in-memory backend (data is not persisted)")
		return NewMemory(), nil

	default:
		return nil, fmt.Errorf("kv: unknown KV_MODE %q", mode)
	}
}
