package chunker

import (
	"fmt"
	"strings"
)

// Defaults: 400-token chunks with a 100-token overlap.
// One token is approximated as 0.75 words, so these translate to
// 300-word windows advancing 225 words at a time.
const (
	DefaultChunkSizeTokens = 400
	DefaultOverlapTokens   = 100

	wordsPerToken = 0.75
)

// Config holds the chunking parameters in tokens.
type Config struct {
	ChunkSizeTokens int
	OverlapTokens   int
}

func DefaultConfig() Config {
	return Config{
		ChunkSizeTokens: DefaultChunkSizeTokens,
		OverlapTokens:   DefaultOverlapTokens,
	}
}

// Validate rejects configurations whose window step would be zero or negative.
// Callers are expected to fail startup on this error, not fall back.
func (c Config) Validate() error {
	if c.ChunkSizeTokens <= 0 {
		return fmt.Errorf("chunker config: chunk size must be positive, got %d", c.ChunkSizeTokens)
	}
	if c.wordsPerChunk()-c.wordsOverlap() < 1 {
		return fmt.Errorf(
			"chunker config: overlap %d leaves no forward step for chunk size %d",
			c.OverlapTokens, c.ChunkSizeTokens,
		)
	}
	return nil
}

func (c Config) wordsPerChunk() int {
	return int(float64(c.ChunkSizeTokens) * wordsPerToken)
}

func (c Config) wordsOverlap() int {
	return int(float64(c.OverlapTokens) * wordsPerToken)
}

// Chunker splits plain text into overlapping word windows.
type Chunker struct {
	wordsPerChunk int
	wordsOverlap  int
}

// New builds a Chunker from cfg. The config must already be validated;
// New validates again defensively and panics on a broken config since
// that is a programming error, never runtime input.
func New(cfg Config) *Chunker {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Chunker{
		wordsPerChunk: cfg.wordsPerChunk(),
		wordsOverlap:  cfg.wordsOverlap(),
	}
}

// Split cuts text into chunks of wordsPerChunk whitespace-delimited words,
// each window starting wordsPerChunk-wordsOverlap words after the previous one.
// Output order is reading order; the slice index is the chunk's position.
// Empty or whitespace-only input yields no chunks.
func (c *Chunker) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := c.wordsPerChunk - c.wordsOverlap
	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + c.wordsPerChunk
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.TrimSpace(strings.Join(words[i:end], " "))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
