// Package cli handles interactive and batch stdin input for cmd/kotoba.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Zubayear/kotoba/queue"
	"github.com/Zubayear/kotoba/suggest"
	"github.com/Zubayear/kotoba/trie"
)

// InputHandler reads words from stdin and prints their suggestions. In
// interactive mode it prompts and answers one line at a time; in batch
// mode it drains every line through a FIFO queue before printing anything,
// so a pipe of many words is processed in the order it arrived.
type InputHandler struct {
	roots        []*trie.Root
	opts         suggest.Options
	requestCount int
}

// NewInputHandler returns a handler that looks up suggestions against
// roots using opts.
func NewInputHandler(roots []*trie.Root, opts suggest.Options) *InputHandler {
	return &InputHandler{roots: roots, opts: opts}
}

// Start runs the interactive loop: prompt, read a line, print suggestions,
// repeat until r is exhausted or returns an error.
func (h *InputHandler) Start(r io.Reader) error {
	log.Print("kotoba [suggest]")
	reader := bufio.NewReader(r)
	log.Print("type a word and press Enter to see corrections (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		h.handle(word)
	}
}

// Batch drains every line of r into a FIFO queue.Queue first, then answers
// each query in arrival order. Unlike Start, it does not interleave
// reading and printing — useful for piping a wordlist through in one shot.
func (h *InputHandler) Batch(r io.Reader) error {
	pending := queue.NewQueue[string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			pending.Enqueue(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for !pending.IsEmpty() {
		word, err := pending.Dequeue()
		if err != nil {
			return err
		}
		h.handle(word)
	}
	return nil
}

func (h *InputHandler) handle(word string) {
	h.requestCount++
	start := time.Now()
	results, err := suggest.Suggest(h.roots, word, h.opts)
	elapsed := time.Since(start)
	log.Debugf("took [ %v ] for %q", elapsed, word)

	if err != nil {
		log.Errorf("suggest error for %q: %v", word, err)
		return
	}

	if len(results) == 0 {
		log.Warnf("no suggestions found for %q", word)
		return
	}

	log.Printf("found %d suggestions for %q:", len(results), word)
	for i, s := range results {
		colored := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-30s (cost: %4d)", i+1, colored, s.Cost)
	}
}
