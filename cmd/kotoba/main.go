/*
Command kotoba is a spelling-correction CLI over the kotoba suggestion
engine.

It loads a dictionary file (and an optional forbidden-word file) into a
trie.Root, then
either runs an interactive stdin loop, drains a batch of words from stdin
through a FIFO queue, or answers a single word given on the command line —
printing results as colored text, JSON, or MessagePack.
*/
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Zubayear/kotoba/internal/cli"
	"github.com/Zubayear/kotoba/internal/config"
	"github.com/Zubayear/kotoba/internal/logging"
	"github.com/Zubayear/kotoba/suggest"
	"github.com/Zubayear/kotoba/trie"
)

const (
	version = "0.1.0"
	appName = "kotoba"
)

var appLog = logging.Default(appName)

func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	dictPath := flag.String("dict", defaultConfig.Dict.WordsPath, "Path to a newline-delimited dictionary file")
	forbiddenPath := flag.String("forbidden", defaultConfig.Dict.ForbiddenPath, "Path to a newline-delimited forbidden-word file (optional)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	interactive := flag.Bool("i", false, "Run the interactive stdin loop")
	batch := flag.Bool("batch", false, "Read every line of stdin into a queue, then answer each in order")
	numSuggestions := flag.Int("n", defaultConfig.CLI.DefaultNumSuggestions, "Number of suggestions to return")
	ignoreCase := flag.Bool("ignore-case", defaultConfig.CLI.DefaultIgnoreCase, "Match case/accent-folded dictionary entries too")
	includeTies := flag.Bool("ties", defaultConfig.CLI.DefaultIncludeTies, "Keep every suggestion tied with the worst kept cost")
	out := flag.String("out", defaultConfig.CLI.DefaultOutputFormat, "Output format: text, json, or msgpack")

	flag.Parse()

	if *showVersion {
		printVersionBanner()
		return
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	appLog.SetLevel(log.GetLevel())

	appConfig := defaultConfig
	if *configFile != "" {
		loaded, err := config.InitConfig(*configFile)
		if err != nil {
			appLog.Fatalf("failed to load config: %v", err)
		}
		appConfig = loaded
	}
	appLog.Debugf("search cost model: maxNumChanges=%d maxCostScale=%v", appConfig.Search.MaxNumChanges, appConfig.Search.MaxCostScale)

	root, err := loadDictionary(*dictPath, *forbiddenPath)
	if err != nil {
		appLog.Fatalf("failed to load dictionary: %v", err)
	}
	appLog.Debugf("loaded dictionary: %d words", root.Size())

	opts := suggest.Options{
		NumSuggestions: *numSuggestions,
		IgnoreCase:     *ignoreCase,
		IncludeTies:    *includeTies,
	}
	roots := []*trie.Root{root}

	switch {
	case *interactive:
		handler := cli.NewInputHandler(roots, opts)
		if err := handler.Start(os.Stdin); err != nil {
			appLog.Fatalf("interactive mode error: %v", err)
		}
	case *batch:
		handler := cli.NewInputHandler(roots, opts)
		if err := handler.Batch(os.Stdin); err != nil {
			appLog.Fatalf("batch mode error: %v", err)
		}
	default:
		args := flag.Args()
		if len(args) == 0 {
			appLog.Fatal("usage: kotoba [flags] <word> (or pass -i / -batch)")
		}
		results, err := suggest.Suggest(roots, args[0], opts)
		if err != nil {
			appLog.Fatalf("suggest: %v", err)
		}
		if err := writeResults(os.Stdout, *out, results); err != nil {
			appLog.Fatalf("failed to write results: %v", err)
		}
	}
}

// printVersionBanner prints kotoba's name and version, styled the way a
// terminal banner should be: bold version number, muted byline.
func printVersionBanner() {
	versionStyle := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	bylineStyle := lipgloss.NewStyle().Italic(true).Faint(true)

	fmt.Println(versionStyle.Render(fmt.Sprintf("%s %s", appName, version)))
	fmt.Println(bylineStyle.Render("trie + A* spelling suggestions"))
}

// loadDictionary reads a newline-delimited word list into a fresh Root,
// reserving kotoba's three sentinel characters and loading forbiddenPath
// into the forbidden subtree if given.
func loadDictionary(dictPath, forbiddenPath string) (*trie.Root, error) {
	root := trie.NewRoot()
	root.SetCompoundCharacter('+')
	root.SetForbiddenWordPrefix('!')
	root.SetStripCaseAndAccentsPrefix('~')

	if err := loadWordsInto(dictPath, root.Insert); err != nil {
		return nil, err
	}
	if forbiddenPath != "" {
		if err := loadWordsInto(forbiddenPath, root.InsertForbidden); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func loadWordsInto(path string, insert func(string)) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			appLog.Warnf("dictionary file not found, starting empty: %s", path)
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		insert(scanner.Text())
	}
	return scanner.Err()
}

// writeResults renders results in the requested format.
func writeResults(w *os.File, format string, results []suggest.Suggestion) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "msgpack":
		data, err := msgpack.Marshal(results)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		if len(results) == 0 {
			fmt.Fprintln(w, "no suggestions")
			return nil
		}
		for i, s := range results {
			fmt.Fprintf(w, "%2d. %-30s (cost: %4d)\n", i+1, s.Word, s.Cost)
		}
		return nil
	}
}
