// Command phrasal analyzes corpora of short texts from the command line:
// sentiment per text and corpus-wide, plus PMI-validated top phrases.
// Input is one text per line, from a file argument or stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lughah/phrasal"
)

var (
	flagLang     string
	flagTop      int
	flagWorkers  int
	flagLexicons []string
)

func main() {
	root := &cobra.Command{
		Use:           "phrasal",
		Short:         "Phrase extraction and sentiment scoring for short social-media texts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagLang, "lang", "auto", "lexicon scope: en, ar, or auto")
	root.PersistentFlags().StringSliceVar(&flagLexicons, "lexicon", nil, "extra lexicon file(s), YAML or JSON")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze sentiment of each input text and the corpus overall",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}

	phrasesCmd := &cobra.Command{
		Use:   "phrases [file]",
		Short: "Extract PMI-validated top phrases from the input corpus",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPhrases,
	}
	phrasesCmd.Flags().IntVar(&flagTop, "top", 25, "number of phrases to report")
	phrasesCmd.Flags().IntVar(&flagWorkers, "workers", 1, "corpus shards processed concurrently")

	scoreCmd := &cobra.Command{
		Use:   "score <phrase>",
		Short: "Score a single phrase against the sentiment lexicon",
		Args:  cobra.ExactArgs(1),
		RunE:  runScore,
	}

	root.AddCommand(analyzeCmd, phrasesCmd, scoreCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func buildLexicon() (*phrasal.Lexicon, error) {
	return phrasal.NewLexicon(flagLexicons...)
}

func language() (phrasal.Language, error) {
	switch phrasal.Language(flagLang) {
	case phrasal.English, phrasal.Arabic, phrasal.Auto:
		return phrasal.Language(flagLang), nil
	}
	return "", fmt.Errorf("unknown language %q (want en, ar, or auto)", flagLang)
}

func readTexts(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts")
	}
	return texts, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	lang, err := language()
	if err != nil {
		return err
	}
	lex, err := buildLexicon()
	if err != nil {
		return err
	}
	cfg := phrasal.DefaultAnalyzerConfig()
	cfg.Language = lang
	analyzer, err := phrasal.NewAnalyzer(lex, cfg)
	if err != nil {
		return err
	}

	texts, err := readTexts(args)
	if err != nil {
		return err
	}
	result := analyzer.AnalyzeCorpus(texts)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Text", "Score", "Label", "Conf", "Fallback"})
	for i, r := range result.Results {
		t.AppendRow(table.Row{
			i + 1, truncate(texts[i], 48),
			fmt.Sprintf("%+.2f", r.Score), colorLabel(r.Label),
			fmt.Sprintf("%.2f", r.Confidence), r.WordFallback,
		})
	}
	t.Render()

	fmt.Printf("\ncorpus: score %+.3f  label %s  confidence %.3f  (%d texts, %d phrase hits)\n",
		result.Score, colorLabel(result.Label), result.Confidence,
		result.TextCount, result.PhraseCount)
	fmt.Printf("distribution: %d positive / %d neutral / %d negative\n",
		result.Distribution[phrasal.Positive],
		result.Distribution[phrasal.Neutral],
		result.Distribution[phrasal.Negative])

	if len(result.TopPhrases) > 0 {
		fmt.Println("\nrecurring sentiment phrases:")
		for _, pc := range result.TopPhrases {
			fmt.Printf("  %4d  %s\n", pc.Count, pc.Phrase)
		}
	}
	return nil
}

func runPhrases(cmd *cobra.Command, args []string) error {
	lex, err := buildLexicon()
	if err != nil {
		return err
	}
	cfg := phrasal.DefaultExtractorConfig()
	cfg.Workers = flagWorkers
	extractor, err := phrasal.NewExtractor(lex, cfg)
	if err != nil {
		return err
	}

	texts, err := readTexts(args)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Phrase", "Count"})
	for _, pc := range extractor.TopPhrases(texts, flagTop) {
		t.AppendRow(table.Row{pc.Phrase, pc.Count})
	}
	t.Render()
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	lang, err := language()
	if err != nil {
		return err
	}
	lex, err := buildLexicon()
	if err != nil {
		return err
	}
	cfg := phrasal.DefaultAnalyzerConfig()
	cfg.Language = lang
	analyzer, err := phrasal.NewAnalyzer(lex, cfg)
	if err != nil {
		return err
	}

	s := analyzer.ScorePhrase(args[0])
	fmt.Printf("%s: score %+.2f  label %s  confidence %.2f\n",
		args[0], s.Score, colorLabel(s.Label), s.Confidence)
	return nil
}

func colorLabel(l phrasal.Label) string {
	switch l {
	case phrasal.Positive:
		return color.GreenString(string(l))
	case phrasal.Negative:
		return color.RedString(string(l))
	default:
		return color.YellowString(string(l))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
