// Command vedyut is a CLI front end for the vedyut derivation engine.
//
// Usage:
//
//	vedyut nominal <stem> <vibhakti> <vacana> [--steps]
//	vedyut verbal <dhatu> <gana> <lakara> <purusha> <vacana> [--steps]
//	vedyut sandhi <left> <right>
//	vedyut split <text>
//	vedyut segment <text> [--lexicon file] [--max n]
//	vedyut translit <text> --from <scheme> --to <scheme>
//
// All word arguments are SLP1 unless the command says otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cours-de-sanskrit/vedyut/cheda"
	"github.com/cours-de-sanskrit/vedyut/kosha"
	"github.com/cours-de-sanskrit/vedyut/lipi"
	"github.com/cours-de-sanskrit/vedyut/prakriya"
	"github.com/cours-de-sanskrit/vedyut/sandhi"
)

var (
	showSteps   bool
	lexiconPath string
	maxResults  int
	fromScheme  string
	toScheme    string

	rootCmd = &cobra.Command{
		Use:          "vedyut",
		Short:        "Sanskrit word generation, sandhi, and segmentation",
		SilenceUsage: true,
	}

	nominalCmd = &cobra.Command{
		Use:   "nominal <stem> <vibhakti> <vacana>",
		Short: "Derive a declined nominal form",
		Args:  cobra.ExactArgs(3),
		RunE:  runNominal,
	}

	verbalCmd = &cobra.Command{
		Use:   "verbal <dhatu> <gana> <lakara> <purusha> <vacana>",
		Short: "Derive a conjugated verb form",
		Args:  cobra.ExactArgs(5),
		RunE:  runVerbal,
	}

	sandhiCmd = &cobra.Command{
		Use:   "sandhi <left> <right>",
		Short: "Join two words with external sandhi",
		Args:  cobra.ExactArgs(2),
		RunE:  runSandhi,
	}

	splitCmd = &cobra.Command{
		Use:   "split <text>",
		Short: "List candidate sandhi splits of a text",
		Args:  cobra.ExactArgs(1),
		RunE:  runSplit,
	}

	segmentCmd = &cobra.Command{
		Use:   "segment <text>",
		Short: "Segment a sandhied text into lexicon words",
		Args:  cobra.ExactArgs(1),
		RunE:  runSegment,
	}

	translitCmd = &cobra.Command{
		Use:   "translit <text>",
		Short: "Convert text between transliteration schemes",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranslit,
	}
)

func init() {
	nominalCmd.Flags().BoolVar(&showSteps, "steps", false, "print the derivation steps")
	verbalCmd.Flags().BoolVar(&showSteps, "steps", false, "print the derivation steps")
	segmentCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "path to a YAML lexicon file (default: built-in word list)")
	segmentCmd.Flags().IntVar(&maxResults, "max", 16, "maximum number of segmentations to print")
	translitCmd.Flags().StringVar(&fromScheme, "from", "slp1", "input scheme (slp1, iast, hk, devanagari)")
	translitCmd.Flags().StringVar(&toScheme, "to", "iast", "output scheme (slp1, iast, hk, devanagari)")

	rootCmd.AddCommand(nominalCmd, verbalCmd, sandhiCmd, splitCmd, segmentCmd, translitCmd)
}

func printDerivation(p *prakriya.Prakriya) {
	if showSteps {
		for _, step := range p.History() {
			fmt.Printf("%-12s %s\n", step.Rule, step.Result)
		}
	}
	fmt.Println(p.Text())
}

func runNominal(cmd *cobra.Command, args []string) error {
	v, err := prakriya.ParseVibhakti(args[1])
	if err != nil {
		return err
	}
	n, err := prakriya.ParseVacana(args[2])
	if err != nil {
		return err
	}
	p, err := prakriya.DeriveSubanta(args[0], v, n)
	if err != nil {
		return err
	}
	printDerivation(p)
	return nil
}

func runVerbal(cmd *cobra.Command, args []string) error {
	g, err := prakriya.ParseGana(args[1])
	if err != nil {
		return err
	}
	la, err := prakriya.ParseLakara(args[2])
	if err != nil {
		return err
	}
	pu, err := prakriya.ParsePurusha(args[3])
	if err != nil {
		return err
	}
	va, err := prakriya.ParseVacana(args[4])
	if err != nil {
		return err
	}
	p, err := prakriya.DeriveTinanta(prakriya.Dhatu{Text: args[0], Gana: g}, la, pu, va)
	if err != nil {
		return err
	}
	printDerivation(p)
	return nil
}

func runSandhi(cmd *cobra.Command, args []string) error {
	fmt.Println(sandhi.Combine(args[0], args[1]))
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	for _, pair := range sandhi.Split(args[0]) {
		fmt.Printf("%s + %s\n", pair.Left, pair.Right)
	}
	return nil
}

func runSegment(cmd *cobra.Command, args []string) error {
	lex := kosha.Builtin()
	if lexiconPath != "" {
		var err error
		lex, err = kosha.LoadFile(lexiconPath)
		if err != nil {
			return err
		}
	}
	seg := cheda.New(lex, cheda.WithMaxResults(maxResults))
	results := seg.Segment(args[0])
	if len(results) == 0 {
		return fmt.Errorf("no segmentation found for %q", args[0])
	}
	for _, s := range results {
		for i, w := range s.Words {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(w)
		}
		fmt.Println()
	}
	return nil
}

func runTranslit(cmd *cobra.Command, args []string) error {
	from, err := lipi.ParseScheme(fromScheme)
	if err != nil {
		return err
	}
	to, err := lipi.ParseScheme(toScheme)
	if err != nil {
		return err
	}
	fmt.Println(lipi.Convert(args[0], from, to))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
