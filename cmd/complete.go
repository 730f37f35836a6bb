package cmd

import (
	"flag"
	"io"

	"github.com/etnz/donors"
	"github.com/etnz/donors/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and their flags for shell completion.
//
// Run the binary with COMP_INSTALL=1 to install the completion in the shell.
func Completion(cfg Config) *complete.Command {
	root := &complete.Command{Sub: make(map[string]*complete.Command)}
	for _, cmd := range commands(newApp(cfg)) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cmd.SetFlags(fs)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		if cmd.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "*"))
		}
		root.Sub[cmd.Name()] = sub
	}
	return root
}

// flagPredictor predicts the values of a command flag.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "k":
		var kinds []string
		for _, k := range donors.Kinds() {
			kinds = append(kinds, string(k))
		}
		return predict.Set(kinds)
	case "by":
		var keys []string
		for _, k := range donors.GroupKeys() {
			keys = append(keys, k.String())
		}
		return predict.Set(keys)
	case "dataset", "o":
		return predict.Files("*.jsonl")
	case "palette":
		return predict.Files("*.y*ml")
	case "period":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "currency":
		return predict.Set(knownCurrencies)
	}
	return predict.Something
}

// knownCurrencies are suggested for the currency flag, any ISO code is valid.
var knownCurrencies = []string{"USD", "EUR", "GBP", "CHF", "CAD", "AUD", "JPY", "KES", "NGN", "INR"}
