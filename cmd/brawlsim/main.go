package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/brawler/prefabs"
)

func main() {
	scenario := flag.String("scenario", "duel", "scenario name in levels/ (basename, .yaml optional)")
	ticks := flag.Int("ticks", 0, "ticks to run (0 uses the scenario's own count)")
	watch := flag.Bool("watch", false, "re-run the scenario whenever a prefab, level or script changes")
	debug := flag.Bool("debug", false, "log every hit as it is applied")
	damageScript := flag.String("damage-script", "", "tengo damage modifier in prefabs/scripts (overrides the scenario)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runOptions{
		Scenario:     *scenario,
		Ticks:        *ticks,
		Debug:        *debug,
		DamageScript: *damageScript,
	}

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Printf("brawlsim: %v", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	log.Printf("brawlsim: watching for changes")
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-w.Changes:
			if !ok {
				return
			}
			what := "spec"
			if change.Kind == prefabs.ChangeScript {
				what = "script"
			}
			log.Printf("brawlsim: %s %s changed, re-running %s", what, change.Path, opts.Scenario)
			if err := run(ctx, opts, os.Stdout); err != nil {
				log.Printf("brawlsim: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("brawlsim: watch: %v", err)
		}
	}
}
