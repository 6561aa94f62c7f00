// Command resetinfer runs the reset-inference-and-full-async-reset pass
// over one of a small set of in-memory demo circuits (real FIRRTL
// parsing is out of scope) and reports what it did.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/db47h/resetinfer"
	"github.com/db47h/resetinfer/internal/config"
	"github.com/db47h/resetinfer/internal/logging"
)

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := logging.LevelInfo
	if opts.Verbose {
		level = logging.LevelDebug
	}
	log := logging.New(os.Stderr, level)

	if opts.Input == "all" {
		if err := runAll(log); err != nil {
			log.Errorf("%+v", err)
			os.Exit(1)
		}
		return
	}

	build, ok := fixtures[opts.Input]
	if !ok {
		log.Errorf("no such fixture %q", opts.Input)
		os.Exit(2)
	}
	if err := runOne(log, opts.Input, build, opts.ResetPortName); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

func runOne(log *logging.Logger, name string, build func() *resetinfer.Circuit, resetPort string) error {
	ckt := build()
	res, err := resetinfer.Run(ckt, resetinfer.Options{ResetPortName: resetPort})
	if err != nil {
		return err
	}
	log.Infof("%s: %d nets, %d modules touched", name, len(res.Nets), res.ModulesTouched)
	return nil
}

// runAll runs every fixture concurrently, one worker per GOMAXPROCS, each
// owning its own independent Circuit and therefore its own exclusive pass
// state; this is the only place in the program that runs more than one
// pass invocation at a time; within a single Run call, phases still
// execute strictly sequentially.
func runAll(log *logging.Logger) error {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}

	workers := runtime.GOMAXPROCS(-1)
	if workers > len(names) {
		workers = len(names)
	}
	jobs := make(chan string, len(names))
	for _, n := range names {
		jobs <- n
	}
	close(jobs)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failure error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				if err := runOne(log, name, fixtures[name], "reset"); err != nil {
					mu.Lock()
					if failure == nil {
						failure = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return failure
}
