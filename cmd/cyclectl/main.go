// Command cyclectl prints a cycle forecast from a YAML file of period dates,
// without a database.
//
// Usage:
//
//	cyclectl -file periods.yaml [-today 2024-03-10]
//
// File format:
//
//	cycle_length: 30        # optional; overrides the computed average
//	periods:
//	  - start: 2024-01-01
//	    end: 2024-01-05
//	  - start: 2024-01-29
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

func main() {
	file := flag.String("file", "periods.yaml", "YAML file with period dates")
	todayFlag := flag.String("today", "", "evaluate as of this day (YYYY-MM-DD, default: today)")
	flag.Parse()

	today := domain.Today(time.Now(), time.Local)
	if *todayFlag != "" {
		t, err := domain.ParseDate(*todayFlag)
		if err != nil {
			die("invalid -today: %v", err)
		}
		today = t
	}

	f, err := os.Open(*file)
	if err != nil {
		die("open %s: %v", *file, err)
	}
	defer f.Close()

	in, err := loadInput(f)
	if err != nil {
		die("read %s: %v", *file, err)
	}

	fc, err := buildForecast(in, today)
	if err != nil {
		die("%v", err)
	}

	fmt.Println(render(fc))
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "cyclectl: "+format+"\n", args...)
	os.Exit(1)
}
