package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-lakedb/config"
	"go-lakedb/parser"
	"go-lakedb/services/executor"
	"go-lakedb/services/plan"
	"go-lakedb/services/registry"
	"go-lakedb/util/logger"
	"go-lakedb/util/response"
)

func main() {
	configs := config.New()
	if err := logger.SetLevel(configs.LogConfig.Level); err != nil {
		fatal(err)
	}

	reg, err := registry.New(configs.StorageConfig)
	if err != nil {
		fatal(err)
	}
	es := executor.New(reg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err = <-run(es, os.Stdin, os.Stdout):
		if err != nil {
			fatal(err)
		}
	case q := <-quit:
		fmt.Printf("\n%s signal received, stopping...\n", q.String())
	}
}

// run executes every ';'-separated plan document read from in and prints
// each result to out. Failed plans are reported and don't stop the loop.
func run(es *executor.ExecutorService, in io.Reader, out io.Writer) <-chan error {
	done := make(chan error, 1)
	go func() {
		s := bufio.NewScanner(in)
		s.Split(parser.PlanDivider)

		for s.Scan() {
			doc := bytes.TrimSpace(s.Bytes())
			if len(doc) == 0 {
				continue
			}

			p, err := plan.Decode(doc)
			if err != nil {
				fmt.Fprintln(out, "error =>", err)
				continue
			}

			res, err := es.Exec(p)
			if err != nil {
				fmt.Fprintln(out, "error =>", err)
				continue
			}

			buf := &bytes.Buffer{}
			if _, err := res.WriteTo(buf); err != nil {
				fmt.Fprintln(out, "error =>", err)
				continue
			}
			printResponse(out, buf)
		}
		done <- s.Err()
	}()
	return done
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}

func printResponse(out io.Writer, res io.Reader) {
	rr := response.NewReader(res)
	for {
		msg, err := rr.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(out, "error =>", err)
			break
		}
		fmt.Fprintf(out, "%v '%s'\n", len(msg), string(msg))
	}
}
