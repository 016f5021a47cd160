// Command seed fills a running tourism server with fake records through the
// same REST calls the page uses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"tourism/internal/client/gateway"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	baseURL := flags.String("base-url", "http://localhost:8080", "tourism server address")
	tourists := flags.IntP("tourists", "t", 10, "number of tourists to create")
	destinations := flags.IntP("destinations", "d", 5, "number of destinations to create")
	visits := flags.IntP("visits", "v", 20, "number of visits to record")
	seed := flags.Int64("seed", 0, "random seed (0 picks one)")
	verbose := flags.Bool("verbose", false, "log at debug level")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *tourists < 0 || *destinations < 0 || *visits < 0 {
		return fmt.Errorf("counts must not be negative")
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := seeder{
		gw:   gateway.New(*baseURL),
		fake: gofakeit.New(*seed),
		log:  log,
	}
	log.WithField("base_url", *baseURL).Debug("seeding")
	return s.run(ctx, counts{Tourists: *tourists, Destinations: *destinations, Visits: *visits})
}
