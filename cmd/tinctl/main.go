package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tin-keeper/internal/cli"
	"github.com/MKhiriev/go-tin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitInvalid = 1
	exitError   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "tinctl:", err)
	stop()
	if errors.Is(err, cli.ErrInvalidTINs) {
		os.Exit(exitInvalid)
	}
	os.Exit(exitError)
}
