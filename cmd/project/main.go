package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DehanLUO/modern-go-template/internal/app"
	"github.com/DehanLUO/modern-go-template/internal/buildmeta"
	"github.com/DehanLUO/modern-go-template/internal/cli"
)

// Set with -ldflags "-X main.<name>=<value>", see the Makefile.
var (
	buildVersion   string
	buildType      string
	buildTimestamp string
	buildUser      string
	buildHost      string
	hostSystem     string
	gitDescribe    string
	gitCommitHash  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metadata := buildmeta.Collect(buildmeta.Vars{
		Version:        buildVersion,
		BuildType:      buildType,
		BuildTimestamp: buildTimestamp,
		BuildUser:      buildUser,
		BuildHost:      buildHost,
		HostSystem:     hostSystem,
		GitDescribe:    gitDescribe,
		GitCommitHash:  gitCommitHash,
	})

	if err := cli.Execute(ctx, metadata); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgCommandFailed, err)
		stop()
		os.Exit(1)
	}
}
