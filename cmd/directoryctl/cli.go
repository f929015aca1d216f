package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/listing"

	"github.com/sirupsen/logrus"
)

// DoctorStore is what the commands need from the doctor source.
type DoctorStore interface {
	listing.DoctorSource
	Refresh(ctx context.Context) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Source DoctorStore
	Log    *logrus.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sync  SyncCmd  `cmd:"" help:"Re-import the upstream feed into Postgres and Redis"`
	Count CountCmd `cmd:"" help:"Print how many doctors are stored"`
	Query QueryCmd `cmd:"" help:"Print the listing for a URL query string"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

func (c *SyncCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Source.Refresh(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Synced %d doctors\n", len(doctors))
	return nil
}

// CountCmd is the "count" subcommand.
type CountCmd struct{}

func (c *CountCmd) Run(deps *Dependencies) error {
	count, err := deps.Source.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(deps.Stdout, count)
	return nil
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Params string `arg:"" optional:"" help:"Query string, e.g. 'specialty=Dentist&sortBy=fees'"`
}

func (c *QueryCmd) Run(deps *Dependencies) error {
	params, err := url.ParseQuery(strings.TrimPrefix(c.Params, "?"))
	if err != nil {
		return fmt.Errorf("invalid query string: %w", err)
	}

	o := listing.NewOrchestrator(deps.Source, nil, deps.Log, params)
	if err := o.Start(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listing.MessageFailed)
		return err
	}

	view := o.View()
	if view.Status == listing.StatusEmpty {
		fmt.Fprintln(deps.Stdout, view.Message)
		return nil
	}

	for _, d := range view.Doctors {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  fee=%s  exp=%d\n",
			d.ID, d.Name, strings.Join(d.Specialty, ", "), d.Fee.StringFixed(0), d.Experience)
	}
	fmt.Fprintf(deps.Stdout, "?%s\n", view.Query.Encode())
	return nil
}
