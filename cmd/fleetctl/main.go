// fleetctl is the one-shot companion CLI to fleetdns. It operates on a
// declaration file directly, without the management API:
//
//	fleetctl validate -f fleet.yaml
//	fleetctl records  -f fleet.yaml
//	fleetctl export   -f fleet.yaml
//	fleetctl plan     -f fleet.yaml [-config fleetdns.yaml | -dry-run]
//	fleetctl apply    -f fleet.yaml [-config fleetdns.yaml | -dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/jroosing/fleetdns/internal/config"
	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/logging"
	"github.com/jroosing/fleetdns/internal/plan"
	"github.com/jroosing/fleetdns/internal/provider"
	"github.com/jroosing/fleetdns/internal/zonefile"

	_ "github.com/jroosing/fleetdns/internal/provider/hetzner"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "validate":
		err = runValidate(args)
	case "records":
		err = runRecords(args)
	case "export":
		err = runExport(args)
	case "plan":
		err = runPlan(args)
	case "apply":
		err = runApply(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: fleetctl <command> [flags]

Commands:
  validate   Check a declaration file
  records    Print the record set a declaration derives
  export     Print the declaration as a BIND zone file
  plan       Diff the declaration against the provider
  apply      Converge the provider to the declaration

Common flags:
  -f path        Declaration file (default fleet.yaml)
  -config path   fleetdns config file for provider credentials
  -dry-run       Use the in-memory provider instead of the configured one
`)
}

func declFlag(fs *flag.FlagSet) *string {
	return fs.String("f", "fleet.yaml", "Path to the declaration file")
}

func loadDeclaration(path string) (*declaration.Declaration, error) {
	decl, err := declaration.Load(path)
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := declFlag(fs)
	_ = fs.Parse(args)

	decl, err := loadDeclaration(*file)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%s, %d servers, %d records)\n",
		*file, decl.Zone.Domain, decl.ServerCount, len(decl.Derive()))
	return nil
}

func runRecords(args []string) error {
	fs := flag.NewFlagSet("records", flag.ExitOnError)
	file := declFlag(fs)
	_ = fs.Parse(args)

	decl, err := loadDeclaration(*file)
	if err != nil {
		return err
	}
	for _, rec := range decl.Derive() {
		fmt.Printf("%-30s %6d IN %-5s %s\n", rec.FQDN(decl.Zone.Domain), rec.TTL, rec.Type, rec.Value)
	}
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := declFlag(fs)
	_ = fs.Parse(args)

	decl, err := loadDeclaration(*file)
	if err != nil {
		return err
	}
	out, err := zonefile.Export(decl)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// buildProvider constructs the provider for plan/apply, either the
// in-memory one for dry runs or the configured backend.
func buildProvider(configPath string, dryRun bool) (provider.Provider, error) {
	logger := logging.Configure(logging.Config{Level: "WARN"})
	if dryRun {
		return provider.New("memory", logger, nil)
	}
	cfg, err := config.Load(config.ResolveConfigPath(configPath))
	if err != nil {
		return nil, err
	}
	return provider.New(cfg.Provider.Name, logger, cfg.Provider.Settings)
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	file := declFlag(fs)
	configPath := fs.String("config", "", "Path to fleetdns config file")
	dryRun := fs.Bool("dry-run", false, "Plan against the in-memory provider")
	_ = fs.Parse(args)

	decl, err := loadDeclaration(*file)
	if err != nil {
		return err
	}
	prov, err := buildProvider(*configPath, *dryRun)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := plan.NewApplier(prov, nil).Plan(ctx, decl)
	if err != nil {
		return err
	}
	printPlan(p)
	return nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	file := declFlag(fs)
	configPath := fs.String("config", "", "Path to fleetdns config file")
	dryRun := fs.Bool("dry-run", false, "Apply against the in-memory provider")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	_ = fs.Parse(args)

	decl, err := loadDeclaration(*file)
	if err != nil {
		return err
	}
	prov, err := buildProvider(*configPath, *dryRun)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applier := plan.NewApplier(prov, nil)

	p, err := applier.Plan(ctx, decl)
	if err != nil {
		return err
	}
	printPlan(p)
	if p.Empty() {
		return nil
	}

	if !*yes && !*dryRun {
		fmt.Printf("\nApply these changes to %s via %s? Only 'yes' continues: ", p.Domain, prov.Name())
		var answer string
		if _, err := fmt.Scanln(&answer); err != nil || answer != "yes" {
			fmt.Println("apply cancelled")
			return nil
		}
	}

	result, err := applier.Apply(ctx, decl)
	if err != nil {
		return err
	}

	fmt.Printf("\nRun %s: %d created, %d updated, %d deleted\n",
		result.RunID, result.Created, result.Updated, result.Deleted)
	if !result.OK() {
		for _, f := range result.Failures {
			red.Printf("  failed %s %s %s %s: %s\n", f.Op, f.Record.Host, f.Record.Type, f.Record.Value, f.Error)
		}
		return fmt.Errorf("%d changes failed", len(result.Failures))
	}
	return nil
}

func printPlan(p plan.Plan) {
	bold.Printf("Plan for %s\n", p.Domain)
	if p.CreateZone {
		green.Printf("  + zone %s\n", p.Domain)
	}
	for _, rec := range p.Create {
		green.Printf("  + %s %s %s (ttl %d)\n", hostLabel(rec.Host), rec.Type, rec.Value, rec.TTL)
	}
	for _, rec := range p.Update {
		yellow.Printf("  ~ %s %s %s (ttl %d)\n", hostLabel(rec.Host), rec.Type, rec.Value, rec.TTL)
	}
	for _, rec := range p.Delete {
		red.Printf("  - %s %s %s\n", hostLabel(rec.Host), rec.Type, rec.Value)
	}
	if p.Empty() {
		fmt.Println("  no changes, provider matches the declaration")
		return
	}
	fmt.Printf("\n%s\n", p.Summary())
}

func hostLabel(host string) string {
	if host == "" {
		return "@"
	}
	return host
}
