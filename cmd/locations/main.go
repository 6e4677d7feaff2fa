package main

import (
	"flag"
	"fmt"
	"os"

	"flatradar/internal/domain/entity"
	"flatradar/internal/infra/locations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate:  Cross-check the embedded location datasets
// - resolve:   Resolve a raw location term to canonical zones
// - neighbors: Print the proximity suggestions for a zone

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	resolveCmd := flag.NewFlagSet("resolve", flag.ExitOnError)
	neighborsCmd := flag.NewFlagSet("neighbors", flag.ExitOnError)

	resolveGeneva := resolveCmd.Bool("geneva", true, "Enable the region-exclusive alias layer")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := runSubcommand(validateCmd, resolveCmd, neighborsCmd, resolveGeneva); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(validateCmd, resolveCmd, neighborsCmd *flag.FlagSet, resolveGeneva *bool) error {
	resolver, err := locations.NewResolver()
	if err != nil {
		return errors.Wrap(err, "failed to load location dataset")
	}
	graph, err := locations.NewGraph()
	if err != nil {
		return errors.Wrap(err, "failed to load proximity dataset")
	}

	switch os.Args[1] {
	case "validate":
		if err := validateCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse validate flags")
		}

		return runValidate(resolver, graph)
	case "resolve":
		if err := resolveCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse resolve flags")
		}

		return runResolve(resolver, resolveCmd.Args(), *resolveGeneva)
	case "neighbors":
		if err := neighborsCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse neighbors flags")
		}

		return runNeighbors(graph, neighborsCmd.Args())
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func runValidate(resolver *locations.Resolver, graph *locations.Graph) error {
	diagnostics := resolver.ValidateConsistency()
	diagnostics = append(diagnostics, locations.ValidateGraphCoverage(resolver, graph)...)

	if len(diagnostics) > 0 {
		for _, diagnostic := range diagnostics {
			fmt.Fprintln(os.Stderr, diagnostic)
		}

		return errors.Errorf("dataset validation failed with %d diagnostics", len(diagnostics))
	}

	fmt.Println("location datasets are consistent")

	return nil
}

func runResolve(resolver *locations.Resolver, terms []string, genevaContext bool) error {
	if len(terms) == 0 {
		return errors.New("resolve requires at least one term")
	}

	for _, term := range terms {
		zones := resolver.Resolve(term, genevaContext)
		if len(zones) == 0 {
			fmt.Printf("%s: (unresolved)\n", term)

			continue
		}

		fmt.Printf("%s:", term)
		for _, zone := range zones {
			fmt.Printf(" %s", zone)
		}
		fmt.Println()
	}

	return nil
}

func runNeighbors(graph *locations.Graph, zones []string) error {
	if len(zones) == 0 {
		return errors.New("neighbors requires at least one zone")
	}

	for _, raw := range zones {
		zone := entity.CanonicalLocation(raw)
		if !graph.HasNode(zone) {
			fmt.Printf("%s: (unknown zone)\n", raw)

			continue
		}

		fmt.Printf("%s:", zone)
		for _, neighbor := range graph.Neighbors(zone) {
			fmt.Printf(" %s", neighbor)
		}
		fmt.Println()
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: locations <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  validate              Cross-check the embedded location datasets")
	fmt.Println("  resolve [-geneva] …   Resolve raw terms to canonical zones")
	fmt.Println("  neighbors <zone> …    Print proximity suggestions for zones")
}
