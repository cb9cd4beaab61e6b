package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/world"
)

// GraphSummary describes a loaded world.
type GraphSummary struct {
	Start     string         `json:"start"`
	Regions   int            `json:"regions"`
	Checks    int            `json:"checks"`
	Edges     int            `json:"edges"`
	Events    int            `json:"events"`
	ItemSlots int            `json:"item_slots"`
	Hash      string         `json:"hash"`
	Region    *RegionSummary `json:"region,omitempty"`
}

// RegionSummary describes one region and its outgoing edges.
type RegionSummary struct {
	Name   string        `json:"name"`
	Area   string        `json:"area"`
	Checks []string      `json:"checks"`
	Edges  []EdgeSummary `json:"edges"`
}

// EdgeSummary lists an edge's requirement per logic mode. Modes in which
// the edge does not exist are omitted.
type EdgeSummary struct {
	To           string            `json:"to"`
	Requirements map[string]string `json:"requirements"`
}

// WriteText renders the summary.
func (g GraphSummary) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Start:      %s\n", g.Start)
	fmt.Fprintf(w, "Regions:    %d\n", g.Regions)
	fmt.Fprintf(w, "Checks:     %d (%d events, %d item slots)\n", g.Checks, g.Events, g.ItemSlots)
	fmt.Fprintf(w, "Edges:      %d\n", g.Edges)
	fmt.Fprintf(w, "Hash:       %s\n", g.Hash)

	r := g.Region
	if r == nil {
		return
	}
	fmt.Fprintf(w, "\n%s [%s]\n", r.Name, r.Area)
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  check %s\n", c)
	}
	for _, e := range r.Edges {
		fmt.Fprintf(w, "  -> %s\n", e.To)
		for _, m := range settings.Modes() {
			if req, ok := e.Requirements[m.String()]; ok {
				fmt.Fprintf(w, "       %-16s %s\n", m.String(), req)
			}
		}
	}
}

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Summarize the world graph",
		Long: `Build the world graph and print its size and content hash.

With --region, also print the region's checks and the requirement of each
outgoing edge in every logic mode.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			g, checks, err := newEngine(rootOpts).World()
			if err != nil {
				return formatter.Fail(err)
			}

			summary := GraphSummary{
				Start:     g.Region(g.Start()).Name,
				Regions:   g.NumRegions(),
				Checks:    g.NumChecks(),
				Edges:     g.NumEdges(),
				Events:    checks.Len(),
				ItemSlots: g.ItemSlots(),
				Hash:      g.Hash(),
			}

			if region != "" {
				id, ok := g.RegionByName(region)
				if !ok {
					return formatter.Fail(fmt.Errorf("unknown region %q", region))
				}
				summary.Region = summarizeRegion(g, id)
			}

			return formatter.Success(summary)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "show one region's checks and edges")

	return cmd
}

func summarizeRegion(g *world.Graph, id world.RegionID) *RegionSummary {
	r := g.Region(id)
	out := &RegionSummary{
		Name:   r.Name,
		Area:   r.Area,
		Checks: make([]string, 0, len(r.Checks)),
		Edges:  make([]EdgeSummary, 0, len(r.Edges)),
	}
	for _, cid := range r.Checks {
		c := g.Check(cid)
		name := c.Name
		if c.IsEvent() {
			name = fmt.Sprintf("%s (event %s)", c.Name, c.Event)
		}
		out.Checks = append(out.Checks, name)
	}
	for _, eid := range r.Edges {
		e := g.Edge(eid)
		es := EdgeSummary{To: g.Region(e.To).Name, Requirements: map[string]string{}}
		for _, m := range settings.Modes() {
			if e.Exists(m) {
				es.Requirements[m.String()] = e.Requirement(m).String()
			}
		}
		out.Edges = append(out.Edges, es)
	}
	return out
}
