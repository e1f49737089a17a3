/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbanflow/meshprep/stl"
)

// geometryCmd represents the geometry command
var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Scan and split an ASCII STL scene",
	Long: `
Scans an ASCII STL scene, classifying solids by name prefix and computing the
global bounding box, and optionally rewrites the scene with one solid per
facet so downstream geometry tools can address facets individually.

meshprep geometry -i geometry.stl --bounds stl_bounds.json \
    --split geometry_split.stl --summary geometry_split_summary.json`,
	Run: func(cmd *cobra.Command, args []string) {
		g := &geometryOptions{}
		g.Input, _ = cmd.Flags().GetString("input")
		g.BoundsFile, _ = cmd.Flags().GetString("bounds")
		g.SplitFile, _ = cmd.Flags().GetString("split")
		g.SummaryFile, _ = cmd.Flags().GetString("summary")
		if len(g.Input) == 0 {
			fmt.Printf("error: must supply an STL scene file (-i, --input)\n")
			os.Exit(1)
		}
		if err := runGeometry(g); err != nil {
			log.Fatalf("geometry: %v", err)
		}
	},
}

type geometryOptions struct {
	Input       string
	BoundsFile  string
	SplitFile   string
	SummaryFile string
}

func runGeometry(g *geometryOptions) error {
	summary, err := stl.ParseFile(g.Input, stl.DefaultTaxonomy)
	if err != nil {
		return err
	}
	log.Printf("scanned %s: bounds x[%v, %v] y[%v, %v] z[%v, %v]",
		g.Input,
		summary.Bounds.X.Min, summary.Bounds.X.Max,
		summary.Bounds.Y.Min, summary.Bounds.Y.Max,
		summary.Bounds.Z.Min, summary.Bounds.Z.Max)
	for _, key := range stl.DefaultTaxonomy {
		log.Printf("  %s: %d", key, summary.SolidCounts[key])
	}

	if len(g.BoundsFile) != 0 {
		if err = stl.WriteSummaryFile(g.BoundsFile, summary); err != nil {
			return err
		}
		log.Printf("wrote scene summary to %s", g.BoundsFile)
	}

	if len(g.SplitFile) != 0 {
		var n int
		if n, err = stl.SplitByFacet(g.Input, g.SplitFile); err != nil {
			return err
		}
		log.Printf("split %s into %d facet solids at %s", g.Input, n, g.SplitFile)

		if len(g.SummaryFile) != 0 {
			split, err := stl.ParseFile(g.SplitFile, stl.DefaultTaxonomy)
			if err != nil {
				return err
			}
			if err = stl.WriteSolidCounts(g.SummaryFile, split.SolidCounts); err != nil {
				return err
			}
			log.Printf("wrote split solid counts to %s", g.SummaryFile)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geometryCmd.Flags().StringP("input", "i", "", "ASCII STL scene file to process")
	geometryCmd.Flags().String("bounds", "", "write the scene bounding box and solid summary JSON here")
	geometryCmd.Flags().String("split", "", "write the one-solid-per-facet rewrite of the scene here")
	geometryCmd.Flags().String("summary", "", "write the per-type solid counts of the split scene here (requires --split)")
}
