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
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/urbanflow/meshprep/InputParameters"
	"github.com/urbanflow/meshprep/mesh"
	"github.com/urbanflow/meshprep/stl"
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Generate the microclimate mesh and domain description files",
	Long: `
Builds the non-uniform structured mesh for a microclimate scenario: a uniform
urban core with exponentially stretched buffer regions on x, z and the far y
side, and writes grid_info.txt and domain_info.txt for the solver.

meshprep grid -I microclimate.json --solids geometry_split_summary.json -o microclimate_inputs`,
	Run: func(cmd *cobra.Command, args []string) {
		m := &gridOptions{}
		m.ParamsFile, _ = cmd.Flags().GetString("inputParametersFile")
		m.SolidsFile, _ = cmd.Flags().GetString("solids")
		m.OutputDir, _ = cmd.Flags().GetString("outputDir")
		m.WeatherFile, _ = cmd.Flags().GetString("weather")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start().Stop()
		}
		var willExit bool
		if len(m.ParamsFile) == 0 {
			fmt.Printf("error: must supply a scenario parameters file (-I, --inputParametersFile) in JSON or YAML format\n")
			willExit = true
		}
		if len(m.SolidsFile) == 0 {
			fmt.Printf("error: must supply the split geometry solid counts (--solids)\n")
			willExit = true
		}
		if willExit {
			os.Exit(1)
		}
		if err := runGrid(m); err != nil {
			log.Fatalf("grid: %v", err)
		}
	},
}

type gridOptions struct {
	ParamsFile  string
	SolidsFile  string
	OutputDir   string
	WeatherFile string
}

func runGrid(m *gridOptions) error {
	data, err := os.ReadFile(m.ParamsFile)
	if err != nil {
		return err
	}
	p := &InputParameters.MicroclimateParameters{}
	if err = p.Parse(data); err != nil {
		return fmt.Errorf("parsing %s: %v", m.ParamsFile, err)
	}
	if err = p.Validate(); err != nil {
		return fmt.Errorf("%s: %v", m.ParamsFile, err)
	}
	p.Print()

	solidCounts, err := stl.ReadSolidCounts(m.SolidsFile, stl.DefaultTaxonomy)
	if err != nil {
		return err
	}

	g, err := mesh.GenerateGridInfo(p, solidCounts)
	if err != nil {
		return err
	}
	if g.BufferGrids != int(p.BufferGrids) {
		log.Printf("buffer cell count reduced from %d to %d to keep the stretching margin",
			int(p.BufferGrids), g.BufferGrids)
	}
	log.Printf("mesh size: %d x %d x %d cells", g.NXGrid, g.NYGrid, g.NZGrid)

	gridPath := filepath.Join(m.OutputDir, "grid_info.txt")
	if err = g.WriteFile(gridPath); err != nil {
		return err
	}
	log.Printf("wrote mesh description to %s", gridPath)

	numSimulation := weatherRowCount(m.WeatherFile)
	domainPath := filepath.Join(m.OutputDir, "domain_info.txt")
	if err = mesh.WriteDomainInfoFile(domainPath, p, numSimulation); err != nil {
		return err
	}
	log.Printf("wrote solver setup to %s", domainPath)
	return nil
}

// weatherRowCount reads the row count from a weather_info.json artifact.
// The simulation count falls back to 1 when no usable weather information
// is available.
func weatherRowCount(filename string) int {
	if len(filename) == 0 {
		return 1
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("no weather info (%v), defaulting num_Simulation to 1", err)
		return 1
	}
	var info struct {
		RowCount *int `json:"row_count"`
	}
	if err = json.Unmarshal(data, &info); err != nil || info.RowCount == nil {
		log.Printf("unusable weather info in %s, defaulting num_Simulation to 1", filename)
		return 1
	}
	return *info.RowCount
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().StringP("inputParametersFile", "I", "", "microclimate scenario parameters (JSON or YAML)")
	gridCmd.Flags().String("solids", "", "per-type solid counts of the split geometry (JSON)")
	gridCmd.Flags().StringP("outputDir", "o", ".", "directory for grid_info.txt and domain_info.txt")
	gridCmd.Flags().String("weather", "", "weather_info.json supplying the simulation row count")
	gridCmd.Flags().Bool("profile", false, "write a CPU profile for the mesh generation")
}
