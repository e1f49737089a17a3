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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/urbanflow/meshprep/InputParameters"
	"github.com/urbanflow/meshprep/mesh"
)

// shadingCmd represents the shading command
var shadingCmd = &cobra.Command{
	Use:   "shading",
	Short: "Generate the shading solver domain description file",
	Long: `
Builds the uniform shading domain for a scenario: the configured bounds are
normalized to whole cell counts and extended by a five cell boundary margin
everywhere except the ground plane, then written as grid_info_shading.txt.

meshprep shading -I shading.json -o shading_inputs`,
	Run: func(cmd *cobra.Command, args []string) {
		paramsFile, _ := cmd.Flags().GetString("inputParametersFile")
		outputDir, _ := cmd.Flags().GetString("outputDir")
		if len(paramsFile) == 0 {
			fmt.Printf("error: must supply a scenario parameters file (-I, --inputParametersFile) in JSON or YAML format\n")
			os.Exit(1)
		}
		if err := runShading(paramsFile, outputDir); err != nil {
			log.Fatalf("shading: %v", err)
		}
	},
}

func runShading(paramsFile, outputDir string) error {
	data, err := os.ReadFile(paramsFile)
	if err != nil {
		return err
	}
	p := &InputParameters.ShadingParameters{}
	if err = p.Parse(data); err != nil {
		return fmt.Errorf("parsing %s: %v", paramsFile, err)
	}
	if err = p.Validate(); err != nil {
		return fmt.Errorf("%s: %v", paramsFile, err)
	}

	s := mesh.GenerateShadingGridInfo(p)
	path := filepath.Join(outputDir, "grid_info_shading.txt")
	if err = s.WriteFile(path); err != nil {
		return err
	}
	log.Printf("wrote shading domain to %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(shadingCmd)
	shadingCmd.Flags().StringP("inputParametersFile", "I", "", "shading scenario parameters (JSON or YAML)")
	shadingCmd.Flags().StringP("outputDir", "o", ".", "directory for grid_info_shading.txt")
}
