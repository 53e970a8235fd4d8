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
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/yueyanglu/lu-etal/InputParameters"
	"github.com/yueyanglu/lu-etal/helmholtz"
	"github.com/yueyanglu/lu-etal/readfiles"
	"github.com/yueyanglu/lu-etal/utils"
)

// DecomposeCmd represents the decompose command
var DecomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Decompose a gridded velocity field into streamfunction and velocity potential",
	Long: `
Reads longitude, latitude and velocity component grids from plain-text
matrix files, runs the Li et al. (2006) minimization, and writes the
recovered streamfunction and velocity potential,

lu-etal decompose -i case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		dc := &DecompositionCase{}
		input, _ := cmd.Flags().GetString("input")
		dp := InputParameters.NewDecompositionParameters()
		if input != "" {
			data, err := os.ReadFile(input)
			if err != nil {
				fmt.Printf("unable to read input parameters: %v\n", err)
				os.Exit(1)
			}
			if err = dp.Parse(data); err != nil {
				fmt.Printf("unable to parse input parameters: %v\n", err)
				os.Exit(1)
			}
		}
		if s, _ := cmd.Flags().GetString("zbc"); s != "" {
			dp.ZBC = s
		}
		if s, _ := cmd.Flags().GetString("mbc"); s != "" {
			dp.MBC = s
		}
		if a, _ := cmd.Flags().GetFloat64("alpha"); a != 0 {
			dp.Alpha = a
		}
		if g, _ := cmd.Flags().GetFloat64("gtol"); g != 0 {
			dp.GradientThreshold = g
		}
		if it, _ := cmd.Flags().GetInt("maxiter"); it != 0 {
			dp.MaxIterations = it
		}
		if per, _ := cmd.Flags().GetBool("periodify"); per {
			dp.Periodify = true
		}
		dc.Params = dp
		dc.Profile, _ = cmd.Flags().GetBool("profile")
		dp.Print()
		RunDecompose(dc)
	},
}

func init() {
	rootCmd.AddCommand(DecomposeCmd)
	DecomposeCmd.Flags().StringP("input", "i", "", "YAML case file with grids and parameters")
	DecomposeCmd.Flags().String("zbc", "", "zonal boundary condition: closed or periodic")
	DecomposeCmd.Flags().String("mbc", "", "meridional boundary condition: closed or periodic")
	DecomposeCmd.Flags().Float64("alpha", 0, "Tikhonov regularization weight")
	DecomposeCmd.Flags().Float64("gtol", 0, "gradient-norm stopping tolerance")
	DecomposeCmd.Flags().Int("maxiter", 0, "major iteration budget, 0 = unlimited")
	DecomposeCmd.Flags().Bool("periodify", false, "mirror-triple the domain before decomposing")
	DecomposeCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

type DecompositionCase struct {
	Params  *InputParameters.DecompositionParameters
	Profile bool
}

func RunDecompose(dc *DecompositionCase) {
	if dc.Profile {
		defer profile.Start().Stop()
	}
	dp := dc.Params

	lon, lat, u, v, err := readCase(dp)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	zbc, err := utils.ParseBCType(dp.ZBC)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	mbc, err := utils.ParseBCType(dp.MBC)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	opts := &helmholtz.LatLonOptions{
		BC:           helmholtz.BCs{Zonal: zbc, Meridional: mbc},
		Alpha:        dp.Alpha,
		DegreeLength: dp.DegreeLength,
		Periodify:    dp.Periodify,
		Settings: &helmholtz.Settings{
			GradientThreshold: dp.GradientThreshold,
			MajorIterations:   dp.MaxIterations,
		},
	}
	fmt.Println("       Optimization process")
	t0 := time.Now()
	out, err := helmholtz.DecomposeLatLon(lon, lat, u, v, opts)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("           Time for convergence: %1.2f min\n", time.Since(t0).Minutes())
	fmt.Printf("           F(x): %1.2f\n", out.Fit.F)
	if !out.Fit.Converged {
		fmt.Printf("           warning: solver stopped early (%v) %s\n", out.Fit.Status, out.Fit.Warning)
	}

	if dp.PsiFile != "" {
		if err = readfiles.WriteMatrix(dp.PsiFile, out.Psi); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	if dp.PhiFile != "" {
		if err = readfiles.WriteMatrix(dp.PhiFile, out.Phi); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}

func readCase(dp *InputParameters.DecompositionParameters) (lon, lat, u, v utils.Matrix, err error) {
	if dp.UFile == "" || dp.VFile == "" || dp.LonFile == "" || dp.LatFile == "" {
		err = fmt.Errorf("LonFile, LatFile, UFile and VFile must all be set")
		return
	}
	if lon, err = readfiles.ReadMatrix(dp.LonFile); err != nil {
		return
	}
	if lat, err = readfiles.ReadMatrix(dp.LatFile); err != nil {
		return
	}
	if u, err = readfiles.ReadMatrix(dp.UFile); err != nil {
		return
	}
	v, err = readfiles.ReadMatrix(dp.VFile)
	return
}
