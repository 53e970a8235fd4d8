package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type DecompositionParameters struct {
	Title             string  `yaml:"Title"`
	ZBC               string  `yaml:"ZBC"` // zonal boundary condition: closed or periodic
	MBC               string  `yaml:"MBC"` // meridional boundary condition
	Alpha             float64 `yaml:"Alpha"`
	GradientThreshold float64 `yaml:"GradientThreshold"`
	MaxIterations     int     `yaml:"MaxIterations"`
	DegreeLength      float64 `yaml:"DegreeLength"` // meters per degree of arc
	Periodify         bool    `yaml:"Periodify"`
	LonFile           string  `yaml:"LonFile"`
	LatFile           string  `yaml:"LatFile"`
	UFile             string  `yaml:"UFile"`
	VFile             string  `yaml:"VFile"`
	PsiFile           string  `yaml:"PsiFile"`
	PhiFile           string  `yaml:"PhiFile"`
}

func NewDecompositionParameters() *DecompositionParameters {
	return &DecompositionParameters{
		ZBC:          "closed",
		MBC:          "closed",
		Alpha:        1.0e-14,
		DegreeLength: 111195.0,
	}
}

func (dp *DecompositionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, dp)
}

func (dp *DecompositionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", dp.Title)
	fmt.Printf("[%s]\t\t\t= ZBC\n", dp.ZBC)
	fmt.Printf("[%s]\t\t\t= MBC\n", dp.MBC)
	fmt.Printf("%8.3e\t\t= Alpha\n", dp.Alpha)
	fmt.Printf("%8.3e\t\t= GradientThreshold\n", dp.GradientThreshold)
	fmt.Printf("[%d]\t\t\t\t= MaxIterations\n", dp.MaxIterations)
	fmt.Printf("%8.1f\t\t= DegreeLength\n", dp.DegreeLength)
	fmt.Printf("[%v]\t\t\t= Periodify\n", dp.Periodify)
}
