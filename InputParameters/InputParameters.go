package InputParameters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
)

// Scalar is a float64 that also accepts quoted numbers. The upstream
// platform emits hand-edited fields as strings, so "2.5" and 2.5 must
// parse identically.
type Scalar float64

func (s *Scalar) UnmarshalJSON(data []byte) error {
	tok := strings.TrimSpace(string(data))
	if tok == "null" {
		*s = 0
		return nil
	}
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		tok = strings.TrimSpace(tok[1 : len(tok)-1])
	}
	if tok == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %v", string(data), err)
	}
	*s = Scalar(v)
	return nil
}

// Setting carries a configuration token through to the solver untouched:
// numbers and booleans keep their source spelling, strings lose only
// their quotes.
type Setting string

func (s *Setting) UnmarshalJSON(data []byte) error {
	tok := strings.TrimSpace(string(data))
	if tok == "null" {
		*s = ""
		return nil
	}
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Setting(str)
		return nil
	}
	*s = Setting(tok)
	return nil
}

// Parameters obtained from the microclimate scenario file (JSON or YAML)
type MicroclimateParameters struct {
	XfMin           Scalar  `json:"xf_min"`
	XfMax           Scalar  `json:"xf_max"`
	YfMin           Scalar  `json:"yf_min"`
	YfMax           Scalar  `json:"yf_max"`
	ZfMin           Scalar  `json:"zf_min"`
	ZfMax           Scalar  `json:"zf_max"`
	GridSize        Scalar  `json:"gridSize"`
	Delta           Scalar  `json:"delta"`
	BufferGrids     Scalar  `json:"bufferGrids"` // integer-valued, numeric so quoted counts parse
	OutputFrequency Setting `json:"outputFrequency"`
	Iterations      Setting `json:"iterations"`
	BEMCoupling     Setting `json:"BEM_coupling"`
	TimeStep        Setting `json:"timeStep"`
	LRef            Setting `json:"L_ref"`
	PowU            Setting `json:"Pow_u"`
	Cs              Setting `json:"Cs"`
	FlowMode        Setting `json:"Flow_mode"`
	Interpolation   Setting `json:"Interpolation"`
	AveNeeded       Setting `json:"Ave_needed"`
	Boussinesq      Setting `json:"Boussinesq"`
	ErrorLocationX  Setting `json:"errorLocationX"`
	ErrorLocationY  Setting `json:"errorLocationY"`
	ErrorLocationZ  Setting `json:"errorLocationZ"`
}

func (mp *MicroclimateParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MicroclimateParameters) Validate() error {
	if mp.GridSize <= 0 {
		return fmt.Errorf("gridSize must be positive, got %v", float64(mp.GridSize))
	}
	if mp.Delta <= 0 {
		return fmt.Errorf("delta must be positive, got %v", float64(mp.Delta))
	}
	if mp.BufferGrids < 0 {
		return fmt.Errorf("bufferGrids must not be negative, got %v", float64(mp.BufferGrids))
	}
	if mp.XfMax <= mp.XfMin {
		return fmt.Errorf("xf_max (%v) must exceed xf_min (%v)", float64(mp.XfMax), float64(mp.XfMin))
	}
	if mp.YfMax <= mp.YfMin {
		return fmt.Errorf("yf_max (%v) must exceed yf_min (%v)", float64(mp.YfMax), float64(mp.YfMin))
	}
	if mp.ZfMax <= mp.ZfMin {
		return fmt.Errorf("zf_max (%v) must exceed zf_min (%v)", float64(mp.ZfMax), float64(mp.ZfMin))
	}
	return nil
}

func (mp *MicroclimateParameters) Print() {
	fmt.Printf("[%v, %v]\t\t= X bounds\n", float64(mp.XfMin), float64(mp.XfMax))
	fmt.Printf("[%v, %v]\t\t= Y bounds\n", float64(mp.YfMin), float64(mp.YfMax))
	fmt.Printf("[%v, %v]\t\t= Z bounds\n", float64(mp.ZfMin), float64(mp.ZfMax))
	fmt.Printf("%8.3f\t\t= Grid Size\n", float64(mp.GridSize))
	fmt.Printf("%8.3f\t\t= Delta\n", float64(mp.Delta))
	fmt.Printf("%8d\t\t= Buffer Grids\n", int(mp.BufferGrids))
}

// Parameters obtained from the shading scenario file (JSON or YAML)
type ShadingParameters struct {
	XfMin    Scalar  `json:"xf_min"`
	XfMax    Scalar  `json:"xf_max"`
	YfMin    Scalar  `json:"yf_min"`
	YfMax    Scalar  `json:"yf_max"`
	ZfMin    Scalar  `json:"zf_min"`
	ZfMax    Scalar  `json:"zf_max"`
	GridSize Scalar  `json:"gridSize"`
	Output3D Setting `json:"output_3D"`
}

func (sp *ShadingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *ShadingParameters) Validate() error {
	if sp.GridSize <= 0 {
		return fmt.Errorf("gridSize must be positive, got %v", float64(sp.GridSize))
	}
	if sp.XfMax <= sp.XfMin {
		return fmt.Errorf("xf_max (%v) must exceed xf_min (%v)", float64(sp.XfMax), float64(sp.XfMin))
	}
	if sp.YfMax <= sp.YfMin {
		return fmt.Errorf("yf_max (%v) must exceed yf_min (%v)", float64(sp.YfMax), float64(sp.YfMin))
	}
	if sp.ZfMax <= sp.ZfMin {
		return fmt.Errorf("zf_max (%v) must exceed zf_min (%v)", float64(sp.ZfMax), float64(sp.ZfMin))
	}
	return nil
}
